package models

import "time"

// Composite represents a consolidated view of all data sections fetched
// for a symbol. Sections the caller did not request are absent from Data;
// sections whose fetch failed are present with a nil value and carry the
// failure reason in Errors.
// Note: no transport (json/http) concerns here.
type Composite struct {
	Symbol    string
	Market    string
	Timestamp time.Time
	Data      map[string]any
	Errors    map[string]string
}

// Complete reports whether all requested sections were fetched.
func (c *Composite) Complete() bool {
	return len(c.Errors) == 0
}
