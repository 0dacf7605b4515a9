package util

import (
	"fmt"
	"strings"
	"time"
)

// Provider-facing trade date layouts.
const (
	DateCompact = "20060102"   // tushare-style YYYYMMDD
	DateDashed  = "2006-01-02" // yahoo-style YYYY-MM-DD
)

// FormatDate normalizes a date string to the given layout. It accepts
// YYYYMMDD, YYYY-MM-DD, and YYYY/MM/DD inputs.
func FormatDate(s, layout string) (string, error) {
	t, err := ParseTradeDate(s)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

// ParseTradeDate parses a trade date in compact, dashed, or slashed form.
func ParseTradeDate(s string) (time.Time, error) {
	clean := strings.NewReplacer("-", "", "/", "").Replace(strings.TrimSpace(s))
	t, err := time.Parse(DateCompact, clean)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse trade date %q: %w", s, err)
	}
	return t, nil
}
