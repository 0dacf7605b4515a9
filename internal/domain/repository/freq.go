package repository

// Freq represents bar aggregation frequency.
type Freq string

const (
	FreqDaily   Freq = "daily"
	FreqWeekly  Freq = "weekly"
	FreqMonthly Freq = "monthly"
)

// IsValidFreq returns true if f is a supported frequency.
func IsValidFreq(f Freq) bool {
	switch f {
	case FreqDaily, FreqWeekly, FreqMonthly:
		return true
	default:
		return false
	}
}

// DefaultFreq returns the default frequency.
func DefaultFreq() Freq { return FreqDaily }

// NormalizeFreq converts raw string to a valid frequency (or default).
func NormalizeFreq(s string) Freq {
	if s == "" {
		return DefaultFreq()
	}
	f := Freq(s)
	if IsValidFreq(f) {
		return f
	}
	return DefaultFreq()
}
