package util

import "strings"

// ValidSymbol reports whether code is a well-formed instrument code for the
// given market ("cn", "hk", "us").
func ValidSymbol(code, market string) bool {
	if code == "" {
		return false
	}
	switch market {
	case "cn":
		// e.g. 000001.SZ, 600000.SH, 430001.BJ
		sym, suffix, ok := strings.Cut(code, ".")
		if !ok {
			return false
		}
		return len(sym) == 6 && allDigits(sym) &&
			(suffix == "SH" || suffix == "SZ" || suffix == "BJ")
	case "hk":
		// e.g. 00001.HK
		sym, suffix, ok := strings.Cut(code, ".")
		if !ok {
			return false
		}
		return len(sym) == 5 && allDigits(sym) && suffix == "HK"
	case "us":
		// e.g. AAPL, TSLA
		if len(code) > 5 {
			return false
		}
		for _, r := range code {
			if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
				return false
			}
		}
		return true
	}
	return false
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
