package indicator

import (
	"fmt"
	"math"
)

// computeRSI adds one rsi<period> column per configured period.
//
// Gains and losses are simple rolling means over the shrinking window.
// The first bar has no prior close, so its RSI is undefined. When the
// window saw no losses the series is maximally strong (100); when it saw
// neither gains nor losses the value is the neutral 50.
func computeRSI(s *Series, cfg Config) {
	closes := s.closes()
	n := len(closes)

	gains := make([]float64, n)
	losses := make([]float64, n)
	for i := 1; i < n; i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	for _, p := range cfg.RSIPeriods {
		avgGain := rollingMean(gains, p)
		avgLoss := rollingMean(losses, p)

		rsi := make([]float64, n)
		for i := 0; i < n; i++ {
			switch {
			case i == 0:
				rsi[i] = math.NaN()
			case avgLoss[i] == 0 && avgGain[i] == 0:
				rsi[i] = 50
			case avgLoss[i] == 0:
				rsi[i] = 100
			default:
				rs := avgGain[i] / avgLoss[i]
				rsi[i] = 100 - 100/(1+rs)
			}
		}
		s.Columns[fmt.Sprintf("rsi%d", p)] = rsi
	}
}
