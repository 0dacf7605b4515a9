package indicator

// computeBoll adds the Bollinger middle, upper and lower bands. The
// middle band is the rolling mean of closes; the outer bands sit
// BollStdDev sample standard deviations away from it.
func computeBoll(s *Series, cfg Config) {
	closes := s.closes()
	mid := rollingMean(closes, cfg.BollPeriod)
	std := rollingStd(closes, cfg.BollPeriod)

	upper := make([]float64, len(mid))
	lower := make([]float64, len(mid))
	for i := range mid {
		upper[i] = mid[i] + std[i]*cfg.BollStdDev
		lower[i] = mid[i] - std[i]*cfg.BollStdDev
	}

	s.Columns["boll_mid"] = mid
	s.Columns["boll_upper"] = upper
	s.Columns["boll_lower"] = lower
}
