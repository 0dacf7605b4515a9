package indicator

// computeKDJ adds the k, d and j stochastic columns.
//
// RSV measures where the close sits inside the period's high-low range.
// A flat range is undecidable and maps to the neutral 50. K and D are
// exponential smoothings of RSV and K respectively, J = 3K - 2D.
func computeKDJ(s *Series, cfg Config) {
	highN := rollingMax(s.highs(), cfg.KDJPeriod)
	lowN := rollingMin(s.lows(), cfg.KDJPeriod)
	closes := s.closes()

	rsv := make([]float64, len(closes))
	for i := range closes {
		spread := highN[i] - lowN[i]
		if spread == 0 {
			rsv[i] = 50
			continue
		}
		rsv[i] = (closes[i] - lowN[i]) / spread * 100
	}

	k := ewma(rsv, 1/float64(cfg.KDJKSmooth))
	d := ewma(k, 1/float64(cfg.KDJDSmooth))

	j := make([]float64, len(k))
	for i := range k {
		j[i] = 3*k[i] - 2*d[i]
	}

	s.Columns["k"] = k
	s.Columns["d"] = d
	s.Columns["j"] = j
}
