package indicator

// computeMACD adds macd_dif, macd_dea and the macd_macd histogram.
//
// DIF is the spread between the fast and slow EMAs of the close, DEA is
// the signal EMA of DIF, and the histogram is doubled per the A-share
// charting convention.
func computeMACD(s *Series, cfg Config) {
	closes := s.closes()

	emaFast := ewmaSpan(closes, cfg.MACDFast)
	emaSlow := ewmaSpan(closes, cfg.MACDSlow)

	dif := make([]float64, len(closes))
	for i := range closes {
		dif[i] = emaFast[i] - emaSlow[i]
	}

	dea := ewmaSpan(dif, cfg.MACDSignal)

	hist := make([]float64, len(closes))
	for i := range closes {
		hist[i] = (dif[i] - dea[i]) * 2
	}

	s.Columns["macd_dif"] = dif
	s.Columns["macd_dea"] = dea
	s.Columns["macd_macd"] = hist
}
