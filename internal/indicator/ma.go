package indicator

import "fmt"

// computeMA adds close-price moving averages, volume moving averages and
// the day-over-day percent change.
func computeMA(s *Series, cfg Config) {
	closes := s.closes()
	for _, p := range cfg.MAPeriods {
		s.Columns[fmt.Sprintf("ma%d", p)] = rollingMean(closes, p)
	}

	vols := s.volumes()
	for _, p := range cfg.VolumeMAPeriods {
		s.Columns[fmt.Sprintf("vol_ma%d", p)] = rollingMean(vols, p)
	}

	s.Columns["pct_change"] = pctChange(closes)
}
