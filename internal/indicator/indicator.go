package indicator

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"FinFlow/internal/domain/models"
)

// Names of the supported indicator families.
const (
	NameMA   = "ma"
	NameRSI  = "rsi"
	NameKDJ  = "kdj"
	NameBoll = "boll"
	NameMACD = "macd"
)

// Config holds indicator parameters. Zero values fall back to defaults.
type Config struct {
	MAPeriods       []int
	VolumeMAPeriods []int
	RSIPeriods      []int
	KDJPeriod       int
	KDJKSmooth      int
	KDJDSmooth      int
	BollPeriod      int
	BollStdDev      float64
	MACDFast        int
	MACDSlow        int
	MACDSignal      int
}

// DefaultConfig returns the conventional A-share parameter set.
func DefaultConfig() Config {
	return Config{
		MAPeriods:       []int{5, 10, 20, 60},
		VolumeMAPeriods: []int{5, 10},
		RSIPeriods:      []int{6, 12, 24},
		KDJPeriod:       9,
		KDJKSmooth:      3,
		KDJDSmooth:      3,
		BollPeriod:      20,
		BollStdDev:      2.0,
		MACDFast:        12,
		MACDSlow:        26,
		MACDSignal:      9,
	}
}

// Series is the result of an indicator computation: the input bars in
// ascending trade-date order plus one column per derived value. Column
// slices are aligned index-for-index with Bars; cells the window cannot
// define yet are NaN.
type Series struct {
	Bars    []models.Bar      `json:"bars"`
	Columns map[string]Column `json:"columns"`
}

// Column is one aligned value slice. It marshals NaN and infinite cells
// as JSON null, which encoding/json rejects for plain float64.
type Column []float64

func (c Column) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, len(c)*8+2)
	out = append(out, '[')
	for i, v := range c {
		if i > 0 {
			out = append(out, ',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out = append(out, "null"...)
		} else {
			out = strconv.AppendFloat(out, v, 'g', -1, 64)
		}
	}
	return append(out, ']'), nil
}

func newSeries(bars []models.Bar) *Series {
	return &Series{Bars: bars, Columns: make(map[string]Column)}
}

// Compute derives the requested indicator families over bars. An empty
// names slice computes all families. Bars are sorted ascending by trade
// date before computing; the input slice is not modified.
func Compute(bars []models.Bar, names []string, cfg Config) (*Series, error) {
	if len(names) == 0 {
		names = []string{NameMA, NameRSI, NameKDJ, NameBoll, NameMACD}
	}
	for _, name := range names {
		switch name {
		case NameMA, NameRSI, NameKDJ, NameBoll, NameMACD:
		default:
			return nil, fmt.Errorf("unknown indicator %q", name)
		}
	}

	sorted := make([]models.Bar, len(bars))
	copy(sorted, bars)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TradeDate < sorted[j].TradeDate
	})

	s := newSeries(sorted)
	if len(sorted) == 0 {
		return s, nil
	}

	for _, name := range names {
		switch name {
		case NameMA:
			computeMA(s, cfg)
		case NameRSI:
			computeRSI(s, cfg)
		case NameKDJ:
			computeKDJ(s, cfg)
		case NameBoll:
			computeBoll(s, cfg)
		case NameMACD:
			computeMACD(s, cfg)
		}
	}
	return s, nil
}

func (s *Series) closes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Close
	}
	return out
}

func (s *Series) highs() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.High
	}
	return out
}

func (s *Series) lows() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Low
	}
	return out
}

func (s *Series) volumes() []float64 {
	out := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		out[i] = b.Volume
	}
	return out
}
