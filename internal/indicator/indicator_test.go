package indicator

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"FinFlow/internal/domain/models"
)

// barsFromCloses builds daily bars where high/low hug the close, enough
// for close-driven indicators.
func barsFromCloses(closes ...float64) []models.Bar {
	bars := make([]models.Bar, len(closes))
	for i, c := range closes {
		bars[i] = models.Bar{
			Symbol:    "000001.SZ",
			TradeDate: fmt.Sprintf("202501%02d", i+1),
			Open:      c,
			High:      c + 1,
			Low:       c - 1,
			Close:     c,
			Volume:    1000 + float64(i)*10,
		}
	}
	return bars
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeUnknownIndicator(t *testing.T) {
	_, err := Compute(barsFromCloses(1, 2, 3), []string{"vwap"}, DefaultConfig())
	if err == nil {
		t.Fatalf("expected error for unknown indicator")
	}
}

func TestComputeEmptyBars(t *testing.T) {
	s, err := Compute(nil, nil, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(s.Bars) != 0 || len(s.Columns) != 0 {
		t.Fatalf("empty input should produce empty series, got %d bars %d columns", len(s.Bars), len(s.Columns))
	}
}

func TestComputeSortsDescendingInput(t *testing.T) {
	bars := barsFromCloses(10, 11, 12)
	// reverse to newest-first, as some providers return
	rev := []models.Bar{bars[2], bars[1], bars[0]}

	s, err := Compute(rev, []string{NameMA}, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	for i := 1; i < len(s.Bars); i++ {
		if s.Bars[i-1].TradeDate >= s.Bars[i].TradeDate {
			t.Fatalf("bars not ascending: %s before %s", s.Bars[i-1].TradeDate, s.Bars[i].TradeDate)
		}
	}
	if rev[0].TradeDate != "20250103" {
		t.Fatalf("input slice was reordered")
	}
}

func TestMAShrinksWindowAtHead(t *testing.T) {
	s, err := Compute(barsFromCloses(10, 20, 30, 40, 50, 60), []string{NameMA}, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	ma5 := s.Columns["ma5"]
	if !almostEqual(ma5[0], 10) {
		t.Fatalf("ma5[0] = %v, want 10", ma5[0])
	}
	if !almostEqual(ma5[2], 20) {
		t.Fatalf("ma5[2] = %v, want 20", ma5[2])
	}
	if !almostEqual(ma5[4], 30) {
		t.Fatalf("ma5[4] = %v, want 30", ma5[4])
	}
	// full window: mean of 20..60
	if !almostEqual(ma5[5], 40) {
		t.Fatalf("ma5[5] = %v, want 40", ma5[5])
	}
	if !math.IsNaN(s.Columns["pct_change"][0]) {
		t.Fatalf("pct_change[0] should be NaN")
	}
	if !almostEqual(s.Columns["pct_change"][1], 100) {
		t.Fatalf("pct_change[1] = %v, want 100", s.Columns["pct_change"][1])
	}
}

func TestRSIStrictlyRisingIs100(t *testing.T) {
	s, err := Compute(barsFromCloses(1, 2, 3, 4, 5, 6, 7, 8), []string{NameRSI}, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	rsi6 := s.Columns["rsi6"]
	if !math.IsNaN(rsi6[0]) {
		t.Fatalf("rsi6[0] should be NaN, got %v", rsi6[0])
	}
	for i := 1; i < len(rsi6); i++ {
		if !almostEqual(rsi6[i], 100) {
			t.Fatalf("rsi6[%d] = %v, want 100 for strictly rising closes", i, rsi6[i])
		}
	}
}

func TestRSIFlatIsNeutral(t *testing.T) {
	s, err := Compute(barsFromCloses(5, 5, 5, 5, 5), []string{NameRSI}, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	rsi6 := s.Columns["rsi6"]
	for i := 1; i < len(rsi6); i++ {
		if !almostEqual(rsi6[i], 50) {
			t.Fatalf("rsi6[%d] = %v, want 50 for flat closes", i, rsi6[i])
		}
	}
}

func TestKDJIdentityAndFlatSeries(t *testing.T) {
	s, err := Compute(barsFromCloses(10, 12, 9, 14, 13, 11, 15, 16, 12, 14), []string{NameKDJ}, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	k, d, j := s.Columns["k"], s.Columns["d"], s.Columns["j"]
	for i := range k {
		if !almostEqual(j[i], 3*k[i]-2*d[i]) {
			t.Fatalf("j[%d] = %v, want 3k-2d = %v", i, j[i], 3*k[i]-2*d[i])
		}
	}

	// A bar with high == low collapses the range; rsv falls back to 50.
	flat := []models.Bar{{TradeDate: "20250101", High: 10, Low: 10, Close: 10}}
	s, err = Compute(flat, []string{NameKDJ}, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if !almostEqual(s.Columns["k"][0], 50) || !almostEqual(s.Columns["d"][0], 50) {
		t.Fatalf("flat range should yield neutral k/d, got k=%v d=%v", s.Columns["k"][0], s.Columns["d"][0])
	}
}

func TestBollFlatSeriesCollapses(t *testing.T) {
	s, err := Compute(barsFromCloses(7, 7, 7, 7, 7, 7), []string{NameBoll}, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	for i := range s.Bars {
		mid := s.Columns["boll_mid"][i]
		if !almostEqual(mid, 7) {
			t.Fatalf("boll_mid[%d] = %v, want 7", i, mid)
		}
		if !almostEqual(s.Columns["boll_upper"][i], mid) || !almostEqual(s.Columns["boll_lower"][i], mid) {
			t.Fatalf("flat series bands should collapse onto the middle at %d", i)
		}
	}
}

func TestBollBandsAreSymmetric(t *testing.T) {
	s, err := Compute(barsFromCloses(10, 12, 11, 14, 13, 15, 16, 14), []string{NameBoll}, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	for i := range s.Bars {
		mid := s.Columns["boll_mid"][i]
		up := s.Columns["boll_upper"][i] - mid
		down := mid - s.Columns["boll_lower"][i]
		if !almostEqual(up, down) {
			t.Fatalf("bands not symmetric at %d: up=%v down=%v", i, up, down)
		}
	}
}

func TestMACDHistogramIdentity(t *testing.T) {
	s, err := Compute(barsFromCloses(10, 11, 13, 12, 15, 14, 16, 18, 17, 19), []string{NameMACD}, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	dif, dea, hist := s.Columns["macd_dif"], s.Columns["macd_dea"], s.Columns["macd_macd"]
	for i := range dif {
		if !almostEqual(hist[i], (dif[i]-dea[i])*2) {
			t.Fatalf("macd[%d] = %v, want (dif-dea)*2 = %v", i, hist[i], (dif[i]-dea[i])*2)
		}
	}
	// first cell: both EMAs seed at the first close, so dif and dea are 0
	if !almostEqual(dif[0], 0) || !almostEqual(hist[0], 0) {
		t.Fatalf("macd should start at zero, dif=%v hist=%v", dif[0], hist[0])
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	bars := barsFromCloses(10, 12, 9, 14, 13, 11, 15, 16, 12, 14)
	a, err := Compute(bars, nil, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	b, err := Compute(bars, nil, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(a.Columns) != len(b.Columns) {
		t.Fatalf("column counts differ: %d vs %d", len(a.Columns), len(b.Columns))
	}
	for name, col := range a.Columns {
		other := b.Columns[name]
		for i := range col {
			same := col[i] == other[i] || (math.IsNaN(col[i]) && math.IsNaN(other[i]))
			if !same {
				t.Fatalf("column %s differs at %d: %v vs %v", name, i, col[i], other[i])
			}
		}
	}
}

func TestComputeAllFamiliesByDefault(t *testing.T) {
	s, err := Compute(barsFromCloses(10, 11, 12, 13, 14), nil, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	for _, col := range []string{"ma5", "vol_ma5", "rsi6", "k", "d", "j", "boll_mid", "macd_dif", "macd_macd"} {
		if _, ok := s.Columns[col]; !ok {
			t.Fatalf("missing column %s", col)
		}
	}
	for name, col := range s.Columns {
		if len(col) != len(s.Bars) {
			t.Fatalf("column %s length %d, want %d", name, len(col), len(s.Bars))
		}
	}
}

func TestSeriesMarshalsUndefinedCellsAsNull(t *testing.T) {
	s, err := Compute(barsFromCloses(10, 11, 12), nil, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal series: %v", err)
	}

	var got struct {
		Columns map[string][]*float64 `json:"columns"`
	}
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if len(got.Columns) != len(s.Columns) {
		t.Fatalf("columns = %d, want %d", len(got.Columns), len(s.Columns))
	}
	for name, col := range s.Columns {
		for i, v := range col {
			cell := got.Columns[name][i]
			switch {
			case math.IsNaN(v):
				if cell != nil {
					t.Fatalf("%s[%d] = %v, want null", name, i, *cell)
				}
			case cell == nil:
				t.Fatalf("%s[%d] is null, want %v", name, i, v)
			case !almostEqual(*cell, v):
				t.Fatalf("%s[%d] = %v, want %v", name, i, *cell, v)
			}
		}
	}
}
