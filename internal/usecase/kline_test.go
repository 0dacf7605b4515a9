package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"FinFlow/internal/domain/models"
	"FinFlow/internal/domain/repository"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
}

func newKlineForTest(t *testing.T, src repository.BarSource) *KlineUseCase {
	t.Helper()
	uc := NewKlineUseCase(map[string]repository.BarSource{"cn": src}, testLogger(t), nopMetrics{})
	uc.now = fixedNow
	return uc
}

func TestGetKlineRejectsInvalidSymbol(t *testing.T) {
	uc := newKlineForTest(t, &fakeBarSource{})
	_, err := uc.GetKline(context.Background(), &models.KlineRequest{
		Symbol: "AAPL", Market: "cn", Limit: 10,
	})
	if !errors.Is(err, ErrInvalidSymbol) {
		t.Fatalf("err = %v, want ErrInvalidSymbol", err)
	}
}

func TestGetKlineRejectsUnknownMarket(t *testing.T) {
	uc := newKlineForTest(t, &fakeBarSource{})
	_, err := uc.GetKline(context.Background(), &models.KlineRequest{
		Symbol: "AAPL", Market: "us", Limit: 10,
	})
	if !errors.Is(err, ErrUnsupportedMarket) {
		t.Fatalf("err = %v, want ErrUnsupportedMarket", err)
	}
}

func TestGetKlineSortsAscendingAndTrims(t *testing.T) {
	src := &fakeBarSource{bars: []models.Bar{
		{TradeDate: "20250613", Close: 3},
		{TradeDate: "20250611", Close: 1},
		{TradeDate: "20250612", Close: 2},
	}}
	uc := newKlineForTest(t, src)

	bars, err := uc.GetKline(context.Background(), &models.KlineRequest{
		Symbol: "000001.SZ", Market: "cn", Limit: 2,
	})
	if err != nil {
		t.Fatalf("GetKline: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("got %d bars, want 2", len(bars))
	}
	if bars[0].TradeDate != "20250612" || bars[1].TradeDate != "20250613" {
		t.Fatalf("want the two most recent ascending, got %s %s", bars[0].TradeDate, bars[1].TradeDate)
	}
}

func TestGetKlineEmptyIsNotAnError(t *testing.T) {
	uc := newKlineForTest(t, &fakeBarSource{})
	bars, err := uc.GetKline(context.Background(), &models.KlineRequest{
		Symbol: "000001.SZ", Market: "cn", Limit: 10,
	})
	if err != nil {
		t.Fatalf("GetKline: %v", err)
	}
	if len(bars) != 0 {
		t.Fatalf("got %d bars, want 0", len(bars))
	}
}

func TestGetKlineWrapsSourceError(t *testing.T) {
	src := &fakeBarSource{err: errors.New("timeout")}
	uc := newKlineForTest(t, src)
	_, err := uc.GetKline(context.Background(), &models.KlineRequest{
		Symbol: "000001.SZ", Market: "cn", Limit: 10,
	})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestGetKlineDefaultsDateRange(t *testing.T) {
	src := &fakeBarSource{}
	uc := newKlineForTest(t, src)

	_, err := uc.GetKline(context.Background(), &models.KlineRequest{
		Symbol: "000001.SZ", Market: "cn", Freq: "daily", Limit: 120,
	})
	if err != nil {
		t.Fatalf("GetKline: %v", err)
	}
	if src.gotEnd != "20250615" {
		t.Fatalf("end = %s, want today", src.gotEnd)
	}
	if src.gotStart >= src.gotEnd {
		t.Fatalf("start %s should precede end %s", src.gotStart, src.gotEnd)
	}
	if src.gotFreq != repository.FreqDaily {
		t.Fatalf("freq = %s, want daily", src.gotFreq)
	}
}

func TestGetKlineKeepsExplicitRange(t *testing.T) {
	src := &fakeBarSource{}
	uc := newKlineForTest(t, src)

	_, err := uc.GetKline(context.Background(), &models.KlineRequest{
		Symbol: "000001.SZ", Market: "cn", Freq: "daily",
		Start: "2025-01-01", End: "2025-03-31", Limit: 500,
	})
	if err != nil {
		t.Fatalf("GetKline: %v", err)
	}
	if src.gotStart != "20250101" || src.gotEnd != "20250331" {
		t.Fatalf("range = %s..%s, want normalized explicit range", src.gotStart, src.gotEnd)
	}
}

type fakeAdjustedBarSource struct {
	fakeBarSource
	adjBars   []models.Bar
	gotAdjust string
}

func (f *fakeAdjustedBarSource) AdjustedBars(_ context.Context, symbol string, freq repository.Freq, start, end, adjust string) ([]models.Bar, error) {
	f.gotAdjust = adjust
	return f.adjBars, nil
}

func TestGetKlineRoutesAdjustToCapableSource(t *testing.T) {
	src := &fakeAdjustedBarSource{adjBars: []models.Bar{{TradeDate: "20250613", Close: 5}}}
	uc := newKlineForTest(t, src)

	bars, err := uc.GetKline(context.Background(), &models.KlineRequest{
		Symbol: "000001.SZ", Market: "cn", Adjust: "qfq", Limit: 10,
	})
	if err != nil {
		t.Fatalf("GetKline: %v", err)
	}
	if src.gotAdjust != "qfq" {
		t.Fatalf("adjust = %q, want qfq", src.gotAdjust)
	}
	if len(bars) != 1 || bars[0].Close != 5 {
		t.Fatalf("bars = %+v", bars)
	}
}

func TestGetKlineAdjustOnPlainSourceFails(t *testing.T) {
	uc := newKlineForTest(t, &fakeBarSource{})
	_, err := uc.GetKline(context.Background(), &models.KlineRequest{
		Symbol: "000001.SZ", Market: "cn", Adjust: "hfq", Limit: 10,
	})
	if !errors.Is(err, ErrUnsupportedMarket) {
		t.Fatalf("err = %v, want ErrUnsupportedMarket", err)
	}
}
