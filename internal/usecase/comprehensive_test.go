package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"FinFlow/internal/domain/models"
	"FinFlow/internal/domain/repository"
	"FinFlow/internal/indicator"
)

func boolPtr(v bool) *bool { return &v }

func newComprehensiveForTest(t *testing.T, bars *fakeBarSource, fund *fakeFundamentalSource, market *fakeMarketSource, news *fakeNewsSource) *ComprehensiveUseCase {
	t.Helper()
	log := testLogger(t)
	kline := NewKlineUseCase(map[string]repository.BarSource{"cn": bars}, log, nopMetrics{})
	kline.now = fixedNow
	uc := NewComprehensiveUseCase(kline, fund, market, news, fakeSentiment{}, log, nopMetrics{})
	uc.now = fixedNow
	return uc
}

func TestComprehensiveAllSectionsByDefault(t *testing.T) {
	uc := newComprehensiveForTest(t,
		&fakeBarSource{bars: []models.Bar{{TradeDate: "20250613", Close: 11}}},
		&fakeFundamentalSource{rows: []models.Row{{"roe": 0.15}}},
		&fakeMarketSource{rows: []models.Row{{"pe": 12.5}}},
		&fakeNewsSource{items: []models.NewsItem{{Title: "earnings beat"}}},
	)

	res, err := uc.GetComprehensive(context.Background(), &models.ComprehensiveRequest{
		Symbol: "000001.SZ", Market: "cn", KlineDays: 30, NewsDays: 7,
	})
	if err != nil {
		t.Fatalf("GetComprehensive: %v", err)
	}
	for _, key := range []string{"kline", "financial", "market", "money_flow", "news"} {
		if _, ok := res.Data[key]; !ok {
			t.Fatalf("missing section %s", key)
		}
	}
	if res.Errors != nil {
		t.Fatalf("errors = %v, want nil", res.Errors)
	}
	if !res.Complete() {
		t.Fatalf("composite should report complete")
	}

	kline, ok := res.Data["kline"].(map[string]any)
	if !ok {
		t.Fatalf("kline section type %T", res.Data["kline"])
	}
	if _, ok := kline["indicators"].(map[string]indicator.Column); !ok {
		t.Fatalf("kline section has no indicator columns: %v", kline)
	}

	financial, ok := res.Data["financial"].(map[string]any)
	if !ok {
		t.Fatalf("financial section type %T", res.Data["financial"])
	}
	for _, key := range []string{"company", "indicators", "income", "balancesheet", "cashflow"} {
		if _, ok := financial[key]; !ok {
			t.Fatalf("missing financial statement %s", key)
		}
	}

	news, ok := res.Data["news"].(map[string]any)
	if !ok {
		t.Fatalf("news section type %T", res.Data["news"])
	}
	sent, ok := news["sentiment"].(models.Sentiment)
	if !ok || sent.Analyzed != 1 {
		t.Fatalf("sentiment = %+v", news["sentiment"])
	}
}

func TestComprehensiveIsolatesSectionFailure(t *testing.T) {
	uc := newComprehensiveForTest(t,
		&fakeBarSource{bars: []models.Bar{{TradeDate: "20250613", Close: 11}}},
		&fakeFundamentalSource{err: errors.New("provider down")},
		&fakeMarketSource{rows: []models.Row{{"pe": 12.5}}},
		&fakeNewsSource{items: nil},
	)

	res, err := uc.GetComprehensive(context.Background(), &models.ComprehensiveRequest{
		Symbol: "000001.SZ", Market: "cn", KlineDays: 30, NewsDays: 7,
	})
	if err != nil {
		t.Fatalf("GetComprehensive: %v", err)
	}
	if len(res.Data) != 5 {
		t.Fatalf("data has %d sections, want 5", len(res.Data))
	}
	if res.Data["financial"] != nil {
		t.Fatalf("failed section value = %v, want nil", res.Data["financial"])
	}
	if !strings.Contains(res.Errors["financial"], "failed") {
		t.Fatalf("errors = %v", res.Errors)
	}
	if res.Complete() {
		t.Fatalf("composite with a failed section should not be complete")
	}
	// the failure must not disturb the healthy sections
	if res.Data["market"] == nil || res.Data["kline"] == nil || res.Data["money_flow"] == nil {
		t.Fatalf("healthy sections lost: %v", res.Data)
	}
}

func TestComprehensiveExcludedSectionIsAbsent(t *testing.T) {
	news := &fakeNewsSource{items: []models.NewsItem{{Title: "x"}}}
	uc := newComprehensiveForTest(t,
		&fakeBarSource{},
		&fakeFundamentalSource{},
		&fakeMarketSource{},
		news,
	)

	res, err := uc.GetComprehensive(context.Background(), &models.ComprehensiveRequest{
		Symbol: "000001.SZ", Market: "cn",
		IncludeNews:  boolPtr(false),
		IncludeKline: boolPtr(false),
		KlineDays:    30, NewsDays: 7,
	})
	if err != nil {
		t.Fatalf("GetComprehensive: %v", err)
	}
	if _, ok := res.Data["news"]; ok {
		t.Fatalf("excluded news section should be absent, got %v", res.Data["news"])
	}
	if _, ok := res.Data["kline"]; ok {
		t.Fatalf("excluded kline section should be absent")
	}
	if len(res.Data) != 3 {
		t.Fatalf("data = %v, want financial, market and money_flow only", res.Data)
	}
}

func TestComprehensiveRejectsInvalidSymbol(t *testing.T) {
	uc := newComprehensiveForTest(t, &fakeBarSource{}, &fakeFundamentalSource{}, &fakeMarketSource{}, &fakeNewsSource{})
	_, err := uc.GetComprehensive(context.Background(), &models.ComprehensiveRequest{
		Symbol: "bogus", Market: "cn",
	})
	if !errors.Is(err, ErrInvalidSymbol) {
		t.Fatalf("err = %v, want ErrInvalidSymbol", err)
	}
}
