package usecase

import (
	"context"
	"errors"
	"testing"

	"FinFlow/internal/domain/models"
)

func newOverviewForTest(t *testing.T, ov *fakeOverviewSource, news *fakeNewsSource) *OverviewUseCase {
	t.Helper()
	uc := NewOverviewUseCase(ov, news, fakeSentiment{}, testLogger(t), nopMetrics{})
	uc.now = fixedNow
	return uc
}

func TestOverviewSnapshotDefaultsToToday(t *testing.T) {
	ov := &fakeOverviewSource{rows: []models.Row{{"ts_code": "000001.SZ"}}}
	uc := newOverviewForTest(t, ov, &fakeNewsSource{items: []models.NewsItem{{Title: "限售解禁"}}})

	res, err := uc.GetOverview(context.Background(), &models.OverviewRequest{})
	if err != nil {
		t.Fatalf("GetOverview: %v", err)
	}
	if res.Data["date"] != "20250615" {
		t.Fatalf("date = %v, want 20250615", res.Data["date"])
	}
	if ov.gotDate != "20250615" {
		t.Fatalf("source queried with date %q", ov.gotDate)
	}

	top, ok := res.Data["top_list"].(map[string]any)
	if !ok {
		t.Fatalf("top_list type %T", res.Data["top_list"])
	}
	if top["list"] == nil || top["institutions"] == nil {
		t.Fatalf("top_list incomplete: %v", top)
	}
	if res.Data["margin"] == nil {
		t.Fatalf("margin section missing")
	}

	news, ok := res.Data["news"].(map[string]any)
	if !ok {
		t.Fatalf("news type %T", res.Data["news"])
	}
	if _, ok := news["sentiment"].(models.Sentiment); !ok {
		t.Fatalf("news sentiment missing: %v", news)
	}
}

func TestOverviewExplicitDateAndNoNews(t *testing.T) {
	ov := &fakeOverviewSource{rows: []models.Row{{"ts_code": "000001.SZ"}}}
	uc := newOverviewForTest(t, ov, &fakeNewsSource{})

	res, err := uc.GetOverview(context.Background(), &models.OverviewRequest{
		Date:        "20250610",
		IncludeNews: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("GetOverview: %v", err)
	}
	if ov.gotDate != "20250610" {
		t.Fatalf("source queried with date %q, want 20250610", ov.gotDate)
	}
	if _, ok := res.Data["news"]; ok {
		t.Fatalf("news should be absent when excluded")
	}
}

func TestOverviewRejectsBadDate(t *testing.T) {
	uc := newOverviewForTest(t, &fakeOverviewSource{}, &fakeNewsSource{})
	_, err := uc.GetOverview(context.Background(), &models.OverviewRequest{Date: "2025061x"})
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("err = %v, want ErrInvalidDate", err)
	}
}

func TestOverviewIsolatesSectionFailure(t *testing.T) {
	ov := &fakeOverviewSource{err: errors.New("margin api down")}
	uc := newOverviewForTest(t, ov, &fakeNewsSource{items: []models.NewsItem{{Title: "x"}}})

	res, err := uc.GetOverview(context.Background(), &models.OverviewRequest{})
	if err != nil {
		t.Fatalf("GetOverview: %v", err)
	}
	if res.Data["margin"] != nil {
		t.Fatalf("failed margin = %v, want nil", res.Data["margin"])
	}
	if res.Errors["margin"] != "margin api down" {
		t.Fatalf("errors = %v", res.Errors)
	}
	if res.Data["news"] == nil {
		t.Fatalf("news should survive a margin failure")
	}
}
