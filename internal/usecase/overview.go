package usecase

import (
	"context"
	"fmt"
	"time"

	"FinFlow/internal/domain/models"
	"FinFlow/internal/domain/repository"
	"FinFlow/internal/domain/service"
	applogger "FinFlow/pkg/logger"
	"FinFlow/pkg/util"
)

// OverviewUseCase builds a market-wide snapshot of one trading day:
// dragon-tiger list, margin balances, and optionally the day's news.
type OverviewUseCase struct {
	overview  repository.OverviewSource
	news      repository.NewsSource
	sentiment service.SentimentAnalyzer
	log       *applogger.Logger
	metrics   repository.Metrics
	timeout   time.Duration

	now func() time.Time
}

func NewOverviewUseCase(
	overview repository.OverviewSource,
	news repository.NewsSource,
	sentiment service.SentimentAnalyzer,
	log *applogger.Logger,
	metrics repository.Metrics,
) *OverviewUseCase {
	return &OverviewUseCase{
		overview:  overview,
		news:      news,
		sentiment: sentiment,
		log:       log,
		metrics:   metrics,
		timeout:   30 * time.Second,
		now:       time.Now,
	}
}

// GetOverview fetches the day's sections concurrently. Sections may fail
// independently; the snapshot carries what succeeded.
func (uc *OverviewUseCase) GetOverview(ctx context.Context, req *models.OverviewRequest) (*models.Composite, error) {
	date := uc.now().Format(util.DateCompact)
	if req.Date != "" {
		t, err := util.ParseTradeDate(req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidDate, req.Date)
		}
		date = t.Format(util.DateCompact)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	subs := []SubRequest{
		{Label: "top_list", Run: func(ctx context.Context) (any, error) {
			list, err := uc.overview.TopList(ctx, date)
			if err != nil {
				return nil, err
			}
			inst, err := uc.overview.TopInst(ctx, date)
			if err != nil {
				return nil, err
			}
			return map[string]any{"list": list, "institutions": inst}, nil
		}},
		{Label: "margin", Run: func(ctx context.Context) (any, error) {
			return uc.overview.MarginDetail(ctx, date)
		}},
	}
	if include(req.IncludeNews) {
		subs = append(subs, SubRequest{Label: "news", Run: func(ctx context.Context) (any, error) {
			items, err := uc.news.MarketNews(ctx, date, date)
			if err != nil {
				return nil, err
			}
			headlines := make([]string, len(items))
			for i, it := range items {
				headlines[i] = it.Title
			}
			return map[string]any{
				"items":     items,
				"sentiment": uc.sentiment.Analyze(headlines),
			}, nil
		}})
	}

	t0 := uc.now()
	data, errs := RunComposite(ctx, subs)
	uc.metrics.RecordLatency("overview", time.Since(t0).Seconds())
	data["date"] = date

	for label, reason := range errs {
		uc.metrics.RecordError("overview_" + label)
		uc.log.Error("overview section failed",
			applogger.String("date", date),
			applogger.String("section", label),
			applogger.String("reason", reason))
	}

	return &models.Composite{
		Market:    "cn",
		Timestamp: uc.now(),
		Data:      data,
		Errors:    errs,
	}, nil
}
