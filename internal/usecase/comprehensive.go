package usecase

import (
	"context"
	"fmt"
	"time"

	"FinFlow/internal/domain/models"
	"FinFlow/internal/domain/repository"
	"FinFlow/internal/domain/service"
	"FinFlow/internal/indicator"
	applogger "FinFlow/pkg/logger"
	"FinFlow/pkg/util"
)

// ComprehensiveUseCase fetches every data section for a symbol in one
// shot. Sections run concurrently; a failed section surfaces its error
// next to the data of the sections that worked.
type ComprehensiveUseCase struct {
	kline        *KlineUseCase
	fundamentals repository.FundamentalSource
	market       repository.MarketSource
	news         repository.NewsSource
	sentiment    service.SentimentAnalyzer
	log          *applogger.Logger
	metrics      repository.Metrics
	timeout      time.Duration

	now func() time.Time
}

func NewComprehensiveUseCase(
	kline *KlineUseCase,
	fundamentals repository.FundamentalSource,
	market repository.MarketSource,
	news repository.NewsSource,
	sentiment service.SentimentAnalyzer,
	log *applogger.Logger,
	metrics repository.Metrics,
) *ComprehensiveUseCase {
	return &ComprehensiveUseCase{
		kline:        kline,
		fundamentals: fundamentals,
		market:       market,
		news:         news,
		sentiment:    sentiment,
		log:          log,
		metrics:      metrics,
		timeout:      45 * time.Second,
		now:          time.Now,
	}
}

func include(flag *bool) bool {
	return flag == nil || *flag
}

// GetComprehensive fetches the requested sections concurrently. A section
// the caller excluded is absent from Data; a section that failed is
// present with a nil value and its reason in Errors.
func (uc *ComprehensiveUseCase) GetComprehensive(ctx context.Context, req *models.ComprehensiveRequest) (*models.Composite, error) {
	if !util.ValidSymbol(req.Symbol, req.Market) {
		return nil, fmt.Errorf("%w: %s for market %s", ErrInvalidSymbol, req.Symbol, req.Market)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	var subs []SubRequest
	if include(req.IncludeKline) {
		subs = append(subs, SubRequest{Label: "kline", Run: func(ctx context.Context) (any, error) {
			return uc.fetchKline(ctx, req)
		}})
	}
	if include(req.IncludeFinancial) {
		subs = append(subs, SubRequest{Label: "financial", Run: func(ctx context.Context) (any, error) {
			return uc.fetchFinancial(ctx, req.Symbol)
		}})
	}
	if include(req.IncludeMarket) {
		subs = append(subs, SubRequest{Label: "market", Run: func(ctx context.Context) (any, error) {
			start, end := uc.recentRange(30)
			return uc.market.MarketMetrics(ctx, req.Symbol, start, end)
		}})
		subs = append(subs, SubRequest{Label: "money_flow", Run: func(ctx context.Context) (any, error) {
			start, end := uc.recentRange(30)
			return uc.market.MoneyFlow(ctx, req.Symbol, start, end)
		}})
	}
	if include(req.IncludeNews) {
		subs = append(subs, SubRequest{Label: "news", Run: func(ctx context.Context) (any, error) {
			start, end := uc.recentRange(req.NewsDays)
			items, err := uc.news.Announcements(ctx, req.Symbol, start, end)
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
	uc.metrics.RecordLatency("comprehensive", time.Since(t0).Seconds())

	for label, reason := range errs {
		uc.metrics.RecordError("comprehensive_" + label)
		uc.log.Error("comprehensive section failed",
			applogger.String("symbol", req.Symbol),
			applogger.String("section", label),
			applogger.String("reason", reason))
	}

	return &models.Composite{
		Symbol:    req.Symbol,
		Market:    req.Market,
		Timestamp: uc.now(),
		Data:      data,
		Errors:    errs,
	}, nil
}

// fetchKline returns bars together with the full indicator set over them.
func (uc *ComprehensiveUseCase) fetchKline(ctx context.Context, req *models.ComprehensiveRequest) (any, error) {
	bars, err := uc.kline.GetKline(ctx, &models.KlineRequest{
		Symbol: req.Symbol,
		Market: req.Market,
		Freq:   string(repository.FreqDaily),
		Limit:  req.KlineDays,
	})
	if err != nil {
		return nil, err
	}
	series, err := indicator.Compute(bars, nil, indicator.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"bars":       series.Bars,
		"indicators": series.Columns,
	}, nil
}

// fetchFinancial fans out over the statement families. Individual
// statements may fail without sinking the section; the section errors
// only when nothing came back.
func (uc *ComprehensiveUseCase) fetchFinancial(ctx context.Context, symbol string) (any, error) {
	start := uc.now().AddDate(-3, 0, 0).Format(util.DateCompact)
	end := uc.now().Format(util.DateCompact)

	subs := []SubRequest{
		{Label: "company", Run: func(ctx context.Context) (any, error) {
			return uc.fundamentals.CompanyInfo(ctx, symbol)
		}},
		{Label: "indicators", Run: func(ctx context.Context) (any, error) {
			return uc.fundamentals.Fundamentals(ctx, symbol)
		}},
		{Label: "income", Run: func(ctx context.Context) (any, error) {
			return uc.fundamentals.IncomeStatement(ctx, symbol, start, end)
		}},
		{Label: "balancesheet", Run: func(ctx context.Context) (any, error) {
			return uc.fundamentals.BalanceSheet(ctx, symbol, start, end)
		}},
		{Label: "cashflow", Run: func(ctx context.Context) (any, error) {
			return uc.fundamentals.CashflowStatement(ctx, symbol, start, end)
		}},
	}

	data, errs := RunComposite(ctx, subs)
	for label, reason := range errs {
		uc.log.Warn("financial statement failed",
			applogger.String("symbol", symbol),
			applogger.String("statement", label),
			applogger.String("reason", reason))
	}
	if len(errs) == len(subs) {
		return nil, fmt.Errorf("all financial statements failed for %s", symbol)
	}
	return data, nil
}

func (uc *ComprehensiveUseCase) recentRange(days int) (string, string) {
	end := uc.now()
	start := end.AddDate(0, 0, -days)
	return start.Format(util.DateCompact), end.Format(util.DateCompact)
}
