package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"FinFlow/internal/domain/models"
	"FinFlow/internal/domain/repository"
	applogger "FinFlow/pkg/logger"
	"FinFlow/pkg/util"
)

// KlineUseCase serves historical bars, routing each market to its provider.
type KlineUseCase struct {
	sources map[string]repository.BarSource
	log     *applogger.Logger
	metrics repository.Metrics
	timeout time.Duration

	now func() time.Time
}

func NewKlineUseCase(sources map[string]repository.BarSource, log *applogger.Logger, metrics repository.Metrics) *KlineUseCase {
	return &KlineUseCase{
		sources: sources,
		log:     log,
		metrics: metrics,
		timeout: 30 * time.Second,
		now:     time.Now,
	}
}

// GetKline fetches bars for the request, ascending by trade date, at most
// Limit most-recent bars. An empty result is valid data, not an error.
func (uc *KlineUseCase) GetKline(ctx context.Context, req *models.KlineRequest) ([]models.Bar, error) {
	if !util.ValidSymbol(req.Symbol, req.Market) {
		return nil, fmt.Errorf("%w: %s for market %s", ErrInvalidSymbol, req.Symbol, req.Market)
	}
	src, ok := uc.sources[req.Market]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMarket, req.Market)
	}

	freq := repository.NormalizeFreq(req.Freq)
	start, end := uc.dateRange(req.Start, req.End, req.Limit, freq)

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	t0 := uc.now()
	var bars []models.Bar
	var err error
	if req.Adjust != "" && req.Adjust != "none" {
		adj, ok := src.(repository.AdjustedBarSource)
		if !ok {
			return nil, fmt.Errorf("%w: %s has no adjusted bars", ErrUnsupportedMarket, req.Market)
		}
		bars, err = adj.AdjustedBars(ctx, req.Symbol, freq, start, end, req.Adjust)
	} else {
		bars, err = src.Bars(ctx, req.Symbol, freq, start, end)
	}
	uc.metrics.RecordLatency("kline", time.Since(t0).Seconds())
	if err != nil {
		uc.metrics.RecordError("kline")
		uc.log.Error("kline fetch failed",
			applogger.String("symbol", req.Symbol),
			applogger.String("market", req.Market),
			applogger.Error(err))
		return nil, fmt.Errorf("fetch bars: %w", err)
	}

	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].TradeDate < bars[j].TradeDate
	})
	if req.Limit > 0 && len(bars) > req.Limit {
		bars = bars[len(bars)-req.Limit:]
	}
	return bars, nil
}

// dateRange fills missing bounds: end defaults to today, start reaches
// back far enough calendar days to cover limit bars at the frequency.
func (uc *KlineUseCase) dateRange(start, end string, limit int, freq repository.Freq) (string, string) {
	endT := uc.now()
	if end != "" {
		if t, err := util.ParseTradeDate(end); err == nil {
			endT = t
		}
	}
	if start != "" {
		if t, err := util.ParseTradeDate(start); err == nil {
			return t.Format(util.DateCompact), endT.Format(util.DateCompact)
		}
	}

	days := limit
	switch freq {
	case repository.FreqWeekly:
		days = limit * 7
	case repository.FreqMonthly:
		days = limit * 31
	}
	// trading days are sparser than calendar days
	days = days*3/2 + 7
	startT := endT.AddDate(0, 0, -days)
	return startT.Format(util.DateCompact), endT.Format(util.DateCompact)
}
