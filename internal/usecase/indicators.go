package usecase

import (
	"context"
	"time"

	"FinFlow/internal/domain/models"
	"FinFlow/internal/domain/repository"
	"FinFlow/internal/indicator"
	applogger "FinFlow/pkg/logger"
)

// IndicatorsUseCase fetches bars and derives indicator columns over them.
type IndicatorsUseCase struct {
	kline   *KlineUseCase
	cfg     indicator.Config
	log     *applogger.Logger
	metrics repository.Metrics

	now func() time.Time
}

func NewIndicatorsUseCase(kline *KlineUseCase, log *applogger.Logger, metrics repository.Metrics) *IndicatorsUseCase {
	return &IndicatorsUseCase{
		kline:   kline,
		cfg:     indicator.DefaultConfig(),
		log:     log,
		metrics: metrics,
		now:     time.Now,
	}
}

// GetIndicators fetches bars for the request window and computes the
// requested families. No bars yields an empty series, not an error.
func (uc *IndicatorsUseCase) GetIndicators(ctx context.Context, req *models.IndicatorsRequest) (*indicator.Series, error) {
	bars, err := uc.kline.GetKline(ctx, &models.KlineRequest{
		Symbol: req.Symbol,
		Market: req.Market,
		Freq:   req.Freq,
		Start:  req.Start,
		End:    req.End,
		Limit:  req.Limit,
	})
	if err != nil {
		return nil, err
	}

	t0 := uc.now()
	series, err := indicator.Compute(bars, req.Indicators, uc.cfg)
	uc.metrics.RecordLatency("indicators", time.Since(t0).Seconds())
	if err != nil {
		uc.metrics.RecordError("indicators")
		return nil, err
	}
	return series, nil
}
