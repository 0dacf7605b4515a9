package usecase

import (
	"context"
	"time"

	"FinFlow/internal/domain/models"
	"FinFlow/internal/domain/repository"
	applogger "FinFlow/pkg/logger"
)

// ReferenceUseCase serves listing and trading calendar reference data.
type ReferenceUseCase struct {
	source  repository.ReferenceSource
	log     *applogger.Logger
	metrics repository.Metrics
	timeout time.Duration

	now func() time.Time
}

func NewReferenceUseCase(source repository.ReferenceSource, log *applogger.Logger, metrics repository.Metrics) *ReferenceUseCase {
	return &ReferenceUseCase{
		source:  source,
		log:     log,
		metrics: metrics,
		timeout: 30 * time.Second,
		now:     time.Now,
	}
}

// StockList returns currently listed symbols, optionally filtered by board.
func (uc *ReferenceUseCase) StockList(ctx context.Context, req *models.StockListRequest) ([]models.Row, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	t0 := uc.now()
	rows, err := uc.source.StockList(ctx, req.Market)
	uc.metrics.RecordLatency("stock_list", time.Since(t0).Seconds())
	if err != nil {
		uc.metrics.RecordError("stock_list")
		return nil, err
	}
	return rows, nil
}

// TradingCalendar returns open/closed flags per day for an exchange.
func (uc *ReferenceUseCase) TradingCalendar(ctx context.Context, req *models.CalendarRequest) ([]models.Row, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	t0 := uc.now()
	rows, err := uc.source.TradingCalendar(ctx, req.Exchange, req.Start, req.End)
	uc.metrics.RecordLatency("trading_calendar", time.Since(t0).Seconds())
	if err != nil {
		uc.metrics.RecordError("trading_calendar")
		return nil, err
	}
	return rows, nil
}
