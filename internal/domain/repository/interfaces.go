package repository

import (
	"context"

	"FinFlow/internal/domain/models"
)

// BarSource yields historical OHLCV bars for a symbol, newest first or
// oldest first depending on the provider; callers normalize ordering.
type BarSource interface {
	Bars(ctx context.Context, symbol string, freq Freq, start, end string) ([]models.Bar, error)
}

// AdjustedBarSource is implemented by bar sources that can merge
// price adjustment factors. adjust is "qfq" or "hfq".
type AdjustedBarSource interface {
	AdjustedBars(ctx context.Context, symbol string, freq Freq, start, end, adjust string) ([]models.Bar, error)
}

// FundamentalSource yields company and financial statement rows for a symbol.
type FundamentalSource interface {
	CompanyInfo(ctx context.Context, symbol string) ([]models.Row, error)
	Fundamentals(ctx context.Context, symbol string) ([]models.Row, error)
	IncomeStatement(ctx context.Context, symbol, start, end string) ([]models.Row, error)
	BalanceSheet(ctx context.Context, symbol, start, end string) ([]models.Row, error)
	CashflowStatement(ctx context.Context, symbol, start, end string) ([]models.Row, error)
}

// MarketSource yields per-symbol daily valuation and capital flow rows.
type MarketSource interface {
	MarketMetrics(ctx context.Context, symbol, start, end string) ([]models.Row, error)
	MoneyFlow(ctx context.Context, symbol, start, end string) ([]models.Row, error)
}

// OverviewSource yields market-wide rows for one trading day.
type OverviewSource interface {
	MarginDetail(ctx context.Context, date string) ([]models.Row, error)
	TopList(ctx context.Context, date string) ([]models.Row, error)
	TopInst(ctx context.Context, date string) ([]models.Row, error)
}

// ReferenceSource yields listing and calendar reference data.
type ReferenceSource interface {
	StockList(ctx context.Context, market string) ([]models.Row, error)
	TradingCalendar(ctx context.Context, exchange, start, end string) ([]models.Row, error)
}

// NewsSource yields headlines, either scoped to a symbol or market wide.
type NewsSource interface {
	Announcements(ctx context.Context, symbol, start, end string) ([]models.NewsItem, error)
	MarketNews(ctx context.Context, start, end string) ([]models.NewsItem, error)
}

// QuoteStream is a live quote feed over a persistent connection.
type QuoteStream interface {
	Connect(ctx context.Context) error
	Subscribe(ctx context.Context) error
	Read(ctx context.Context) (<-chan *models.Quote, <-chan error)
	Reconnect(ctx context.Context) error
	Close() error
	IsConnected() bool
}

// Publisher ships quotes to a downstream transport.
type Publisher interface {
	Publish(ctx context.Context, q *models.Quote) error
	PublishBatch(ctx context.Context, quotes []*models.Quote) error
	Close() error
}

type Metrics interface {
	RecordFetch(provider, api string)
	RecordError(kind string)
	RecordLastPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
