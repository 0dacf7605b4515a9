package usecase

import (
	"context"
	"testing"

	"FinFlow/internal/domain/models"
	"FinFlow/internal/domain/repository"
	applogger "FinFlow/pkg/logger"
)

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

// nopMetrics satisfies repository.Metrics without a Prometheus registry.
type nopMetrics struct{}

func (nopMetrics) RecordFetch(provider, api string)             {}
func (nopMetrics) RecordError(kind string)                      {}
func (nopMetrics) RecordLastPrice(symbol string, price float64) {}
func (nopMetrics) RecordLatency(op string, seconds float64)     {}

type fakeBarSource struct {
	bars []models.Bar
	err  error

	gotSymbol string
	gotFreq   repository.Freq
	gotStart  string
	gotEnd    string
}

func (f *fakeBarSource) Bars(_ context.Context, symbol string, freq repository.Freq, start, end string) ([]models.Bar, error) {
	f.gotSymbol, f.gotFreq, f.gotStart, f.gotEnd = symbol, freq, start, end
	return f.bars, f.err
}

type fakeFundamentalSource struct {
	rows []models.Row
	err  error
}

func (f *fakeFundamentalSource) CompanyInfo(context.Context, string) ([]models.Row, error) {
	return f.rows, f.err
}

func (f *fakeFundamentalSource) Fundamentals(context.Context, string) ([]models.Row, error) {
	return f.rows, f.err
}

func (f *fakeFundamentalSource) IncomeStatement(context.Context, string, string, string) ([]models.Row, error) {
	return f.rows, f.err
}

func (f *fakeFundamentalSource) BalanceSheet(context.Context, string, string, string) ([]models.Row, error) {
	return f.rows, f.err
}

func (f *fakeFundamentalSource) CashflowStatement(context.Context, string, string, string) ([]models.Row, error) {
	return f.rows, f.err
}

type fakeMarketSource struct {
	rows []models.Row
	err  error
}

func (f *fakeMarketSource) MarketMetrics(context.Context, string, string, string) ([]models.Row, error) {
	return f.rows, f.err
}

func (f *fakeMarketSource) MoneyFlow(context.Context, string, string, string) ([]models.Row, error) {
	return f.rows, f.err
}

type fakeOverviewSource struct {
	rows    []models.Row
	err     error
	gotDate string
}

func (f *fakeOverviewSource) MarginDetail(_ context.Context, date string) ([]models.Row, error) {
	f.gotDate = date
	return f.rows, f.err
}

func (f *fakeOverviewSource) TopList(_ context.Context, date string) ([]models.Row, error) {
	f.gotDate = date
	return f.rows, f.err
}

func (f *fakeOverviewSource) TopInst(_ context.Context, date string) ([]models.Row, error) {
	f.gotDate = date
	return f.rows, f.err
}

type fakeReferenceSource struct {
	rows []models.Row
	err  error

	gotMarket   string
	gotExchange string
}

func (f *fakeReferenceSource) StockList(_ context.Context, market string) ([]models.Row, error) {
	f.gotMarket = market
	return f.rows, f.err
}

func (f *fakeReferenceSource) TradingCalendar(_ context.Context, exchange, start, end string) ([]models.Row, error) {
	f.gotExchange = exchange
	return f.rows, f.err
}

type fakeNewsSource struct {
	items []models.NewsItem
	err   error
}

func (f *fakeNewsSource) Announcements(context.Context, string, string, string) ([]models.NewsItem, error) {
	return f.items, f.err
}

func (f *fakeNewsSource) MarketNews(context.Context, string, string) ([]models.NewsItem, error) {
	return f.items, f.err
}

type fakeSentiment struct{}

func (fakeSentiment) Analyze(headlines []string) models.Sentiment {
	return models.Sentiment{Label: "neutral", Confidence: 0.5, Analyzed: len(headlines)}
}

type fakePublisher struct {
	published []*models.Quote
	batches   [][]*models.Quote
	err       error
	closed    bool
}

func (f *fakePublisher) Publish(_ context.Context, q *models.Quote) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, q)
	return nil
}

func (f *fakePublisher) PublishBatch(_ context.Context, quotes []*models.Quote) error {
	if f.err != nil {
		return f.err
	}
	f.batches = append(f.batches, quotes)
	return nil
}

func (f *fakePublisher) Close() error {
	f.closed = true
	return nil
}
