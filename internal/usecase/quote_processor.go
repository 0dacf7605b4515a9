package usecase

import (
	"context"
	"fmt"
	"time"

	"FinFlow/internal/domain/models"
	drepo "FinFlow/internal/domain/repository"
)

// QuoteProcessor validates realtime quotes and ships them downstream.
type QuoteProcessor struct {
	pub     drepo.Publisher
	metrics drepo.Metrics
}

// NewQuoteProcessor creates a new QuoteProcessor instance.
func NewQuoteProcessor(pub drepo.Publisher, metrics drepo.Metrics) *QuoteProcessor {
	return &QuoteProcessor{pub: pub, metrics: metrics}
}

// Process validates and publishes a single quote.
func (p *QuoteProcessor) Process(ctx context.Context, q *models.Quote) error {
	if q == nil {
		return fmt.Errorf("quote is nil")
	}
	if q.Symbol == "" || q.Price <= 0 {
		p.metrics.RecordError("quote_invalid")
		return fmt.Errorf("malformed quote: symbol=%q price=%v", q.Symbol, q.Price)
	}

	start := time.Now()
	if err := p.pub.Publish(ctx, q); err != nil {
		p.metrics.RecordError("publish")
		return fmt.Errorf("publish quote: %w", err)
	}
	p.metrics.RecordLatency("publish", time.Since(start).Seconds())

	return nil
}

// ProcessBatch validates and publishes multiple quotes at once. Malformed
// quotes are dropped, not fatal.
func (p *QuoteProcessor) ProcessBatch(ctx context.Context, quotes []*models.Quote) error {
	valid := make([]*models.Quote, 0, len(quotes))
	for _, q := range quotes {
		if q == nil || q.Symbol == "" || q.Price <= 0 {
			p.metrics.RecordError("quote_invalid")
			continue
		}
		valid = append(valid, q)
	}
	if len(valid) == 0 {
		return nil
	}

	start := time.Now()
	if err := p.pub.PublishBatch(ctx, valid); err != nil {
		p.metrics.RecordError("publish_batch")
		return fmt.Errorf("publish batch: %w", err)
	}
	p.metrics.RecordLatency("publish_batch", time.Since(start).Seconds())

	return nil
}

// Close closes the underlying publisher if available.
func (p *QuoteProcessor) Close() {
	if p.pub != nil {
		_ = p.pub.Close()
	}
}
