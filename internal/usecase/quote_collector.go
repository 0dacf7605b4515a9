package usecase

import (
	"context"

	"FinFlow/internal/domain/models"
	drepo "FinFlow/internal/domain/repository"
	mid "FinFlow/internal/middleware"
)

// QuoteCollector consumes quotes from the live stream and processes them.
type QuoteCollector struct {
	stream  drepo.QuoteStream
	proc    *QuoteProcessor
	metrics drepo.Metrics
	pipe    *mid.RealtimePipeline
}

// NewQuoteCollector creates a new QuoteCollector instance.
func NewQuoteCollector(stream drepo.QuoteStream, proc *QuoteProcessor, metrics drepo.Metrics, pipe *mid.RealtimePipeline) *QuoteCollector {
	return &QuoteCollector{stream: stream, proc: proc, metrics: metrics, pipe: pipe}
}

// IsConnected returns true if the quote stream is connected.
func (c *QuoteCollector) IsConnected() bool {
	return c.stream.IsConnected()
}

func (c *QuoteCollector) Start(ctx context.Context) error {
	if err := c.stream.Connect(ctx); err != nil {
		return err
	}
	if err := c.stream.Subscribe(ctx); err != nil {
		return err
	}
	if c.pipe != nil {
		c.pipe.Start(ctx)
	}
	qCh, errCh := c.stream.Read(ctx)
	go c.consume(ctx, qCh, errCh)
	return nil
}

func (c *QuoteCollector) consume(ctx context.Context, qCh <-chan *models.Quote, errCh <-chan error) {
	for {
		select {
		case <-ctx.Done():
			return
		case err := <-errCh:
			if err != nil {
				c.metrics.RecordError("stream")
				_ = c.stream.Reconnect(ctx)
			}
		case q := <-qCh:
			if q == nil {
				continue
			}
			if c.pipe != nil {
				if err := c.pipe.Process(ctx, q); err != nil {
					continue
				}
			} else if err := c.proc.Process(ctx, q); err != nil {
				continue
			}
			c.metrics.RecordLastPrice(q.Symbol, q.Price)
		}
	}
}

// Processor returns the underlying QuoteProcessor for lifecycle management.
func (c *QuoteCollector) Processor() *QuoteProcessor { return c.proc }

// Shutdown stops the pipeline and closes the stream.
func (c *QuoteCollector) Shutdown(ctx context.Context) error {
	if c.pipe != nil {
		c.pipe.Stop()
	}
	return c.stream.Close()
}
