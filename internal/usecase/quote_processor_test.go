package usecase

import (
	"context"
	"testing"
	"time"

	"FinFlow/internal/domain/models"
)

func TestQuoteProcessorPublishesValidQuote(t *testing.T) {
	pub := &fakePublisher{}
	p := NewQuoteProcessor(pub, nopMetrics{})

	q := &models.Quote{Symbol: "AAPL", Price: 191.3, Volume: 100, Timestamp: time.Now()}
	if err := p.Process(context.Background(), q); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(pub.published) != 1 || pub.published[0] != q {
		t.Fatalf("published = %v", pub.published)
	}
}

func TestQuoteProcessorRejectsMalformed(t *testing.T) {
	pub := &fakePublisher{}
	p := NewQuoteProcessor(pub, nopMetrics{})

	if err := p.Process(context.Background(), nil); err == nil {
		t.Fatalf("nil quote should error")
	}
	if err := p.Process(context.Background(), &models.Quote{Symbol: "", Price: 1}); err == nil {
		t.Fatalf("empty symbol should error")
	}
	if err := p.Process(context.Background(), &models.Quote{Symbol: "AAPL", Price: 0}); err == nil {
		t.Fatalf("zero price should error")
	}
	if len(pub.published) != 0 {
		t.Fatalf("malformed quotes must not be published")
	}
}

func TestQuoteProcessorBatchDropsMalformed(t *testing.T) {
	pub := &fakePublisher{}
	p := NewQuoteProcessor(pub, nopMetrics{})

	quotes := []*models.Quote{
		{Symbol: "AAPL", Price: 191.3},
		nil,
		{Symbol: "", Price: 5},
		{Symbol: "MSFT", Price: 410.0},
	}
	if err := p.ProcessBatch(context.Background(), quotes); err != nil {
		t.Fatalf("ProcessBatch: %v", err)
	}
	if len(pub.batches) != 1 || len(pub.batches[0]) != 2 {
		t.Fatalf("batches = %v, want one batch of 2", pub.batches)
	}
}

func TestQuoteProcessorBatchAllMalformedIsNoop(t *testing.T) {
	pub := &fakePublisher{}
	p := NewQuoteProcessor(pub, nopMetrics{})

	if err := p.ProcessBatch(context.Background(), []*models.Quote{nil, {Symbol: "", Price: 0}}); err != nil {
		t.Fatalf("ProcessBatch: %v", err)
	}
	if len(pub.batches) != 0 {
		t.Fatalf("nothing valid should publish nothing")
	}
}

func TestQuoteProcessorClose(t *testing.T) {
	pub := &fakePublisher{}
	p := NewQuoteProcessor(pub, nopMetrics{})
	p.Close()
	if !pub.closed {
		t.Fatalf("publisher not closed")
	}
}
