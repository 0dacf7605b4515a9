package middleware

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"FinFlow/internal/domain/models"
)

type stubProc struct {
	mu    sync.Mutex
	got   []*models.Quote
	fail  bool
	calls int
}

func (p *stubProc) Process(ctx context.Context, q *models.Quote) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.fail {
		return errors.New("downstream down")
	}
	p.got = append(p.got, q)
	return nil
}

type stubMetrics struct {
	mu     sync.Mutex
	errors map[string]int
}

func newStubMetrics() *stubMetrics {
	return &stubMetrics{errors: make(map[string]int)}
}

func (m *stubMetrics) RecordFetch(provider, api string) {}
func (m *stubMetrics) RecordError(errType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[errType]++
}
func (m *stubMetrics) RecordLastPrice(symbol string, price float64)    {}
func (m *stubMetrics) RecordLatency(operation string, seconds float64) {}

func (m *stubMetrics) errCount(errType string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errors[errType]
}

func quote(symbol string, price float64) *models.Quote {
	return &models.Quote{Symbol: symbol, Price: price, Volume: 100, Timestamp: time.Now()}
}

func TestPipelineForwardsValidQuote(t *testing.T) {
	proc := &stubProc{}
	p := NewRealtimePipeline(proc, newStubMetrics())

	if err := p.Process(context.Background(), quote("AAPL", 190.5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(proc.got) != 1 {
		t.Fatalf("expected 1 forwarded quote, got %d", len(proc.got))
	}
}

func TestPipelineRejectsInvalidQuote(t *testing.T) {
	proc := &stubProc{}
	m := newStubMetrics()
	p := NewRealtimePipeline(proc, m)

	cases := []*models.Quote{
		nil,
		{Symbol: "", Price: 1, Volume: 1, Timestamp: time.Now()},
		{Symbol: "AAPL", Price: 1, Volume: 1},
		{Symbol: "AAPL", Price: -1, Volume: 1, Timestamp: time.Now()},
	}
	for i, q := range cases {
		if err := p.Process(context.Background(), q); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
	if len(proc.got) != 0 {
		t.Fatalf("invalid quotes must not reach downstream, got %d", len(proc.got))
	}
	if m.errCount("pipeline_validate") != len(cases) {
		t.Fatalf("expected %d validate errors, got %d", len(cases), m.errCount("pipeline_validate"))
	}
}

func TestPipelineThrottlesPerSymbol(t *testing.T) {
	proc := &stubProc{}
	m := newStubMetrics()
	p := NewRealtimePipeline(proc, m, WithMaxRPS(1))

	// second quote for the same symbol within the window is dropped,
	// other symbols pass
	if err := p.Process(context.Background(), quote("AAPL", 190)); err != nil {
		t.Fatalf("first quote: %v", err)
	}
	if err := p.Process(context.Background(), quote("AAPL", 191)); err != nil {
		t.Fatalf("throttled quote must be dropped silently: %v", err)
	}
	if err := p.Process(context.Background(), quote("MSFT", 410)); err != nil {
		t.Fatalf("other symbol: %v", err)
	}
	if len(proc.got) != 2 {
		t.Fatalf("expected 2 forwarded quotes, got %d", len(proc.got))
	}
	if m.errCount("pipeline_throttle") != 1 {
		t.Fatalf("expected 1 throttle drop, got %d", m.errCount("pipeline_throttle"))
	}
}

func TestPipelineBuffersOnDownstreamError(t *testing.T) {
	proc := &stubProc{fail: true}
	m := newStubMetrics()
	p := NewRealtimePipeline(proc, m, WithBufferSize(4))

	if err := p.Process(context.Background(), quote("AAPL", 190)); err == nil {
		t.Fatal("expected downstream error")
	}
	if len(p.bufCh) != 1 {
		t.Fatalf("failed quote should be buffered, buffer depth %d", len(p.bufCh))
	}
	if m.errCount("pipeline_process") != 1 {
		t.Fatalf("expected 1 process error, got %d", m.errCount("pipeline_process"))
	}
}

func TestPipelineFlushesBufferWhenDownstreamRecovers(t *testing.T) {
	proc := &stubProc{fail: true}
	p := NewRealtimePipeline(proc, newStubMetrics(), WithBufferSize(4))

	_ = p.Process(context.Background(), quote("AAPL", 190))

	proc.mu.Lock()
	proc.fail = false
	proc.mu.Unlock()

	p.Start(context.Background())
	defer p.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		proc.mu.Lock()
		n := len(proc.got)
		proc.mu.Unlock()
		if n == 1 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("buffered quote was not flushed after recovery")
}
