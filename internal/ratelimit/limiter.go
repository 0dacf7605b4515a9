package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Limiter enforces a sliding-window rate limit: at most maxRequests
// acquisitions within any window. Acquire blocks until a slot frees up
// or the context is done. Safe for concurrent use.
type Limiter struct {
	mu          sync.Mutex
	maxRequests int
	window      time.Duration
	stamps      []time.Time

	// overridable for tests
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewLimiter creates a limiter allowing maxRequests per window.
func NewLimiter(maxRequests int, window time.Duration) (*Limiter, error) {
	if maxRequests <= 0 {
		return nil, fmt.Errorf("max requests must be positive, got %d", maxRequests)
	}
	if window <= 0 {
		return nil, fmt.Errorf("window must be positive, got %s", window)
	}
	return &Limiter{
		maxRequests: maxRequests,
		window:      window,
		stamps:      make([]time.Time, 0, maxRequests),
		now:         time.Now,
		sleep:       sleepCtx,
	}, nil
}

// Acquire blocks until a request slot is available, then records the
// acquisition. Returns the context error if ctx is done while waiting.
func (l *Limiter) Acquire(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		l.mu.Lock()
		now := l.now()
		l.prune(now)
		if len(l.stamps) < l.maxRequests {
			l.stamps = append(l.stamps, now)
			l.mu.Unlock()
			return nil
		}
		// Oldest stamp leaves the window first; wait for it.
		wait := l.window - now.Sub(l.stamps[0])
		l.mu.Unlock()

		if wait <= 0 {
			continue
		}
		if err := l.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// TryAcquire records an acquisition if a slot is free, without blocking.
func (l *Limiter) TryAcquire() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.prune(now)
	if len(l.stamps) < l.maxRequests {
		l.stamps = append(l.stamps, now)
		return true
	}
	return false
}

// Available returns the number of slots currently free.
func (l *Limiter) Available() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.prune(l.now())
	return l.maxRequests - len(l.stamps)
}

// prune drops stamps older than the window. Callers hold l.mu.
func (l *Limiter) prune(now time.Time) {
	cutoff := now.Add(-l.window)
	i := 0
	for i < len(l.stamps) && !l.stamps[i].After(cutoff) {
		i++
	}
	if i > 0 {
		l.stamps = append(l.stamps[:0], l.stamps[i:]...)
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
