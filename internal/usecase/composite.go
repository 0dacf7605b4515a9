package usecase

import (
	"context"
	"sync"
)

// SubRequest is one named unit of work inside a composite fetch.
type SubRequest struct {
	Label string
	Run   func(ctx context.Context) (any, error)
}

// RunComposite fans the sub-requests out concurrently and collects every
// outcome. Each label always lands in data: failures keep a nil value and
// record the reason in errs, so one slow or broken source never hides the
// others. errs is nil when everything succeeded.
func RunComposite(ctx context.Context, subs []SubRequest) (data map[string]any, errs map[string]string) {
	data = make(map[string]any, len(subs))
	errs = map[string]string{}

	type item struct {
		label string
		val   any
		err   error
	}
	ch := make(chan item, len(subs))
	var wg sync.WaitGroup

	for _, sub := range subs {
		wg.Add(1)
		go func(sub SubRequest) {
			defer wg.Done()
			v, err := sub.Run(ctx)
			ch <- item{sub.Label, v, err}
		}(sub)
	}

	go func() { wg.Wait(); close(ch) }()

	for it := range ch {
		if it.err != nil {
			data[it.label] = nil
			errs[it.label] = it.err.Error()
			continue
		}
		data[it.label] = it.val
	}

	if len(errs) == 0 {
		errs = nil
	}
	return data, errs
}
