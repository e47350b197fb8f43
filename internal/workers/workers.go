package workers

import (
	"context"
	"errors"
	"sync"
)

type Workers struct {
	workers []Worker
	limit   int
}

// New groups workers so that at most limit of them run at once. A limit of
// zero or less runs all of them together.
func New(limit int, workers ...Worker) *Workers {
	return &Workers{workers: workers, limit: limit}
}

// Run starts every worker and waits for all of them. The returned error
// joins the failures in the order the workers were given. Workers that have
// not started when ctx is cancelled report ctx.Err().
func (w *Workers) Run(ctx context.Context) error {
	limit := w.limit
	if limit <= 0 || limit > len(w.workers) {
		limit = len(w.workers)
	}

	errs := make([]error, len(w.workers))
	sem := make(chan struct{}, limit)

	var wg sync.WaitGroup
	for i, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				errs[i] = ctx.Err()
				return
			}
			defer func() { <-sem }()
			errs[i] = worker.Run(ctx)
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}
