package flowgrid

import (
	"context"
	"sync"
)

// ParallelSegments runs work(ctx, i) for every i in [0, n) concurrently and
// returns the results in index order, which is what lets callers route,
// flood-fill, or reach-segment many independent stream segments at once
// without giving up the toolkit's determinism: each goroutine only ever
// writes its own slot, so the result slice is identical regardless of
// goroutine scheduling.
//
// If ctx is cancelled, no further results are guaranteed; the first error
// returned by any worker (by index, not completion order) is returned,
// wrapped so errors.Is(err, streamerr.ErrCancelled) still works when the
// cause was cancellation.
func ParallelSegments[T any](ctx context.Context, n int, work func(ctx context.Context, i int) (T, error)) ([]T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]T, n)
	errs := make([]error, n)

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			select {
			case <-ctx.Done():
				errs[i] = ctxCancelled(ctx)
				return
			default:
			}
			r, err := work(ctx, i)
			results[i] = r
			errs[i] = err
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
