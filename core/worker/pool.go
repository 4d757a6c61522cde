package worker

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Pool bounds the concurrency and queue depth of a bulk run.
type Pool struct {
	// Size is the number of concurrent workers. Defaults to 4.
	Size int
	// QueueSize is the producer/consumer queue depth. Defaults to Size*2.
	QueueSize int
	// OnProgress, if set, is called after every item with (done, total).
	OnProgress func(done, total int)
}

// ItemError records a soft failure for one item of a run.
type ItemError struct {
	Index int
	Err   error
}

func (e ItemError) Error() string {
	return e.Err.Error()
}

// Run processes every item through fn with bounded concurrency. It returns
// the soft per-item failures, and a non-nil error only when the context was
// cancelled before all items were scheduled.
func Run[T any](ctx context.Context, pool Pool, items []T, fn func(ctx context.Context, item T) error) ([]ItemError, error) {
	size := pool.Size
	if size <= 0 {
		size = 4
	}
	queueSize := pool.QueueSize
	if queueSize <= 0 {
		queueSize = size * 2
	}

	type indexed struct {
		index int
		item  T
	}

	queue := make(chan indexed, queueSize)
	total := len(items)

	var mu sync.Mutex
	var failures []ItemError
	var done int

	g, gctx := errgroup.WithContext(ctx)

	// Producer: stops scheduling once the context is cancelled
	g.Go(func() error {
		defer close(queue)
		for i, item := range items {
			select {
			case queue <- indexed{index: i, item: item}:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	// Workers: drain the queue; per-item errors are collected, not returned
	for w := 0; w < size; w++ {
		g.Go(func() error {
			for next := range queue {
				err := fn(gctx, next.item)

				mu.Lock()
				if err != nil {
					failures = append(failures, ItemError{Index: next.index, Err: err})
				}
				done++
				completed := done
				mu.Unlock()

				if pool.OnProgress != nil {
					pool.OnProgress(completed, total)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return failures, err
	}
	return failures, nil
}
