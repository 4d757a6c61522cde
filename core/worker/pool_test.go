package worker_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"stash-bridge/core/worker"

	"github.com/stretchr/testify/assert"
)

func TestRunProcessesAllItems(t *testing.T) {
	items := make([]int, 50)
	for i := range items {
		items[i] = i
	}

	var processed int32
	failures, err := worker.Run(context.Background(), worker.Pool{Size: 4}, items, func(ctx context.Context, item int) error {
		atomic.AddInt32(&processed, 1)
		return nil
	})

	assert.NoError(t, err)
	assert.Empty(t, failures)
	assert.Equal(t, int32(50), atomic.LoadInt32(&processed))
}

func TestRunBoundsConcurrency(t *testing.T) {
	items := make([]int, 32)

	var current, peak int32
	_, err := worker.Run(context.Background(), worker.Pool{Size: 3}, items, func(ctx context.Context, item int) error {
		n := atomic.AddInt32(&current, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		atomic.AddInt32(&current, -1)
		return nil
	})

	assert.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
}

func TestRunCollectsSoftFailures(t *testing.T) {
	items := []string{"a", "b", "c", "d"}

	boom := errors.New("boom")
	failures, err := worker.Run(context.Background(), worker.Pool{Size: 2}, items, func(ctx context.Context, item string) error {
		if item == "b" || item == "d" {
			return boom
		}
		return nil
	})

	// Item failures are soft: the run itself succeeds
	assert.NoError(t, err)
	assert.Len(t, failures, 2)

	indices := []int{failures[0].Index, failures[1].Index}
	assert.ElementsMatch(t, []int{1, 3}, indices)
	for _, f := range failures {
		assert.ErrorIs(t, f.Err, boom)
		assert.Equal(t, "boom", f.Error())
	}
}

func TestRunReportsProgress(t *testing.T) {
	items := make([]int, 10)

	var mu sync.Mutex
	var calls int
	var lastDone int

	pool := worker.Pool{
		Size: 2,
		OnProgress: func(done, total int) {
			mu.Lock()
			calls++
			if done > lastDone {
				lastDone = done
			}
			assert.Equal(t, 10, total)
			mu.Unlock()
		},
	}

	_, err := worker.Run(context.Background(), pool, items, func(ctx context.Context, item int) error {
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 10, calls)
	assert.Equal(t, 10, lastDone)
}

func TestRunStopsOnCancel(t *testing.T) {
	items := make([]int, 1000)

	ctx, cancel := context.WithCancel(context.Background())

	var processed int32
	_, err := worker.Run(ctx, worker.Pool{Size: 2, QueueSize: 2}, items, func(ctx context.Context, item int) error {
		if atomic.AddInt32(&processed, 1) == 5 {
			cancel()
		}
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, atomic.LoadInt32(&processed), int32(1000))
}

func TestRunEmptyItems(t *testing.T) {
	failures, err := worker.Run(context.Background(), worker.Pool{}, nil, func(ctx context.Context, item int) error {
		t.Fatal("fn must not be called")
		return nil
	})
	assert.NoError(t, err)
	assert.Empty(t, failures)
}
