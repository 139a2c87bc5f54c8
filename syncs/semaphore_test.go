package syncs

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestSemaphore(t *testing.T) {
	sem := NewSemaphore(1)
	if !sem.TryAcquire() {
		t.Fatal("should acquire")
	}
	if sem.TryAcquire() {
		t.Fatal("should be full")
	}
	if n := sem.InUse(); n != 1 {
		t.Fatalf("got %d", n)
	}

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	if err := sem.AcquireContext(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}

	sem.Release()
	if err := sem.AcquireContext(t.Context()); err != nil {
		t.Fatal(err)
	}
	sem.Release()
	if !sem.TryAcquire() {
		t.Fatal("should acquire")
	}
	sem.Release()
}

func TestSemaphoreBound(t *testing.T) {
	const limit = 3
	sem := NewSemaphore(limit)
	var mu sync.Mutex
	running, peak := 0, 0
	var wg sync.WaitGroup
	for range 20 {
		wg.Go(func() {
			if err := sem.AcquireContext(t.Context()); err != nil {
				t.Error(err)
				return
			}
			defer sem.Release()
			mu.Lock()
			running++
			peak = max(peak, running)
			mu.Unlock()
			mu.Lock()
			running--
			mu.Unlock()
		})
	}
	wg.Wait()
	if peak > limit {
		t.Fatalf("got %d", peak)
	}
	if sem.InUse() != 0 {
		t.Fatal()
	}
}
