package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_Create(t *testing.T) {
	p := New(4)
	defer p.Close()

	if p.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", p.Workers())
	}
	if !p.IsRunning() {
		t.Error("pool should be running after creation")
	}
}

func TestPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -3} {
		p := New(n)
		if got, want := p.Workers(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("New(%d).Workers() = %d, want %d", n, got, want)
		}
		p.Close()
	}
}

func TestPool_RunAll(t *testing.T) {
	p := New(4)
	defer p.Close()

	const n = 100
	seen := make([]atomic.Int32, n)
	p.Run(n, func(i int) {
		seen[i].Add(1)
	})

	for i := range seen {
		if got := seen[i].Load(); got != 1 {
			t.Errorf("index %d ran %d times, want 1", i, got)
		}
	}
}

func TestPool_RunEmpty(t *testing.T) {
	p := New(2)
	defer p.Close()

	called := false
	p.Run(0, func(int) { called = true })
	p.Run(-1, func(int) { called = true })
	if called {
		t.Error("Run with n <= 0 should not call fn")
	}
}

func TestPool_RunAfterClose(t *testing.T) {
	p := New(2)
	p.Close()

	var count atomic.Int32
	p.Run(5, func(int) { count.Add(1) })

	if count.Load() != 5 {
		t.Errorf("count = %d, want 5 (closed pool runs inline)", count.Load())
	}
}

func TestPool_CloseIdempotent(t *testing.T) {
	p := New(2)
	p.Close()
	p.Close()

	if p.IsRunning() {
		t.Error("pool should not be running after Close")
	}
}

func TestPool_UnevenJobs(t *testing.T) {
	p := New(4)
	defer p.Close()

	// One slow job per round should not serialize the rest.
	var count atomic.Int32
	start := time.Now()
	p.Run(16, func(i int) {
		if i%4 == 0 {
			time.Sleep(20 * time.Millisecond)
		}
		count.Add(1)
	})

	if count.Load() != 16 {
		t.Errorf("count = %d, want 16", count.Load())
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Run took %v", elapsed)
	}
}

func TestPool_ConcurrentRun(t *testing.T) {
	p := New(4)
	defer p.Close()

	var total atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Run(25, func(int) { total.Add(1) })
		}()
	}
	wg.Wait()

	if total.Load() != 200 {
		t.Errorf("total = %d, want 200", total.Load())
	}
}

func TestPool_NoGoroutineLeak(t *testing.T) {
	before := runtime.NumGoroutine()

	for range 10 {
		p := New(4)
		p.Run(10, func(int) {})
		p.Close()
	}

	// Give exited workers a moment to be reaped.
	time.Sleep(50 * time.Millisecond)
	if after := runtime.NumGoroutine(); after > before+2 {
		t.Errorf("goroutines before = %d, after = %d", before, after)
	}
}
