// Copyright 2025 The go-icbrt Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs the range loops of icbrt/contrib/batch on a fixed
// set of goroutines. A Pool is created once and reused, so each batch call
// only pays for handing ranges to workers that are already running.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	firstBad := pool.ParallelForFirst(len(src), func(start, end int) int {
//	    return fill(src, dst, start, end)
//	})
package workerpool

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// DefaultBatchSize is the batch length ParallelForAtomicBatched and
// ParallelForCount use when given a non-positive one.
const DefaultBatchSize = 1024

// Pool is a fixed set of worker goroutines fed through a channel.
type Pool struct {
	numWorkers int
	tasks      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

type task struct {
	fn   func()
	done *sync.WaitGroup
}

// counter is an atomic int64 alone on its cache line. Every worker writes it
// while batches are handed out or results are folded.
type counter struct {
	_ cpu.CacheLinePad
	v atomic.Int64
	_ cpu.CacheLinePad
}

// lower sets c to x if x is smaller than the current value.
func (c *counter) lower(x int64) {
	for cur := c.v.Load(); x < cur; cur = c.v.Load() {
		if c.v.CompareAndSwap(cur, x) {
			return
		}
	}
}

// New starts a pool of numWorkers goroutines, or GOMAXPROCS if numWorkers <= 0.
// The goroutines run until Close.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, 2*numWorkers),
	}
	for range numWorkers {
		go p.run()
	}
	return p
}

func (p *Pool) run() {
	for t := range p.tasks {
		t.fn()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers after queued tasks finish. It is safe to call
// more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// Closed reports whether Close has been called.
func (p *Pool) Closed() bool {
	return p.closed.Load()
}

// spread returns how many workers should share parts units of work.
// A result of 1 means the caller runs everything itself.
func (p *Pool) spread(parts int) int {
	if p.closed.Load() {
		return 1
	}
	return min(p.numWorkers, parts)
}

// fanOut runs body(w) for every w in [0, workers) on the pool and waits.
func (p *Pool) fanOut(workers int, body func(w int)) {
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		p.tasks <- task{fn: func() { body(w) }, done: &wg}
	}
	wg.Wait()
}

// ParallelFor calls fn on one contiguous range of [0, n) per worker and
// waits for all of them. A closed pool, or n too small to split, runs
// fn(0, n) on the caller's goroutine.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers := p.spread(n)
	if workers == 1 {
		fn(0, n)
		return
	}
	chunk := (n + workers - 1) / workers
	p.fanOut(workers, func(w int) {
		if start := w * chunk; start < n {
			fn(start, min(start+chunk, n))
		}
	})
}

// ParallelForFirst is ParallelFor for range functions that report an index,
// or -1 for none. Every range runs to completion. It returns the lowest
// index any range reported, or -1.
func (p *Pool) ParallelForFirst(n int, fn func(start, end int) int) int {
	first := new(counter)
	first.v.Store(math.MaxInt64)
	p.ParallelFor(n, func(start, end int) {
		if i := fn(start, end); i >= 0 {
			first.lower(int64(i))
		}
	})
	if i := first.v.Load(); i != math.MaxInt64 {
		return int(i)
	}
	return -1
}

// ParallelForAtomicBatched calls fn on batches of batchSize elements of
// [0, n). Workers claim batches from a shared counter until none remain, so
// a worker that finishes early takes more. It waits for all batches.
func (p *Pool) ParallelForAtomicBatched(n int, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	workers := p.spread((n + batchSize - 1) / batchSize)
	if workers == 1 {
		fn(0, n)
		return
	}
	next := new(counter)
	p.fanOut(workers, func(int) {
		for {
			start := int(next.v.Add(int64(batchSize))) - batchSize
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	})
}

// ParallelForCount is ParallelForAtomicBatched for batch functions that
// return a count. It returns the sum over all batches.
func (p *Pool) ParallelForCount(n int, batchSize int, fn func(start, end int) int) int {
	total := new(counter)
	p.ParallelForAtomicBatched(n, batchSize, func(start, end int) {
		if c := fn(start, end); c != 0 {
			total.v.Add(int64(c))
		}
	})
	return int(total.v.Load())
}
