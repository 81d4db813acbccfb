// Package parallel provides the worker pool and work splitting used by
// conic's parallel fills.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed-size pool of goroutines for parallel rendering.
//
// Work is distributed round-robin across per-worker queues; an idle
// worker steals from other queues, which balances load when some bands
// are slower to fill than others (heavily anti-aliased regions).
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	// workers is the number of worker goroutines.
	workers int

	// queues holds per-worker work queues.
	queues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewPool creates a pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), workers*4)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}
	return p
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(myQueue)
			return

		case work := <-myQueue:
			if work != nil {
				work()
			}

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
			} else {
				// No work anywhere, block on own queue.
				select {
				case <-p.done:
					p.drain(myQueue)
					return
				case work := <-myQueue:
					if work != nil {
						work()
					}
				}
			}
		}
	}
}

// drain executes all remaining work in a queue.
func (p *Pool) drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			if work != nil {
				work()
			}
		default:
			return
		}
	}
}

// steal attempts to take work from another worker's queue.
// Returns nil if no work is available.
func (p *Pool) steal(myID int) func() {
	for i := 0; i < p.workers; i++ {
		if i == myID {
			continue
		}
		select {
		case work := <-p.queues[i]:
			return work
		default:
		}
	}
	return nil
}

// ExecuteAll distributes work across workers and waits for all items
// to complete. If the pool is closed, this is a no-op.
func (p *Pool) ExecuteAll(work []func()) {
	if len(work) == 0 || !p.running.Load() {
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(work))

	for i, fn := range work {
		workFn := fn
		wrapped := func() {
			defer wg.Done()
			workFn()
		}

		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			// Pool is closing, drop the item.
			wg.Done()
		}
	}

	wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}

// Close gracefully shuts down the pool: it stops accepting new work,
// lets queued work finish, and stops all workers.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}
