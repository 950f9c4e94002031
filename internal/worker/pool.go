// Package worker runs perft subtrees on a bounded pool of goroutines.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/varboard-go/internal/chess"
	"github.com/lgbarn/varboard-go/internal/engine"
)

// WorkItem is one subtree to count: the position on Board after Move,
// searched Depth plies deeper. Each item owns its Board.
type WorkItem struct {
	Board *engine.Board
	Move  chess.Move
	Depth int
	Index int // position of Move in the root move list
}

// ProcessResult is the count for one work item.
type ProcessResult struct {
	Index int
	Move  chess.Move
	Nodes uint64
	Error error
}

// ProcessFunc counts one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool feeds work items to a fixed number of goroutines and collects their
// results on one channel.
type Pool struct {
	workers     int
	bufferSize  int
	work        chan WorkItem
	results     chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup

	stop     chan struct{}
	stopOnce sync.Once

	processed atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the capacity of the work and result channels.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool that runs processFunc. Without options it has one
// worker and a buffer of 16.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		workers:     1,
		bufferSize:  16,
		processFunc: processFunc,
		stop:        make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.work = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items until the work channel is closed. Once the pool
// is stopped, remaining items are drained unprocessed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.work {
		if p.Stopped() {
			continue
		}
		res := p.processFunc(item)
		p.processed.Add(1)
		p.results <- res
	}
}

// Submit queues a work item, blocking while the buffer is full. It returns
// false, dropping the item, once the pool is stopped.
func (p *Pool) Submit(item WorkItem) bool {
	if p.Stopped() {
		return false
	}
	select {
	case p.work <- item:
		return true
	case <-p.stop:
		return false
	}
}

// Stop tells the workers to skip the items still queued and makes Submit
// refuse new ones. It may be called more than once.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
}

// Stopped reports whether Stop has been called.
func (p *Pool) Stopped() bool {
	select {
	case <-p.stop:
		return true
	default:
		return false
	}
}

// Close ends submission and waits for the workers, then closes the result
// channel. The caller must keep reading Results until it is closed.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Processed returns how many items have been processed so far.
func (p *Pool) Processed() int64 {
	return p.processed.Load()
}
