// Package worker spreads move-path enumeration over a pool of goroutines.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Defaults used when no option overrides them.
const (
	defaultWorkers   = 1
	defaultQueueSize = 16
)

// WorkItem is one root move to count below. Board is shared read-only
// between workers; processors must apply Move to a copy.
type WorkItem struct {
	Index int // position of Move in the root move list
	Board *chess.Board
	Move  chess.Move
	Depth int // plies left below Move
}

// ProcessResult is the count below one WorkItem.
type ProcessResult struct {
	Index int
	Move  chess.Move
	Nodes uint64
	Error error
}

// ProcessFunc counts the leaves below a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items on a fixed number of
// goroutines. Results arrive in completion order; Index ties them back to
// the submission.
type Pool struct {
	workers   int
	queueSize int
	items     chan WorkItem
	results   chan ProcessResult
	process   ProcessFunc
	wg        sync.WaitGroup
	stopped   atomic.Bool
	nodes     atomic.Uint64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithQueueSize sets how many items and results may wait in the channels.
// Values below 1 are ignored.
func WithQueueSize(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.queueSize = n
		}
	}
}

// NewPool creates a stopped pool around process.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		workers:   defaultWorkers,
		queueSize: defaultQueueSize,
		process:   process,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.queueSize)
	p.results = make(chan ProcessResult, p.queueSize)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.items {
		// Once stopped, queued items are drained unprocessed.
		if p.stopped.Load() {
			continue
		}
		result := p.process(item)
		p.nodes.Add(result.Nodes)
		p.results <- result
	}
}

// Submit queues an item, blocking while the queue is full.
func (p *Pool) Submit(item WorkItem) {
	p.items <- item
}

// Stop makes workers skip every item not yet started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers and then closes Results.
// It must be called exactly once, after the last Submit.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel results are delivered on.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// Nodes returns the running total of nodes reported so far.
func (p *Pool) Nodes() uint64 {
	return p.nodes.Load()
}

// NumWorkers returns the number of worker goroutines.
func (p *Pool) NumWorkers() int {
	return p.workers
}
