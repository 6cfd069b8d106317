// Package worker provides a worker pool for analysing positions in parallel.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
)

// WorkItem is one unit of input together with its position in the input.
type WorkItem[In any] struct {
	Value In
	Index int // Original index, used to restore input order
}

// ProcessResult is the outcome of processing one WorkItem.
type ProcessResult[Out any] struct {
	Value Out
	Index int
	Error error
}

// ProcessFunc processes a single work item.
type ProcessFunc[In, Out any] func(item WorkItem[In]) ProcessResult[Out]

// Pool runs a fixed number of goroutines over a shared work channel.
type Pool[In, Out any] struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem[In]
	resultChan  chan ProcessResult[Out]
	processFunc ProcessFunc[In, Out]
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*poolSettings)

type poolSettings struct {
	numWorkers int
	bufferSize int
}

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(s *poolSettings) {
		if n >= 1 {
			s.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(s *poolSettings) {
		if size >= 1 {
			s.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. Defaults: 1 worker, buffer size of 10.
func NewPool[In, Out any](processFunc ProcessFunc[In, Out], opts ...PoolOption) *Pool[In, Out] {
	settings := poolSettings{numWorkers: 1, bufferSize: 10}
	for _, opt := range opts {
		opt(&settings)
	}
	return &Pool[In, Out]{
		numWorkers:  settings.numWorkers,
		bufferSize:  settings.bufferSize,
		workChan:    make(chan WorkItem[In], settings.bufferSize),
		resultChan:  make(chan ProcessResult[Out], settings.bufferSize),
		processFunc: processFunc,
	}
}

// Start starts the worker goroutines.
func (p *Pool[In, Out]) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool[In, Out]) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a work item. It blocks while the work buffer is full.
func (p *Pool[In, Out]) Submit(item WorkItem[In]) {
	p.workChan <- item
}

// Stop makes workers skip any item they have not started yet.
func (p *Pool[In, Out]) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if Stop has been called.
func (p *Pool[In, Out]) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel, waits for the workers, then closes the
// result channel.
func (p *Pool[In, Out]) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool[In, Out]) Results() <-chan ProcessResult[Out] {
	return p.resultChan
}

// Run processes values on a new pool and returns the results in input order.
// Cancelling ctx stops the pool: items not yet started are skipped and Run
// returns the results gathered so far together with ctx.Err().
func Run[In, Out any](ctx context.Context, values []In, processFunc ProcessFunc[In, Out], opts ...PoolOption) ([]ProcessResult[Out], error) {
	pool := NewPool(processFunc, opts...)
	pool.Start()

	stopOnCancel := context.AfterFunc(ctx, pool.Stop)
	defer stopOnCancel()

	go func() {
		defer pool.Close()
		for i, v := range values {
			if ctx.Err() != nil || pool.IsStopped() {
				return
			}
			pool.Submit(WorkItem[In]{Value: v, Index: i})
		}
	}()

	results := make([]ProcessResult[Out], 0, len(values))
	for r := range pool.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results, ctx.Err()
}
