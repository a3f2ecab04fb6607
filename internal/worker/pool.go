// Package worker provides a worker pool for replaying move scripts in parallel.
// Each work item is replayed on its own board; boards are never shared
// between workers.
package worker

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// WorkItem represents a script to be replayed.
type WorkItem struct {
	Script *processing.Script
	Index  int // Original index for ordering results
}

// ProcessResult represents the result of replaying one script.
type ProcessResult struct {
	Script *processing.Script
	Index  int
	Report *processing.Report // nil if no board could be created
	Error  error              // board creation failure or Report.Err
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel script replay.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. processFunc is required; other settings
// have defaults of 1 worker and a buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit attempts to submit a work item without blocking.
// Returns false if the work channel is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once every worker has returned.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// ReplayFunc returns a ProcessFunc that replays each script on a board
// from newBoard. newBoard is called once per item.
func ReplayFunc(newBoard func() (*engine.Board, error), opts processing.Options) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Script: item.Script, Index: item.Index}
		board, err := newBoard()
		if err != nil {
			result.Error = err
			return result
		}
		result.Report = processing.Run(board, item.Script, opts)
		result.Error = result.Report.Err
		return result
	}
}

// ReplayAll replays scripts on numWorkers goroutines and returns the
// results in script order. With stopOnError, the first failing script
// stops the pool; scripts not yet submitted or started are then missing
// from the results.
func ReplayAll(scripts []*processing.Script, numWorkers int, newBoard func() (*engine.Board, error), opts processing.Options, stopOnError bool) []ProcessResult {
	pool := NewPool(ReplayFunc(newBoard, opts), WithWorkers(numWorkers), WithBufferSize(len(scripts)))
	pool.Start()

	go func() {
		for i, s := range scripts {
			if !pool.TrySubmit(WorkItem{Script: s, Index: i}) {
				break
			}
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(scripts))
	for r := range pool.Results() {
		if stopOnError && r.Error != nil {
			pool.Stop()
		}
		results = append(results, r)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
