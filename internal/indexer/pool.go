package indexer

import (
	"sync"

	"go.uber.org/zap"

	"stash-indexer/internal/affix"
	"stash-indexer/internal/feed"
	"stash-indexer/internal/itemtype"
)

// Parser normalizes a single item. *affix.Engine implements it.
type Parser interface {
	Parse(item *feed.Item, cat itemtype.Category) (*affix.StatRecord, error)
}

// normalizeJob is one item waiting for normalization. The worker fills in
// rec and err.
type normalizeJob struct {
	stashID string
	item    *feed.Item
	cat     itemtype.Category

	rec *affix.StatRecord
	err error
	wg  *sync.WaitGroup
}

// WorkerPool manages a pool of workers normalizing items in parallel.
type WorkerPool struct {
	size   int
	jobs   chan *normalizeJob
	parser Parser
	logger *zap.Logger

	mu   sync.Mutex
	done sync.WaitGroup
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(size int, parser Parser, logger *zap.Logger) *WorkerPool {
	if size < 1 {
		size = 1
	}
	return &WorkerPool{
		size:   size,
		parser: parser,
		logger: logger,
	}
}

// Start launches the worker goroutines. Calling it on a running pool is a no-op.
func (wp *WorkerPool) Start() {
	wp.mu.Lock()
	defer wp.mu.Unlock()
	if wp.jobs != nil {
		return
	}
	wp.jobs = make(chan *normalizeJob, wp.size) // Buffered channel
	wp.done.Add(wp.size)
	for i := 0; i < wp.size; i++ {
		go wp.worker(i, wp.jobs)
	}
}

// Stop lets the workers finish queued jobs and waits for them to exit. The
// pool can be started again afterwards.
func (wp *WorkerPool) Stop() {
	wp.mu.Lock()
	jobs := wp.jobs
	wp.jobs = nil
	wp.mu.Unlock()
	if jobs == nil {
		return
	}
	close(jobs)
	wp.done.Wait()
}

func (wp *WorkerPool) worker(id int, jobs <-chan *normalizeJob) {
	defer wp.done.Done()
	wp.logger.Debug("normalization worker started", zap.Int("worker", id))
	for job := range jobs {
		wp.process(job)
	}
	wp.logger.Debug("normalization worker stopped", zap.Int("worker", id))
}

// process never lets a panic in one item take the worker down.
func (wp *WorkerPool) process(job *normalizeJob) {
	defer job.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			job.rec = nil
			job.err = &panicError{value: r}
		}
	}()
	job.rec, job.err = wp.parser.Parse(job.item, job.cat)
}

// Normalize runs every job through the pool and returns once all are done.
// Results are written into the jobs themselves.
func (wp *WorkerPool) Normalize(jobs []*normalizeJob) {
	wp.Start()
	wp.mu.Lock()
	queue := wp.jobs
	wp.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(len(jobs))
	for _, job := range jobs {
		job.wg = &wg
		queue <- job
	}
	wg.Wait()
}
