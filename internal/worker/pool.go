package worker

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/MudShop_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a plain function to Job
type JobFunc func(ctx context.Context) error

// Process implements Job
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool runs queued jobs on a fixed number of goroutines
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	quit     chan struct{}
	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
		quit:     make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(id, job)
		case <-p.quit:
			return
		}
	}
}

// run processes one job. A panicking job is logged and the worker survives.
func (p *Pool) run(id int, job Job) {
	log := logger.FromContext(p.ctx)
	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgWorkerJobPanic, "worker", id, "panic", fmt.Sprint(r))
		}
	}()
	if err := job.Process(p.ctx); err != nil {
		log.Error(LogMsgWorkerJobFailed, "worker", id, "job", fmt.Sprintf("%T", job), "error", err)
	}
}

// Enqueue adds a job to the queue, blocking while it is full
func (p *Pool) Enqueue(job Job) {
	select {
	case p.jobQueue <- job:
	case <-p.quit:
	}
}

// TryEnqueue adds a job without blocking. It reports false if the queue
// is full or the pool has stopped.
func (p *Pool) TryEnqueue(job Job) bool {
	select {
	case <-p.quit:
		return false
	default:
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		logger.FromContext(p.ctx).Warn(LogMsgJobQueueFull, "job", fmt.Sprintf("%T", job))
		return false
	}
}

// Stop cancels the job context, stops the workers and waits for running
// jobs to return. Jobs still queued are dropped.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
		p.cancel()
		p.wg.Wait()
		logger.FromContext(p.ctx).Debug(LogMsgWorkerPoolStopped)
	})
}
