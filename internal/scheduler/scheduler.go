package scheduler

import (
	"sync"
	"time"

	"github.com/osse101/MudShop_Go/internal/worker"
)

// Scheduler hands jobs to a worker pool on fixed intervals. Ticks that
// find the pool queue full are dropped rather than queued behind each other.
type Scheduler struct {
	pool     *worker.Pool
	quit     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule runs job every interval, first firing one interval from now
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.start(interval, job, false)
}

// ScheduleNow is Schedule with an extra run right away
func (s *Scheduler) ScheduleNow(interval time.Duration, job worker.Job) {
	s.start(interval, job, true)
}

func (s *Scheduler) start(interval time.Duration, job worker.Job, immediate bool) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		if immediate {
			s.pool.TryEnqueue(job)
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.quit:
				return
			case <-ticker.C:
				s.pool.TryEnqueue(job)
			}
		}
	}()
}

// Stop halts every schedule and waits for the tick loops to exit. Jobs
// already handed to the pool are left to it.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		s.wg.Wait()
	})
}
