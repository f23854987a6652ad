package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/MudShop_Go/internal/worker"
)

// MockJob signals every run on Done
type MockJob struct {
	RunCount int32
	Done     chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	atomic.AddInt32(&m.RunCount, 1)
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule(10*time.Millisecond, job)

	timeout := time.After(500 * time.Millisecond)
	runCount := 0
	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, atomic.LoadInt32(&job.RunCount), int32(2))
}

func TestScheduler_StopHaltsTicks(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	job := &MockJob{Done: make(chan struct{}, 100)}
	sched.Schedule(5*time.Millisecond, job)

	<-job.Done
	sched.Stop()
	assert.NotPanics(t, sched.Stop)

	time.Sleep(20 * time.Millisecond)
	settled := atomic.LoadInt32(&job.RunCount)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, atomic.LoadInt32(&job.RunCount))
}

func TestScheduler_ScheduleNowFiresImmediately(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.ScheduleNow(time.Hour, job)

	select {
	case <-job.Done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("job did not run before the first tick")
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&job.RunCount))
}
