package concurrent

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPoolCollectsEveryResult(t *testing.T) {
	jobs := []int{1, 2, 3, 4, 5, 6, 7, 8}

	pool := NewWorkerPool[int, int](3, len(jobs))
	pool.Start(func(job int) int { return job * job })
	for _, job := range jobs {
		pool.AddJob(job)
	}
	pool.Close()
	pool.Wait()

	sum := 0
	for res := range pool.CollectResults() {
		sum += res
	}
	assert.Equal(t, 204, sum)
}

func TestWorkerPoolClampsWorkerCount(t *testing.T) {
	pool := NewWorkerPool[int, int](0, 1)
	pool.Start(func(job int) int { return job })
	pool.AddJob(7)
	pool.Close()
	pool.Wait()

	assert.Equal(t, 7, <-pool.CollectResults())
}

func TestGoroutinePoolRunsEveryTask(t *testing.T) {
	pool := NewGoroutinePool(4, 2, 1)
	defer pool.Close()

	var (
		count int64
		wg    sync.WaitGroup
	)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		pool.Schedule(func() {
			atomic.AddInt64(&count, 1)
			wg.Done()
		})
	}
	wg.Wait()

	assert.Equal(t, int64(64), atomic.LoadInt64(&count))
}

func TestGoroutinePoolScheduleTimeout(t *testing.T) {
	pool := NewGoroutinePool(1, 0, 1)
	defer pool.Close()

	block := make(chan struct{})
	pool.Schedule(func() { <-block })

	err := pool.ScheduleTimeout(10*time.Millisecond, func() {})
	assert.ErrorIs(t, err, ErrScheduleTimeout)

	close(block)
}
