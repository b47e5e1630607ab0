package concurrent

import (
	"errors"
	"time"
)

var ErrScheduleTimeout = errors.New("schedule error: timed out")

// GoroutinePool caps the number of goroutines serving websocket requests.
// ref: https://sergey.kamardin.org/articles/million-websocket-and-go/
type GoroutinePool struct {
	sem  chan struct{}
	work chan func()
}

// NewGoroutinePool spawns `spawn` workers eagerly and lazily grows up to
// `size` workers under load. queue buffers tasks handed to idle workers.
func NewGoroutinePool(size, queue, spawn int) *GoroutinePool {
	if spawn <= 0 && queue > 0 {
		panic("dead queue configuration detected")
	}
	if spawn > size {
		panic("spawn > workers pool size")
	}
	p := &GoroutinePool{
		sem:  make(chan struct{}, size),
		work: make(chan func(), queue),
	}
	for i := 0; i < spawn; i++ {
		p.sem <- struct{}{}
		go p.worker(func() {})
	}
	return p
}

func (p *GoroutinePool) Schedule(task func()) {
	p.schedule(task, nil)
}

func (p *GoroutinePool) ScheduleTimeout(timeout time.Duration, task func()) error {
	return p.schedule(task, time.After(timeout))
}

func (p *GoroutinePool) schedule(task func(), timeout <-chan time.Time) error {
	select {
	case <-timeout:
		return ErrScheduleTimeout
	case p.work <- task:
		return nil
	case p.sem <- struct{}{}:
		go p.worker(task)
		return nil
	}
}

func (p *GoroutinePool) worker(task func()) {
	defer func() { <-p.sem }()

	task()
	for task := range p.work {
		task()
	}
}

func (p *GoroutinePool) Close() {
	close(p.work)
}
