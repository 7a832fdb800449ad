package pool

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	glog "github.com/blong14/gmem/internal/logging"
)

// Task is a unit of work scheduled onto the pool. Each worker runs its
// tasks serially, so state owned by a single worker needs no locking.
type Task func(ctx context.Context)

type Worker struct {
	id    string
	inbox chan Task
	stop  chan interface{}
}

func (s *Worker) Start(ctx context.Context) {
	glog.Track("%s starting", s.id)
	for {
		select {
		case <-ctx.Done():
			glog.Track("%s ctx canceled", s.id)
			return
		case <-s.stop:
			glog.Track("%s stopping", s.id)
			return
		case task := <-s.inbox:
			task(ctx)
		}
	}
}

func (s *Worker) Send(ctx context.Context, task Task) bool {
	select {
	case <-ctx.Done():
		return false
	case s.inbox <- task:
		return true
	default:
		return false
	}
}

func (s *Worker) Stop(ctx context.Context) {
	select {
	case <-ctx.Done():
	case s.stop <- struct{}{}:
	}
}

type WorkPool struct {
	inbox   chan Task
	workers []Worker
}

func New() *WorkPool {
	return &WorkPool{
		inbox:   make(chan Task, 1),
		workers: make([]Worker, 0),
	}
}

func (s *WorkPool) Start(ctx context.Context) {
	for i := 0; i < runtime.NumCPU(); i++ {
		worker := Worker{
			id:    fmt.Sprintf("worker::%d", i),
			inbox: s.inbox,
			stop:  make(chan interface{}),
		}
		s.workers = append(s.workers, worker)
		go worker.Start(ctx)
	}
}

func (s *WorkPool) Send(ctx context.Context, task Task) {
	select {
	case <-ctx.Done():
	case s.inbox <- task:
	}
}

func (s *WorkPool) Wait(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range s.workers {
		wg.Add(1)
		go func(w Worker) {
			defer wg.Done()
			w.Stop(ctx)
			close(w.stop)
		}(worker)
	}
	wg.Wait()
}
