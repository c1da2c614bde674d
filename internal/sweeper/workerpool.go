package sweeper

import (
	"context"

	"go.uber.org/zap"
)

// Task is a unit of sweep work executed by the pool.
type Task func() error

type WorkerPoolI interface {
	AddTask(ctx context.Context, task Task) error
	Close()
}

// WorkerPool bounds how many expiry transactions run at once. The queue is
// buffered to the worker count, so AddTask blocks once every worker is busy
// and a large batch throttles itself.
type WorkerPool struct {
	tasks chan Task
}

func NewWorkerPool(workers int) *WorkerPool {
	wp := &WorkerPool{tasks: make(chan Task, workers)}
	for i := 0; i < workers; i++ {
		go wp.run()
	}
	return wp
}

func (wp *WorkerPool) run() {
	for task := range wp.tasks {
		if err := task(); err != nil {
			zap.L().Error("sweep task failed", zap.Error(err))
		}
	}
}

func (wp *WorkerPool) AddTask(ctx context.Context, task Task) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case wp.tasks <- task:
		return nil
	}
}

func (wp *WorkerPool) Close() {
	close(wp.tasks)
}
