// Package worker - ограниченный пул горутин для фоновых задач, отвязанных от запроса
// (например, рассылка уведомлений об отказе).
package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

var (
	// ErrPoolClosed возвращается Submit после Shutdown
	ErrPoolClosed = errors.New("worker pool is closed")
	// ErrQueueFull возвращается Submit, если очередь заполнена
	ErrQueueFull = errors.New("worker pool queue is full")
)

// Pool - фиксированное число воркеров над буферизованной очередью
type Pool struct {
	logger *zap.Logger
	jobs   chan func(ctx context.Context)
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// New создаёт пул и запускает workers воркеров
func New(logger *zap.Logger, workers, queueSize int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		logger: logger,
		jobs:   make(chan func(ctx context.Context), queueSize),
		ctx:    ctx,
		cancel: cancel,
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.work(i)
	}

	logger.Info("worker pool started", zap.Int("workers", workers), zap.Int("queue_size", queueSize))
	return p
}

// Submit ставит задачу в очередь, не блокируясь.
// ctx задачи отменяется, если Shutdown не дождался её завершения.
func (p *Pool) Submit(job func(ctx context.Context)) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Shutdown закрывает очередь и ждёт завершения принятых задач.
// Если ctx истекает раньше, контекст задач отменяется.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		return fmt.Errorf("worker pool shutdown: %w", ctx.Err())
	}
}

func (p *Pool) work(id int) {
	defer p.wg.Done()
	for job := range p.jobs {
		p.run(id, job)
	}
}

func (p *Pool) run(id int, job func(ctx context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("worker job panicked", zap.Int("worker", id), zap.Any("panic", r))
		}
	}()
	job(p.ctx)
}
