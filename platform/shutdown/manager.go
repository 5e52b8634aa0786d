package shutdown

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// Func - шаг остановки процесса
type Func func(context.Context) error

// Manager выполняет graceful shutdown: ждёт SIGINT/SIGTERM (или отмены контекста)
// и вызывает зарегистрированные шаги в обратном порядке регистрации.
type Manager struct {
	timeout time.Duration
	logger  *zap.Logger

	mu    sync.Mutex
	steps []step
	once  sync.Once
}

type step struct {
	name string
	fn   Func
}

// New создаёт Manager. timeout ограничивает каждый шаг отдельно.
func New(timeout time.Duration, logger *zap.Logger) *Manager {
	return &Manager{
		timeout: timeout,
		logger:  logger,
	}
}

// Add регистрирует шаг. Зависимости регистрируются раньше тех, кто ими пользуется:
// тогда серверы останавливаются до хранилища и пула.
func (m *Manager) Add(name string, fn Func) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.steps = append(m.steps, step{name: name, fn: fn})
}

// Wait блокируется до сигнала или отмены ctx, затем выполняет Shutdown
func (m *Manager) Wait(ctx context.Context) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	m.logger.Info("Received shutdown signal, starting graceful shutdown")

	m.Shutdown()
}

// Shutdown выполняет шаги LIFO. Повторный вызов ничего не делает.
// Ошибка шага логируется и не прерывает остальные.
func (m *Manager) Shutdown() {
	m.once.Do(func() {
		m.mu.Lock()
		steps := make([]step, len(m.steps))
		copy(steps, m.steps)
		m.mu.Unlock()

		for i := len(steps) - 1; i >= 0; i-- {
			m.run(steps[i])
		}

		m.logger.Info("Graceful shutdown completed")
	})
}

func (m *Manager) run(s step) {
	m.logger.Info("Executing shutdown function", zap.String("name", s.name))

	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	start := time.Now()
	err := s.fn(ctx)
	duration := time.Since(start)

	if err != nil {
		m.logger.Error("Shutdown function failed",
			zap.String("name", s.name),
			zap.Error(err),
			zap.Duration("duration", duration))
		return
	}
	m.logger.Info("Shutdown function completed",
		zap.String("name", s.name),
		zap.Duration("duration", duration))
}

// ShutdownHTTPServer возвращает шаг для http.Server
func ShutdownHTTPServer(srv interface {
	Shutdown(context.Context) error
}) Func {
	return func(ctx context.Context) error {
		return srv.Shutdown(ctx)
	}
}

// ShutdownGRPCServer возвращает шаг для gRPC сервера.
// GracefulStop ограничен таймаутом шага, по его истечении вызывается Stop().
func ShutdownGRPCServer(srv interface {
	GracefulStop()
	Stop()
}) Func {
	return func(ctx context.Context) error {
		done := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(done)
		}()

		select {
		case <-done:
			return nil
		case <-ctx.Done():
			srv.Stop()
			return fmt.Errorf("graceful stop timeout exceeded, forced stop")
		}
	}
}

// ClosePool возвращает шаг для pgxpool.Pool и подобных
func ClosePool(pool interface {
	Close()
}) Func {
	return func(context.Context) error {
		pool.Close()
		return nil
	}
}

// Close возвращает шаг для io.Closer (redis client, kafka writer)
func Close(c interface {
	Close() error
}) Func {
	return func(context.Context) error {
		return c.Close()
	}
}

// SetHealthNotServing возвращает шаг, переводящий health в NOT_SERVING
func SetHealthNotServing(health interface {
	SetNotServing(string)
}) Func {
	return func(context.Context) error {
		health.SetNotServing("")
		return nil
	}
}
