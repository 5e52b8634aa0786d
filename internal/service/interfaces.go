package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ppalavilli/ElavonConvergeProcessor/internal/model"
)

// Listener - приёмник ответа на операцию (асинхронный канал ответа вызывающему).
// tx может быть nil (например, Get по неизвестному ID).
// rerr заполняется при повторной доставке после ошибки первой.
type Listener interface {
	OnResponse(ctx context.Context, tx *model.Transaction, requestID string, rerr *model.ResponseError) error
}

// ListenerFunc адаптирует функцию к Listener
type ListenerFunc func(ctx context.Context, tx *model.Transaction, requestID string, rerr *model.ResponseError) error

// OnResponse вызывает f
func (f ListenerFunc) OnResponse(ctx context.Context, tx *model.Transaction, requestID string, rerr *model.ResponseError) error {
	return f(ctx, tx, requestID, rerr)
}

// DeclinedEventType - тип внеполосного уведомления об отказе
const DeclinedEventType = "poynt.intent.action.DECLINED"

// DeclinedEvent - одно уведомление об отказе из серии
type DeclinedEvent struct {
	EventID       string
	EventType     string
	OccurredAt    time.Time
	TransactionID string
	RequestID     string
	Sequence      int
}

// DeclineNotifier публикует серию уведомлений об отказе
type DeclineNotifier interface {
	PublishDeclined(ctx context.Context, events []DeclinedEvent) error
}

// JobSubmitter ставит фоновую задачу в очередь (worker pool).
// Ошибка означает, что задача не принята (очередь закрыта или переполнена).
type JobSubmitter interface {
	Submit(job func(ctx context.Context)) error
}

// SecurityProvider - внешний провайдер security capability
type SecurityProvider interface {
	IsConnected() bool
}

// MetricsRecorder записывает бизнес-метрики
type MetricsRecorder interface {
	RecordTransaction(ctx context.Context, operation string, status string)
	RecordDeclineNotifications(ctx context.Context, result string, count int)
}

// Clock - источник времени (подменяется в тестах)
type Clock interface {
	Now() time.Time
}

// SystemClock возвращает текущее время в UTC
type SystemClock struct{}

// Now возвращает time.Now().UTC()
func (SystemClock) Now() time.Time { return time.Now().UTC() }

type noopMetrics struct{}

func (noopMetrics) RecordTransaction(context.Context, string, string)       {}
func (noopMetrics) RecordDeclineNotifications(context.Context, string, int) {}

type disconnected struct{}

func (disconnected) IsConnected() bool { return false }

var errJobsClosed = errors.New("background jobs are closed")

// goJobs запускает задачу в отдельной горутине, если пул не передан
type goJobs struct {
	mu     sync.Mutex
	wg     sync.WaitGroup
	closed bool
}

func (g *goJobs) Submit(job func(ctx context.Context)) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return errJobsClosed
	}

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		job(context.Background())
	}()
	return nil
}

// Shutdown перестаёт принимать задачи и ждёт запущенные
func (g *goJobs) Shutdown(ctx context.Context) error {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()

	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("background jobs shutdown: %w", ctx.Err())
	}
}
