// Package metrics - бизнес-метрики менеджера транзакций поверх OpenTelemetry.
package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/ppalavilli/ElavonConvergeProcessor/internal/service"
)

// Recorder реализует service.MetricsRecorder.
// Счётчики: transactions_total{operation,status}, decline_notifications_total{result}.
type Recorder struct {
	transactions metric.Int64Counter
	declines     metric.Int64Counter
}

var _ service.MetricsRecorder = (*Recorder)(nil)

// NewRecorder создаёт счётчики на meter (обычно otel.Meter("converge"))
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	transactions, err := meter.Int64Counter("transactions_total",
		metric.WithDescription("Transactions handled by the lifecycle manager"),
		metric.WithUnit("{transaction}"),
	)
	if err != nil {
		return nil, fmt.Errorf("transactions_total counter: %w", err)
	}

	declines, err := meter.Int64Counter("decline_notifications_total",
		metric.WithDescription("Out-of-band decline notifications by delivery result"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, fmt.Errorf("decline_notifications_total counter: %w", err)
	}

	return &Recorder{transactions: transactions, declines: declines}, nil
}

// RecordTransaction увеличивает transactions_total
func (r *Recorder) RecordTransaction(ctx context.Context, operation string, status string) {
	r.transactions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("status", status),
	))
}

// RecordDeclineNotifications увеличивает decline_notifications_total на count
func (r *Recorder) RecordDeclineNotifications(ctx context.Context, result string, count int) {
	r.declines.Add(ctx, int64(count), metric.WithAttributes(attribute.String("result", result)))
}
