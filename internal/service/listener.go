package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ppalavilli/ElavonConvergeProcessor/internal/model"
	"github.com/ppalavilli/ElavonConvergeProcessor/platform/observability"
)

// LogListener пишет ответы в лог. Используется, когда Kafka выключена.
type LogListener struct {
	logger *zap.Logger
}

// NewLogListener создаёт LogListener
func NewLogListener(logger *zap.Logger) *LogListener {
	return &LogListener{logger: logger}
}

// OnResponse логирует ответ
func (l *LogListener) OnResponse(ctx context.Context, tx *model.Transaction, requestID string, rerr *model.ResponseError) error {
	fields := []zap.Field{zap.String("request_id", requestID)}
	if tx != nil {
		fields = append(fields,
			zap.String("transaction_id", tx.ID.String()),
			zap.String("status", string(tx.Status)),
		)
	} else {
		fields = append(fields, zap.Bool("found", false))
	}
	if rerr != nil {
		fields = append(fields, zap.String("error_code", string(rerr.Code)))
	}

	observability.L(ctx, l.logger).Info("transaction response", fields...)
	return nil
}

// LogDeclineNotifier пишет уведомления об отказе в лог. Используется, когда Kafka выключена.
type LogDeclineNotifier struct {
	logger *zap.Logger
}

// NewLogDeclineNotifier создаёт LogDeclineNotifier
func NewLogDeclineNotifier(logger *zap.Logger) *LogDeclineNotifier {
	return &LogDeclineNotifier{logger: logger}
}

// PublishDeclined логирует каждое уведомление на уровне debug и итог на info
func (n *LogDeclineNotifier) PublishDeclined(ctx context.Context, events []DeclinedEvent) error {
	log := observability.L(ctx, n.logger)
	for _, e := range events {
		log.Debug("decline notification",
			zap.String("event_id", e.EventID),
			zap.String("event_type", e.EventType),
			zap.String("transaction_id", e.TransactionID),
			zap.Int("sequence", e.Sequence),
		)
	}
	if len(events) > 0 {
		log.Info("decline notifications sent",
			zap.String("transaction_id", events[0].TransactionID),
			zap.Int("count", len(events)),
		)
	}
	return nil
}
