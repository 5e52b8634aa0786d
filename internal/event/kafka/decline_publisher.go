package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/ppalavilli/ElavonConvergeProcessor/internal/service"
)

// DeclinePublisher реализует service.DeclineNotifier поверх Kafka
type DeclinePublisher struct {
	logger *zap.Logger
	writer messageWriter
	topic  string
}

var _ service.DeclineNotifier = (*DeclinePublisher)(nil)

// NewDeclinePublisher создаёт publisher уведомлений об отказе
func NewDeclinePublisher(logger *zap.Logger, brokers []string, topic string) *DeclinePublisher {
	return &DeclinePublisher{
		logger: logger,
		writer: newWriter(brokers, topic, 50*time.Millisecond),
		topic:  topic,
	}
}

// Close закрывает Kafka writer
func (p *DeclinePublisher) Close() error {
	return p.writer.Close()
}

// PublishDeclined отправляет всю серию одним вызовом WriteMessages
func (p *DeclinePublisher) PublishDeclined(ctx context.Context, events []service.DeclinedEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		msg, err := encodeDeclined(event)
		if err != nil {
			p.logger.Error("failed to marshal declined event",
				zap.Error(err),
				zap.String("transaction_id", event.TransactionID),
			)
			return err
		}
		msgs = append(msgs, msg)
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		p.logger.Error("failed to publish declined events",
			zap.Error(err),
			zap.String("topic", p.topic),
			zap.String("transaction_id", events[0].TransactionID),
			zap.Int("count", len(msgs)),
		)
		return err
	}

	p.logger.Info("declined events published",
		zap.String("topic", p.topic),
		zap.String("transaction_id", events[0].TransactionID),
		zap.Int("count", len(msgs)),
	)
	return nil
}

func encodeDeclined(event service.DeclinedEvent) (kafka.Message, error) {
	eventID := event.EventID
	if eventID == "" {
		eventID = uuid.New().String()
	}
	eventType := event.EventType
	if eventType == "" {
		eventType = service.DeclinedEventType
	}

	payload := map[string]interface{}{
		"event_id":       eventID,
		"event_type":     eventType,
		"occurred_at":    event.OccurredAt.Format(time.RFC3339Nano),
		"transaction_id": event.TransactionID,
		"request_id":     event.RequestID,
		"sequence":       event.Sequence,
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, err
	}

	return kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: value,
	}, nil
}
