package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// DeclinedMessage - JSON payload уведомления об отказе в топике KAFKA_DECLINE_TOPIC
type DeclinedMessage struct {
	EventID       string `json:"event_id"`
	EventType     string `json:"event_type"`
	OccurredAt    string `json:"occurred_at"`
	TransactionID string `json:"transaction_id"`
	RequestID     string `json:"request_id"`
	Sequence      int    `json:"sequence"`
}

// messageReader - часть kafka.Reader, которой пользуется Tail
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Tail читает топики ответов и уведомлений и передаёт сообщения обработчику.
// At-least-once: commit только после успешной обработки; битые сообщения логируются и коммитятся.
type Tail struct {
	logger *zap.Logger
	reader messageReader
	topic  string
}

// NewTail создаёт consumer для топика
func NewTail(logger *zap.Logger, brokers []string, groupID, topic string) *Tail {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 1,
		MaxBytes: 10e6, // 10MB
	})
	return &Tail{logger: logger, reader: reader, topic: topic}
}

// Close закрывает Kafka reader
func (t *Tail) Close() error {
	return t.reader.Close()
}

// Run читает сообщения до отмены ctx. handle получает сырое сообщение.
func (t *Tail) Run(ctx context.Context, handle func(ctx context.Context, msg kafka.Message) error) error {
	t.logger.Info("starting kafka tail", zap.String("topic", t.topic))

	for {
		m, err := t.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				t.logger.Info("tail context cancelled, stopping")
				return nil
			}
			return fmt.Errorf("fetch message: %w", err)
		}

		if err := handle(ctx, m); err != nil {
			t.logger.Warn("failed to handle message, skipping",
				zap.Error(err),
				zap.String("topic", m.Topic),
				zap.Int("partition", m.Partition),
				zap.Int64("offset", m.Offset),
			)
		}

		if err := t.reader.CommitMessages(ctx, m); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("commit message: %w", err)
		}
	}
}

// DecodeResponse разбирает сообщение из топика ответов
func DecodeResponse(value []byte) (ResponseMessage, error) {
	var out ResponseMessage
	if err := json.Unmarshal(value, &out); err != nil {
		return ResponseMessage{}, fmt.Errorf("decode response message: %w", err)
	}
	return out, nil
}

// DecodeDeclined разбирает сообщение из топика уведомлений об отказе
func DecodeDeclined(value []byte) (DeclinedMessage, error) {
	var out DeclinedMessage
	if err := json.Unmarshal(value, &out); err != nil {
		return DeclinedMessage{}, fmt.Errorf("decode declined message: %w", err)
	}
	return out, nil
}
