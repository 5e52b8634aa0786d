package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

// messageWriter - часть kafka.Writer, которой пользуются паблишеры (подменяется в тестах)
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// newWriter создаёт writer для топика.
// batchTimeout ограничивает, сколько writer ждёт добора батча перед отправкой.
func newWriter(brokers []string, topic string, batchTimeout time.Duration) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: batchTimeout,
	}
}
