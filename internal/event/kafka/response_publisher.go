package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/ppalavilli/ElavonConvergeProcessor/internal/model"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/service"
)

// ResponseMessage - JSON payload ответа вызывающему
type ResponseMessage struct {
	RequestID   string               `json:"request_id"`
	Transaction *model.Transaction   `json:"transaction"`
	Error       *model.ResponseError `json:"error,omitempty"`
}

// ResponsePublisher реализует service.Listener: отправляет ответ на операцию в Kafka
type ResponsePublisher struct {
	logger *zap.Logger
	writer messageWriter
	topic  string
}

var _ service.Listener = (*ResponsePublisher)(nil)

// NewResponsePublisher создаёт publisher ответов
func NewResponsePublisher(logger *zap.Logger, brokers []string, topic string) *ResponsePublisher {
	return &ResponsePublisher{
		logger: logger,
		writer: newWriter(brokers, topic, 10*time.Millisecond),
		topic:  topic,
	}
}

// Close закрывает Kafka writer
func (p *ResponsePublisher) Close() error {
	return p.writer.Close()
}

// OnResponse публикует ответ. Ключ сообщения - ID транзакции (пустой, если транзакции нет).
func (p *ResponsePublisher) OnResponse(ctx context.Context, tx *model.Transaction, requestID string, rerr *model.ResponseError) error {
	msg, err := encodeResponse(tx, requestID, rerr)
	if err != nil {
		p.logger.Error("failed to marshal transaction response",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("failed to publish transaction response",
			zap.Error(err),
			zap.String("topic", p.topic),
			zap.String("request_id", requestID),
		)
		return err
	}

	p.logger.Debug("transaction response published",
		zap.String("topic", p.topic),
		zap.String("request_id", requestID),
		zap.ByteString("key", msg.Key),
	)
	return nil
}

func encodeResponse(tx *model.Transaction, requestID string, rerr *model.ResponseError) (kafka.Message, error) {
	value, err := json.Marshal(ResponseMessage{
		RequestID:   requestID,
		Transaction: tx,
		Error:       rerr,
	})
	if err != nil {
		return kafka.Message{}, err
	}

	var key []byte
	if tx != nil {
		key = []byte(tx.ID.String())
	}

	return kafka.Message{
		Key:   key,
		Value: value,
		Headers: []kafka.Header{
			{Key: "request_id", Value: []byte(requestID)},
		},
	}, nil
}
