// Package main - отладочный consumer: печатает ответы и уведомления об отказе,
// которые converge публикует в Kafka.
//
// Конфигурация Kafka берётся из тех же переменных, что и у сервиса:
//   - KAFKA_BROKERS (например, "localhost:19092" или "kafka:9092" для Docker)
//   - KAFKA_RESPONSE_TOPIC, KAFKA_DECLINE_TOPIC
//
// Флаг -declines переключает на топик уведомлений об отказе.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	eventkafka "github.com/ppalavilli/ElavonConvergeProcessor/internal/event/kafka"
	platformkafka "github.com/ppalavilli/ElavonConvergeProcessor/platform/kafka"
	platformlogging "github.com/ppalavilli/ElavonConvergeProcessor/platform/logging"
)

func main() {
	declines := flag.Bool("declines", false, "read decline notifications instead of responses")
	groupID := flag.String("group", "converge-tail", "kafka consumer group id")
	flag.Parse()

	logger, err := platformlogging.New(platformlogging.Config{
		ServiceName: "converge-tail",
		Env:         "local",
		Level:       "info",
		Format:      "console",
	})
	if err != nil {
		os.Stderr.WriteString("Failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer platformlogging.Sync(logger)

	cfg := platformkafka.DefaultConfig()
	if err := platformkafka.LoadEnv(&cfg); err != nil {
		logger.Error("failed to load kafka config", zap.Error(err))
		os.Exit(1)
	}

	topic := cfg.ResponseTopic
	if *declines {
		topic = cfg.DeclineTopic
	}
	logger.Info("kafka config loaded", zap.Strings("brokers", cfg.Brokers), zap.String("topic", topic))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tail := eventkafka.NewTail(logger, cfg.Brokers, *groupID, topic)
	defer func() {
		if err := tail.Close(); err != nil {
			logger.Error("failed to close kafka reader", zap.Error(err))
		}
	}()

	err = tail.Run(ctx, func(_ context.Context, m kafka.Message) error {
		if *declines {
			d, err := eventkafka.DecodeDeclined(m.Value)
			if err != nil {
				return err
			}
			logger.Info("decline notification",
				zap.String("transaction_id", d.TransactionID),
				zap.String("request_id", d.RequestID),
				zap.Int("sequence", d.Sequence),
			)
			return nil
		}

		r, err := eventkafka.DecodeResponse(m.Value)
		if err != nil {
			return err
		}
		fields := []zap.Field{zap.String("request_id", r.RequestID), zap.Bool("found", r.Transaction != nil)}
		if r.Transaction != nil {
			fields = append(fields,
				zap.String("transaction_id", r.Transaction.ID.String()),
				zap.String("status", string(r.Transaction.Status)),
			)
		}
		if r.Error != nil {
			fields = append(fields, zap.String("error_code", string(r.Error.Code)))
		}
		logger.Info("transaction response", fields...)
		return nil
	})
	if err != nil {
		logger.Error("tail stopped", zap.Error(err))
		os.Exit(1)
	}
}
