package app

import (
	"go.uber.org/zap"

	eventkafka "github.com/ppalavilli/ElavonConvergeProcessor/internal/event/kafka"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/service"
	platformkafka "github.com/ppalavilli/ElavonConvergeProcessor/platform/kafka"
	platformshutdown "github.com/ppalavilli/ElavonConvergeProcessor/platform/shutdown"
)

type sinks struct {
	listener service.Listener
	notifier service.DeclineNotifier
	closers  map[string]platformshutdown.Func
}

// buildSinks выбирает приёмники ответов и уведомлений: Kafka или лог
func buildSinks(cfg platformkafka.Config, logger *zap.Logger) sinks {
	if !cfg.Enabled {
		logger.Info("Kafka disabled, responses and decline notifications go to the log")
		return sinks{
			listener: service.NewLogListener(logger),
			notifier: service.NewLogDeclineNotifier(logger),
		}
	}

	logger.Info("Kafka publishers configured",
		zap.Strings("brokers", cfg.Brokers),
		zap.String("response_topic", cfg.ResponseTopic),
		zap.String("decline_topic", cfg.DeclineTopic),
	)
	responses := eventkafka.NewResponsePublisher(logger, cfg.Brokers, cfg.ResponseTopic)
	declines := eventkafka.NewDeclinePublisher(logger, cfg.Brokers, cfg.DeclineTopic)

	return sinks{
		listener: responses,
		notifier: declines,
		closers: map[string]platformshutdown.Func{
			"kafka_response_writer": platformshutdown.Close(responses),
			"kafka_decline_writer":  platformshutdown.Close(declines),
		},
	}
}
