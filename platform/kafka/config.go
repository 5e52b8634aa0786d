package kafka

import (
	"errors"
	"strings"
)

// Config - подключение к Kafka и топики процесса
type Config struct {
	// Enabled - публиковать ответы и уведомления в Kafka. Если false, используются лог-приёмники.
	Enabled bool `env:"KAFKA_ENABLED" envDefault:"false"`
	// Brokers - список брокеров через запятую:
	//   - локальная разработка (go run): localhost:19092
	//   - запуск в Docker: kafka:9092
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	// ResponseTopic - ответы на операции (ключ - ID транзакции)
	ResponseTopic string `env:"KAFKA_RESPONSE_TOPIC" envDefault:"converge.transaction.response"`
	// DeclineTopic - внеполосные уведомления об отказе
	DeclineTopic string `env:"KAFKA_DECLINE_TOPIC" envDefault:"converge.transaction.declined"`
}

// DefaultConfig возвращает значения для локальной разработки
func DefaultConfig() Config {
	return Config{
		Brokers:       []string{"localhost:19092"},
		ResponseTopic: "converge.transaction.response",
		DeclineTopic:  "converge.transaction.declined",
	}
}

// Validate проверяет конфигурацию, если Kafka включена
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if len(c.Brokers) == 0 {
		return errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED=true")
	}
	for _, b := range c.Brokers {
		if strings.TrimSpace(b) == "" {
			return errors.New("KAFKA_BROKERS contains an empty broker address")
		}
	}
	if c.ResponseTopic == "" || c.DeclineTopic == "" {
		return errors.New("KAFKA_RESPONSE_TOPIC and KAFKA_DECLINE_TOPIC are required when KAFKA_ENABLED=true")
	}
	return nil
}
