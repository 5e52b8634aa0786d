package observability

import "time"

// Config конфигурация OpenTelemetry (traces + metrics + propagator)
type Config struct {
	// Enabled включить экспорт в OTLP collector, иначе ставятся noop providers
	Enabled bool
	// OTLPEndpoint адрес OTLP gRPC (traces + metrics), например "127.0.0.1:4317" или "otel-collector:4317"
	OTLPEndpoint string
	// SamplingRatio доля трасс для семплирования (0..1), значения вне диапазона обрезаются
	SamplingRatio float64
	// ServiceName имя сервиса в resource (converge)
	ServiceName string
	// DeploymentEnvironment окружение (local, docker)
	DeploymentEnvironment string
	// ServiceVersion опционально, например из build
	ServiceVersion string
	// MetricInterval период экспорта метрик, default 10s
	MetricInterval time.Duration
}

func (c Config) samplingRatio() float64 {
	switch {
	case c.SamplingRatio < 0:
		return 0
	case c.SamplingRatio > 1:
		return 1
	default:
		return c.SamplingRatio
	}
}
