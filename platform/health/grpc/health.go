package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// Health - обёртка над стандартным gRPC health service.
// Статус "" (весь сервер) и статусы отдельных сервисов меняются вместе.
type Health struct {
	srv      *health.Server
	services []string
}

// New создаёт Health с начальным статусом. Для readiness начинайте с NOT_SERVING,
// пока зависимости (хранилище) не проверены.
func New(initialStatus grpc_health_v1.HealthCheckResponse_ServingStatus, services ...string) *Health {
	h := &Health{srv: health.NewServer(), services: services}
	h.set(initialStatus)
	return h
}

// Register регистрирует health service на gRPC сервере до Serve
func (h *Health) Register(grpcSrv *grpc.Server) {
	grpc_health_v1.RegisterHealthServer(grpcSrv, h.srv)
}

// SetServing переводит в SERVING. Пустое имя - весь сервер и все сервисы.
func (h *Health) SetServing(serviceName string) {
	h.setFor(serviceName, grpc_health_v1.HealthCheckResponse_SERVING)
}

// SetNotServing переводит в NOT_SERVING. Пустое имя - весь сервер и все сервисы.
func (h *Health) SetNotServing(serviceName string) {
	h.setFor(serviceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
}

// Watch периодически вызывает check и выставляет статус по результату, пока ctx не отменён
func (h *Health) Watch(ctx context.Context, interval time.Duration, check func(context.Context) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := check(ctx); err != nil {
			h.SetNotServing("")
		} else {
			h.SetServing("")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (h *Health) setFor(serviceName string, st grpc_health_v1.HealthCheckResponse_ServingStatus) {
	if serviceName == "" {
		h.set(st)
		return
	}
	h.srv.SetServingStatus(serviceName, st)
}

func (h *Health) set(st grpc_health_v1.HealthCheckResponse_ServingStatus) {
	h.srv.SetServingStatus("", st)
	for _, name := range h.services {
		h.srv.SetServingStatus(name, st)
	}
}
