package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health/grpc_health_v1"
)

func status(t *testing.T, h *Health, service string) grpc_health_v1.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := h.srv.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHealth_ServingToggle(t *testing.T) {
	h := New(grpc_health_v1.HealthCheckResponse_NOT_SERVING, "converge.v1.TransactionService")
	require.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, status(t, h, ""))
	require.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, status(t, h, "converge.v1.TransactionService"))

	h.SetServing("")
	require.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, status(t, h, ""))
	require.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, status(t, h, "converge.v1.TransactionService"))

	h.SetNotServing("converge.v1.TransactionService")
	require.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, status(t, h, ""))
	require.Equal(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING, status(t, h, "converge.v1.TransactionService"))
}

func TestHealth_Watch(t *testing.T) {
	h := New(grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	failing := make(chan bool, 1)
	failing <- false

	go func() {
		defer close(done)
		h.Watch(ctx, 5*time.Millisecond, func(context.Context) error {
			f := <-failing
			failing <- f
			if f {
				return errors.New("store down")
			}
			return nil
		})
	}()

	require.Eventually(t, func() bool {
		return status(t, h, "") == grpc_health_v1.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	<-failing
	failing <- true
	require.Eventually(t, func() bool {
		return status(t, h, "") == grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}
