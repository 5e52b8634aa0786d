package security

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func startProvider(t *testing.T) (*bufconn.Listener, *grpc.Server) {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	healthpb.RegisterHealthServer(srv, health.NewServer())
	go func() { _ = srv.Serve(lis) }()

	return lis, srv
}

func dialer(lis *bufconn.Listener) grpc.DialOption {
	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})
}

func TestBinder_ConnectsAndShutsDown(t *testing.T) {
	lis, srv := startProvider(t)
	defer srv.Stop()

	b := NewBinder(zap.NewNop(), "passthrough:///bufnet", nil, dialer(lis))
	require.NoError(t, b.Bind())
	require.ErrorIs(t, b.Bind(), ErrAlreadyBound)

	require.Eventually(t, b.IsConnected, 5*time.Second, 10*time.Millisecond)

	resp, err := healthpb.NewHealthClient(b.Conn()).Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, b.Shutdown(ctx))
	require.False(t, b.IsConnected())
	require.Nil(t, b.Conn())

	// повторный Shutdown ничего не делает
	require.NoError(t, b.Shutdown(ctx))
}

func TestBinder_LosesConnectionWhenProviderStops(t *testing.T) {
	lis, srv := startProvider(t)

	b := NewBinder(zap.NewNop(), "passthrough:///bufnet", nil, dialer(lis))
	require.NoError(t, b.Bind())
	defer func() { _ = b.Shutdown(context.Background()) }()

	require.Eventually(t, b.IsConnected, 5*time.Second, 10*time.Millisecond)

	srv.Stop()
	require.Eventually(t, func() bool { return !b.IsConnected() }, 5*time.Second, 10*time.Millisecond)
}

func TestBinder_Disabled(t *testing.T) {
	b := NewBinder(zap.NewNop(), "", nil)
	require.NoError(t, b.Bind())
	require.False(t, b.IsConnected())
	require.Nil(t, b.Conn())
	require.NoError(t, b.Shutdown(context.Background()))
}
