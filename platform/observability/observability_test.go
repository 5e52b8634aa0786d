package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	_, err := Init(context.Background(), Config{Enabled: false})
	require.NoError(t, err)

	rec := tracetest.NewSpanRecorder()
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	return rec
}

func TestInit_Disabled(t *testing.T) {
	shutdown, err := Init(context.Background(), Config{Enabled: false})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
	require.Nil(t, TraceFields(context.Background()))
}

func TestSamplingRatioIsClamped(t *testing.T) {
	require.Equal(t, 0.0, Config{SamplingRatio: -1}.samplingRatio())
	require.Equal(t, 1.0, Config{SamplingRatio: 3}.samplingRatio())
	require.Equal(t, 0.25, Config{SamplingRatio: 0.25}.samplingRatio())
}

func TestHTTPMiddleware_NamesSpanByRoute(t *testing.T) {
	rec := withRecorder(t)

	var fromCtx *zap.Logger
	r := chi.NewRouter()
	r.Use(HTTPMiddleware("converge", zap.NewNop()))
	r.Get("/transactions/{id}", func(w http.ResponseWriter, r *http.Request) {
		fromCtx = LoggerFromContext(r.Context(), nil)
		require.NotNil(t, TraceFields(r.Context()))
		w.WriteHeader(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/transactions/abc", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, fromCtx)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, "HTTP GET /transactions/{id}", spans[0].Name())
}

func TestGRPCInterceptors_PropagateTrace(t *testing.T) {
	rec := withRecorder(t)

	client := GRPCUnaryClientInterceptor("client")
	server := GRPCUnaryServerInterceptor("server", zap.NewNop())

	var serverTraceID string
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		require.NotEmpty(t, md.Get("traceparent"))

		inCtx := metadata.NewIncomingContext(context.Background(), md)
		_, err := server(inCtx, req, &grpc.UnaryServerInfo{FullMethod: method}, func(ctx context.Context, req interface{}) (interface{}, error) {
			for _, f := range TraceFields(ctx) {
				if f.Key == "trace_id" {
					serverTraceID = f.String
				}
			}
			return nil, status.Error(codes.InvalidArgument, "bad")
		})
		return err
	}

	err := client(context.Background(), "/converge.v1.TransactionService/Get", nil, nil, nil, invoker)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	spans := rec.Ended()
	require.Len(t, spans, 2)
	require.Equal(t, spans[0].SpanContext().TraceID(), spans[1].SpanContext().TraceID())
	require.Equal(t, spans[0].SpanContext().TraceID().String(), serverTraceID)
}

func TestSplitFullMethod(t *testing.T) {
	svc, m := splitFullMethod("/converge.v1.TransactionService/Process")
	require.Equal(t, "converge.v1.TransactionService", svc)
	require.Equal(t, "Process", m)

	svc, m = splitFullMethod("weird")
	require.Equal(t, "weird", svc)
	require.Equal(t, "weird", m)
}
