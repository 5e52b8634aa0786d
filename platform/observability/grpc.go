package observability

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// splitFullMethod разбирает "/converge.v1.TransactionService/Process" на сервис и метод
func splitFullMethod(fullMethod string) (service, method string) {
	trimmed := strings.TrimPrefix(fullMethod, "/")
	idx := strings.LastIndex(trimmed, "/")
	if trimmed == "" || idx < 0 {
		return fullMethod, fullMethod
	}
	return trimmed[:idx], trimmed[idx+1:]
}

func rpcAttributes(fullMethod string) trace.SpanStartOption {
	service, method := splitFullMethod(fullMethod)
	return trace.WithAttributes(
		attribute.String("rpc.system", "grpc"),
		attribute.String("rpc.service", service),
		attribute.String("rpc.method", method),
	)
}

func endRPCSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.SetAttributes(attribute.Int("rpc.grpc.status_code", int(status.Code(err))))
	span.End()
}

// GRPCUnaryServerInterceptor извлекает trace из incoming metadata, открывает span на RPC
// и кладёт в контекст logger с trace_id/span_id (см. LoggerFromContext).
func GRPCUnaryServerInterceptor(serviceName string, logger *zap.Logger) grpc.UnaryServerInterceptor {
	tracer := otel.Tracer(serviceName)
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		ctx = otel.GetTextMapPropagator().Extract(ctx, metadataCarrier(md))

		ctx, span := tracer.Start(ctx, info.FullMethod,
			trace.WithSpanKind(trace.SpanKindServer),
			rpcAttributes(info.FullMethod),
		)
		if logger != nil {
			ctx = withLogger(ctx, L(ctx, logger))
		}

		resp, err := handler(ctx, req)
		endRPCSpan(span, err)
		return resp, err
	}
}

// GRPCUnaryClientInterceptor открывает client span и инжектит trace в outgoing metadata
func GRPCUnaryClientInterceptor(serviceName string) grpc.UnaryClientInterceptor {
	tracer := otel.Tracer(serviceName)
	return func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		ctx, span := tracer.Start(ctx, method,
			trace.WithSpanKind(trace.SpanKindClient),
			rpcAttributes(method),
		)

		md, ok := metadata.FromOutgoingContext(ctx)
		if ok {
			md = md.Copy()
		} else {
			md = metadata.MD{}
		}
		otel.GetTextMapPropagator().Inject(ctx, metadataCarrier(md))
		ctx = metadata.NewOutgoingContext(ctx, md)

		err := invoker(ctx, method, req, reply, cc, opts...)
		endRPCSpan(span, err)
		return err
	}
}
