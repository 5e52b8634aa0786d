package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	convergepb "github.com/ppalavilli/ElavonConvergeProcessor/api/converge/v1"
	grpcapi "github.com/ppalavilli/ElavonConvergeProcessor/internal/api/grpc"
	httpapi "github.com/ppalavilli/ElavonConvergeProcessor/internal/api/http"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/config"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/mapper"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/metrics"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/security"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/service"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/worker"
	platformhealth "github.com/ppalavilli/ElavonConvergeProcessor/platform/health/grpc"
	platformhealthhttp "github.com/ppalavilli/ElavonConvergeProcessor/platform/health/http"
	platformlogging "github.com/ppalavilli/ElavonConvergeProcessor/platform/logging"
	platformobservability "github.com/ppalavilli/ElavonConvergeProcessor/platform/observability"
	platformshutdown "github.com/ppalavilli/ElavonConvergeProcessor/platform/shutdown"
)

const (
	serviceName = "converge"
	// readinessInterval - период проверки хранилища для gRPC health
	readinessInterval = 5 * time.Second
)

// App содержит все зависимости для запуска и корректного shutdown процесса converge
type App struct {
	logger       *zap.Logger
	grpcServer   *grpc.Server
	grpcListener net.Listener
	httpServer   *http.Server
	health       *platformhealth.Health
	readiness    func(context.Context) error
	watchCtx     context.Context
	shutdownMgr  *platformshutdown.Manager
	wg           sync.WaitGroup
}

// Build создаёт и настраивает все зависимости
func Build(cfg config.Config) (*App, error) {
	const op = "app.Build"
	ctx := context.Background()

	logger, err := platformlogging.New(platformlogging.Config{
		ServiceName: serviceName,
		Env:         string(cfg.AppEnv),
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
	})
	if err != nil {
		return nil, err
	}
	cfg.Log(logger)

	buildLog := logger.With(zap.String("op", op))
	buildLog.Info("Building converge service",
		zap.String("grpc_addr", cfg.GRPCAddr),
		zap.String("http_addr", cfg.HTTPAddr),
	)

	// Shutdown функции регистрируются по мере создания зависимостей и выполняются в обратном порядке
	shutdownMgr := platformshutdown.New(cfg.ShutdownTimeout, logger)
	fail := func(err error) (*App, error) {
		shutdownMgr.Shutdown()
		return nil, err
	}

	// OpenTelemetry
	otelShutdown, err := platformobservability.Init(ctx, platformobservability.Config{
		Enabled:               cfg.OTelEnabled,
		OTLPEndpoint:          cfg.OTelEndpoint,
		SamplingRatio:         cfg.OTelSamplingRatio,
		ServiceName:           serviceName,
		DeploymentEnvironment: string(cfg.AppEnv),
	})
	if err != nil {
		return fail(err)
	}
	shutdownMgr.Add("otel", otelShutdown)

	// Хранилище транзакций
	repo, closeStore, err := buildStore(ctx, cfg, buildLog)
	if err != nil {
		return fail(err)
	}
	shutdownMgr.Add("transaction_store", closeStore)

	// Приёмники ответов и уведомлений об отказе
	out := buildSinks(cfg.Kafka, logger)
	for name, closer := range out.closers {
		shutdownMgr.Add(name, closer)
	}

	// Пул для фоновых задач (серия уведомлений об отказе)
	pool := worker.New(logger, cfg.WorkerCount, cfg.WorkerQueueSize)
	shutdownMgr.Add("worker_pool", pool.Shutdown)

	// Провайдер security capability
	binder := security.NewBinder(logger, cfg.SecurityGRPCAddr, platformobservability.GRPCUnaryClientInterceptor(serviceName))
	if err := binder.Bind(); err != nil {
		return fail(err)
	}

	recorder, err := metrics.NewRecorder(otel.Meter(serviceName))
	if err != nil {
		return fail(err)
	}

	manager := service.NewTransactionManager(logger, repo, service.Dependencies{
		Notifier: out.notifier,
		Jobs:     pool,
		Security: binder,
		Metrics:  recorder,
	})
	// менеджер отвязывает binder в своём Shutdown
	shutdownMgr.Add("transaction_manager", manager.Shutdown)

	registry := mapper.DefaultRegistry()

	// gRPC сервер с tracing interceptor
	grpcListener, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fail(err)
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(platformobservability.GRPCUnaryServerInterceptor(serviceName, logger)),
	)
	if cfg.EnableGRPCReflection {
		reflection.Register(grpcServer)
		buildLog.Info("gRPC reflection enabled")
	}

	// Readiness: NOT_SERVING до первой успешной проверки хранилища
	health := platformhealth.New(grpc_health_v1.HealthCheckResponse_NOT_SERVING, convergepb.TransactionService_ServiceDesc.ServiceName)
	health.Register(grpcServer)
	convergepb.RegisterTransactionServiceServer(grpcServer, grpcapi.NewHandler(logger, manager, registry, out.listener))
	shutdownMgr.Add("grpc_server", platformshutdown.ShutdownGRPCServer(grpcServer))

	// HTTP сервер
	router := httpapi.NewRouter(
		httpapi.NewHandler(logger, manager, registry, out.listener),
		httpapi.RouterConfig{
			RateLimit: cfg.HTTPRateLimit,
			Checks:    map[string]platformhealthhttp.Check{"store": repo.Ping},
		},
		logger,
	)
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	shutdownMgr.Add("http_server", platformshutdown.ShutdownHTTPServer(httpServer))

	watchCtx, stopWatch := context.WithCancel(ctx)
	shutdownMgr.Add("health_readiness", func(ctx context.Context) error {
		stopWatch()
		return platformshutdown.SetHealthNotServing(health)(ctx)
	})

	return &App{
		logger:       logger,
		grpcServer:   grpcServer,
		grpcListener: grpcListener,
		httpServer:   httpServer,
		health:       health,
		readiness:    repo.Ping,
		watchCtx:     watchCtx,
		shutdownMgr:  shutdownMgr,
	}, nil
}

// Run запускает серверы и блокируется до получения сигнала shutdown
func (a *App) Run() error {
	defer platformlogging.Sync(a.logger)

	a.logger.Info("Starting converge service",
		zap.String("grpc_addr", a.grpcListener.Addr().String()),
		zap.String("http_addr", a.httpServer.Addr),
	)
	a.logger.Info("Health check available", zap.String("url", "http://"+a.httpServer.Addr+"/health"))

	a.wg.Add(3)
	go func() {
		defer a.wg.Done()
		if err := a.grpcServer.Serve(a.grpcListener); err != nil {
			a.logger.Error("gRPC server error", zap.Error(err))
		}
	}()
	go func() {
		defer a.wg.Done()
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("HTTP server error", zap.Error(err))
		}
	}()
	go func() {
		defer a.wg.Done()
		a.health.Watch(a.watchCtx, readinessInterval, a.readiness)
	}()

	// Ожидаем сигнал и выполняем shutdown
	a.shutdownMgr.Wait(context.Background())

	a.wg.Wait()
	a.logger.Info("Converge service stopped")
	return nil
}
