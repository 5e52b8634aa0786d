// Package security держит привязку к внешнему провайдеру security capability
// (шифрование карточных данных на терминале). Привязка - это gRPC соединение,
// состояние которого отслеживается и восстанавливается автоматически.
package security

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
)

// ErrAlreadyBound возвращается при повторном Bind
var ErrAlreadyBound = errors.New("security provider already bound")

// Binder отслеживает соединение с провайдером. IsConnected истинно только в состоянии Ready.
type Binder struct {
	logger *zap.Logger
	addr   string
	opts   []grpc.DialOption

	mu     sync.Mutex
	conn   *grpc.ClientConn
	cancel context.CancelFunc
	done   chan struct{}

	connected atomic.Bool
}

// NewBinder создаёт binder. Пустой addr означает, что провайдер не настроен:
// Bind ничего не делает, IsConnected всегда false.
// clientInterceptor опционально - для tracing (observability.GRPCUnaryClientInterceptor).
func NewBinder(logger *zap.Logger, addr string, clientInterceptor grpc.UnaryClientInterceptor, opts ...grpc.DialOption) *Binder {
	dialOpts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	if clientInterceptor != nil {
		dialOpts = append(dialOpts, grpc.WithChainUnaryInterceptor(clientInterceptor))
	}
	dialOpts = append(dialOpts, opts...)

	return &Binder{
		logger: logger,
		addr:   addr,
		opts:   dialOpts,
	}
}

// Bind создаёт соединение и запускает наблюдатель за его состоянием. Не блокируется.
func (b *Binder) Bind() error {
	if b.addr == "" {
		b.logger.Info("security provider address is empty, binder disabled")
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn != nil {
		return ErrAlreadyBound
	}

	conn, err := grpc.NewClient(b.addr, b.opts...)
	if err != nil {
		return fmt.Errorf("create security provider client: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	b.conn = conn
	b.cancel = cancel
	b.done = make(chan struct{})

	conn.Connect()
	go b.watch(ctx, conn, b.done)

	b.logger.Info("binding security provider", zap.String("addr", b.addr))
	return nil
}

// IsConnected сообщает, привязан ли провайдер прямо сейчас
func (b *Binder) IsConnected() bool {
	return b.connected.Load()
}

// Conn возвращает текущее соединение (nil до Bind или для отключённого binder)
func (b *Binder) Conn() *grpc.ClientConn {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conn
}

// Shutdown останавливает наблюдатель и закрывает соединение. Повторный вызов безопасен.
func (b *Binder) Shutdown(ctx context.Context) error {
	b.mu.Lock()
	conn, cancel, done := b.conn, b.cancel, b.done
	b.conn, b.cancel, b.done = nil, nil, nil
	b.mu.Unlock()

	if conn == nil {
		return nil
	}

	cancel()
	select {
	case <-done:
	case <-ctx.Done():
		b.logger.Warn("security provider watcher did not stop in time", zap.Error(ctx.Err()))
	}

	b.connected.Store(false)
	if err := conn.Close(); err != nil {
		return fmt.Errorf("close security provider connection: %w", err)
	}
	b.logger.Info("security provider unbound")
	return nil
}

func (b *Binder) watch(ctx context.Context, conn *grpc.ClientConn, done chan struct{}) {
	defer close(done)

	for {
		state := conn.GetState()
		b.setState(state)

		switch state {
		case connectivity.Idle, connectivity.TransientFailure:
			// переподключаемся сразу, backoff делает сам grpc
			conn.Connect()
		case connectivity.Shutdown:
			return
		}

		if !conn.WaitForStateChange(ctx, state) {
			return
		}
	}
}

func (b *Binder) setState(state connectivity.State) {
	ready := state == connectivity.Ready
	if b.connected.Swap(ready) != ready {
		if ready {
			b.logger.Info("security provider connected", zap.String("addr", b.addr))
		} else {
			b.logger.Warn("security provider disconnected",
				zap.String("addr", b.addr),
				zap.String("state", state.String()),
			)
		}
	}
}
