package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPool(t *testing.T) {
	t.Run("runs submitted jobs", func(t *testing.T) {
		p := New(zap.NewNop(), 4, 16)
		var n atomic.Int32

		for i := 0; i < 10; i++ {
			require.NoError(t, p.Submit(func(context.Context) { n.Add(1) }))
		}

		require.NoError(t, p.Shutdown(context.Background()))
		require.Equal(t, int32(10), n.Load())
	})

	t.Run("submit after shutdown fails", func(t *testing.T) {
		p := New(zap.NewNop(), 1, 1)
		require.NoError(t, p.Shutdown(context.Background()))
		require.NoError(t, p.Shutdown(context.Background()))

		err := p.Submit(func(context.Context) {})
		require.ErrorIs(t, err, ErrPoolClosed)
	})

	t.Run("full queue rejects", func(t *testing.T) {
		p := New(zap.NewNop(), 1, 1)
		release := make(chan struct{})
		started := make(chan struct{})

		require.NoError(t, p.Submit(func(context.Context) {
			close(started)
			<-release
		}))
		<-started
		require.NoError(t, p.Submit(func(context.Context) {}))

		err := p.Submit(func(context.Context) {})
		require.ErrorIs(t, err, ErrQueueFull)

		close(release)
		require.NoError(t, p.Shutdown(context.Background()))
	})

	t.Run("panicking job does not kill the worker", func(t *testing.T) {
		p := New(zap.NewNop(), 1, 4)
		var ran atomic.Bool

		require.NoError(t, p.Submit(func(context.Context) { panic("boom") }))
		require.NoError(t, p.Submit(func(context.Context) { ran.Store(true) }))

		require.NoError(t, p.Shutdown(context.Background()))
		require.True(t, ran.Load())
	})

	t.Run("shutdown timeout cancels job context", func(t *testing.T) {
		p := New(zap.NewNop(), 1, 1)
		cancelled := make(chan struct{})

		require.NoError(t, p.Submit(func(ctx context.Context) {
			<-ctx.Done()
			close(cancelled)
		}))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := p.Shutdown(ctx)
		require.ErrorIs(t, err, context.DeadlineExceeded)

		select {
		case <-cancelled:
		case <-time.After(time.Second):
			t.Fatal("job context was not cancelled")
		}
	})
}
