package eventbus

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type pingEvent struct{}

func (pingEvent) Name() string { return "test.ping" }

func TestBus_PublishCallsEverySubscriber(t *testing.T) {
	bus := New(zap.NewNop(), time.Second)
	var calls atomic.Int32

	for i := 0; i < 3; i++ {
		bus.Subscribe("test.ping", func(ctx context.Context, event Event) error {
			calls.Add(1)
			return nil
		})
	}
	bus.Subscribe("test.other", func(ctx context.Context, event Event) error {
		t.Error("обработчик чужого события не должен вызываться")
		return nil
	})

	bus.Publish(context.Background(), pingEvent{})
	bus.Wait()

	assert.Equal(t, int32(3), calls.Load())
}

func TestBus_ListenerErrorDoesNotStopOthers(t *testing.T) {
	bus := New(zap.NewNop(), time.Second)
	var ok atomic.Bool

	bus.Subscribe("test.ping", func(ctx context.Context, event Event) error {
		return errors.New("сломался")
	})
	bus.Subscribe("test.ping", func(ctx context.Context, event Event) error {
		ok.Store(true)
		return nil
	})

	bus.Publish(context.Background(), pingEvent{})
	bus.Wait()

	assert.True(t, ok.Load())
}

func TestBus_PublisherCancellationNotPropagated(t *testing.T) {
	bus := New(zap.NewNop(), time.Second)
	var ctxErr atomic.Value

	bus.Subscribe("test.ping", func(ctx context.Context, event Event) error {
		ctxErr.Store(ctx.Err() == nil)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bus.Publish(ctx, pingEvent{})
	bus.Wait()

	assert.Equal(t, true, ctxErr.Load())
}
