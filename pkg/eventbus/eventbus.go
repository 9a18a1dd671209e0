package eventbus

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event представляет собой любое событие доски заявок.
type Event interface {
	Name() string
}

// Listener - обработчик событий.
type Listener func(ctx context.Context, event Event) error

// Bus - шина событий между сервисом доски, уведомлениями и интерфейсом.
type Bus struct {
	listeners map[string][]Listener
	mu        sync.RWMutex
	inflight  sync.WaitGroup
	timeout   time.Duration
	logger    *zap.Logger
}

// New создает новую шину событий. Каждому обработчику отводится timeout.
func New(logger *zap.Logger, timeout time.Duration) *Bus {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Bus{
		listeners: make(map[string][]Listener),
		timeout:   timeout,
		logger:    logger.Named("eventbus"),
	}
}

// Subscribe подписывает слушателя на определенное событие.
func (b *Bus) Subscribe(eventName string, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[eventName] = append(b.listeners[eventName], listener)
}

// Publish вызывает всех подписчиков асинхронно и не ждёт их.
// Отмена ctx публикующего на обработчиков не распространяется.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	listeners := append([]Listener(nil), b.listeners[event.Name()]...)
	b.mu.RUnlock()

	if len(listeners) == 0 {
		b.logger.Debug("Событие без подписчиков", zap.String("event", event.Name()))
		return
	}

	base := context.WithoutCancel(ctx)
	for _, listener := range listeners {
		b.inflight.Add(1)
		go func(l Listener) {
			defer b.inflight.Done()

			ctxWithTimeout, cancel := context.WithTimeout(base, b.timeout)
			defer cancel()

			if err := l(ctxWithTimeout, event); err != nil {
				b.logger.Error("Ошибка в обработчике события",
					zap.String("event", event.Name()),
					zap.Error(err),
				)
			}
		}(listener)
	}
}

// Wait блокируется, пока не завершатся все запущенные обработчики.
func (b *Bus) Wait() {
	b.inflight.Wait()
}
