package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"request-board/internal/events"
	"request-board/internal/services"
	"request-board/pkg/constants"
	"request-board/pkg/eventbus"
)

// NotificationListener превращает события доски во всплывающие уведомления.
type NotificationListener struct {
	notifications services.NotificationServiceInterface
	logger        *zap.Logger
}

func NewNotificationListener(notifications services.NotificationServiceInterface, logger *zap.Logger) *NotificationListener {
	return &NotificationListener{
		notifications: notifications,
		logger:        logger.Named("notification_listener"),
	}
}

func (l *NotificationListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.RequestStatusUpdated, l.handleStatusUpdated)
	bus.Subscribe(events.RequestReplySent, l.handleReplySent)
	bus.Subscribe(events.RequestMutationFailed, l.handleMutationFailed)
	bus.Subscribe(events.BoardFetchFailed, l.handleFetchFailed)
	bus.Subscribe(events.SessionLogoutFailed, l.handleLogoutFailed)
	l.logger.Info("NotificationListener подписан на события доски")
}

func (l *NotificationListener) handleStatusUpdated(ctx context.Context, event eventbus.Event) error {
	l.notifications.Notify(services.ToastInfo, constants.MsgStatusUpdated)
	return nil
}

func (l *NotificationListener) handleReplySent(ctx context.Context, event eventbus.Event) error {
	l.notifications.Notify(services.ToastInfo, constants.MsgReplySent)
	return nil
}

func (l *NotificationListener) handleMutationFailed(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.MutationFailedEvent)
	if !ok {
		return fmt.Errorf("неожиданный тип события %T", event)
	}
	text := "Не удалось изменить статус"
	if e.Action == "reply" {
		text = "Не удалось отправить ответ"
	}
	if e.Reason != "" {
		text += ": " + e.Reason
	}
	l.notifications.Notify(services.ToastError, text)
	return nil
}

func (l *NotificationListener) handleFetchFailed(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.BoardFetchFailedEvent)
	if !ok {
		return fmt.Errorf("неожиданный тип события %T", event)
	}
	l.notifications.Notify(services.ToastError, "Ошибка загрузки заявок")
	l.logger.Debug("Сбой цикла опроса", zap.Uint64("generation", e.Generation), zap.Error(e.Err))
	return nil
}

func (l *NotificationListener) handleLogoutFailed(ctx context.Context, event eventbus.Event) error {
	l.notifications.Notify(services.ToastError, constants.MsgLogoutFailed)
	return nil
}
