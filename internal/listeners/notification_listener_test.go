package listeners

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"request-board/internal/events"
	"request-board/internal/services"
	"request-board/pkg/eventbus"
)

func setup(t *testing.T) (*eventbus.Bus, services.NotificationServiceInterface) {
	t.Helper()
	bus := eventbus.New(zap.NewNop(), time.Second)
	notifications := services.NewNotificationService(time.Minute, zap.NewNop())
	NewNotificationListener(notifications, zap.NewNop()).Register(bus)
	return bus, notifications
}

func TestNotificationListener_SuccessToasts(t *testing.T) {
	bus, notifications := setup(t)

	bus.Publish(context.Background(), events.StatusUpdatedEvent{RequestID: "42", Status: "done"})
	bus.Wait()
	bus.Publish(context.Background(), events.ReplySentEvent{UserID: "7"})
	bus.Wait()

	active := notifications.Active(time.Now())
	require.Len(t, active, 2)
	assert.Equal(t, "Статус обновлён!", active[0].Text)
	assert.Equal(t, services.ToastInfo, active[0].Level)
	assert.Equal(t, "Ответ отправлен!", active[1].Text)
}

func TestNotificationListener_FailureToasts(t *testing.T) {
	bus, notifications := setup(t)

	bus.Publish(context.Background(), events.MutationFailedEvent{Action: "reply", Reason: "502 Bad Gateway"})
	bus.Wait()
	bus.Publish(context.Background(), events.BoardFetchFailedEvent{Generation: 3, Err: errors.New("timeout")})
	bus.Wait()
	bus.Publish(context.Background(), events.LogoutFailedEvent{Err: errors.New("200 OK")})
	bus.Wait()

	active := notifications.Active(time.Now())
	require.Len(t, active, 3)
	assert.Equal(t, "Не удалось отправить ответ: 502 Bad Gateway", active[0].Text)
	assert.Equal(t, services.ToastError, active[0].Level)
	assert.Equal(t, "Ошибка загрузки заявок", active[1].Text)
	assert.Equal(t, "Ошибка выхода из системы", active[2].Text)
}
