// Файл: internal/services/notification_service.go
package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ToastLevel string

const (
	ToastInfo  ToastLevel = "info"
	ToastError ToastLevel = "error"
)

// Toast - всплывающее уведомление, исчезает после ExpiresAt.
type Toast struct {
	ID        uuid.UUID
	Level     ToastLevel
	Text      string
	ExpiresAt time.Time
}

// NotificationServiceInterface - центр всплывающих уведомлений оператора.
type NotificationServiceInterface interface {
	Notify(level ToastLevel, text string) Toast
	Active(now time.Time) []Toast
}

type notificationService struct {
	mu     sync.Mutex
	toasts []Toast
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

func NewNotificationService(ttl time.Duration, logger *zap.Logger) NotificationServiceInterface {
	return &notificationService{
		ttl:    ttl,
		now:    time.Now,
		logger: logger.Named("notifications"),
	}
}

func (s *notificationService) Notify(level ToastLevel, text string) Toast {
	toast := Toast{
		ID:        uuid.New(),
		Level:     level,
		Text:      text,
		ExpiresAt: s.now().Add(s.ttl),
	}

	s.mu.Lock()
	s.toasts = append(s.toasts, toast)
	s.mu.Unlock()

	if level == ToastError {
		s.logger.Warn("Уведомление об ошибке", zap.String("text", text))
	} else {
		s.logger.Debug("Уведомление", zap.String("text", text))
	}
	return toast
}

// Active возвращает неистёкшие уведомления и забывает остальные.
func (s *notificationService) Active(now time.Time) []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	alive := s.toasts[:0]
	for _, t := range s.toasts {
		if now.Before(t.ExpiresAt) {
			alive = append(alive, t)
		}
	}
	s.toasts = alive
	return append([]Toast(nil), alive...)
}
