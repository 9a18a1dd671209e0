package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"request-board/internal/dto"
	"request-board/internal/entities"
	"request-board/internal/events"
	"request-board/internal/integrations"
	"request-board/pkg/constants"
	apperrors "request-board/pkg/errors"
	"request-board/pkg/eventbus"
	"request-board/pkg/utils"
)

const (
	actionStatus = "status"
	actionReply  = "reply"
)

type BoardServiceInterface interface {
	Refresh(ctx context.Context) error
	SetSearch(ctx context.Context, text string) error
	SetStatusFilter(ctx context.Context, status string) error
	UpdateStatus(ctx context.Context, id entities.ID, status string) (dto.MutationResult, error)
	Reply(ctx context.Context, userID entities.ID, message string) (dto.MutationResult, error)
	Logout(ctx context.Context) (dto.LogoutResultDTO, error)
	View() BoardSnapshot
	Filter() entities.Filter
}

// BoardSnapshot - то, что видит оператор: таблица, счётчики и индикатор.
type BoardSnapshot struct {
	BoardView
	Indicator  Indicator
	Filter     entities.Filter
	Generation uint64
}

type BoardService struct {
	api       integrations.AdminAPI
	state     *BoardState
	bus       *eventbus.Bus
	validator *validator.Validate
	escape    Escaper
	logger    *zap.Logger
}

type BoardOption func(*BoardService)

// WithEscaper меняет экранирование свободного текста (по умолчанию HTML).
func WithEscaper(escape Escaper) BoardOption {
	return func(s *BoardService) {
		s.escape = escape
	}
}

func NewBoardService(
	api integrations.AdminAPI,
	bus *eventbus.Bus,
	v *validator.Validate,
	logger *zap.Logger,
	opts ...BoardOption,
) *BoardService {
	s := &BoardService{
		api:       api,
		state:     NewBoardState(),
		bus:       bus,
		validator: v,
		escape:    utils.EscapeHTML,
		logger:    logger.Named("board"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ BoardServiceInterface = (*BoardService)(nil)

// Refresh - один цикл опроса: запрос списка и замена коллекции.
// Ответ применяется, только если за время запроса не был отправлен более
// новый цикл.
func (s *BoardService) Refresh(ctx context.Context) error {
	gen, filter := s.state.dispatch()

	requests, err := s.api.ListRequests(ctx, filter)
	if err != nil {
		if s.state.fail(gen, fetchErrorMessage(err)) {
			s.bus.Publish(ctx, events.BoardFetchFailedEvent{Generation: gen, Err: err})
		}
		s.logger.Warn("Цикл опроса завершился ошибкой",
			zap.Uint64("generation", gen),
			zap.Error(err),
		)
		return err
	}

	if !s.state.apply(gen, requests) {
		s.logger.Debug("Устаревший ответ отброшен",
			zap.Uint64("generation", gen),
			zap.Int("count", len(requests)),
		)
		return nil
	}

	s.bus.Publish(ctx, events.BoardRefreshedEvent{Generation: gen, Count: len(requests)})
	return nil
}

func (s *BoardService) SetSearch(ctx context.Context, text string) error {
	filter := dto.FilterDTO{Search: text, Status: s.state.Filter().Status}
	if err := s.validate(filter); err != nil {
		return err
	}
	s.state.setSearch(text)
	return s.Refresh(ctx)
}

func (s *BoardService) SetStatusFilter(ctx context.Context, status string) error {
	filter := dto.FilterDTO{Search: s.state.Filter().Search, Status: status}
	if err := s.validate(filter); err != nil {
		return err
	}
	s.state.setStatus(constants.NormalizeStatusFilter(status))
	return s.Refresh(ctx)
}

// ApplyFilter выставляет фильтр целиком без цикла опроса.
func (s *BoardService) ApplyFilter(search, status string) error {
	if err := s.validate(dto.FilterDTO{Search: search, Status: status}); err != nil {
		return err
	}
	s.state.setSearch(search)
	s.state.setStatus(constants.NormalizeStatusFilter(status))
	return nil
}

// UpdateStatus отправляет новый статус и при успехе перечитывает доску.
// Чужие параллельные правки не сверяются: побеждает последняя запись.
func (s *BoardService) UpdateStatus(ctx context.Context, id entities.ID, status string) (dto.MutationResult, error) {
	payload := dto.StatusUpdateDTO{ID: id, Status: status}
	if err := s.validate(payload); err != nil {
		return dto.MutationResult{}, err
	}

	result, err := s.api.UpdateStatus(ctx, payload)
	if err != nil {
		s.bus.Publish(ctx, events.MutationFailedEvent{Action: actionStatus, Reason: err.Error()})
		return result, err
	}
	if !result.OK {
		s.bus.Publish(ctx, events.MutationFailedEvent{Action: actionStatus, Reason: result.Reason})
		return result, nil
	}

	s.logger.Info("Статус заявки изменён", zap.String("id", id.String()), zap.String("status", status))
	s.bus.Publish(ctx, events.StatusUpdatedEvent{RequestID: id, Status: status})

	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("Не удалось перечитать доску после смены статуса", zap.Error(err))
	}
	return result, nil
}

// Reply отправляет ответ владельцу заявки. Доставку сервер не подтверждает.
func (s *BoardService) Reply(ctx context.Context, userID entities.ID, message string) (dto.MutationResult, error) {
	payload := dto.ReplyDTO{UserID: userID, Message: strings.TrimSpace(message)}
	if err := s.validate(payload); err != nil {
		return dto.MutationResult{}, err
	}

	result, err := s.api.SendReply(ctx, payload)
	if err != nil {
		s.bus.Publish(ctx, events.MutationFailedEvent{Action: actionReply, Reason: err.Error()})
		return result, err
	}
	if !result.OK {
		s.bus.Publish(ctx, events.MutationFailedEvent{Action: actionReply, Reason: result.Reason})
		return result, nil
	}

	s.logger.Info("Ответ отправлен", zap.String("user_id", userID.String()))
	s.bus.Publish(ctx, events.ReplySentEvent{UserID: userID})
	return result, nil
}

func (s *BoardService) Logout(ctx context.Context) (dto.LogoutResultDTO, error) {
	res, err := s.api.Logout(ctx)
	if err != nil {
		s.logger.Error("Выход не выполнен", zap.Error(err))
		s.bus.Publish(ctx, events.LogoutFailedEvent{Err: err})
		return res, err
	}
	return res, nil
}

// View строит модель представления из последней применённой коллекции.
func (s *BoardService) View() BoardSnapshot {
	requests, indicator, gen := s.state.Snapshot()
	return BoardSnapshot{
		BoardView:  BuildView(requests, s.api, s.escape),
		Indicator:  indicator,
		Filter:     s.state.Filter(),
		Generation: gen,
	}
}

func (s *BoardService) Filter() entities.Filter {
	return s.state.Filter()
}

func (s *BoardService) validate(payload interface{}) error {
	if err := s.validator.Struct(payload); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return apperrors.NewInvalidInputError("поле %s не прошло проверку %q", verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}

func fetchErrorMessage(err error) string {
	if code := apperrors.StatusCode(err); code != 0 {
		return fmt.Sprintf("Ошибка загрузки заявок (код %d)", code)
	}
	return "Ошибка загрузки заявок: сервер недоступен"
}
