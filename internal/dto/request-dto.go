package dto

import "request-board/internal/entities"

// RequestListResponseDTO - тело ответа GET /admin/api/requests.
type RequestListResponseDTO struct {
	Requests []entities.Request `json:"requests"`
}

type FilterDTO struct {
	Search string `validate:"max=200"`
	Status string `validate:"status_filter"`
}

type StatusUpdateDTO struct {
	ID     entities.ID `form:"id" validate:"required"`
	Status string      `form:"status" validate:"request_status"`
}

type ReplyDTO struct {
	UserID  entities.ID `form:"user_id" validate:"required"`
	Message string      `form:"message" validate:"required,max=4096"`
}

// MutationResult - итог POST-запроса изменения. OK=false означает, что
// сервер ответил, но не подтвердил изменение.
type MutationResult struct {
	OK         bool
	StatusCode int
	Reason     string
}

// LogoutResultDTO - куда сервер перенаправил после выхода.
type LogoutResultDTO struct {
	RedirectTo string
}
