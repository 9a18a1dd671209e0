package integrations

import (
	"context"

	"request-board/internal/dto"
	"request-board/internal/entities"
)

// RequestProvider - источник списка заявок.
type RequestProvider interface {
	ListRequests(ctx context.Context, filter entities.Filter) ([]entities.Request, error)
}

// RequestMutator - изменения заявок на стороне админ-API.
type RequestMutator interface {
	UpdateStatus(ctx context.Context, payload dto.StatusUpdateDTO) (dto.MutationResult, error)
	SendReply(ctx context.Context, payload dto.ReplyDTO) (dto.MutationResult, error)
}

// SessionProvider - выход оператора.
type SessionProvider interface {
	Logout(ctx context.Context) (dto.LogoutResultDTO, error)
}

// LinkBuilder строит ссылки на скачивание документов.
type LinkBuilder interface {
	DownloadURL(fileID entities.ID) string
}

// AdminAPI - всё, что доска использует от бэкенда.
type AdminAPI interface {
	RequestProvider
	RequestMutator
	SessionProvider
	LinkBuilder
}
