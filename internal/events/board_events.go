package events

import "request-board/internal/entities"

const (
	BoardRefreshed        = "board.refreshed"
	BoardFetchFailed      = "board.fetch_failed"
	RequestStatusUpdated  = "request.status_updated"
	RequestReplySent      = "request.reply_sent"
	RequestMutationFailed = "request.mutation_failed"
	SessionLogoutFailed   = "session.logout_failed"
)

// BoardRefreshedEvent - коллекция заменена результатом цикла Generation.
type BoardRefreshedEvent struct {
	Generation uint64
	Count      int
}

func (e BoardRefreshedEvent) Name() string { return BoardRefreshed }

// BoardFetchFailedEvent - цикл опроса завершился ошибкой, данные устарели.
type BoardFetchFailedEvent struct {
	Generation uint64
	Err        error
}

func (e BoardFetchFailedEvent) Name() string { return BoardFetchFailed }

type StatusUpdatedEvent struct {
	RequestID entities.ID
	Status    string
}

func (e StatusUpdatedEvent) Name() string { return RequestStatusUpdated }

type ReplySentEvent struct {
	UserID entities.ID
}

func (e ReplySentEvent) Name() string { return RequestReplySent }

// MutationFailedEvent - изменение не прошло: Action "status" или "reply".
type MutationFailedEvent struct {
	Action string
	Reason string
}

func (e MutationFailedEvent) Name() string { return RequestMutationFailed }

type LogoutFailedEvent struct {
	Err error
}

func (e LogoutFailedEvent) Name() string { return SessionLogoutFailed }
