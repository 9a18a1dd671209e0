package services

import (
	"request-board/internal/entities"
	"request-board/internal/integrations"
	"request-board/pkg/constants"
)

// Escaper обезвреживает свободный текст перед выводом.
type Escaper func(string) string

type StatusOption struct {
	Value    string
	Selected bool
}

type DocumentLink struct {
	Href  string
	Label string
}

// RowView - одна строка таблицы заявок.
type RowView struct {
	ID            entities.ID
	CreatedAt     string
	Name          string
	Phone         string
	Message       string
	Status        string
	StatusOptions []StatusOption
	Documents     []DocumentLink
	ReplyUserID   entities.ID
}

// Counts - счётчики по статусам. Unknown - статусы вне перечисления.
type Counts struct {
	New     int
	InWork  int
	Done    int
	Unknown int
	Total   int
}

type BoardView struct {
	Rows   []RowView
	Counts Counts
}

// BuildView строит модель представления из коллекции в порядке сервера.
func BuildView(requests []entities.Request, links integrations.LinkBuilder, escape Escaper) BoardView {
	view := BoardView{Rows: make([]RowView, 0, len(requests))}

	for _, req := range requests {
		row := RowView{
			ID:            req.ID,
			CreatedAt:     escape(req.CreatedAt),
			Name:          escape(req.Name),
			Phone:         escape(req.Phone),
			Message:       escape(req.Message),
			Status:        req.Status,
			StatusOptions: statusOptions(req.Status),
			Documents:     make([]DocumentLink, 0, len(req.Documents)),
			ReplyUserID:   req.UserID,
		}
		for _, doc := range req.Documents {
			row.Documents = append(row.Documents, DocumentLink{
				Href:  links.DownloadURL(doc.FileID),
				Label: escape(doc.FileName),
			})
		}
		view.Rows = append(view.Rows, row)
	}

	view.Counts = CountStatuses(requests)
	return view
}

// CountStatuses считает заявки по статусам только по переданной коллекции.
func CountStatuses(requests []entities.Request) Counts {
	var c Counts
	for _, req := range requests {
		switch req.Status {
		case constants.StatusNew:
			c.New++
		case constants.StatusInWork:
			c.InWork++
		case constants.StatusDone:
			c.Done++
		default:
			c.Unknown++
		}
	}
	c.Total = len(requests)
	return c
}

func statusOptions(current string) []StatusOption {
	opts := make([]StatusOption, 0, len(constants.RequestStatuses))
	for _, s := range constants.RequestStatuses {
		opts = append(opts, StatusOption{Value: s, Selected: s == current})
	}
	return opts
}
