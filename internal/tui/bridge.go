package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"request-board/internal/events"
	"request-board/pkg/eventbus"
)

// Sender - то, чем программа bubbletea принимает сообщения извне.
type Sender interface {
	Send(msg tea.Msg)
}

// Bridge пересылает события доски в цикл сообщений интерфейса.
func Bridge(bus *eventbus.Bus, sender Sender) {
	forward := func(ctx context.Context, event eventbus.Event) error {
		sender.Send(boardChangedMsg{event: event.Name()})
		return nil
	}
	bus.Subscribe(events.BoardRefreshed, forward)
	bus.Subscribe(events.BoardFetchFailed, forward)
}
