package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"request-board/internal/events"
	"request-board/pkg/eventbus"
)

type recordingSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (s *recordingSender) Send(msg tea.Msg) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
}

func TestBridge_ForwardsBoardEvents(t *testing.T) {
	sender := &recordingSender{}
	bus := eventbus.New(zap.NewNop(), time.Second)
	Bridge(bus, sender)

	ctx := context.Background()
	bus.Publish(ctx, events.BoardRefreshedEvent{Generation: 1, Count: 3})
	bus.Publish(ctx, events.BoardFetchFailedEvent{Generation: 2})
	bus.Publish(ctx, events.ReplySentEvent{UserID: "7"})
	bus.Wait()

	sender.mu.Lock()
	defer sender.mu.Unlock()
	require.Len(t, sender.msgs, 2)
	names := make([]string, 0, 2)
	for _, msg := range sender.msgs {
		changed, ok := msg.(boardChangedMsg)
		require.True(t, ok)
		names = append(names, changed.event)
	}
	assert.ElementsMatch(t, []string{events.BoardRefreshed, events.BoardFetchFailed}, names)
}
