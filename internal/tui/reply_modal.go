package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"request-board/internal/entities"
)

const replyCharLimit = 4096

// ReplyModal - окно ответа клиенту. Идентификатор получателя оператор не
// видит и не редактирует: он берётся из строки, на которой открыто окно.
type ReplyModal struct {
	visible bool
	userID  entities.ID
	input   textarea.Model
}

func NewReplyModal() ReplyModal {
	input := textarea.New()
	input.Placeholder = "Текст ответа"
	input.CharLimit = replyCharLimit
	input.ShowLineNumbers = false
	input.SetWidth(60)
	input.SetHeight(6)
	input.Cursor.SetMode(cursor.CursorStatic)
	return ReplyModal{input: input}
}

// Open показывает пустое окно для пользователя userID.
func (m *ReplyModal) Open(userID entities.ID) tea.Cmd {
	m.userID = userID
	m.visible = true
	return m.input.Focus()
}

// Close прячет окно и очищает форму: черновик не переезжает к другому
// получателю.
func (m *ReplyModal) Close() {
	m.visible = false
	m.input.Blur()
	m.Reset()
}

func (m *ReplyModal) Reset() {
	m.input.Reset()
	m.userID = ""
}

func (m ReplyModal) Visible() bool { return m.visible }

func (m ReplyModal) UserID() entities.ID { return m.userID }

func (m ReplyModal) Message() string { return m.input.Value() }

func (m *ReplyModal) SetWidth(width int) {
	w := width - 10
	if w > 80 {
		w = 80
	}
	if w < 20 {
		w = 20
	}
	m.input.SetWidth(w)
}

func (m *ReplyModal) Update(message tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(message)
	return cmd
}

func (m ReplyModal) View(p Palette, help string) string {
	var b strings.Builder
	b.WriteString(p.Title.Render("Ответ клиенту"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(p.Muted.Render(help))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2).
		Render(b.String())
}
