package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"request-board/internal/services"
	"request-board/pkg/constants"
)

// Строки вокруг таблицы: заголовок, счётчики, фильтр, шапка таблицы,
// подробности, подсказка.
const chromeLines = 9

var statusLabels = map[string]string{
	constants.StatusNew:    "Новая",
	constants.StatusInWork: "В работе",
	constants.StatusDone:   "Готово",
}

func statusLabel(code string) string {
	if code == constants.StatusFilterAllWire {
		return "Все"
	}
	if label, ok := statusLabels[code]; ok {
		return label
	}
	return code
}

type column struct {
	title string
	width int
}

func (model Model) tableHeight() int {
	h := model.height - chromeLines - len(model.toasts)*3
	if h < 3 {
		return 3
	}
	return h
}

func (model Model) View() string {
	p := model.chrome.Palette()

	if model.focus == focusAlert {
		box := lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.Error.GetForeground()).
			Padding(1, 3).
			Render(p.Error.Render(model.alert) + "\n\n" + p.Muted.Render("Enter - продолжить"))
		return lipgloss.Place(model.width, model.height, lipgloss.Center, lipgloss.Center, box)
	}

	bodyWidth := model.width
	if model.chrome.MenuOpen {
		bodyWidth -= menuPanelWidth
	}

	var body string
	if model.focus == focusReply && model.reply.Visible() {
		help := fmt.Sprintf("%s %s · %s %s",
			model.keys.Send.Help().Key, model.keys.Send.Help().Desc,
			model.keys.Cancel.Help().Key, model.keys.Cancel.Help().Desc)
		body = lipgloss.Place(bodyWidth, model.tableHeight()+4, lipgloss.Center, lipgloss.Center, model.reply.View(p, help))
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left,
			model.renderTable(p, bodyWidth),
			model.renderDetail(p, bodyWidth),
		)
	}
	if model.chrome.MenuOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, model.renderMenu(p))
	}

	parts := []string{
		model.renderHeader(p),
		model.renderCounters(p),
		model.renderFilter(p),
		body,
	}
	if toasts := model.renderToasts(p); toasts != "" {
		parts = append(parts, toasts)
	}
	parts = append(parts, model.renderHelp(p))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (model Model) renderHeader(p Palette) string {
	left := p.Title.Render("Заявки LegalBot")
	switch ind := model.snapshot.Indicator; ind.Phase {
	case services.PhaseLoading:
		left += "  " + p.Muted.Render("Загрузка…")
	case services.PhaseError:
		text := ind.Message
		if ind.Stale {
			text += " (данные устарели)"
		}
		left += "  " + p.Error.Render(text)
	}
	right := model.chrome.Theme.Glyph() + " " + model.chrome.MenuGlyph()
	gap := model.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (model Model) renderCounters(p Palette) string {
	c := model.snapshot.Counts
	parts := []string{
		p.Status[constants.StatusNew].Render(fmt.Sprintf("Новые: %d", c.New)),
		p.Status[constants.StatusInWork].Render(fmt.Sprintf("В работе: %d", c.InWork)),
		p.Status[constants.StatusDone].Render(fmt.Sprintf("Готово: %d", c.Done)),
	}
	if c.Unknown > 0 {
		parts = append(parts, p.Muted.Render(fmt.Sprintf("Прочие: %d", c.Unknown)))
	}
	parts = append(parts, p.Text.Render(fmt.Sprintf("Всего: %d", c.Total)))
	return strings.Join(parts, "   ")
}

func (model Model) renderFilter(p Palette) string {
	label := p.Muted.Render("Поиск: ")
	if model.focus == focusSearch {
		label = p.Title.Render("Поиск: ")
	}
	return label + model.search.View() + "   " +
		p.Muted.Render("Статус: ") + p.Text.Render(statusLabel(model.snapshot.Filter.Status))
}

func (model Model) columns(width int) []column {
	cols := []column{
		{"ID", 6}, {"Дата", 17}, {"Имя", 16}, {"Телефон", 14},
		{"Сообщение", 0}, {"Статус", 12}, {"Док.", 5}, {"", 10},
	}
	fixed := 0
	for _, c := range cols {
		fixed += c.width + 1
	}
	msgWidth := width - fixed
	if msgWidth < 10 {
		msgWidth = 10
	}
	cols[4].width = msgWidth
	return cols
}

func renderCells(cols []column, cells []string) string {
	var b strings.Builder
	for i, c := range cols {
		text := ansi.Truncate(cells[i], c.width, "…")
		b.WriteString(text)
		b.WriteString(strings.Repeat(" ", c.width-ansi.StringWidth(text)+1))
	}
	return b.String()
}

func (model Model) renderTable(p Palette, width int) string {
	cols := model.columns(width)
	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.title
	}
	lines := []string{p.Header.Render(renderCells(cols, titles))}

	rows := model.snapshot.Rows
	height := model.tableHeight()
	if len(rows) == 0 {
		lines = append(lines, p.Muted.Render("Заявок нет"))
	}
	for i := model.offset; i < len(rows) && i < model.offset+height; i++ {
		row := rows[i]
		status := statusLabel(row.Status)
		if model.focus == focusPicker && row.ID == model.picker.requestID {
			status = "◂ " + statusLabel(model.picker.value()) + " ▸"
		}
		docs := ""
		if n := len(row.Documents); n > 0 {
			docs = fmt.Sprintf("📎%d", n)
		}
		line := renderCells(cols, []string{
			row.ID.String(), row.CreatedAt, row.Name, row.Phone, row.Message, status, docs, "r: ответ",
		})
		if i == model.cursor {
			line = p.Selected.Render(line)
		} else if style, ok := p.Status[row.Status]; ok {
			line = style.Render(line)
		} else {
			line = p.Text.Render(line)
		}
		lines = append(lines, line)
	}
	for len(lines) < height+1 {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// renderDetail показывает полный текст выбранной заявки и ссылки на
// документы (OSC 8, кликабельны в поддерживающих терминалах).
func (model Model) renderDetail(p Palette, width int) string {
	row, ok := model.selectedRow()
	if !ok {
		return "\n"
	}
	message := ansi.Truncate(row.Message, width, "…")
	links := make([]string, 0, len(row.Documents))
	for _, doc := range row.Documents {
		links = append(links, ansi.SetHyperlink(doc.Href)+doc.Label+ansi.ResetHyperlink())
	}
	docs := p.Muted.Render("Документы: нет")
	if len(links) > 0 {
		docs = p.Muted.Render("Документы: ") + strings.Join(links, ", ")
	}
	return p.Text.Render(message) + "\n" + ansi.Truncate(docs, width, "…")
}

// renderMenu - боковая панель с дублем фильтров. Значения берутся из того
// же фильтра доски, что и строка над таблицей.
func (model Model) renderMenu(p Palette) string {
	filter := model.snapshot.Filter
	search := filter.Search
	if search == "" {
		search = "—"
	}
	lines := []string{
		p.Title.Render("Меню"),
		"",
		p.Muted.Render("Поиск: ") + p.Text.Render(search),
		p.Muted.Render("Статус: ") + p.Text.Render(statusLabel(filter.Status)),
		"",
		p.Muted.Render("/ изменить поиск"),
		p.Muted.Render("f сменить статус"),
		p.Muted.Render("t тема " + model.chrome.Theme.Toggle().Glyph()),
		p.Muted.Render("ctrl+l выйти"),
	}
	return lipgloss.NewStyle().
		Width(menuPanelWidth-4).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(p.Border).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func (model Model) renderToasts(p Palette) string {
	if len(model.toasts) == 0 {
		return ""
	}
	boxes := make([]string, 0, len(model.toasts))
	for _, t := range model.toasts {
		style := p.ToastInfo
		if t.Level == services.ToastError {
			style = p.ToastError
		}
		boxes = append(boxes, style.Render(t.Text))
	}
	return lipgloss.PlaceHorizontal(model.width, lipgloss.Right,
		lipgloss.JoinVertical(lipgloss.Right, boxes...))
}

func (model Model) renderHelp(p Palette) string {
	var bindings []key.Binding
	switch model.focus {
	case focusSearch:
		return p.Muted.Render("enter/esc - к таблице")
	case focusPicker:
		return p.Muted.Render("←/→ выбрать статус · enter сохранить · esc отмена")
	case focusReply:
		return ""
	default:
		bindings = model.keys.tableHelp()
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return p.Muted.Render(ansi.Truncate(strings.Join(parts, " · "), model.width, "…"))
}
