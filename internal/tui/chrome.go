package tui

import (
	"github.com/charmbracelet/lipgloss"

	"request-board/internal/entities"
)

const (
	menuGlyphClosed = "☰"
	menuGlyphOpen   = "✖"
	menuPanelWidth  = 34
)

// Palette - набор стилей для одной темы.
type Palette struct {
	Text       lipgloss.Style
	Muted      lipgloss.Style
	Title      lipgloss.Style
	Header     lipgloss.Style
	Selected   lipgloss.Style
	Error      lipgloss.Style
	Border     lipgloss.Color
	ToastInfo  lipgloss.Style
	ToastError lipgloss.Style
	Status     map[string]lipgloss.Style
}

func PaletteFor(theme entities.Theme) Palette {
	if theme == entities.ThemeDark {
		return newPalette("#e6edf3", "#8b949e", "#58a6ff", "#30363d", "#1f6feb", "#f85149", map[string]string{
			"new":    "#58a6ff",
			"inwork": "#d29922",
			"done":   "#3fb950",
		})
	}
	return newPalette("#1f2328", "#656d76", "#0969da", "#d0d7de", "#ddf4ff", "#cf222e", map[string]string{
		"new":    "#0969da",
		"inwork": "#9a6700",
		"done":   "#1a7f37",
	})
}

func newPalette(text, muted, accent, border, selected, errColor string, statuses map[string]string) Palette {
	p := Palette{
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color(text)),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color(muted)).Bold(true).Underline(true),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color(selected)).Foreground(lipgloss.Color(text)),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(errColor)).Bold(true),
		Border:   lipgloss.Color(border),
		ToastInfo: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(accent)).
			Padding(0, 1),
		ToastError: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(errColor)).
			Foreground(lipgloss.Color(errColor)).
			Padding(0, 1),
		Status: make(map[string]lipgloss.Style, len(statuses)),
	}
	for code, color := range statuses {
		p.Status[code] = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return p
}

// Chrome - оформление вокруг таблицы: тема и выезжающее меню.
type Chrome struct {
	Theme    entities.Theme
	MenuOpen bool
}

func (c *Chrome) ToggleTheme() entities.Theme {
	c.Theme = c.Theme.Toggle()
	return c.Theme
}

func (c *Chrome) ToggleMenu() {
	c.MenuOpen = !c.MenuOpen
}

// DismissMenu закрывает меню и сообщает, было ли оно открыто.
func (c *Chrome) DismissMenu() bool {
	if !c.MenuOpen {
		return false
	}
	c.MenuOpen = false
	return true
}

func (c Chrome) MenuGlyph() string {
	if c.MenuOpen {
		return menuGlyphOpen
	}
	return menuGlyphClosed
}

func (c Chrome) Palette() Palette {
	return PaletteFor(c.Theme)
}
