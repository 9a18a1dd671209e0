package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"request-board/internal/entities"
)

func TestChrome(t *testing.T) {
	c := Chrome{Theme: entities.ThemeLight}

	assert.Equal(t, entities.ThemeDark, c.ToggleTheme())
	assert.Equal(t, "☾", c.Theme.Glyph())

	assert.Equal(t, "☰", c.MenuGlyph())
	assert.False(t, c.DismissMenu(), "закрытое меню не закрывается повторно")
	c.ToggleMenu()
	assert.Equal(t, "✖", c.MenuGlyph())
	assert.True(t, c.DismissMenu())
	assert.False(t, c.MenuOpen)
}

func TestPaletteFor_CoversStatuses(t *testing.T) {
	for _, theme := range []entities.Theme{entities.ThemeLight, entities.ThemeDark} {
		p := PaletteFor(theme)
		for _, code := range []string{"new", "inwork", "done"} {
			_, ok := p.Status[code]
			assert.True(t, ok, "%s/%s", theme, code)
		}
	}
}
