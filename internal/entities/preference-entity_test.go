package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTheme(t *testing.T) {
	assert.Equal(t, ThemeDark, ParseTheme("dark"))
	assert.Equal(t, ThemeLight, ParseTheme("light"))
	assert.Equal(t, ThemeLight, ParseTheme(""))
	assert.Equal(t, ThemeLight, ParseTheme("solarized"))

	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeLight, ThemeLight.Toggle().Toggle())

	assert.Equal(t, "☾", ThemeDark.Glyph())
	assert.Equal(t, "☀", ThemeLight.Glyph())
}
