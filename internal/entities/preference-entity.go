package entities

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme возвращает светлую тему для любого незнакомого значения.
func ParseTheme(s string) Theme {
	if Theme(s) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) Glyph() string {
	if t == ThemeDark {
		return "☾"
	}
	return "☀"
}

// Preferences - локальные настройки оператора, переживающие перезапуск.
type Preferences struct {
	Theme Theme `yaml:"theme"`
}
