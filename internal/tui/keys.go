package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Search key.Binding
	Filter key.Binding
	Status key.Binding
	Reply  key.Binding
	Theme  key.Binding
	Menu   key.Binding
	Logout key.Binding
	Quit   key.Binding

	Prev   key.Binding
	Next   key.Binding
	Submit key.Binding
	Send   key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "вверх")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "вниз")),
		Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "поиск")),
		Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "фильтр")),
		Status: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "статус")),
		Reply:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "ответить")),
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "тема")),
		Menu:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "меню")),
		Logout: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "выйти")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "закрыть")),

		Prev:   key.NewBinding(key.WithKeys("left", "h")),
		Next:   key.NewBinding(key.WithKeys("right", "l")),
		Submit: key.NewBinding(key.WithKeys("enter")),
		Send:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "отправить")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "закрыть")),
	}
}

func (k keyMap) tableHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Search, k.Filter, k.Status, k.Reply, k.Theme, k.Menu, k.Logout, k.Quit}
}
