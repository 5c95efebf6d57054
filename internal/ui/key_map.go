package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	tab     key.Binding
	open    key.Binding
	restart key.Binding
	refresh key.Binding
	search  key.Binding
	genre   key.Binding
	source  key.Binding
	order   key.Binding
	clear   key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch panel")),
		open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		refresh: key.NewBinding(key.WithKeys("R", "f5"), key.WithHelp("R", "refresh")),
		search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		genre:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "genre")),
		source:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "source")),
		order:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort")),
		clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filters")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.tab, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.tab},
		{k.search, k.genre, k.source},
		{k.order, k.clear, k.open},
		{k.restart, k.refresh},
		{k.quit},
	}
}
