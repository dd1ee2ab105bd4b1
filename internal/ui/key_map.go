package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	open    key.Binding
	toggle  key.Binding
	zoomIn  key.Binding
	zoomOut key.Binding
	reset   key.Binding
	close   key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		toggle:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open/close")),
		zoomIn:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		zoomOut: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.open, k.toggle},
		{k.zoomIn, k.zoomOut, k.reset},
		{k.close, k.quit},
	}
}
