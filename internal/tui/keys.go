package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	sync    key.Binding
	newItem key.Binding
	copy    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	quit    key.Binding
}

var keys = keyMap{
	sync:    key.NewBinding(key.WithKeys("s")),
	newItem: key.NewBinding(key.WithKeys("n")),
	copy:    key.NewBinding(key.WithKeys("c")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
