package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up     key.Binding
	down   key.Binding
	open   key.Binding
	back   key.Binding
	esc    key.Binding
	trash  key.Binding
	reload key.Binding
	copy   key.Binding
	info   key.Binding
	quit   key.Binding
}

var keys = keyMap{
	up:     key.NewBinding(key.WithKeys("up", "k")),
	down:   key.NewBinding(key.WithKeys("down", "j")),
	open:   key.NewBinding(key.WithKeys("enter", "right", "l")),
	back:   key.NewBinding(key.WithKeys("backspace", "left", "h")),
	esc:    key.NewBinding(key.WithKeys("esc")),
	trash:  key.NewBinding(key.WithKeys("t")),
	reload: key.NewBinding(key.WithKeys("r")),
	copy:   key.NewBinding(key.WithKeys("c")),
	info:   key.NewBinding(key.WithKeys("i")),
	quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
