package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	copy     key.Binding
	favorite key.Binding
	delete   key.Binding
	clear    key.Binding
	sync     key.Binding
	export   key.Binding
	info     key.Binding
	refresh  key.Binding
	esc      key.Binding
	quit     key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	copy:     key.NewBinding(key.WithKeys("c", "enter")),
	favorite: key.NewBinding(key.WithKeys("f")),
	delete:   key.NewBinding(key.WithKeys("d")),
	clear:    key.NewBinding(key.WithKeys("D")),
	sync:     key.NewBinding(key.WithKeys("s")),
	export:   key.NewBinding(key.WithKeys("x")),
	info:     key.NewBinding(key.WithKeys("i")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
