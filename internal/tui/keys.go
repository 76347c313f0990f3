package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the non-letter bindings. Letters go straight to the session.
type keyMap struct {
	Submit  key.Binding
	Delete  key.Binding
	NewGame key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	Delete:  key.NewBinding(key.WithKeys("backspace", "delete"), key.WithHelp("backspace", "delete")),
	NewGame: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new game")),
	Quit:    key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
}

// help renders the one-line key legend.
func (k keyMap) help() string {
	parts := make([]string, 0, 4)
	for _, b := range []key.Binding{k.Submit, k.Delete, k.NewGame, k.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
