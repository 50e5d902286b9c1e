package components

import "github.com/charmbracelet/bubbles/key"

// EntryFormKeyMap defines key bindings for moving between form fields
type EntryFormKeyMap struct {
	NextField key.Binding
	PrevField key.Binding
}

// DefaultEntryFormKeyMap returns the default form key bindings
func DefaultEntryFormKeyMap() EntryFormKeyMap {
	return EntryFormKeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "previous field"),
		),
	}
}

// Package-level key map instances
var (
	EntryFormKeys = DefaultEntryFormKeyMap()
)
