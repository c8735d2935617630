package live

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Start   key.Binding
	Options []key.Binding
	Next    key.Binding
	Finish  key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Start: key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "start")),
		Options: []key.Binding{
			key.NewBinding(key.WithKeys("1", "a"), key.WithHelp("1-4", "answer")),
			key.NewBinding(key.WithKeys("2", "b")),
			key.NewBinding(key.WithKeys("3", "c")),
			key.NewBinding(key.WithKeys("4", "d")),
		},
		Next:    key.NewBinding(key.WithKeys("enter", "n"), key.WithHelp("enter", "next")),
		Finish:  key.NewBinding(key.WithKeys("enter", "n"), key.WithHelp("enter", "finish")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// optionFor returns the option index bound to a key press.
func (k keyMap) optionFor(msg tea.KeyMsg) (int, bool) {
	for i, binding := range k.Options {
		if key.Matches(msg, binding) {
			return i, true
		}
	}
	return 0, false
}
