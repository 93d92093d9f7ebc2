package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// Keys are the bindings of the exam form.
type Keys struct {
	Quit     key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Tabs     []key.Binding
	Up       key.Binding
	Down     key.Binding
	Edit     key.Binding
	Save     key.Binding
	Cancel   key.Binding
	Export   key.Binding
	Reset    key.Binding
	Yes      key.Binding
	No       key.Binding
	NextType key.Binding
}

// NewKeys returns the default bindings.
func NewKeys() Keys {
	return Keys{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "avslutt"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "neste fane"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "forrige fane"),
		),
		Tabs: []key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "fagprøve")),
			key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "kompetansebevis")),
			key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "informasjon")),
		},
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "opp"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "ned"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "rediger"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "lagre"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "avbryt"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "last ned PDF"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "nullstill"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "j"),
			key.WithHelp("y", "ja"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "nei"),
		),
		NextType: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "bytt kundetype"),
		),
	}
}
