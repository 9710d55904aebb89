package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left       key.Binding
	Right      key.Binding
	Lock       key.Binding
	Regenerate key.Binding
	Reroll     key.Binding
	Mode       key.Binding
	Copy       key.Binding
	Theme      key.Binding
	Save       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev swatch"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next swatch"),
		),
		Lock: key.NewBinding(
			key.WithKeys("enter", "1", "2", "3", "4", "5"),
			key.WithHelp("enter/1-5", "toggle lock"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys(" ", "g"),
			key.WithHelp("space", "new palette"),
		),
		Reroll: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "re-roll swatch"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "cycle mode"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy hex"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save card"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Lock, k.Regenerate, k.Reroll, k.Mode, k.Copy, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Lock},
		{k.Regenerate, k.Reroll, k.Mode},
		{k.Copy, k.Theme, k.Save, k.Quit},
	}
}
