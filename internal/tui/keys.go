package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Open key.Binding
	Prev key.Binding
	Next key.Binding
	Jump key.Binding
	Back key.Binding
	Help key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:   key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Open: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Prev: key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "previous image")),
		Next: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→/l", "next image")),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to image"),
		),
		Back: key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// listKeys is the help shown on the project list
type listKeys struct{ keyMap }

func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Quit}
}

func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Open}, {k.Help, k.Quit}}
}

// detailKeys is the help shown on a project; gallery keys only appear when
// the gallery has more than one image
type detailKeys struct {
	keyMap
	gallery bool
}

func (k detailKeys) ShortHelp() []key.Binding {
	if k.gallery {
		return []key.Binding{k.Prev, k.Next, k.Jump, k.Back, k.Quit}
	}
	return []key.Binding{k.Back, k.Quit}
}

func (k detailKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Help}}
}
