package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the device console.
type KeyMap struct {
	Quit        key.Binding
	Read        key.Binding
	SeekLeft    key.Binding
	SeekRight   key.Binding
	SeekStart   key.Binding
	SeekEnd     key.Binding
	Goto        key.Binding
	Linear      key.Binding
	Doubling    key.Binding
	DoublingOpt key.Binding
	Help        key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Read: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "read F(pos)"),
		),
		SeekLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "seek -1"),
		),
		SeekRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "seek +1"),
		),
		SeekStart: key.NewBinding(
			key.WithKeys("home", "^"),
			key.WithHelp("home", "seek 0"),
		),
		SeekEnd: key.NewBinding(
			key.WithKeys("end", "$"),
			key.WithHelp("end", "seek max"),
		),
		Goto: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to index"),
		),
		Linear: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "linear"),
		),
		Doubling: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "doubling"),
		),
		DoublingOpt: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "doubling-opt"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Read, k.SeekLeft, k.SeekRight, k.Goto, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Read, k.SeekLeft, k.SeekRight, k.SeekStart, k.SeekEnd, k.Goto},
		{k.Linear, k.Doubling, k.DoublingOpt},
		{k.Help, k.Quit},
	}
}
