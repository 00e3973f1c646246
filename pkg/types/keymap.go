package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the terminal explorer.
// It lives in pkg/types so the model and its help view share one definition.
type KeyMap struct {
	// General
	Help key.Binding
	Quit key.Binding

	// Navigation
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding // Enter on a folder navigates, on a file opens it
	GoBack    key.Binding
	ChangeDir key.Binding

	// Actions
	Rename  key.Binding
	Copy    key.Binding
	Move    key.Binding
	Paste   key.Binding
	Delete  key.Binding
	Preview key.Binding
	Search  key.Binding
	Voice   key.Binding
	Command key.Binding // Type a command as if it had been spoken
	Refresh key.Binding

	// Prompt and dialog keys
	Accept key.Binding
	Cancel key.Binding
	Choose key.Binding // Picker: make the highlighted directory current
}

// DefaultKeyMap returns the bindings shown in the help footer
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:      key.NewBinding(key.WithKeys("enter", "l"), key.WithHelp("enter", "open")),
		GoBack:    key.NewBinding(key.WithKeys("backspace", "h"), key.WithHelp("⌫", "back")),
		ChangeDir: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "change directory")),
		Rename:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		Copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Move:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "move")),
		Paste:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Preview:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "preview")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Voice:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "voice command")),
		Command:   key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "type command")),
		Refresh:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "refresh")),
		Accept:    key.NewBinding(key.WithKeys("enter", "y"), key.WithHelp("enter/y", "accept")),
		Cancel:    key.NewBinding(key.WithKeys("esc", "n"), key.WithHelp("esc/n", "cancel")),
		Choose:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "select directory")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.GoBack, k.Voice, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Open, k.GoBack, k.ChangeDir},
		{k.Rename, k.Copy, k.Move, k.Paste, k.Delete},
		{k.Preview, k.Search, k.Voice, k.Command, k.Refresh},
		{k.Help, k.Quit},
	}
}
