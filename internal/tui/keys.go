package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Enter key.Binding

	// View tabs
	Discover key.Binding
	Movies   key.Binding
	TV       key.Binding
	Search   key.Binding

	// Actions
	Quit     key.Binding
	Help     key.Binding
	Escape   key.Binding
	Request  key.Binding
	Delete   key.Binding
	Instance key.Binding
	Unhide   key.Binding
	Refresh  key.Binding
	NextRow  key.Binding
	PrevRow  key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "right"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),

		Discover: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "discover"),
		),
		Movies: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "movies"),
		),
		TV: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "tv"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Request: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "request"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete request"),
		),
		Instance: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "switch instance"),
		),
		Unhide: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unhide"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "refresh"),
		),
		NextRow: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next row"),
		),
		PrevRow: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev row"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
