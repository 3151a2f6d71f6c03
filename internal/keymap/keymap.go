package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/robinovitch61/hcols/internal/strip"
)

type KeyMap struct {
	Clear        key.Binding
	Copy         key.Binding
	Enter        key.Binding
	Focus        key.Binding
	Help         key.Binding
	Quit         key.Binding
	Refresh      key.Binding
	Save         key.Binding
	TogglePaging key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy selected column"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", ""), // means different things in the prompt and on a strip
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch strip"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "show/hide help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh data"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save strip report"),
		),
		TogglePaging: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "toggle paging"),
		),
	}
}

// DescriptiveKeyBindings lists every binding a user can press, in the order help shows them
func DescriptiveKeyBindings(km KeyMap, sk strip.KeyMap) []key.Binding {
	return []key.Binding{
		sk.Left,
		sk.Right,
		sk.PageLeft,
		sk.PageRight,
		sk.Start,
		sk.End,
		sk.Select,
		km.Focus,
		km.TogglePaging,
		km.Refresh,
		km.Copy,
		km.Save,
		WithDesc(km.Enter, "confirm prompt"),
		km.Clear,
		km.Help,
		km.Quit,
	}
}

func WithDesc(k key.Binding, d string) key.Binding {
	newK := k
	newK.SetHelp(newK.Help().Key, d)
	return newK
}
