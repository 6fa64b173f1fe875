package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings of the pet screens.
type KeyMap struct {
	Convert   key.Binding
	Tap       key.Binding
	Shop      key.Binding
	Inventory key.Binding
	Week      key.Binding
	StepsUp   key.Binding
	StepsDown key.Binding
	Reset     key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Equip     key.Binding
	Clear     key.Binding
	Back      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Convert, k.Tap, k.Shop, k.Inventory, k.Week, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Convert, k.Tap, k.StepsUp, k.StepsDown},
		{k.Shop, k.Inventory, k.Week, k.Reset},
		{k.Help, k.Quit},
	}
}

// listKeys is the help shown on the shop and inventory tables.
type listKeys struct {
	KeyMap
	inventory bool
}

func (k listKeys) ShortHelp() []key.Binding {
	if k.inventory {
		return []key.Binding{k.Up, k.Down, k.Equip, k.Clear, k.Back}
	}
	return []key.Binding{k.Up, k.Down, k.Select, k.Back}
}

func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Convert: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "convert steps"),
		),
		Tap: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pet"),
		),
		Shop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shop"),
		),
		Inventory: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "inventory"),
		),
		Week: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "weekly steps"),
		),
		StepsUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more steps"),
		),
		StepsDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "fewer steps"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset coins"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "buy"),
		),
		Equip: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter/e", "equip"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear all"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
