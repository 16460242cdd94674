package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the site shell.
type KeyMap struct {
	// Scrolling. Ignored while the scroll lock is held.
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Menu atlas.
	Category     []key.Binding // 1-6, display order.
	NextCategory key.Binding
	PrevCategory key.Binding
	NextDietary  key.Binding
	PrevDietary  key.Binding
	Search       key.Binding
	Open         key.Binding
	Close        key.Binding // Detail view: x / backspace. Esc is handled separately.

	// Reservation.
	FewerGuests key.Binding
	MoreGuests  key.Binding
	EditDate    key.Binding

	// Pages.
	Drawer  key.Binding
	Home    key.Binding
	Menu    key.Binding
	Guide   key.Binding
	Culture key.Binding
	Reserve key.Binding

	Back key.Binding // esc: blur, close, or dismiss.
	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("C-d", "page down"),
	),
	Category: []key.Binding{
		key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "earth")),
		key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "fire")),
		key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "sea")),
		key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "hearth")),
		key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "sweet")),
		key.NewBinding(key.WithKeys("6"), key.WithHelp("6", "cellar")),
	},
	NextCategory: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next chapter"),
	),
	PrevCategory: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "prev chapter"),
	),
	NextDietary: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d/D", "dietary"),
	),
	PrevDietary: key.NewBinding(
		key.WithKeys("D"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Close: key.NewBinding(
		key.WithKeys("x", "backspace"),
		key.WithHelp("x", "close"),
	),
	FewerGuests: key.NewBinding(
		key.WithKeys("left", "-"),
		key.WithHelp("←/→", "guests"),
	),
	MoreGuests: key.NewBinding(
		key.WithKeys("right", "+", "="),
	),
	EditDate: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit date"),
	),
	Drawer: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "menu"),
	),
	Home: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "home"),
	),
	Menu: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "atlas"),
	),
	Guide: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "guide"),
	),
	Culture: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "culture"),
	),
	Reserve: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reserve"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// bindings implements help.KeyMap over a fixed slice.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding  { return b }
func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }
