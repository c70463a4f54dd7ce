package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings.
type KeyMap struct {
	// Rows and pages
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Sort     key.Binding

	// Controls
	Search      key.Binding
	Filters     key.Binding
	NextControl key.Binding
	PrevControl key.Binding
	NextOption  key.Binding
	PrevOption  key.Binding
	Back        key.Binding
	Clear       key.Binding
	Copy        key.Binding

	// Application
	Clients   key.Binding
	Products  key.Binding
	Reload    key.Binding
	Logs      key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default keybindings.
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
		NextPage: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[", "prev page"),
		),
		Sort: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "sort column"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Filters: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "filters"),
		),
		NextControl: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next filter"),
		),
		PrevControl: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev filter"),
		),
		NextOption: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next option"),
		),
		PrevOption: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "prev option"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "enter"),
			key.WithHelp("esc", "done"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear filters"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy row"),
		),
		Clients: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clients"),
		),
		Products: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "products"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Logs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "logs"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// navBindings are shown in the footer while browsing rows.
func (k KeyMap) navBindings() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPage, k.PrevPage, k.Search, k.Filters, k.Clear, k.Sort, k.Clients, k.Products, k.Help}
}

func (k KeyMap) searchBindings() []key.Binding {
	return []key.Binding{k.Back}
}

func (k KeyMap) selectBindings() []key.Binding {
	return []key.Binding{k.PrevOption, k.NextOption, k.NextControl, k.PrevControl, k.Back}
}

// FullHelp groups every binding for the help screen.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPage, k.PrevPage, k.Sort},
		{k.Search, k.Filters, k.NextControl, k.PrevControl, k.NextOption, k.PrevOption, k.Back},
		{k.Clear, k.Copy, k.Clients, k.Products, k.Reload, k.Logs, k.Help, k.Quit},
	}
}
