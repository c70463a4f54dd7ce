package model

// Bubble Tea message types

// ErrorMsg represents an error message.
type ErrorMsg struct {
	Err error
}

// ClientsLoadedMsg is sent when clients are loaded.
type ClientsLoadedMsg struct {
	Clients []ClientRow
}

// ProductsLoadedMsg is sent when products are loaded.
type ProductsLoadedMsg struct {
	Products []ProductRow
}

// Screen represents different app screens.
type Screen int

const (
	ScreenClients Screen = iota
	ScreenProducts
)

// Key returns the configuration key of the screen.
func (s Screen) Key() string {
	switch s {
	case ScreenProducts:
		return "productos"
	default:
		return "clientes"
	}
}

// ParseScreen maps a configuration key back to a screen.
func ParseScreen(key string) (Screen, bool) {
	switch key {
	case "clientes":
		return ScreenClients, true
	case "productos":
		return ScreenProducts, true
	}
	return ScreenClients, false
}

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNav Mode = iota
	// ModeSearch routes keystrokes to the search input.
	ModeSearch
	// ModeSelect routes left/right to the focused filter or page-size select.
	ModeSelect
)
