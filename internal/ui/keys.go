package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Escape     key.Binding

	// Page switching
	PageHome    key.Binding
	PageSearch  key.Binding
	PageQueue   key.Binding
	PageCart    key.Binding
	PageHistory key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Search input
	Focus   key.Binding
	Confirm key.Binding

	// Song actions
	TogglePlay  key.Binding
	ToggleLike  key.Binding
	AddToQueue  key.Binding
	AddToCart   key.Binding
	CycleFormat key.Binding
	Remove      key.Binding
	Checkout    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e"),
			key.WithHelp("e", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next page"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous page"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Leave input / Home"),
		),

		PageHome: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Home"),
		),
		PageSearch: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Search"),
		),
		PageQueue: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Queue"),
		),
		PageCart: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Cart"),
		),
		PageHistory: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "History"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),

		Focus: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search songs"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Search"),
		),

		TogglePlay: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Play/pause"),
		),
		ToggleLike: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Like"),
		),
		AddToQueue: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add to queue"),
		),
		AddToCart: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Add to cart"),
		),
		CycleFormat: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Cycle format"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Remove"),
		),
		Checkout: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "Checkout"),
		),
	}
}

// ShortHelp returns key bindings for the footer help line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Tab, k.CycleTheme, k.Help, k.Quit}
}

// FullHelp returns key bindings grouped by concern.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PageHome, k.PageSearch, k.PageQueue, k.PageCart, k.PageHistory, k.Tab, k.ShiftTab},
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Focus, k.Confirm, k.Escape},
		{k.TogglePlay, k.ToggleLike, k.AddToQueue, k.AddToCart, k.CycleFormat},
		{k.Remove, k.Checkout},
		{k.CycleTheme, k.Help, k.Quit},
	}
}

// pageKeys maps the page bindings to pages in navigation order.
func (k keyMap) pageKeys() []key.Binding {
	return []key.Binding{k.PageHome, k.PageSearch, k.PageQueue, k.PageCart, k.PageHistory}
}
