// Package ui provides the Bubble Tea terminal interface for Cosmic.
//
// # Architecture Overview
//
// Model is the root tea.Model. It never owns domain state: every action
// goes through state.Store and the model re-reads a state.Snapshot
// afterwards. The store's debounced search completes on a timer
// goroutine, so Run registers a change hook that posts storeChangedMsg
// into the program and rendering stays on the event loop.
//
// # Package Structure
//
//   - app.go: Model, Options, Init/Update/View and Run
//   - input_handlers.go: key dispatch per page and the search input
//   - keys.go: key bindings (bubbles/key) and help groups
//   - header.go: logo line, page tabs, command bar and footer
//   - home.go, search.go, queue.go, cart.go, history.go: one view per page
//   - box.go: titled panel borders and centered empty states
//   - help.go: help overlay
//   - theme.go, style_helpers.go: color themes and background-safe rendering
//   - strings.go: ANSI-aware truncation helpers
//
// # Pages
//
// Five pages map to the number keys 1-5: Home, Search, Queue, Cart and
// History. Tab and shift+tab cycle through them; esc returns Home.
//
// # Search Input
//
// "/" focuses the input (switching to Search from the list pages). While
// focused, keys edit the query and only enter, esc and ctrl+c are
// interpreted. On Home, enter submits and moves to Search when the query
// has text.
//
// # Themes
//
// Nebula, Aurora and Eclipse. "T" cycles them and the choice, together
// with the cart format, is saved to the prefs file.
package ui
