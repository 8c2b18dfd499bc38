package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/cosmic/internal/prefs"
	"github.com/five82/cosmic/internal/state"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.input.Focused() {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.navigate(m.snapshot.Page.Next())
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.navigate(m.snapshot.Page.Prev())
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.navigate(state.PageHome)
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		if page := m.snapshot.Page; page != state.PageHome && page != state.PageSearch {
			m.navigate(state.PageSearch)
		}
		cmd := m.input.Focus()
		return m, cmd
	}

	for i, binding := range m.keys.pageKeys() {
		if key.Matches(msg, binding) {
			m.navigate(state.Pages[i])
			return m, nil
		}
	}

	switch m.snapshot.Page {
	case state.PageSearch:
		return m.handleSearchKey(msg)
	case state.PageQueue:
		return m.handleQueueKey(msg)
	case state.PageCart:
		return m.handleCartKey(msg)
	case state.PageHistory:
		m.moveCursor(msg)
	}

	return m, nil
}

// handleInputKey feeds the focused search input. Every edit goes to the
// store, which owns the debounce.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		if m.snapshot.Page == state.PageHome && !m.store.SubmitSearch() {
			return m, nil
		}
		m.input.Blur()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.store.SetQuery(m.input.Value())
	m.refresh()
	return m, cmd
}

// handleSearchKey processes keyboard input for the search results.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.CycleFormat) {
		m.cartFormat = m.cartFormat.Next()
		m.savePrefs()
		cmd := m.flash(fmt.Sprintf("Cart format %s (%s)", m.cartFormat, m.cartFormat.Price(m.currency()).Display()), false)
		return m, cmd
	}

	if m.moveCursor(msg) || len(m.snapshot.Results) == 0 {
		return m, nil
	}
	song := m.snapshot.Results[m.cursors[state.PageSearch]]

	switch {
	case key.Matches(msg, m.keys.TogglePlay):
		err := m.store.TogglePlay(song.ID)
		cmd := m.report("play", err, playNotice(m.store.Snapshot(), song.Title))
		return m, cmd

	case key.Matches(msg, m.keys.ToggleLike):
		liked, err := m.store.ToggleLike(song.ID)
		text := "Unliked " + song.Title
		if liked {
			text = "Liked " + song.Title
		}
		cmd := m.report("like", err, text)
		return m, cmd

	case key.Matches(msg, m.keys.AddToQueue):
		err := m.store.AddToQueue(song.ID)
		cmd := m.report("queue", err, fmt.Sprintf("Queued %s (#%d)", song.Title, len(m.snapshot.Queue)+1))
		return m, cmd

	case key.Matches(msg, m.keys.AddToCart):
		item, err := m.store.AddToCart(song.ID, m.cartFormat)
		text := ""
		if err == nil {
			text = fmt.Sprintf("Added %s (%s %s) to cart", song.Title, item.Format, item.Price.Display())
		}
		cmd := m.report("cart", err, text)
		return m, cmd
	}

	return m, nil
}

// handleQueueKey processes keyboard input for the queue page.
func (m Model) handleQueueKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.moveCursor(msg) || len(m.snapshot.Queue) == 0 {
		return m, nil
	}
	song := m.snapshot.Queue[m.cursors[state.PageQueue]]

	switch {
	case key.Matches(msg, m.keys.TogglePlay):
		err := m.store.TogglePlay(song.ID)
		cmd := m.report("play", err, playNotice(m.store.Snapshot(), song.Title))
		return m, cmd

	case key.Matches(msg, m.keys.Remove):
		n := m.store.RemoveFromQueue(song.ID)
		cmd := m.report("unqueue", nil, fmt.Sprintf("Removed %s from queue (%d %s)", song.Title, n, plural(n, "entry", "entries")))
		return m, cmd
	}

	return m, nil
}

// handleCartKey processes keyboard input for the cart page.
func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Checkout) {
		entry, err := m.store.Checkout()
		if err != nil {
			cmd := m.report("checkout", err, "")
			return m, cmd
		}
		m.navigate(state.PageHistory)
		m.cursors[state.PageHistory] = 0
		cmd := m.flash(fmt.Sprintf("Order %s complete: %s", shortOrderID(entry.OrderID), entry.Total.Display()), false)
		return m, cmd
	}

	if m.moveCursor(msg) || len(m.snapshot.Cart) == 0 {
		return m, nil
	}
	item := m.snapshot.Cart[m.cursors[state.PageCart]]

	if key.Matches(msg, m.keys.Remove) {
		n := m.store.RemoveFromCart(item.Song.ID)
		cmd := m.report("uncart", nil, fmt.Sprintf("Removed %s from cart (%d %s)", item.Song.Title, n, plural(n, "line", "lines")))
		return m, cmd
	}

	return m, nil
}

// moveCursor applies the list navigation keys to the current page and
// reports whether msg was one of them.
func (m *Model) moveCursor(msg tea.KeyMsg) bool {
	page := m.snapshot.Page
	n := m.listLen(page)
	cursor := m.cursors[page]

	switch {
	case key.Matches(msg, m.keys.Down):
		cursor++
	case key.Matches(msg, m.keys.Up):
		cursor--
	case key.Matches(msg, m.keys.Top):
		cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		cursor = n - 1
	default:
		return false
	}

	m.cursors[page] = clampCursor(cursor, n)
	return true
}

// navigate switches pages through the store.
func (m *Model) navigate(page state.Page) {
	m.store.Navigate(page)
	m.refresh()
}

// savePrefs persists the theme and cart format.
func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, DefaultFormat: string(m.cartFormat)}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

// currency returns the code prices are shown in.
func (m Model) currency() string {
	if m.snapshot.Total != nil {
		return m.snapshot.Total.Currency().Code
	}
	return ""
}

func playNotice(snap state.Snapshot, title string) string {
	if snap.Playing == "" {
		return "Paused " + title
	}
	return "Playing " + title
}

func shortOrderID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
