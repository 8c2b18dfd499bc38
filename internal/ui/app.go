package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/cosmic/internal/catalog"
	"github.com/five82/cosmic/internal/clock"
	"github.com/five82/cosmic/internal/prefs"
	"github.com/five82/cosmic/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Clock     clock.Clock // relative times on the history page
	Logger    *slog.Logger
	ThemeName string
	PrefsPath string
	Format    catalog.Format // initial cart format
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	clock     clock.Clock
	logger    *slog.Logger
	prefsPath string
	keys      keyMap

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	snapshot state.Snapshot

	// Widgets
	input   textinput.Model
	spinner spinner.Model
	help    help.Model

	// Per-page selection, clamped on every refresh
	cursors    map[state.Page]int
	cartFormat catalog.Format

	// Transient command bar notice
	notice    string
	noticeErr bool
	noticeSeq int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	store := opts.Store
	if store == nil {
		store = state.New(state.Options{})
	}

	clk := opts.Clock
	if clk == nil {
		clk = clock.Real()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = defaultThemeName
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	format := opts.Format
	if !format.Valid() {
		format = catalog.FormatMP3
	}

	input := textinput.New()
	input.Placeholder = "Search for songs, artists, or albums..."
	input.Prompt = "/ "
	input.CharLimit = 100

	m := Model{
		ctx:        ctx,
		store:      store,
		clock:      clk,
		logger:     logger.With("component", "ui"),
		prefsPath:  prefsPath,
		keys:       DefaultKeyMap(),
		theme:      GetTheme(themeName),
		input:      input,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:       help.New(),
		cursors:    make(map[state.Page]int, len(state.Pages)),
		cartFormat: format,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = min(max(msg.Width-12, 10), 72)
		m.ready = true
		return m, nil

	case storeChangedMsg:
		m.refresh()
		return m, nil

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
			m.noticeErr = false
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// refresh copies the store into the model and keeps every cursor in range.
func (m *Model) refresh() {
	m.snapshot = m.store.Snapshot()
	for _, page := range state.Pages {
		m.cursors[page] = clampCursor(m.cursors[page], m.listLen(page))
	}
	if !m.input.Focused() && m.input.Value() != m.snapshot.Query {
		m.input.SetValue(m.snapshot.Query)
	}
}

// listLen returns the number of selectable rows on page.
func (m Model) listLen(page state.Page) int {
	switch page {
	case state.PageSearch:
		return len(m.snapshot.Results)
	case state.PageQueue:
		return len(m.snapshot.Queue)
	case state.PageCart:
		return len(m.snapshot.Cart)
	case state.PageHistory:
		return len(m.snapshot.History)
	default:
		return 0
	}
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

// flash shows text in the command bar until noticeTTL passes.
func (m *Model) flash(text string, isErr bool) tea.Cmd {
	m.noticeSeq++
	m.notice = text
	m.noticeErr = isErr
	seq := m.noticeSeq
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

// report refreshes the snapshot and flashes the outcome of an action.
func (m *Model) report(action string, err error, text string) tea.Cmd {
	m.refresh()
	if err != nil {
		m.logger.Warn("action rejected", "action", action, "page", m.snapshot.Page.String(), "error", err)
		return m.flash(err.Error(), true)
	}
	return m.flash(text, false)
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderNav())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderContent renders the main content area for the current page.
func (m Model) renderContent() string {
	height := max(m.height-chromeHeight, 5)
	switch m.snapshot.Page {
	case state.PageSearch:
		return m.renderSearch(m.width, height)
	case state.PageQueue:
		return m.renderQueue(m.width, height)
	case state.PageCart:
		return m.renderCart(m.width, height)
	case state.PageHistory:
		return m.renderHistory(m.width, height)
	default:
		return m.renderHome(m.width, height)
	}
}

// Messages

// storeChangedMsg is posted when the store changes off the event loop.
type storeChangedMsg struct{}

type noticeExpiredMsg struct{ seq int }

// Run starts the Bubble Tea program and blocks until the user quits or
// the context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))

	m.store.SetOnChange(func() { p.Send(storeChangedMsg{}) })
	defer m.store.SetOnChange(nil)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
