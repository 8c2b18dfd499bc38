package ui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/cosmic/internal/catalog"
	"github.com/five82/cosmic/internal/clock"
	"github.com/five82/cosmic/internal/prefs"
	"github.com/five82/cosmic/internal/state"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

type harness struct {
	t     *testing.T
	m     Model
	clk   *clock.FakeClock
	store *state.Store
	prefs string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	clk := clock.Fake(epoch)
	store := state.New(state.Options{Catalog: catalog.Default(), Clock: clk})
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")

	h := &harness{
		t:     t,
		clk:   clk,
		store: store,
		prefs: prefsPath,
		m:     New(Options{Store: store, Clock: clk, PrefsPath: prefsPath}),
	}
	h.send(tea.WindowSizeMsg{Width: 140, Height: 40})
	return h
}

func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

func (h *harness) press(keys ...string) {
	h.t.Helper()
	for _, k := range keys {
		h.send(keyMsg(k))
	}
}

func (h *harness) typeText(text string) {
	h.t.Helper()
	for _, r := range text {
		h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// settle fires the debounce and delivers the change notification the
// way Run's hook would.
func (h *harness) settle() {
	h.t.Helper()
	h.clk.Advance(state.DefaultSearchDebounce)
	h.send(storeChangedMsg{})
}

func (h *harness) view() string {
	return ansi.Strip(h.m.View())
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func TestNumberKeysSwitchPages(t *testing.T) {
	h := newHarness(t)

	want := []state.Page{state.PageSearch, state.PageQueue, state.PageCart, state.PageHistory, state.PageHome}
	for i, k := range []string{"2", "3", "4", "5", "1"} {
		h.press(k)
		if h.m.snapshot.Page != want[i] {
			t.Fatalf("after %q page = %s, want %s", k, h.m.snapshot.Page, want[i])
		}
	}
}

func TestTabCyclesAndEscGoesHome(t *testing.T) {
	h := newHarness(t)

	h.press("tab", "tab")
	if h.m.snapshot.Page != state.PageQueue {
		t.Fatalf("page = %s, want queue", h.m.snapshot.Page)
	}
	h.press("shift+tab")
	if h.m.snapshot.Page != state.PageSearch {
		t.Fatalf("page = %s, want search", h.m.snapshot.Page)
	}
	h.press("esc")
	if h.m.snapshot.Page != state.PageHome {
		t.Fatalf("page = %s, want home", h.m.snapshot.Page)
	}
}

func TestSearchTypingIsDebounced(t *testing.T) {
	h := newHarness(t)

	h.press("2", "/")
	if !h.m.input.Focused() {
		t.Fatalf("input not focused after /")
	}
	h.typeText("dar")

	if !h.m.snapshot.Loading {
		t.Fatalf("Loading = false while debounce pending")
	}
	if got := h.view(); !strings.Contains(got, "Searching...") {
		t.Fatalf("view missing Searching...:\n%s", got)
	}

	h.settle()

	if h.m.snapshot.Loading {
		t.Fatalf("Loading = true after debounce")
	}
	if h.m.snapshot.SearchEvaluations != 1 {
		t.Fatalf("SearchEvaluations = %d, want 1", h.m.snapshot.SearchEvaluations)
	}
	if len(h.m.snapshot.Results) != 1 || h.m.snapshot.Results[0].Title != "Darkside" {
		t.Fatalf("Results = %+v, want [Darkside]", h.m.snapshot.Results)
	}
	got := h.view()
	if !strings.Contains(got, "1 song found") || !strings.Contains(got, "Darkside") {
		t.Fatalf("view missing results:\n%s", got)
	}
}

func TestSearchNoResultsShowsEmptyState(t *testing.T) {
	h := newHarness(t)

	h.press("2", "/")
	h.typeText("zzz")
	h.settle()

	got := h.view()
	if !strings.Contains(got, "No results found") || !strings.Contains(got, "Try searching with different keywords") {
		t.Fatalf("view missing empty state:\n%s", got)
	}
}

func TestHomeEnterSubmitsOnlyWithQuery(t *testing.T) {
	h := newHarness(t)

	h.press("/", "enter")
	if h.m.snapshot.Page != state.PageHome || !h.m.input.Focused() {
		t.Fatalf("empty submit: page = %s focused = %v, want home and focused", h.m.snapshot.Page, h.m.input.Focused())
	}

	h.typeText("   ")
	h.press("enter")
	if h.m.snapshot.Page != state.PageHome {
		t.Fatalf("whitespace submit moved to %s", h.m.snapshot.Page)
	}
	for range 3 {
		h.send(tea.KeyMsg{Type: tea.KeyBackspace})
	}

	h.typeText("spectre")
	if h.m.snapshot.Loading {
		t.Fatalf("typing on home must not schedule a search")
	}
	h.press("enter")
	if h.m.snapshot.Page != state.PageSearch {
		t.Fatalf("page = %s, want search", h.m.snapshot.Page)
	}
	if h.m.input.Focused() {
		t.Fatalf("input still focused after submit")
	}

	h.settle()
	if len(h.m.snapshot.Results) != 1 || h.m.snapshot.Results[0].Title != "The Spectre" {
		t.Fatalf("Results = %+v, want [The Spectre]", h.m.snapshot.Results)
	}
}

func searchAll(h *harness) {
	h.t.Helper()
	h.press("2", "/")
	h.typeText("walker")
	h.press("esc")
	h.settle()
	if len(h.m.snapshot.Results) != 5 {
		h.t.Fatalf("Results = %d, want 5", len(h.m.snapshot.Results))
	}
}

func TestPlayToggleKeepsSingleSlot(t *testing.T) {
	h := newHarness(t)
	searchAll(h)

	h.press("space")
	if h.m.snapshot.Playing != "1" {
		t.Fatalf("Playing = %q, want 1", h.m.snapshot.Playing)
	}
	h.press("j", "space")
	if h.m.snapshot.Playing != "2" {
		t.Fatalf("Playing = %q, want 2", h.m.snapshot.Playing)
	}
	h.press("space")
	if h.m.snapshot.Playing != "" {
		t.Fatalf("Playing = %q, want empty", h.m.snapshot.Playing)
	}
}

func TestLikeTogglesSelectedSong(t *testing.T) {
	h := newHarness(t)
	searchAll(h)

	if !h.m.snapshot.IsLiked("1") {
		t.Fatalf("Faded should start liked")
	}
	h.press("L")
	if h.m.snapshot.IsLiked("1") {
		t.Fatalf("Faded still liked after L")
	}
	if !strings.Contains(h.m.notice, "Unliked Faded") {
		t.Fatalf("notice = %q", h.m.notice)
	}
}

func TestCartFlowAndCheckout(t *testing.T) {
	h := newHarness(t)
	searchAll(h)

	h.press("c", "m", "j", "c")
	if h.m.cartFormat != catalog.FormatFLAC {
		t.Fatalf("cartFormat = %s, want FLAC", h.m.cartFormat)
	}
	if len(h.m.snapshot.Cart) != 2 {
		t.Fatalf("cart lines = %d, want 2", len(h.m.snapshot.Cart))
	}

	h.press("4")
	got := h.view()
	if !strings.Contains(got, "Total: $2.98") {
		t.Fatalf("cart view missing total:\n%s", got)
	}
	if !strings.Contains(got, "4 Cart (2)") {
		t.Fatalf("nav missing cart badge:\n%s", got)
	}

	h.clk.Advance(3 * time.Minute)
	h.press("C")
	if h.m.snapshot.Page != state.PageHistory {
		t.Fatalf("page = %s, want history", h.m.snapshot.Page)
	}
	if len(h.m.snapshot.Cart) != 0 || len(h.m.snapshot.History) != 1 {
		t.Fatalf("cart = %d history = %d, want 0 and 1", len(h.m.snapshot.Cart), len(h.m.snapshot.History))
	}
	got = h.view()
	if !strings.Contains(got, "Order ") || !strings.Contains(got, "$2.98") || !strings.Contains(got, "Faded") {
		t.Fatalf("history view missing order:\n%s", got)
	}

	h.press("4", "C")
	if !h.m.noticeErr || !strings.Contains(h.m.notice, "cart is empty") {
		t.Fatalf("notice = %q err = %v, want empty cart error", h.m.notice, h.m.noticeErr)
	}
	if got := h.view(); !strings.Contains(got, "Your cart is empty") {
		t.Fatalf("cart view missing empty state:\n%s", got)
	}
}

func TestQueueAddAndRemove(t *testing.T) {
	h := newHarness(t)
	searchAll(h)

	h.press("a", "j", "a", "j", "a")
	h.press("3")
	got := h.view()
	for _, want := range []string{"1. ", "2. ", "3. ", "Faded", "Alone", "The Spectre"} {
		if !strings.Contains(got, want) {
			t.Fatalf("queue view missing %q:\n%s", want, got)
		}
	}

	h.press("x", "x", "x")
	if len(h.m.snapshot.Queue) != 0 {
		t.Fatalf("queue = %d, want 0", len(h.m.snapshot.Queue))
	}
	if got := h.view(); !strings.Contains(got, "Your queue is empty") {
		t.Fatalf("queue view missing empty state:\n%s", got)
	}
}

func TestEmptyHistoryState(t *testing.T) {
	h := newHarness(t)
	h.press("5")
	got := h.view()
	if !strings.Contains(got, "No download history") || !strings.Contains(got, "Your downloaded songs will appear here") {
		t.Fatalf("history view missing empty state:\n%s", got)
	}
}

func TestThemeCycleSavesPrefs(t *testing.T) {
	h := newHarness(t)

	h.press("T")
	if h.m.theme.Name != "Aurora" {
		t.Fatalf("theme = %s, want Aurora", h.m.theme.Name)
	}
	p, err := prefs.Load(h.prefs)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if p.Theme != "Aurora" || p.DefaultFormat != "MP3" {
		t.Fatalf("prefs = %+v, want Aurora/MP3", p)
	}
}

func TestHelpOverlayClosesOnAnyKey(t *testing.T) {
	h := newHarness(t)

	h.press("?")
	if got := h.view(); !strings.Contains(got, "Keyboard Shortcuts") {
		t.Fatalf("help overlay not shown:\n%s", got)
	}
	h.press("2")
	if h.m.showHelp {
		t.Fatalf("help still shown")
	}
	if h.m.snapshot.Page != state.PageHome {
		t.Fatalf("key closing help also navigated to %s", h.m.snapshot.Page)
	}
}

func TestQuitKey(t *testing.T) {
	h := newHarness(t)

	cmd := h.send(keyMsg("e"))
	if cmd == nil {
		t.Fatalf("e returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("e did not quit")
	}
}

func TestTypingQuitKeyInInputDoesNotQuit(t *testing.T) {
	h := newHarness(t)

	h.press("/")
	cmd := h.send(keyMsg("e"))
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatalf("typing e quit the program")
		}
	}
	if h.m.input.Value() != "e" {
		t.Fatalf("input = %q, want e", h.m.input.Value())
	}
}

func TestNoticeExpires(t *testing.T) {
	h := newHarness(t)
	searchAll(h)

	h.press("a")
	if h.m.notice == "" {
		t.Fatalf("no notice after queueing")
	}
	h.send(noticeExpiredMsg{seq: h.m.noticeSeq - 1})
	if h.m.notice == "" {
		t.Fatalf("stale expiry cleared the notice")
	}
	h.send(noticeExpiredMsg{seq: h.m.noticeSeq})
	if h.m.notice != "" {
		t.Fatalf("notice = %q after expiry", h.m.notice)
	}
}
