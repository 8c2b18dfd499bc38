package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cosmic/internal/state"
)

const (
	appName    = "Cosmic Converter"
	tagline    = "Your gateway to the audio universe."
	devNotice  = "This site is in active development. Thank you for your patience."
	footerText = "© 2025 Cosmic Converter."
)

// pageLabels are the nav tab names in navigation order.
var pageLabels = map[state.Page]string{
	state.PageHome:    "Home",
	state.PageSearch:  "Search",
	state.PageQueue:   "Queue",
	state.PageCart:    "Cart",
	state.PageHistory: "History",
}

// renderHeader renders the logo line with the now playing indicator.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{bg.Render("✦ "+appName, styles.Logo)}
	if m.width >= LayoutCompactWidth {
		parts = append(parts, bg.Render(tagline, styles.MutedText))
	}

	if m.snapshot.Playing != "" {
		if song, ok := m.store.Catalog().Lookup(m.snapshot.Playing); ok {
			parts = append(parts,
				bg.Render("▶", styles.PlayingText)+bg.Space()+
					bg.Render(truncate(song.Title, 30), styles.Text)+bg.Space()+
					bg.Render(song.Duration, styles.FaintText))
		}
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderNav renders the page tabs with queue and cart badges.
func (m Model) renderNav() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	tabs := make([]string, 0, len(state.Pages))
	for i, page := range state.Pages {
		label := fmt.Sprintf("%d %s", i+1, pageLabels[page])
		switch page {
		case state.PageQueue:
			if n := len(m.snapshot.Queue); n > 0 {
				label += fmt.Sprintf(" (%d)", n)
			}
		case state.PageCart:
			if n := len(m.snapshot.Cart); n > 0 {
				label += fmt.Sprintf(" (%d)", n)
			}
		}

		if page == m.snapshot.Page {
			tabs = append(tabs, styles.Selected.Bold(true).Padding(0, 1).Render(label))
			continue
		}
		tabs = append(tabs, bg.Spaces(1)+bg.Render(label, styles.MutedText)+bg.Spaces(1))
	}

	return styles.Header.Width(m.width).Render(strings.Join(tabs, bg.Space()))
}

// renderCommandBar renders the command hints for the current page and the
// latest action notice.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.input.Focused():
		commands = []cmd{
			{"enter", "Search"},
			{"esc", "Done"},
		}
	case m.snapshot.Page == state.PageSearch:
		commands = []cmd{
			{"/", "Edit"},
			{"Space", "Play"},
			{"L", "Like"},
			{"a", "Queue"},
			{"c", "Cart"},
			{"m", string(m.cartFormat)},
			{"j/k", "Navigate"},
		}
	case m.snapshot.Page == state.PageQueue:
		commands = []cmd{
			{"Space", "Play"},
			{"x", "Remove"},
			{"j/k", "Navigate"},
		}
	case m.snapshot.Page == state.PageCart:
		commands = []cmd{
			{"x", "Remove"},
			{"C", "Checkout"},
			{"j/k", "Navigate"},
		}
	case m.snapshot.Page == state.PageHistory:
		commands = []cmd{
			{"j/k", "Navigate"},
		}
	default:
		commands = []cmd{
			{"/", "Search"},
			{"2-5", "Pages"},
		}
	}
	commands = append(commands, cmd{"?", "More"})

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+2)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	if m.notice != "" {
		noticeStyle := styles.SuccessText
		mark := "✓"
		if m.noticeErr {
			noticeStyle = styles.WarningText.Bold(true)
			mark = "!"
		}
		segments = append(segments,
			bg.Render(mark, noticeStyle)+bg.Space()+bg.Render(truncate(m.notice, 60), noticeStyle))
	}

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}

// renderFooter renders the short key help and the copyright line.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	h := m.help
	h.Styles.ShortKey = styles.AccentText
	h.Styles.ShortDesc = styles.FaintText
	h.Styles.ShortSeparator = styles.FaintText
	h.Styles.Ellipsis = styles.FaintText

	copyright := bg.Render(footerText, styles.FaintText)
	h.Width = max(m.width-lipgloss.Width(copyright)-4, 0)
	left := h.ShortHelpView(m.keys.ShortHelp())

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(copyright)-2, 1)
	return styles.Footer.Width(m.width).Render(left + bg.Spaces(gap) + copyright)
}
