package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cosmic/internal/catalog"
	"github.com/five82/cosmic/internal/state"
)

// renderSearch renders the search page: input, status line and results.
func (m Model) renderSearch(width, height int) string {
	focused := !m.input.Focused()
	bgColor := m.panelBg(focused)
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)
	innerWidth := max(width-2, 4)

	lines := strings.Split(m.renderInput(bgColor), "\n")
	lines = append(lines, m.renderSearchStatus(styles, bg), "")

	snap := m.snapshot
	switch {
	case len(snap.Results) > 0:
		cursor := m.cursors[state.PageSearch]
		start, end := visibleRange(cursor, len(snap.Results), max(height-2-len(lines), 1))
		for i := start; i < end; i++ {
			lines = append(lines, m.renderSongRow(snap.Results[i], i == cursor && focused, innerWidth, bgColor))
		}
	case snap.HasQuery() && !snap.Loading:
		used := len(lines)
		lines = append(lines, strings.Split(m.renderEmptyState(
			"No results found",
			"Try searching with different keywords",
			"",
			innerWidth, max(height-2-used, 3), bgColor), "\n")...)
	}

	return m.renderTitledBox("Search", strings.Join(lines, "\n"), width, height, focused)
}

// renderSearchStatus renders the loading indicator, the result count and
// the active cart format.
func (m Model) renderSearchStatus(styles Styles, bg BgStyle) string {
	snap := m.snapshot

	var status string
	switch {
	case snap.Loading:
		status = m.spinner.View() + bg.Space() + bg.Render("Searching...", styles.InfoText)
	case !snap.HasQuery():
		status = bg.Render("Type to search the catalog", styles.MutedText)
	case len(snap.Results) > 0:
		n := len(snap.Results)
		status = bg.Render(fmt.Sprintf("%d %s found", n, plural(n, "song", "songs")), styles.SuccessText)
	}

	format := bg.Render("Format", styles.MutedText) + bg.Space() +
		styles.FormatBadge(m.cartFormat).Render(string(m.cartFormat)) + bg.Space() +
		bg.Render(m.cartFormat.Price(m.currency()).Display(), styles.Text)

	if status == "" {
		return format
	}
	return status + bg.Spaces(3) + format
}

// renderSongRow formats one result: play marker, like heart, title,
// artist, album, duration and, on wide terminals, the artwork URL.
func (m Model) renderSongRow(song catalog.Song, selected bool, width int, bgColor string) string {
	if selected {
		bgColor = m.theme.SelectionBg
	}
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()

	playStyle, likeStyle, titleStyle, metaStyle := styles.PlayingText, styles.LikedText, styles.Text.Bold(true), styles.MutedText
	if selected {
		sel := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		playStyle, likeStyle, titleStyle, metaStyle = sel.Bold(true), sel, sel.Bold(true), sel
	}

	play := "  "
	if m.snapshot.IsPlaying(song.ID) {
		play = "▶ "
	}
	heart := "♡"
	if song.Liked {
		heart = "♥"
	}

	titleWidth := 24
	artistWidth := 26
	if width < LayoutCompactWidth {
		titleWidth, artistWidth = 16, 14
	}

	row := bg.Render(play, playStyle) +
		bg.Render(heart, likeStyle) + bg.Space() +
		bg.Render(padRight(truncate(song.Title, titleWidth), titleWidth), titleStyle) + bg.Space() +
		bg.Render(padRight(truncate(song.Artist, artistWidth), artistWidth), metaStyle) + bg.Space()
	if width >= LayoutCompactWidth {
		row += bg.Render(padRight(truncate(song.Album, 18), 18), metaStyle) + bg.Space()
	}
	row += bg.Render(song.Duration, metaStyle)
	if width >= LayoutArtworkWidth {
		row += bg.Spaces(2) + bg.Render(truncateMiddle(song.ArtworkURL, 40), styles.FaintText)
	}

	return bg.FillLine(row, width)
}
