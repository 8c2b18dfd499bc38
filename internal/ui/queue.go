package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cosmic/internal/state"
)

// renderQueue renders the play queue with 1-based positions.
func (m Model) renderQueue(width, height int) string {
	bgColor := m.panelBg(true)
	innerWidth := max(width-2, 4)
	title := fmt.Sprintf("Queue (%d)", len(m.snapshot.Queue))

	if len(m.snapshot.Queue) == 0 {
		content := m.renderEmptyState(
			"Your queue is empty",
			"Add songs to create your playlist",
			"press 2 to find songs",
			innerWidth, max(height-2, 3), bgColor)
		return m.renderTitledBox(title, content, width, height, true)
	}

	posWidth := len(fmt.Sprintf("%d", len(m.snapshot.Queue)))
	cursor := m.cursors[state.PageQueue]
	start, end := visibleRange(cursor, len(m.snapshot.Queue), height-2)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		song := m.snapshot.Queue[i]
		selected := i == cursor
		rowBg := bgColor
		if selected {
			rowBg = m.theme.SelectionBg
		}
		bg := NewBgStyle(rowBg)
		styles := m.theme.Styles()

		posStyle, titleStyle, metaStyle, playStyle := styles.FaintText, styles.Text, styles.MutedText, styles.PlayingText
		if selected {
			sel := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
			posStyle, titleStyle, metaStyle, playStyle = sel, sel.Bold(true), sel, sel.Bold(true)
		}

		play := "  "
		if m.snapshot.IsPlaying(song.ID) {
			play = "▶ "
		}

		row := bg.Render(fmt.Sprintf("%*d.", posWidth, i+1), posStyle) + bg.Space() +
			bg.Render(play, playStyle) +
			bg.Render(padRight(truncate(song.Title, 28), 28), titleStyle) + bg.Space() +
			bg.Render(padRight(truncate(song.Artist, 30), 30), metaStyle) + bg.Space() +
			bg.Render(song.Duration, metaStyle)
		lines = append(lines, bg.FillLine(row, innerWidth))
	}

	return m.renderTitledBox(title, strings.Join(lines, "\n"), width, height, true)
}
