package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/five82/cosmic/internal/state"
)

// renderHistory renders completed checkouts, newest first. The selected
// order is expanded to its lines.
func (m Model) renderHistory(width, height int) string {
	bgColor := m.panelBg(true)
	innerWidth := max(width-2, 4)
	history := m.snapshot.History
	title := "Download History"

	if len(history) == 0 {
		content := m.renderEmptyState(
			"No download history",
			"Your downloaded songs will appear here",
			"",
			innerWidth, max(height-2, 3), bgColor)
		return m.renderTitledBox(title, content, width, height, true)
	}

	now := m.clock.Now()
	styles := m.theme.Styles()
	cursor := m.cursors[state.PageHistory]
	start, end := visibleRange(cursor, len(history), max(height-2-len(history[cursor].Items), 1))
	var lines []string
	for i := start; i < end; i++ {
		entry := history[i]
		selected := i == cursor
		rowBg := bgColor
		if selected {
			rowBg = m.theme.SelectionBg
		}
		bg := NewBgStyle(rowBg)

		idStyle, whenStyle, totalStyle := styles.AccentText, styles.MutedText, styles.SuccessText
		if selected {
			sel := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
			idStyle, whenStyle, totalStyle = sel.Bold(true), sel, sel.Bold(true)
		}

		n := len(entry.Items)
		row := bg.Render("Order "+shortOrderID(entry.OrderID), idStyle) + bg.Spaces(2) +
			bg.Render(padRight(humanize.RelTime(entry.CompletedAt, now, "ago", "from now"), 18), whenStyle) +
			bg.Render(padRight(fmt.Sprintf("%d %s", n, plural(n, "song", "songs")), 10), whenStyle) +
			bg.Render(entry.Total.Display(), totalStyle)
		lines = append(lines, bg.FillLine(row, innerWidth))

		if !selected {
			continue
		}
		itemBg := NewBgStyle(bgColor)
		for _, item := range entry.Items {
			line := itemBg.Spaces(4) +
				itemBg.Render(padRight(truncate(item.Song.Title, 28), 28), styles.Text) + itemBg.Space() +
				styles.FormatBadge(item.Format).Render(padRight(string(item.Format), 4)) + itemBg.Spaces(2) +
				itemBg.Render(item.Price.Display(), styles.MutedText)
			lines = append(lines, itemBg.FillLine(line, innerWidth))
		}
	}

	return m.renderTitledBox(fmt.Sprintf("%s (%d)", title, len(history)), strings.Join(lines, "\n"), width, height, true)
}
