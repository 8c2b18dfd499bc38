package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cosmic/internal/state"
)

// renderCart renders cart lines and the running total.
func (m Model) renderCart(width, height int) string {
	bgColor := m.panelBg(true)
	innerWidth := max(width-2, 4)
	cart := m.snapshot.Cart
	title := fmt.Sprintf("Cart (%d)", len(cart))

	if len(cart) == 0 {
		content := m.renderEmptyState(
			"Your cart is empty",
			"Add some songs to get started",
			"press 2 to browse songs",
			innerWidth, max(height-2, 3), bgColor)
		return m.renderTitledBox(title, content, width, height, true)
	}

	styles := m.theme.Styles()
	cursor := m.cursors[state.PageCart]
	start, end := visibleRange(cursor, len(cart), max(height-4, 1))
	lines := make([]string, 0, end-start+2)
	for i := start; i < end; i++ {
		item := cart[i]
		selected := i == cursor
		rowBg := bgColor
		if selected {
			rowBg = m.theme.SelectionBg
		}
		bg := NewBgStyle(rowBg)

		titleStyle, metaStyle, priceStyle := styles.Text, styles.MutedText, styles.Text
		if selected {
			sel := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
			titleStyle, metaStyle, priceStyle = sel.Bold(true), sel, sel.Bold(true)
		}

		row := bg.Render(padRight(truncate(item.Song.Title, 28), 28), titleStyle) + bg.Space() +
			bg.Render(padRight(truncate(item.Song.Artist, 30), 30), metaStyle) + bg.Space() +
			styles.FormatBadge(item.Format).Render(padRight(string(item.Format), 4)) + bg.Spaces(2) +
			bg.Render(item.Price.Display(), priceStyle)
		lines = append(lines, bg.FillLine(row, innerWidth))
	}

	bg := NewBgStyle(bgColor)
	totals := styles.WithBackground(bgColor)
	lines = append(lines,
		bg.FillLine(bg.Render(strings.Repeat("─", min(innerWidth, 72)), totals.FaintText), innerWidth),
		bg.FillLine(bg.Render("Total:", totals.MutedText)+bg.Space()+
			bg.Render(m.snapshot.Total.Display(), totals.SuccessText)+bg.Spaces(4)+
			bg.Render("C", totals.AccentText)+bg.Sep(":")+bg.Render("Checkout", totals.MutedText), innerWidth),
	)

	return m.renderTitledBox(title, strings.Join(lines, "\n"), width, height, true)
}
