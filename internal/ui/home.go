package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// renderHome renders the landing page with the search bar.
func (m Model) renderHome(width, height int) string {
	bgColor := m.panelBg(false)
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)
	innerWidth := max(width-2, 4)

	hint := "press / to start typing"
	if m.input.Focused() {
		hint = "press enter to search"
	}

	block := lipgloss.JoinVertical(lipgloss.Center,
		bg.Render("✦ "+appName+" ✦", styles.Logo),
		bg.Render(tagline, styles.MutedText),
		"",
		m.renderInput(bgColor),
		bg.Render(hint, styles.FaintText),
		"",
		bg.Render(devNotice, styles.WarningText),
	)

	content := lipgloss.Place(innerWidth, max(height-2, 1), lipgloss.Center, lipgloss.Center, block,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(bgColor)))
	return m.renderTitledBox("Home", content, width, height, false)
}

// renderInput renders the search input with theme colors.
func (m Model) renderInput(bgColor string) string {
	styles := m.theme.Styles().WithBackground(bgColor)
	in := m.input
	in.PromptStyle = styles.AccentText
	in.TextStyle = styles.Text
	in.PlaceholderStyle = styles.FaintText
	in.Cursor.Style = styles.AccentText
	in.Cursor.TextStyle = styles.Text

	border := m.theme.Border
	if in.Focused() {
		border = m.theme.BorderFocus
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bgColor)).
		Background(lipgloss.Color(bgColor)).
		Padding(0, 1).
		Render(in.View())
}
