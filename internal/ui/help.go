package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// RenderFullHelp renders the full help screen.
func RenderFullHelp(h help.Model, keys KeyMap, width, height int) string {
	content := lipgloss.NewStyle().
		Width(width-4).
		Height(height-6).
		Padding(1, 2)

	intro := LabelStyle.Render("Search, filters and page size") + "\n" +
		HelpDescStyle.Render("Press / to type a search, tab to move through the filter selects and h/l to change their value.\n"+
			"x clears the search and every filter, the status filter included, and restores the page size.")

	helpText := content.Render(intro + "\n\n" + h.FullHelpView(keys.FullHelp()))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(width).Render("Help"),
		helpText,
		FooterStyle.Width(width).Render(HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("close help")),
	)
}
