package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the scope panel and stats panel horizontally, with
// menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, scopePanel, statsPanel, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, scopePanel, statsPanel)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
