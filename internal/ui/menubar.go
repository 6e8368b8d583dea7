package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/voltlab/voltscope/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, running bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"P", "ause"},
		{"R", "eset"},
		{"+/-", " rate"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	status := ""
	if running {
		status = StyleStatusRunning.Render("SAMPLING")
	} else {
		status = StyleStatusPaused.Render("PAUSED")
	}

	left := StyleMenuKey.Render(title) + menu
	right := status + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleMenuBar.Width(width).Render(left + padding + right)
}
