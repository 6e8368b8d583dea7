package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, running bool, rate float64, tick uint8, listen string) string {
	status := ""
	if running {
		status = StyleStatusRunning.Render("[SAMPLING]")
	} else {
		status = StyleStatusPaused.Render("[PAUSED]")
	}

	info := fmt.Sprintf(" Rate: %.0f/s  Tick: %3d", rate, tick)
	if listen != "" {
		info += fmt.Sprintf("  API: %s", listen)
	}

	content := status + StyleStatusBar.Foreground(ColorGreen).Render(info)

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleStatusBar.Width(width).Render(content + padding)
}
