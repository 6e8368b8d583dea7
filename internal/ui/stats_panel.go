package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/voltlab/voltscope/internal/config"
	"github.com/voltlab/voltscope/internal/signal"
)

// RenderStatsPanel renders the derived-statistics sidebar.
func RenderStatsPanel(s signal.Stats, width, height int) string {
	innerW := width - 4
	if innerW < 14 {
		innerW = 14
	}

	title := StylePanelTitle.Render("STATISTICS")
	separator := StyleSeparator.Render(strings.Repeat("-", innerW))

	lines := []string{title, separator, ""}

	freq := "--"
	if s.Frequency > 0 {
		freq = fmt.Sprintf("%.2f Hz", s.Frequency)
	}
	wavelength := "--"
	if s.Wavelength > 0 {
		wavelength = fmt.Sprintf("%.3f s", s.Wavelength)
	}

	fields := []struct{ label, value string }{
		{"Amplitude", fmt.Sprintf("%.3f V", s.Amplitude)},
		{"Frequency", freq},
		{"Wavelength", wavelength},
		{"", ""},
		{"Average", formatVolts(s.Average)},
		{"Max", formatVolts(s.Max)},
		{"Min", formatVolts(s.Min)},
		{"Reading", formatVolts(s.Last)},
	}

	for _, f := range fields {
		if f.label == "" {
			lines = append(lines, "")
			continue
		}
		label := StyleStatLabel.Render(fmt.Sprintf("  %-11s", f.label))
		value := StyleStatValue.Render(f.value)
		lines = append(lines, label+value)
	}

	lines = append(lines, "")

	peak := StylePeakOutside.Render("  peak: idle")
	if s.InPeak {
		peak = StylePeakInside.Render("  peak: AT MAX")
	}
	lines = append(lines, peak)

	lines = append(lines, "")
	barW := innerW - 4
	if barW < 8 {
		barW = 8
	}
	lines = append(lines, "  "+renderLevelBar(s.Last, barW))

	// Pad to fill height
	for len(lines) < height-2 {
		lines = append(lines, "")
	}
	if len(lines) > height-2 {
		lines = lines[:height-2]
	}

	content := strings.Join(lines, "\n")
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}

// renderLevelBar draws the live reading as a filled bar across the full
// normalized [0, 1] sample range.
func renderLevelBar(v float64, width int) string {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	filled := int(math.Round(v * float64(width)))

	filledPart := lipgloss.NewStyle().Foreground(ColorPhosphor).Render(strings.Repeat("|", filled))
	emptyPart := lipgloss.NewStyle().Foreground(ColorDimGreen).Render(strings.Repeat("-", width-filled))
	return StyleHelp.Render("[") + filledPart + emptyPart + StyleHelp.Render("]")
}

func formatVolts(normalized float64) string {
	return fmt.Sprintf("%.3f V", normalized*config.MaxVolt)
}
