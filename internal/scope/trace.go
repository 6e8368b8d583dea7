package scope

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/voltlab/voltscope/internal/config"
)

var (
	colorTrace = lipgloss.Color("#00FF41")
	colorGrid  = lipgloss.Color("#004A0A")
	colorAxis  = lipgloss.Color("#008F11")

	styleTrace = lipgloss.NewStyle().Foreground(colorTrace).Bold(true)
	styleGrid  = lipgloss.NewStyle().Foreground(colorGrid)
	styleAxis  = lipgloss.NewStyle().Foreground(colorAxis)
)

const axisWidth = 7 // "9.99V |"

// Cell classes for styling.
const (
	cellBlank = iota
	cellGrid
	cellTrace
)

// Render draws the sample history as an oscilloscope trace. Samples are
// chronological, oldest first; the whole slice is fitted to the plot width.
func Render(width, height int, samples []float64) string {
	if width < axisWidth+10 || height < 5 || len(samples) == 0 {
		return ""
	}

	plotW := width - axisWidth
	sc := autoscale(samples)

	grid := make([][]byte, height)
	class := make([][]int, height)
	for r := range grid {
		grid[r] = make([]byte, plotW)
		class[r] = make([]int, plotW)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}

	drawGraticule(grid, class, plotW, height)
	drawTrace(grid, class, samples, sc, plotW, height)

	var sb strings.Builder
	for r := 0; r < height; r++ {
		sb.WriteString(axisLabel(r, height, sc))
		writeRow(&sb, grid[r], class[r])
		if r < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// drawGraticule fills in the measurement grid: a horizontal center line and
// dots at regular intersections.
func drawGraticule(grid [][]byte, class [][]int, plotW, height int) {
	mid := height / 2
	for c := 0; c < plotW; c++ {
		grid[mid][c] = '-'
		class[mid][c] = cellGrid
	}
	for r := 0; r < height; r += 2 {
		for c := 0; c < plotW; c += 10 {
			if grid[r][c] == ' ' {
				grid[r][c] = '.'
				class[r][c] = cellGrid
			}
		}
	}
}

// drawTrace plots one sample per column, joining columns with slope
// characters and vertical runs where the signal moves more than one row.
func drawTrace(grid [][]byte, class [][]int, samples []float64, sc scale, plotW, height int) {
	prevRow := -1
	for c := 0; c < plotW; c++ {
		v := samples[c*len(samples)/plotW]
		row := sc.row(v, height)

		ch := byte('-')
		if prevRow >= 0 {
			switch {
			case row < prevRow:
				ch = '/'
			case row > prevRow:
				ch = '\\'
			}
			// Bridge fast edges with a vertical bar.
			lo, hi := row, prevRow
			if lo > hi {
				lo, hi = hi, lo
			}
			for r := lo + 1; r < hi; r++ {
				grid[r][c] = '|'
				class[r][c] = cellTrace
			}
		}

		grid[row][c] = ch
		class[row][c] = cellTrace
		prevRow = row
	}
}

// axisLabel renders the voltage axis gutter for one row. Only the top,
// center, and bottom rows carry a numeric label.
func axisLabel(row, height int, sc scale) string {
	mid := height / 2
	if row == 0 || row == mid || row == height-1 {
		volts := sc.value(row, height) * config.MaxVolt
		return styleAxis.Render(fmt.Sprintf("%5.2fV", volts)) + styleGrid.Render("|")
	}
	return strings.Repeat(" ", axisWidth-1) + styleGrid.Render("|")
}

// writeRow styles a grid row, batching runs of the same cell class to keep
// the escape-sequence overhead down.
func writeRow(sb *strings.Builder, row []byte, class []int) {
	start := 0
	for start < len(row) {
		end := start
		for end < len(row) && class[end] == class[start] {
			end++
		}
		run := string(row[start:end])
		switch class[start] {
		case cellTrace:
			sb.WriteString(styleTrace.Render(run))
		case cellGrid:
			sb.WriteString(styleGrid.Render(run))
		default:
			sb.WriteString(run)
		}
		start = end
	}
}
