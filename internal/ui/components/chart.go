// Package components provides reusable UI components for the terminal.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/guptarohit/asciigraph"

	"github.com/j-veylop/bikeshare-explorer/internal/ui/styles"
)

// RenderLineChart creates a single-series ASCII line chart.
func RenderLineChart(data []float64, width, height int, caption string) string {
	if len(data) == 0 {
		return styles.HelpStyle.Render("No data available")
	}

	// Ensure minimum dimensions
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.Caption(caption),
	)
}

// RenderBarChart creates a horizontal bar chart with one labelled bar per
// value. Counts are printed with thousands separators.
func RenderBarChart(values []int, labels []string, width int) string {
	if len(values) == 0 {
		return ""
	}

	maxVal := 0
	for _, v := range values {
		maxVal = max(maxVal, v)
	}
	if maxVal == 0 {
		maxVal = 1
	}

	maxLabelLen := 0
	for _, l := range labels {
		maxLabelLen = max(maxLabelLen, ansi.StringWidth(l))
	}

	barWidth := width - maxLabelLen - 12 // room for label, axis and count
	if barWidth < 10 {
		barWidth = 10
	}

	lines := make([]string, 0, len(values))
	for i, v := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		pad := strings.Repeat(" ", maxLabelLen-ansi.StringWidth(label))

		barLen := max(v*barWidth/maxVal, 0)
		if v > 0 && barLen == 0 {
			barLen = 1
		}

		lines = append(lines, fmt.Sprintf("%s%s │%s %s",
			pad, label,
			styles.BarStyle.Render(strings.Repeat("█", barLen)),
			humanize.Comma(int64(v))))
	}

	return strings.Join(lines, "\n")
}
