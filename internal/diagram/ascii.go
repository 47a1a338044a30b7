package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"
)

// Bar is one labelled value of a bar chart
type Bar struct {
	Label string
	Value float64
	Note  string
}

// DrawAxialEnvelope plots |N| per load case of one member as a line chart.
// An empty series gives an empty string.
func DrawAxialEnvelope(caption string, series []float64) string {
	if len(series) == 0 {
		return ""
	}
	// asciigraph needs two points to draw a line
	if len(series) == 1 {
		series = []float64{series[0], series[0]}
	}
	graph := asciigraph.Plot(series,
		asciigraph.Height(8),
		asciigraph.Width(max(len(series), 30)),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
	)
	return graph + "\n"
}

// DrawBars creates a horizontal bar chart, bars scaled to the largest value
func DrawBars(title string, bars []Bar) string {
	var sb strings.Builder

	width := 40
	labelWidth := 0
	peak := 0.0
	for _, b := range bars {
		labelWidth = max(labelWidth, utf8.RuneCountInString(b.Label))
		peak = max(peak, b.Value)
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s\n", title))
	sb.WriteString(fmt.Sprintf("  %s\n\n", strings.Repeat("─", utf8.RuneCountInString(title))))

	for _, b := range bars {
		barLen := 0
		if peak > 0 {
			barLen = int(b.Value / peak * float64(width))
		}
		note := ""
		if b.Note != "" {
			note = " (" + b.Note + ")"
		}
		sb.WriteString(fmt.Sprintf("  %-*s │%s %.0f%s\n", labelWidth, b.Label, strings.Repeat("█", barLen), b.Value, note))
	}

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
