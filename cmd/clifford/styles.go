package main

import (
	"fmt"
	"strings"

	"clifford/internal/attractor"

	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.Color("#8BC34A")
	muted  = lipgloss.Color("#6b7685")

	titleStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(muted).
			Width(10)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)
)

func formatFloat(v float64) string {
	return fmt.Sprintf("%.6f", v)
}

// renderSummary draws a bordered key/value box for one trajectory.
func renderSummary(title string, p attractor.Params, s attractor.Summary) string {
	rows := []struct{ k, v string }{
		{"params", p.String()},
		{"points", fmt.Sprintf("%d", s.Count)},
		{"x range", fmt.Sprintf("[%s, %s]", formatFloat(s.MinX), formatFloat(s.MaxX))},
		{"y range", fmt.Sprintf("[%s, %s]", formatFloat(s.MinY), formatFloat(s.MaxY))},
		{"mean", fmt.Sprintf("(%s, %s)", formatFloat(s.MeanX), formatFloat(s.MeanY))},
	}
	lines := []string{titleStyle.Render(title)}
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(r.k), r.v))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

// renderTable lays out rows under a header, padding each column to its widest cell.
func renderTable(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	cells := make([]string, len(header))
	for i, h := range header {
		cells[i] = headerStyle.Render(h) + strings.Repeat(" ", widths[i]-lipgloss.Width(h))
	}
	b.WriteString(strings.Join(cells, "  "))
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			cells[i] = cell + strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		b.WriteString("\n")
	}
	return b.String()
}
