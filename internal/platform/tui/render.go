package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hitbox/internal/core"
)

var (
	hitStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	clearStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headStyle  = lipgloss.NewStyle().Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true)
)

// RenderVerdict styles a collision verdict.
func RenderVerdict(collides bool) string {
	if collides {
		return hitStyle.Render("COLLIDES")
	}
	return clearStyle.Render("clear")
}

// RenderError styles an error line.
func RenderError(err error) string {
	return errStyle.Render("error: " + err.Error())
}

// RenderTitle styles a heading.
func RenderTitle(s string) string {
	return titleStyle.Render(s)
}

// RenderDim styles secondary text.
func RenderDim(s string) string {
	return dimStyle.Render(s)
}

// RenderEdge formats an edge as "(x0, y0) -> (x1, y1)".
func RenderEdge(e core.Edge) string {
	return fmt.Sprintf("(%.2f, %.2f) -> (%.2f, %.2f)", e.Start.X, e.Start.Y, e.End.X, e.End.Y)
}

// RenderTable lays out rows under a bold header, truncating to maxWidth
// when it is positive.
func RenderTable(header []string, rows [][]string, maxWidth int) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	line := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			parts[i] = lipgloss.NewStyle().Width(w).Render(c)
		}
		s := "  " + strings.Join(parts, "  ")
		if maxWidth > 0 && lipgloss.Width(s) > maxWidth {
			s = lipgloss.NewStyle().MaxWidth(maxWidth).Render(s)
		}
		return s
	}

	var sb strings.Builder
	sb.WriteString(headStyle.Render(line(header)))
	for _, row := range rows {
		sb.WriteString("\n")
		sb.WriteString(line(row))
	}
	return sb.String()
}
