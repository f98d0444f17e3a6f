package main

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	tokenize "github.com/lgtok/tokenize"
)

// RenderMatrix lays out a tokenized sentence's positions as a column-aligned
// table, one cell per alternative, padded to the widest cell per column.
func RenderMatrix(sent *tokenize.Sentence, noColor bool) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)
	markStyle := lipgloss.NewStyle().Padding(0, 1).Faint(true)
	if noColor {
		headerStyle = lipgloss.NewStyle().Padding(0, 1)
		markStyle = cellStyle
	}

	widths := make([]int, len(sent.Positions))
	for i, p := range sent.Positions {
		widths[i] = lipgloss.Width(strconv.Itoa(i))
		for _, alt := range p.Alternatives {
			if w := lipgloss.Width(alt); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var header, body []string
	for i := range sent.Positions {
		header = append(header, headerStyle.Width(widths[i]+2).Render(strconv.Itoa(i)))
	}

	depth := 0
	for _, p := range sent.Positions {
		if len(p.Alternatives) > depth {
			depth = len(p.Alternatives)
		}
	}
	rows := make([]string, depth)
	for r := 0; r < depth; r++ {
		var cells []string
		for i, p := range sent.Positions {
			cell := tokenize.EmptyWordMark
			if r < len(p.Alternatives) {
				cell = p.Alternatives[r]
			}
			style := cellStyle
			if cell == tokenize.EmptyWordMark {
				style = markStyle
			}
			cells = append(cells, style.Width(widths[i]+2).Render(cell))
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	body = append(body, rows...)

	var sb strings.Builder
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	sb.WriteString("\n")
	for _, row := range body {
		sb.WriteString(row)
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
