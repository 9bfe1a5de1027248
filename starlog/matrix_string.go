package starlog

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Semantic cell styles: a highlight for diagonal (self-loop) cells, which
// are the ones a reader checks first when judging how close W is to
// identity, and a muted tone for zeroes.
var (
	colorDiagonal = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7"))
	colorZero     = lipgloss.NewStyle().Foreground(lipgloss.Color("#2C4A54"))
	colorOffDiag  = lipgloss.NewStyle()
)

// MatrixString renders a k×k move multigraph as a colorized row-wise grid:
// zero cells are muted, diagonal cells (self-loops, i.e. already-home
// traffic) are highlighted, everything else prints plain.
func MatrixString(w [][]int) string {
	var b strings.Builder
	for i, row := range w {
		b.WriteString("[")
		for j, v := range row {
			cell := fmt.Sprintf("%d", v)
			switch {
			case i == j && v > 0:
				cell = colorDiagonal.Render(cell)
			case v == 0:
				cell = colorZero.Render(cell)
			default:
				cell = colorOffDiag.Render(cell)
			}
			b.WriteString(cell)
			if j+1 < len(row) {
				b.WriteString(", ")
			}
		}
		b.WriteString("]")
		if i+1 < len(w) {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// PlainMatrixString renders w without ANSI styling, for piped output or
// --no-color runs (lipgloss styles degrade to no-ops when rendered through
// a style with no colors set, but this avoids allocating the styles at all).
func PlainMatrixString(w [][]int) string {
	var b strings.Builder
	for i, row := range w {
		b.WriteString("[")
		for j, v := range row {
			fmt.Fprintf(&b, "%d", v)
			if j+1 < len(row) {
				b.WriteString(", ")
			}
		}
		b.WriteString("]")
		if i+1 < len(w) {
			b.WriteString("\n")
		}
	}
	return b.String()
}
