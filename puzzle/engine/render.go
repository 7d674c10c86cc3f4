package engine

import (
	"strconv"
	"strings"
)

// RenderGrid formats the grid row-major, one line per row, cells separated
// by single spaces. Tile labels are zero-padded to the width of the largest
// possible label so columns align; the blank is right-aligned to the same
// width.
func RenderGrid(g Grid) string {
	width := len(strconv.Itoa(g.Rows()*g.Cols() - 1))
	if width < 1 {
		width = 1
	}

	var b strings.Builder
	for r, row := range g {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, cell := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(padCell(cell, width))
		}
	}
	return b.String()
}

func padCell(cell Cell, width int) string {
	s := string(cell)
	if len(s) >= width {
		return s
	}
	if cell.IsBlank() {
		return strings.Repeat(" ", width-len(s)) + s
	}
	return strings.Repeat("0", width-len(s)) + s
}
