package engine

import (
	"errors"
	"strconv"
)

// ErrNoBlank reports an internal-consistency fault: a grid with no blank
// cell. No mutator can produce this from a well-formed grid, but leniently
// loaded files can carry it in.
var ErrNoBlank = errors.New("grid has no blank cell")

// NewSolvedGrid returns the canonical solved grid for the given dimensions:
// tile "1" at (0,0), incrementing left-to-right then top-to-bottom, with the
// blank at (rows-1, cols-1).
func NewSolvedGrid(rows, cols int) Grid {
	grid := make(Grid, rows)
	label := 1
	for r := 0; r < rows; r++ {
		grid[r] = make([]Cell, cols)
		for c := 0; c < cols; c++ {
			if r == rows-1 && c == cols-1 {
				grid[r][c] = Blank
			} else {
				grid[r][c] = Cell(strconv.Itoa(label))
				label++
			}
		}
	}
	return grid
}

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns in the grid, 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// IsSolved reports whether the cells, read row-major, exactly equal the
// solved sequence 1, 2, ..., rows*cols-1, blank.
func (g Grid) IsSolved() bool {
	label := 1
	last := g.Rows()*g.Cols() - 1
	for _, row := range g {
		for _, cell := range row {
			if label > last {
				return cell == Blank
			}
			if cell != Cell(strconv.Itoa(label)) {
				return false
			}
			label++
		}
	}
	return false
}

// BlankPosition returns the position of the blank cell. A grid without a
// blank violates the core invariant and yields ErrNoBlank.
func (g Grid) BlankPosition() (Position, error) {
	for r, row := range g {
		for c, cell := range row {
			if cell.IsBlank() {
				return Position{Row: r, Col: c}, nil
			}
		}
	}
	return Position{}, ErrNoBlank
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = make([]Cell, len(row))
		copy(out[r], row)
	}
	return out
}

// Equal reports whether two grids have identical dimensions and cells.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r, row := range g {
		if len(row) != len(other[r]) {
			return false
		}
		for c, cell := range row {
			if cell != other[r][c] {
				return false
			}
		}
	}
	return true
}
