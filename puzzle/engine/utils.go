package engine

import "strconv"

// CountMisplaced counts cells that differ from the solved configuration,
// blank included.
func CountMisplaced(g Grid) int {
	solved := NewSolvedGrid(g.Rows(), g.Cols())
	count := 0
	for r, row := range g {
		for c, cell := range row {
			if cell != solved[r][c] {
				count++
			}
		}
	}
	return count
}

// CountBlanks counts blank cells in the grid. A well-formed grid has exactly
// one; leniently loaded files may not.
func CountBlanks(g Grid) int {
	count := 0
	for _, row := range g {
		for _, cell := range row {
			if cell.IsBlank() {
				count++
			}
		}
	}
	return count
}

// DuplicateLabels returns the non-blank labels appearing more than once.
func DuplicateLabels(g Grid) []Cell {
	seen := make(map[Cell]int)
	for _, row := range g {
		for _, cell := range row {
			if !cell.IsBlank() {
				seen[cell]++
			}
		}
	}

	var dups []Cell
	for _, row := range g {
		for _, cell := range row {
			if !cell.IsBlank() && seen[cell] > 1 {
				dups = append(dups, cell)
				seen[cell] = 0 // report each label once
			}
		}
	}
	return dups
}

// OutOfRangeLabels returns non-blank labels outside 1..rows*cols-1 or not
// parseable as integers.
func OutOfRangeLabels(g Grid) []Cell {
	max := g.Rows()*g.Cols() - 1
	var bad []Cell
	for _, row := range g {
		for _, cell := range row {
			if cell.IsBlank() {
				continue
			}
			n, err := strconv.Atoi(string(cell))
			if err != nil || n < 1 || n > max {
				bad = append(bad, cell)
			}
		}
	}
	return bad
}
