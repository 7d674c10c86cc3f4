package engine

import (
	"time"
)

// Apply attempts one move on the grid. It locates the blank at (r,c),
// computes the tile source (r+dr, c+dc) from the direction's offset, and
// swaps the two cells in place. A source outside the grid makes the move
// illegal: Apply returns false and the grid is untouched. Any in-bounds
// adjacent tile may always move; there is no other legality constraint.
func (g Grid) Apply(d Direction) bool {
	off, ok := tileOffsets[d]
	if !ok {
		return false
	}

	blank, err := g.BlankPosition()
	if err != nil {
		// Invariant fault from a leniently loaded grid; nothing can move.
		return false
	}

	nr := blank.Row + off.dr
	nc := blank.Col + off.dc
	if nr < 0 || nr >= g.Rows() || nc < 0 || nc >= g.Cols() {
		return false
	}

	g[blank.Row][blank.Col], g[nr][nc] = g[nr][nc], g[blank.Row][blank.Col]
	return true
}

// CanApply reports whether the move would succeed, without mutating the grid.
func (g Grid) CanApply(d Direction) bool {
	off, ok := tileOffsets[d]
	if !ok {
		return false
	}

	blank, err := g.BlankPosition()
	if err != nil {
		return false
	}

	nr := blank.Row + off.dr
	nc := blank.Col + off.dc
	return nr >= 0 && nr < g.Rows() && nc >= 0 && nc < g.Cols()
}

// ApplyMove applies one move to the puzzle state, updating the solved flag
// and status message. Returns false for illegal moves, leaving the grid
// unchanged.
func (ps *PuzzleState) ApplyMove(d Direction, config *PuzzleConfig) bool {
	moved := ps.Grid.Apply(d)
	if !moved {
		ps.Message = "Move ignored (edge or invalid)."
		if config != nil && config.Messages.MoveIgnored != "" {
			ps.Message = config.Messages.MoveIgnored
		}
		return false
	}

	ps.Solved = ps.Grid.IsSolved()
	switch {
	case ps.Solved && config != nil && config.Messages.Solved != "":
		ps.Message = config.Messages.Solved
	case ps.Solved:
		ps.Message = "Puzzle solved!"
	default:
		ps.Message = "Moved " + string(d)
	}
	return true
}

// ApplySequence applies each recognized token of a literal move string in
// order. Unrecognized characters are skipped and illegal moves ignored, so
// any input is safe to feed through. Returns the number of moves that
// actually applied.
func (ps *PuzzleState) ApplySequence(tokens string, config *PuzzleConfig) int {
	applied := 0
	for i := 0; i < len(tokens); i++ {
		d, ok := ParseToken(tokens[i : i+1])
		if !ok {
			continue
		}
		if ps.ApplyMove(d, config) {
			applied++
		}
	}
	ps.Solved = ps.Grid.IsSolved()
	return applied
}

// AddMoveToHistory records a move attempt against the state.
func (ps *PuzzleState) AddMoveToHistory(action string, from, to Position, success bool) {
	entry := MoveHistoryEntry{
		Action:     action,
		BlankFrom:  from,
		BlankTo:    to,
		Timestamp:  time.Now().Unix(),
		Success:    success,
		MoveNumber: ps.TotalMoves + 1,
	}
	ps.MoveHistory = append(ps.MoveHistory, entry)
	ps.TotalMoves++
}
