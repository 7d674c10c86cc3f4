package engine

import (
	"fmt"
	"math/rand"
)

// Engine provides the main interface for puzzle operations
type Engine interface {
	// Puzzle state management
	GetState() *PuzzleState
	SetState(state *PuzzleState) error
	Reset() *PuzzleState
	IsSolved() bool
	BlankPosition() (Position, error)

	// Move operations
	Move(token string) bool
	CanMove(token string) bool
	GetPossibleMoves() []string
	ApplySequence(tokens string) int
	BulkMove(moves []string) []bool
	Shuffle(length int, rng *rand.Rand) string

	// Configuration
	GetConfig() *PuzzleConfig
	SetConfig(config *PuzzleConfig) error

	// History
	GetMoveHistory() []MoveHistoryEntry
	GetLastMove() *MoveHistoryEntry
}

// PuzzleEngine implements the Engine interface
type PuzzleEngine struct {
	state  *PuzzleState
	config *PuzzleConfig
}

// NewEngine creates a new puzzle engine with the provided preset
func NewEngine(config *PuzzleConfig) (*PuzzleEngine, error) {
	if err := ValidatePuzzleConfig(config); err != nil {
		return nil, err
	}

	engine := &PuzzleEngine{
		config: config,
		state:  InitStateFromConfig(config),
	}

	return engine, nil
}

// NewEngineWithDefaults creates a new puzzle engine with the default preset
func NewEngineWithDefaults() *PuzzleEngine {
	config := DefaultPuzzleConfig()
	return &PuzzleEngine{
		config: config,
		state:  InitStateFromConfig(config),
	}
}

// GetState returns the current puzzle state
func (e *PuzzleEngine) GetState() *PuzzleState {
	return e.state
}

// SetState sets the puzzle state (used for persistence loading)
func (e *PuzzleEngine) SetState(state *PuzzleState) error {
	if state == nil {
		return fmt.Errorf("state cannot be nil")
	}
	if len(state.Grid) > 0 {
		state.Rows = state.Grid.Rows()
		state.Cols = state.Grid.Cols()
		state.Solved = state.Grid.IsSolved()
	}
	e.state = state
	return nil
}

// Reset restores the solved configuration. Cumulative move history and
// totals survive the reset.
func (e *PuzzleEngine) Reset() *PuzzleState {
	prevHistory := e.state.MoveHistory
	prevTotal := e.state.TotalMoves

	e.state = InitStateFromConfig(e.config)
	e.state.MoveHistory = prevHistory
	e.state.TotalMoves = prevTotal

	return e.state
}

// IsSolved reports whether the grid matches the solved configuration
func (e *PuzzleEngine) IsSolved() bool {
	return e.state.Grid.IsSolved()
}

// BlankPosition returns the current position of the blank cell
func (e *PuzzleEngine) BlankPosition() (Position, error) {
	return e.state.Grid.BlankPosition()
}

// Move applies a single move token. Unrecognized tokens and illegal moves
// return false with the grid unchanged; both attempts are recorded in the
// move history.
func (e *PuzzleEngine) Move(token string) bool {
	d, ok := ParseToken(token)
	if !ok {
		return false
	}

	from, err := e.state.Grid.BlankPosition()
	if err != nil {
		return false
	}

	success := e.state.ApplyMove(d, e.config)

	to := from
	if success {
		to, _ = e.state.Grid.BlankPosition()
	}
	e.state.AddMoveToHistory(string(d), from, to, success)

	return success
}

// CanMove checks whether a move token would apply
func (e *PuzzleEngine) CanMove(token string) bool {
	d, ok := ParseToken(token)
	if !ok {
		return false
	}
	return e.state.Grid.CanApply(d)
}

// GetPossibleMoves returns all tokens that would currently apply
func (e *PuzzleEngine) GetPossibleMoves() []string {
	directions := []Direction{Up, Down, Left, Right}
	var possible []string

	for _, d := range directions {
		if e.state.Grid.CanApply(d) {
			possible = append(possible, string(d))
		}
	}

	return possible
}

// ApplySequence feeds a literal move-letter string through the state,
// recording each recognized token in the history. Returns the number of
// moves that applied.
func (e *PuzzleEngine) ApplySequence(tokens string) int {
	applied := 0
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i : i+1]
		if _, ok := ParseToken(tok); !ok {
			continue
		}
		if e.Move(tok) {
			applied++
		}
	}
	return applied
}

// BulkMove executes multiple move tokens in sequence, returning the success
// status of each
func (e *PuzzleEngine) BulkMove(moves []string) []bool {
	results := make([]bool, 0, len(moves))

	for _, token := range moves {
		results = append(results, e.Move(token))
	}

	return results
}

// Shuffle generates a random move sequence of the given length with the
// provided random source and applies it. Returns the generated sequence.
// The walk is blind: nothing guarantees the result differs from the input
// grid or is any easier to solve.
func (e *PuzzleEngine) Shuffle(length int, rng *rand.Rand) string {
	if length <= 0 {
		length = DefaultShuffleLength(e.state.Rows, e.state.Cols)
	}
	if length > MaxSequenceLength {
		length = MaxSequenceLength
	}

	seq := RandomSequence(rng, length)
	e.ApplySequence(seq)
	if e.config != nil && e.config.Messages.Shuffled != "" {
		e.state.Message = fmt.Sprintf(e.config.Messages.Shuffled, length)
	}
	return seq
}

// GetConfig returns the current puzzle preset
func (e *PuzzleEngine) GetConfig() *PuzzleConfig {
	return e.config
}

// SetConfig sets a new preset and resets the puzzle
func (e *PuzzleEngine) SetConfig(config *PuzzleConfig) error {
	if err := ValidatePuzzleConfig(config); err != nil {
		return err
	}

	e.config = config
	e.state = InitStateFromConfig(config)
	return nil
}

// GetMoveHistory returns the complete move history
func (e *PuzzleEngine) GetMoveHistory() []MoveHistoryEntry {
	return e.state.MoveHistory
}

// GetLastMove returns the last move made, or nil if no moves
func (e *PuzzleEngine) GetLastMove() *MoveHistoryEntry {
	if len(e.state.MoveHistory) == 0 {
		return nil
	}
	return &e.state.MoveHistory[len(e.state.MoveHistory)-1]
}
