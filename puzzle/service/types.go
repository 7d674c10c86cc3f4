package service

import (
	"time"

	"github.com/tilegames/slide-puzzle/puzzle/engine"
)

// SessionInfo provides information about a puzzle session
type SessionInfo struct {
	ID             string               `json:"id"`
	ConfigName     string               `json:"config_name"`
	CreatedAt      time.Time            `json:"created_at"`
	LastAccessedAt time.Time            `json:"last_accessed_at"`
	PuzzleState    *engine.PuzzleState  `json:"puzzle_state"`
	PuzzleConfig   *engine.PuzzleConfig `json:"puzzle_config"`
}

// MoveResult contains the result of a single move operation
type MoveResult struct {
	Success       bool                `json:"success"`
	Token         string              `json:"token"`
	PuzzleState   *engine.PuzzleState `json:"puzzle_state"`
	Message       string              `json:"message"`
	Blank         engine.Position     `json:"blank"`
	Solved        bool                `json:"solved"`
	PossibleMoves []string            `json:"possible_moves,omitempty"`
}

// SequenceResult contains the result of applying a move sequence, literal
// or randomly generated
type SequenceResult struct {
	Sequence      string              `json:"sequence"`
	Requested     int                 `json:"requested"`
	Applied       int                 `json:"applied"`
	Ignored       int                 `json:"ignored"`
	Random        bool                `json:"random"`
	PuzzleState   *engine.PuzzleState `json:"puzzle_state"`
	Solved        bool                `json:"solved"`
	Message       string              `json:"message,omitempty"`
	PossibleMoves []string            `json:"possible_moves,omitempty"`
}

// SaveResult reports where a grid snapshot was written
type SaveResult struct {
	Path    string `json:"path"`
	Rows    int    `json:"rows"`
	Cols    int    `json:"cols"`
	Message string `json:"message"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveHistoryEntry `json:"moves"`
	TotalMoves  int                       `json:"total_moves"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// ConfigInfo provides information about a puzzle preset
type ConfigInfo struct {
	Filename      string `json:"filename"`
	ConfigID      string `json:"config_id"` // The identifier to use for session creation
	Name          string `json:"name"`      // Display name
	Description   string `json:"description"`
	Rows          int    `json:"rows"`
	Cols          int    `json:"cols"`
	ShuffleLength int    `json:"shuffle_length"`
}
