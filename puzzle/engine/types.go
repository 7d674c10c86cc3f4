package engine

import (
	"encoding/json"
	"fmt"
)

// Blank is the marker value for the single empty cell in the grid.
const Blank Cell = "X"

const (
	// Validation constants
	MinGridSize         = 2
	MaxGridSize         = 32
	MaxSequenceLength   = 10000
	WebSocketBufferSize = 256
)

// Cell holds either a tile label (decimal text, "1".."N-1") or the blank
// marker. Persisted files may carry labels as JSON numbers or strings; both
// decode to the text form.
type Cell string

// IsBlank reports whether the cell is the blank marker.
func (c Cell) IsBlank() bool {
	return c == Blank
}

// UnmarshalJSON accepts a tile label as either a JSON string or a JSON
// number. Save files written by other tools commonly use the numeric form.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Cell(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*c = Cell(n.String())
		return nil
	}

	return fmt.Errorf("cell must be a string or number, got %s", string(data))
}

// Grid is a rectangular matrix of cells, row-major, 0-indexed. A well-formed
// grid contains exactly one blank; every other cell holds a distinct label.
type Grid [][]Cell

// Position represents a row,col coordinate in the grid.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Direction identifies one of the four move tokens.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

type offset struct {
	dr, dc int
}

// tileOffsets maps each token to the position of the tile that slides into
// the blank, relative to the blank. The mapping is intentionally inverted
// from the token's naive reading: "up" names the tile below the blank
// sliding upward, which moves the blank down. User-facing behavior; do not
// "fix".
var tileOffsets = map[Direction]offset{
	Up:    {1, 0},
	Down:  {-1, 0},
	Left:  {0, 1},
	Right: {0, -1},
}

// letterTokens maps the single-letter command vocabulary to directions.
var letterTokens = map[byte]Direction{
	'w': Up,
	's': Down,
	'a': Left,
	'd': Right,
}

// ParseToken resolves a move token to a Direction. It accepts the one-letter
// forms (w/a/s/d) and the word forms (up/down/left/right), case-insensitive.
// Unrecognized tokens return false; callers skip them silently.
func ParseToken(token string) (Direction, bool) {
	switch len(token) {
	case 0:
		return "", false
	case 1:
		d, ok := letterTokens[lowerByte(token[0])]
		return d, ok
	}

	switch Direction(lowerASCII(token)) {
	case Up:
		return Up, true
	case Down:
		return Down, true
	case Left:
		return Left, true
	case Right:
		return Right, true
	}
	return "", false
}

// Letter returns the one-letter command form of the direction.
func (d Direction) Letter() string {
	switch d {
	case Up:
		return "w"
	case Down:
		return "s"
	case Left:
		return "a"
	case Right:
		return "d"
	}
	return ""
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func lowerASCII(s string) string {
	buf := []byte(s)
	for i := range buf {
		buf[i] = lowerByte(buf[i])
	}
	return string(buf)
}

// PuzzleConfig represents a puzzle preset loaded from JSON.
type PuzzleConfig struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Rows          int    `json:"rows"`
	Cols          int    `json:"cols"`
	ShuffleLength int    `json:"shuffle_length"` // 0 = rows*cols*10 heuristic
	Messages      struct {
		Welcome     string `json:"welcome"`
		Solved      string `json:"solved"`
		MoveIgnored string `json:"move_ignored"`
		Shuffled    string `json:"shuffled"`
		Saved       string `json:"saved"`
	} `json:"messages"`
}

// PuzzleState represents the complete puzzle state for a session.
type PuzzleState struct {
	Grid        Grid               `json:"grid"`
	Rows        int                `json:"rows"`
	Cols        int                `json:"cols"`
	Solved      bool               `json:"solved"`
	Message     string             `json:"message"`
	ConfigName  string             `json:"config_name"`
	MoveHistory []MoveHistoryEntry `json:"move_history"`
	TotalMoves  int                `json:"total_moves"`
}

// MoveHistoryEntry represents a single applied or rejected move.
type MoveHistoryEntry struct {
	Action     string   `json:"action"`
	BlankFrom  Position `json:"blank_from"`
	BlankTo    Position `json:"blank_to"`
	Timestamp  int64    `json:"timestamp"`
	Success    bool     `json:"success"`
	MoveNumber int      `json:"move_number"`
}
