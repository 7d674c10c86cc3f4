package engine

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultSaveFile is the save path used when the caller supplies none.
const DefaultSaveFile = "puzzle_save.json"

// SaveRecord is the persisted file format: dimensions plus the row-major
// grid contents, blank marker preserved as its own value.
type SaveRecord struct {
	Rows int  `json:"rows"`
	Cols int  `json:"cols"`
	Grid Grid `json:"grid"`
}

// FormatError reports a structurally invalid save record: missing required
// fields or a non-rectangular grid.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "invalid puzzle record: " + e.Reason
}

// Serialize produces the save record for a grid. Pure function, no I/O.
func Serialize(g Grid) (*SaveRecord, error) {
	if g.Rows() == 0 || g.Cols() == 0 {
		return nil, &FormatError{Reason: "grid is empty"}
	}
	for r, row := range g {
		if len(row) != g.Cols() {
			return nil, &FormatError{Reason: fmt.Sprintf("row %d has %d cells, want %d", r, len(row), g.Cols())}
		}
	}

	return &SaveRecord{
		Rows: g.Rows(),
		Cols: g.Cols(),
		Grid: g.Clone(),
	}, nil
}

// Deserialize reconstructs a grid from a save record. It checks only shape:
// required fields present and a rectangular grid matching the declared
// dimensions. Permutation invariants are deliberately not validated, so a
// corrupted file (duplicate labels, missing blank) loads as-is and simply
// behaves according to the literal move and solved-check definitions. Use
// ValidateGrid for the strict variant.
func Deserialize(rec *SaveRecord) (Grid, error) {
	if rec == nil {
		return nil, &FormatError{Reason: "record is nil"}
	}
	if rec.Rows <= 0 || rec.Cols <= 0 {
		return nil, &FormatError{Reason: "rows and cols are required"}
	}
	if len(rec.Grid) != rec.Rows {
		return nil, &FormatError{Reason: fmt.Sprintf("grid has %d rows, header says %d", len(rec.Grid), rec.Rows)}
	}
	for r, row := range rec.Grid {
		if len(row) != rec.Cols {
			return nil, &FormatError{Reason: fmt.Sprintf("row %d has %d cells, header says %d", r, len(row), rec.Cols)}
		}
	}

	return rec.Grid.Clone(), nil
}

// ValidateGrid is the optional strict check on top of the lenient load:
// exactly one blank, and the remaining labels a permutation of 1..rows*cols-1
// with no duplicates or gaps.
func ValidateGrid(g Grid) error {
	total := g.Rows() * g.Cols()
	if total == 0 {
		return &FormatError{Reason: "grid is empty"}
	}

	blanks := 0
	seen := make(map[Cell]bool, total)
	for r, row := range g {
		for c, cell := range row {
			if cell.IsBlank() {
				blanks++
				continue
			}
			if seen[cell] {
				return fmt.Errorf("duplicate label %q at (%d,%d)", cell, r, c)
			}
			seen[cell] = true
		}
	}

	if blanks != 1 {
		return fmt.Errorf("grid must have exactly one blank, found %d", blanks)
	}

	solved := NewSolvedGrid(g.Rows(), g.Cols())
	for _, row := range solved {
		for _, cell := range row {
			if cell.IsBlank() {
				continue
			}
			if !seen[cell] {
				return fmt.Errorf("label %q is missing", cell)
			}
		}
	}

	return nil
}

// SaveGridToFile serializes the grid and writes it as indented JSON.
func SaveGridToFile(g Grid, path string) error {
	if path == "" {
		path = DefaultSaveFile
	}

	rec, err := Serialize(g)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal save record: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}

	return nil
}

// LoadGridFromFile reads a save file and reconstructs the grid.
func LoadGridFromFile(path string) (Grid, error) {
	if path == "" {
		path = DefaultSaveFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rec SaveRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, &FormatError{Reason: fmt.Sprintf("malformed JSON: %v", err)}
	}

	return Deserialize(&rec)
}
