// Command analyze prints quick, human-readable heuristics about puzzle
// presets in the project's configs directory and about saved grid snapshots.
// For presets it summarizes dimensions and shuffle settings; for snapshots it
// reports the blank position, misplaced tiles, and any label problems that
// would make the grid unplayable.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tilegames/slide-puzzle/puzzle/engine"
)

// AnalysisPreset is a light struct for reading preset files used by analysis.
type AnalysisPreset struct {
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Rows          int               `json:"rows"`
	Cols          int               `json:"cols"`
	ShuffleLength int               `json:"shuffle_length"`
	Messages      map[string]string `json:"messages"`
}

func main() {
	presets := []string{
		"classic.json",
		"fifteen.json",
		"wide.json",
		"pocket.json",
	}

	for _, presetFile := range presets {
		fmt.Printf("\n=== Analyzing preset %s ===\n", presetFile)
		analyzePreset(filepath.Join("configs", presetFile))
	}

	// Any extra arguments are treated as grid snapshot files
	for _, path := range os.Args[1:] {
		fmt.Printf("\n=== Analyzing snapshot %s ===\n", path)
		analyzeSnapshot(path)
	}
}

func analyzePreset(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var preset AnalysisPreset
	if err := json.Unmarshal(data, &preset); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}

	tiles := preset.Rows*preset.Cols - 1
	fmt.Printf("Name: %s\n", preset.Name)
	fmt.Printf("Grid: %d x %d (%d tiles + blank)\n", preset.Rows, preset.Cols, tiles)
	fmt.Printf("Shuffle Length: %d\n", preset.ShuffleLength)

	if preset.Rows < engine.MinGridSize || preset.Cols < engine.MinGridSize {
		fmt.Printf("⚠️  WARNING: dimensions below the minimum of %d\n", engine.MinGridSize)
	}
	if preset.Rows > engine.MaxGridSize || preset.Cols > engine.MaxGridSize {
		fmt.Printf("⚠️  WARNING: dimensions above the maximum of %d\n", engine.MaxGridSize)
	}

	// A shuffle much shorter than the tile count barely scrambles the grid
	if preset.ShuffleLength > 0 && preset.ShuffleLength < tiles {
		fmt.Printf("⚠️  WARNING: shuffle length %d is shorter than the tile count %d\n",
			preset.ShuffleLength, tiles)
	} else if preset.ShuffleLength == 0 {
		fmt.Printf("Shuffle falls back to the %dx%dx10 heuristic (%d moves)\n",
			preset.Rows, preset.Cols, engine.DefaultShuffleLength(preset.Rows, preset.Cols))
	} else {
		fmt.Printf("✅ Shuffle length looks reasonable\n")
	}

	missing := []string{}
	for _, key := range []string{"welcome", "solved", "move_ignored", "shuffled", "saved"} {
		if preset.Messages[key] == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		fmt.Printf("⚠️  WARNING: missing messages: %v\n", missing)
	} else {
		fmt.Printf("✅ All messages present\n")
	}
}

func analyzeSnapshot(path string) {
	grid, err := engine.LoadGridFromFile(path)
	if err != nil {
		fmt.Printf("Error loading snapshot: %v\n", err)
		return
	}

	rows, cols := grid.Rows(), grid.Cols()
	fmt.Printf("Grid: %d x %d\n", rows, cols)

	if pos, err := grid.BlankPosition(); err == nil {
		fmt.Printf("Blank Position: (%d, %d)\n", pos.Row, pos.Col)
	} else {
		fmt.Printf("⚠️  WARNING: %v\n", err)
	}

	if blanks := engine.CountBlanks(grid); blanks != 1 {
		fmt.Printf("⚠️  CRITICAL: %d blank cells (expected exactly 1)\n", blanks)
	}

	if dupes := engine.DuplicateLabels(grid); len(dupes) > 0 {
		fmt.Printf("⚠️  CRITICAL: duplicate labels: %v\n", dupes)
	}

	if oor := engine.OutOfRangeLabels(grid); len(oor) > 0 {
		fmt.Printf("⚠️  CRITICAL: out-of-range labels: %v\n", oor)
	}

	misplaced := engine.CountMisplaced(grid)
	fmt.Printf("Misplaced Tiles: %d\n", misplaced)

	if grid.IsSolved() {
		fmt.Printf("✅ Snapshot is the solved configuration\n")
	} else {
		fmt.Printf("Snapshot is %d tiles away from solved (by count, not distance)\n", misplaced)
	}
}
