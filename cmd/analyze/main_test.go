package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tilegames/slide-puzzle/puzzle/engine"
)

func TestAnalysisPreset(t *testing.T) {
	preset := AnalysisPreset{
		Name:          "Test Preset",
		Description:   "Test puzzle preset",
		Rows:          3,
		Cols:          3,
		ShuffleLength: 90,
		Messages: map[string]string{
			"welcome": "Welcome!",
		},
	}

	if preset.Name != "Test Preset" {
		t.Errorf("Expected Name 'Test Preset', got '%s'", preset.Name)
	}

	if preset.Rows != 3 || preset.Cols != 3 {
		t.Errorf("Expected 3x3 preset, got %dx%d", preset.Rows, preset.Cols)
	}
}

func TestAnalyzePreset_ValidFile(t *testing.T) {
	validPreset := `{
		"name": "Test Preset",
		"description": "Test puzzle preset",
		"rows": 3,
		"cols": 3,
		"shuffle_length": 90,
		"messages": {
			"welcome": "Welcome!",
			"solved": "Solved!",
			"move_ignored": "Ignored.",
			"shuffled": "Scrambled with %d moves.",
			"saved": "Saved to %s."
		}
	}`

	tmpfile, err := os.CreateTemp("", "test_preset_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(validPreset)); err != nil {
		t.Fatalf("Failed to write preset: %v", err)
	}
	tmpfile.Close()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzePreset panicked: %v", r)
		}
	}()

	analyzePreset(tmpfile.Name())
}

func TestAnalyzePreset_InvalidFile(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzePreset panicked with invalid file: %v", r)
		}
	}()

	analyzePreset("/non/existent/file.json")
}

func TestAnalyzePreset_InvalidJSON(t *testing.T) {
	invalidJSON := `{"name": "test", invalid json}`

	tmpfile, err := os.CreateTemp("", "test_preset_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(invalidJSON)); err != nil {
		t.Fatalf("Failed to write preset: %v", err)
	}
	tmpfile.Close()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzePreset panicked with invalid JSON: %v", r)
		}
	}()

	analyzePreset(tmpfile.Name())
}

func TestAnalyzeSnapshot_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snap.json")

	grid := engine.NewSolvedGrid(3, 3)
	grid.Apply(engine.Down)
	if err := engine.SaveGridToFile(grid, path); err != nil {
		t.Fatalf("Failed to save snapshot: %v", err)
	}

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzeSnapshot panicked: %v", r)
		}
	}()

	analyzeSnapshot(path)
}

func TestAnalyzeSnapshot_InvalidFile(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzeSnapshot panicked with invalid file: %v", r)
		}
	}()

	analyzeSnapshot("/non/existent/snapshot.json")
}

func TestAnalyzeSnapshot_BrokenGrid(t *testing.T) {
	// A grid with a duplicate label and no blank is structurally valid JSON
	// but unplayable; the analyzer should report it without panicking.
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")

	broken := `{"rows": 2, "cols": 2, "grid": [["1", "1"], ["2", "3"]]}`
	if err := os.WriteFile(path, []byte(broken), 0644); err != nil {
		t.Fatalf("Failed to write broken snapshot: %v", err)
	}

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzeSnapshot panicked with broken grid: %v", r)
		}
	}()

	analyzeSnapshot(path)
}
