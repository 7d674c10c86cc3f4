package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidatePuzzleConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PuzzleConfig)
		wantErr bool
	}{
		{"valid", func(c *PuzzleConfig) {}, false},
		{"missing name", func(c *PuzzleConfig) { c.Name = "" }, true},
		{"missing description", func(c *PuzzleConfig) { c.Description = "" }, true},
		{"rows too small", func(c *PuzzleConfig) { c.Rows = 1 }, true},
		{"cols too small", func(c *PuzzleConfig) { c.Cols = 1 }, true},
		{"rows too large", func(c *PuzzleConfig) { c.Rows = MaxGridSize + 1 }, true},
		{"negative shuffle", func(c *PuzzleConfig) { c.ShuffleLength = -1 }, true},
		{"zero shuffle uses heuristic", func(c *PuzzleConfig) { c.ShuffleLength = 0 }, false},
		{"shuffled message missing verb", func(c *PuzzleConfig) { c.Messages.Shuffled = "done" }, true},
		{"saved message missing path", func(c *PuzzleConfig) { c.Messages.Saved = "done" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := createTestConfig()
			tt.mutate(config)
			err := ValidatePuzzleConfig(config)
			if tt.wantErr && err == nil {
				t.Error("Expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected validation error: %v", err)
			}
		})
	}
}

func TestLoadPuzzleConfig(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "fifteen.json")

	payload := `{
  "name": "fifteen",
  "description": "Classic 4x4 fifteen puzzle",
  "rows": 4,
  "cols": 4,
  "shuffle_length": 160
}`
	if err := os.WriteFile(path, []byte(payload), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	config, err := LoadPuzzleConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if config.Rows != 4 || config.Cols != 4 {
		t.Errorf("Expected 4x4 config, got %dx%d", config.Rows, config.Cols)
	}
	if config.ShuffleLength != 160 {
		t.Errorf("Expected shuffle_length 160, got %d", config.ShuffleLength)
	}
}

func TestLoadPuzzleConfig_Invalid(t *testing.T) {
	tempDir := t.TempDir()

	if _, err := LoadPuzzleConfig(filepath.Join(tempDir, "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}

	badDims := filepath.Join(tempDir, "bad.json")
	payload := `{"name": "bad", "description": "too small", "rows": 1, "cols": 3}`
	if err := os.WriteFile(badDims, []byte(payload), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	if _, err := LoadPuzzleConfig(badDims); err == nil {
		t.Error("Expected error for rows below minimum")
	}
}

func TestInitStateFromConfig(t *testing.T) {
	config := createTestConfig()
	state := InitStateFromConfig(config)

	if !state.Solved {
		t.Error("Expected fresh state to be solved")
	}
	if state.ConfigName != config.Name {
		t.Errorf("Expected config name %q, got %q", config.Name, state.ConfigName)
	}
	if state.Message != config.Messages.Welcome {
		t.Errorf("Expected welcome message, got %q", state.Message)
	}

	// nil falls back to the built-in classic preset
	def := InitStateFromConfig(nil)
	if def.Rows != 3 || def.Cols != 3 {
		t.Errorf("Expected default 3x3, got %dx%d", def.Rows, def.Cols)
	}
}
