package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidatePuzzleConfig validates a puzzle preset for correctness
func ValidatePuzzleConfig(config *PuzzleConfig) error {
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	// Validate dimensions
	if config.Rows < MinGridSize || config.Rows > MaxGridSize {
		return fmt.Errorf("config validation: rows must be between %d and %d, got %d", MinGridSize, MaxGridSize, config.Rows)
	}
	if config.Cols < MinGridSize || config.Cols > MaxGridSize {
		return fmt.Errorf("config validation: cols must be between %d and %d, got %d", MinGridSize, MaxGridSize, config.Cols)
	}

	// Validate shuffle length; 0 selects the rows*cols*10 heuristic
	if config.ShuffleLength < 0 {
		return fmt.Errorf("config validation: shuffle_length must be >= 0, got %d", config.ShuffleLength)
	}
	if config.ShuffleLength > MaxSequenceLength {
		return fmt.Errorf("config validation: shuffle_length must be <= %d, got %d", MaxSequenceLength, config.ShuffleLength)
	}

	// Validate format strings
	if config.Messages.Shuffled != "" && !strings.Contains(config.Messages.Shuffled, "%d") {
		return fmt.Errorf("config validation: messages.shuffled must contain %%d for sequence length")
	}
	if config.Messages.Saved != "" && !strings.Contains(config.Messages.Saved, "%s") {
		return fmt.Errorf("config validation: messages.saved must contain %%s for file path")
	}

	return nil
}

// LoadPuzzleConfig loads a puzzle preset from a JSON file
func LoadPuzzleConfig(filename string) (*PuzzleConfig, error) {
	// Support CONFIG_DIR environment variable for alternative config directory
	configPath := filename
	if configDir := os.Getenv("CONFIG_DIR"); configDir != "" {
		if strings.HasPrefix(filename, "configs/") {
			configPath = filepath.Join(configDir, strings.TrimPrefix(filename, "configs/"))
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config PuzzleConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := ValidatePuzzleConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadConfigByName loads a puzzle preset by name from the configs directory
func LoadConfigByName(configName string) (*PuzzleConfig, error) {
	if !strings.HasSuffix(configName, ".json") {
		configName = configName + ".json"
	}

	configPath := filepath.Join("configs", configName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file '%s' not found", configName)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %v", configName, err)
	}

	var config PuzzleConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %v", configName, err)
	}

	if err := ValidatePuzzleConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config '%s': %v", configName, err)
	}

	return &config, nil
}

// DefaultPuzzleConfig returns the built-in classic 3x3 preset
func DefaultPuzzleConfig() *PuzzleConfig {
	config := &PuzzleConfig{
		Name:        "classic",
		Description: "Classic 3x3 eight puzzle",
		Rows:        3,
		Cols:        3,
	}
	config.Messages.Welcome = "Sliding puzzle ready. Use w/a/s/d to move tiles into the blank."
	config.Messages.Solved = "Puzzle solved!"
	config.Messages.MoveIgnored = "Move ignored (edge or invalid)."
	config.Messages.Shuffled = "Applied random move sequence of length %d"
	config.Messages.Saved = "Saved state to %s"
	return config
}

// InitStateFromConfig creates a fresh solved puzzle state from the preset
func InitStateFromConfig(config *PuzzleConfig) *PuzzleState {
	if config == nil {
		config = DefaultPuzzleConfig()
	}

	grid := NewSolvedGrid(config.Rows, config.Cols)

	return &PuzzleState{
		Grid:        grid,
		Rows:        config.Rows,
		Cols:        config.Cols,
		Solved:      true,
		Message:     config.Messages.Welcome,
		ConfigName:  config.Name,
		MoveHistory: []MoveHistoryEntry{},
		TotalMoves:  0,
	}
}
