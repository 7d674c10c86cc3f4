// Command validate provides a small CLI that validates puzzle preset JSON
// files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Grid dimensions within the supported 2..32 range
//   - Shuffle length within the move-sequence cap
//   - Presence of required message keys and their format verbs
//     (shuffled needs %d, saved needs %s)
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Supported grid bounds and sequence cap, mirrored from the engine.
const (
	minGridSize       = 2
	maxGridSize       = 32
	maxSequenceLength = 10000
)

// Preset mirrors the JSON schema for a puzzle preset.
type Preset struct {
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Rows          int               `json:"rows"`
	Cols          int               `json:"cols"`
	ShuffleLength int               `json:"shuffle_length"`
	Messages      map[string]string `json:"messages"`
}

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validatePreset loads and validates a single preset JSON file.
// It performs structural checks, dimension and shuffle validation, and
// message presence checks.
func validatePreset(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var preset Preset
	if err := json.Unmarshal(data, &preset); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	// Validate identity fields
	if preset.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Preset name is required")
	}

	if preset.Description == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Preset description is required")
	}

	// Validate dimensions
	if preset.Rows < minGridSize || preset.Rows > maxGridSize {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("rows must be between %d and %d, got %d", minGridSize, maxGridSize, preset.Rows))
	}

	if preset.Cols < minGridSize || preset.Cols > maxGridSize {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("cols must be between %d and %d, got %d", minGridSize, maxGridSize, preset.Cols))
	}

	// Validate shuffle settings
	if preset.ShuffleLength < 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("shuffle_length cannot be negative, got %d", preset.ShuffleLength))
	}

	if preset.ShuffleLength > maxSequenceLength {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("shuffle_length (%d) exceeds the sequence cap (%d)", preset.ShuffleLength, maxSequenceLength))
	}

	// Validate messages
	requiredMessages := []string{
		"welcome",
		"solved",
		"move_ignored",
		"shuffled",
		"saved",
	}
	for _, msg := range requiredMessages {
		if _, exists := preset.Messages[msg]; !exists {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Missing required message: %s", msg))
		}
	}

	// Validate format verbs used at runtime
	if shuffled, exists := preset.Messages["shuffled"]; exists && !strings.Contains(shuffled, "%d") {
		result.Valid = false
		result.Errors = append(result.Errors, "Message 'shuffled' must contain a %d verb for the move count")
	}

	if saved, exists := preset.Messages["saved"]; exists && !strings.Contains(saved, "%s") {
		result.Valid = false
		result.Errors = append(result.Errors, "Message 'saved' must contain a %s verb for the file path")
	}

	// Add informational data
	if result.Valid {
		tiles := preset.Rows*preset.Cols - 1
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", preset.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Grid: %dx%d (%d tiles + blank)", preset.Rows, preset.Cols, tiles))
		if preset.ShuffleLength == 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("✓ Shuffle: heuristic default (%d moves)", preset.Rows*preset.Cols*10))
		} else {
			result.Errors = append(result.Errors, fmt.Sprintf("✓ Shuffle: %d moves", preset.ShuffleLength))
		}
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Messages: %d keys", len(preset.Messages)))
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding preset files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validatePreset(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All presets are valid!")
	} else {
		fmt.Println("❌ Some presets have errors")
		os.Exit(1)
	}
}
