// Package config provides preset management for the sliding puzzle.
//
// The config package handles:
//   - Loading puzzle presets from JSON files
//   - Preset validation and caching
//   - Default preset management
//   - Preset discovery and listing
//
// Preset Format:
//
// Puzzle presets are stored as JSON files in the configs directory.
// Each preset defines:
//   - Grid dimensions (rows and columns)
//   - Shuffle length for randomized starts
//   - Puzzle messages for various events
//
// Available Presets:
//
// The package ships with several grid sizes:
//   - classic: 3x3 eight puzzle
//   - fifteen: 4x4 fifteen puzzle
//   - wide: 3x5 rectangular variant
//   - pocket: 2x2 three puzzle
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific preset
//	preset, err := manager.LoadConfig("fifteen")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default preset
//	defaultPreset := manager.GetDefault()
//
//	// List available presets
//	presets, err := manager.ListConfigs()
//
// Validation:
//
// All presets are validated for:
//   - Grid dimensions within supported bounds
//   - Shuffle length constraints
//   - Required message templates and format verbs
package config
