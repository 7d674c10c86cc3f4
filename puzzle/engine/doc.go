// Package engine provides the core state machine for the sliding-tile puzzle.
//
// The engine package implements the puzzle mechanics including:
//   - Grid representation with a single blank cell
//   - Move legality and in-place move application
//   - Solved-state detection against the canonical target arrangement
//   - Move-sequence application (literal or randomly generated)
//   - Save-record serialization for file persistence
//
// Core Types:
//
// The Engine interface defines the main contract for puzzle operations,
// implemented by PuzzleEngine. PuzzleState represents the current puzzle
// state, while PuzzleConfig defines the preset (dimensions, shuffle length,
// messages) loaded from JSON files.
//
// Usage:
//
//	cfg, err := engine.LoadConfigByName("classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	eng, err := engine.NewEngine(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Slide the tile below the blank upward
//	moved := eng.Move("w")
//	state := eng.GetState()
//
// Move Semantics:
//
// A move token names the direction the adjacent tile slides, not the
// direction the blank travels. Pressing "w" (up) slides the tile below the
// blank upward, so the blank itself moves down. The four tokens map to fixed
// tile-source offsets relative to the blank; a move whose source falls
// outside the grid is ignored. There is no other legality rule.
package engine
