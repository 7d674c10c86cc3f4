package engine

import (
	"math/rand"
	"testing"
)

func createTestConfig() *PuzzleConfig {
	cfg := &PuzzleConfig{
		Name:          "Engine Test Preset",
		Description:   "Preset for engine integration tests",
		Rows:          3,
		Cols:          3,
		ShuffleLength: 30,
	}
	cfg.Messages.Welcome = "Welcome to engine test!"
	cfg.Messages.Solved = "Solved!"
	cfg.Messages.MoveIgnored = "Ignored!"
	cfg.Messages.Shuffled = "Shuffled %d moves"
	cfg.Messages.Saved = "Saved to %s"
	return cfg
}

func TestNewEngine(t *testing.T) {
	config := createTestConfig()
	engine, err := NewEngine(config)
	if err != nil {
		t.Fatalf("Failed to create new engine: %v", err)
	}

	if engine == nil {
		t.Fatal("Expected engine to be non-nil")
	}

	// Test initial state
	if !engine.IsSolved() {
		t.Error("Expected fresh puzzle to be solved")
	}
	state := engine.GetState()
	if state.Rows != config.Rows || state.Cols != config.Cols {
		t.Errorf("Expected %dx%d state, got %dx%d", config.Rows, config.Cols, state.Rows, state.Cols)
	}
	if state.Message != config.Messages.Welcome {
		t.Errorf("Expected welcome message, got %q", state.Message)
	}
	if state.TotalMoves != 0 {
		t.Errorf("Expected 0 total moves, got %d", state.TotalMoves)
	}
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	config := createTestConfig()
	config.Rows = 1 // Below minimum

	_, err := NewEngine(config)
	if err == nil {
		t.Error("Expected error for invalid config")
	}
}

func TestNewEngineWithDefaults(t *testing.T) {
	engine := NewEngineWithDefaults()
	if engine == nil {
		t.Fatal("Expected engine to be non-nil")
	}

	state := engine.GetState()
	if state.Rows != 3 || state.Cols != 3 {
		t.Errorf("Expected default 3x3 puzzle, got %dx%d", state.Rows, state.Cols)
	}
	if !engine.IsSolved() {
		t.Error("Expected default puzzle to start solved")
	}
}

func TestEngine_BasicMove(t *testing.T) {
	engine, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	// Blank starts at (2,2); "s" slides the tile above it down
	if !engine.Move("s") {
		t.Error("Expected successful move")
	}

	blank, err := engine.BlankPosition()
	if err != nil {
		t.Fatalf("Failed to locate blank: %v", err)
	}
	if blank != (Position{Row: 1, Col: 2}) {
		t.Errorf("Expected blank at (1,2), got %v", blank)
	}
	if engine.IsSolved() {
		t.Error("Expected puzzle not solved after move")
	}

	// Test move history
	history := engine.GetMoveHistory()
	if len(history) != 1 {
		t.Errorf("Expected 1 move in history, got %d", len(history))
	}

	lastMove := engine.GetLastMove()
	if lastMove == nil {
		t.Fatal("Expected last move to be non-nil")
	}
	if lastMove.Action != "down" {
		t.Errorf("Expected last move action 'down', got '%s'", lastMove.Action)
	}
	if !lastMove.Success {
		t.Error("Expected last move to be recorded as successful")
	}
}

func TestEngine_MoveTokens(t *testing.T) {
	engine, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	// Word and letter tokens address the same moves, case-insensitive
	if !engine.Move("DOWN") {
		t.Error("Expected word token to work")
	}
	if !engine.Move("W") {
		t.Error("Expected uppercase letter token to work")
	}
	if !engine.IsSolved() {
		t.Error("Expected down then up to restore the solved grid")
	}

	// Unrecognized tokens fail without touching the grid or history
	before := len(engine.GetMoveHistory())
	if engine.Move("q") {
		t.Error("Expected unrecognized token to fail")
	}
	if engine.Move("") {
		t.Error("Expected empty token to fail")
	}
	if len(engine.GetMoveHistory()) != before {
		t.Error("Expected unrecognized tokens to be absent from history")
	}
}

func TestEngine_IllegalMoveRecorded(t *testing.T) {
	engine, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	// "w" from the solved corner is recognized but illegal
	if engine.Move("w") {
		t.Error("Expected edge move to fail")
	}

	last := engine.GetLastMove()
	if last == nil {
		t.Fatal("Expected rejected move in history")
	}
	if last.Success {
		t.Error("Expected rejected move to be recorded as unsuccessful")
	}
	if last.BlankFrom != last.BlankTo {
		t.Error("Expected blank position unchanged for rejected move")
	}
}

func TestEngine_CanMoveAndPossibleMoves(t *testing.T) {
	engine, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	// Blank at bottom-right: only down and right have in-bounds sources
	if engine.CanMove("w") || engine.CanMove("a") {
		t.Error("Expected up and left to be illegal from solved corner")
	}
	if !engine.CanMove("s") || !engine.CanMove("d") {
		t.Error("Expected down and right to be legal from solved corner")
	}

	possible := engine.GetPossibleMoves()
	if len(possible) != 2 {
		t.Errorf("Expected 2 possible moves, got %d: %v", len(possible), possible)
	}
}

func TestEngine_ApplySequence(t *testing.T) {
	engine, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	// Two legal moves plus junk characters that are skipped outright
	applied := engine.ApplySequence("sd!!qq")
	if applied != 2 {
		t.Errorf("Expected 2 applied moves, got %d", applied)
	}
	if engine.GetState().TotalMoves != 2 {
		t.Errorf("Expected 2 recorded moves, got %d", engine.GetState().TotalMoves)
	}
}

func TestEngine_BulkMove(t *testing.T) {
	engine, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	results := engine.BulkMove([]string{"down", "up", "up", "bogus"})
	want := []bool{true, true, false, false}
	if len(results) != len(want) {
		t.Fatalf("Expected %d results, got %d", len(want), len(results))
	}
	for i := range want {
		if results[i] != want[i] {
			t.Errorf("Move %d: expected %v, got %v", i, want[i], results[i])
		}
	}
}

func TestEngine_Shuffle(t *testing.T) {
	engine, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	rng := rand.New(rand.NewSource(5))
	seq := engine.Shuffle(40, rng)
	if len(seq) != 40 {
		t.Errorf("Expected sequence of length 40, got %d", len(seq))
	}

	// Deterministic for a fixed seed
	engine2, _ := NewEngine(createTestConfig())
	seq2 := engine2.Shuffle(40, rand.New(rand.NewSource(5)))
	if seq != seq2 {
		t.Error("Expected identical shuffles for identical seeds")
	}
	if !engine.GetState().Grid.Equal(engine2.GetState().Grid) {
		t.Error("Expected identical grids for identical seeds")
	}
}

func TestEngine_ShuffleDefaultLength(t *testing.T) {
	cfg := createTestConfig()
	engine, err := NewEngine(cfg)
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	seq := engine.Shuffle(0, rand.New(rand.NewSource(1)))
	if len(seq) != DefaultShuffleLength(cfg.Rows, cfg.Cols) {
		t.Errorf("Expected heuristic length %d, got %d", DefaultShuffleLength(cfg.Rows, cfg.Cols), len(seq))
	}
}

func TestEngine_Reset(t *testing.T) {
	engine, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	engine.Shuffle(30, rand.New(rand.NewSource(3)))
	movesBefore := engine.GetState().TotalMoves

	state := engine.Reset()
	if state == nil {
		t.Fatal("Expected reset to return state")
	}
	if !engine.IsSolved() {
		t.Error("Expected solved grid after reset")
	}
	// History is cumulative across resets
	if state.TotalMoves != movesBefore {
		t.Errorf("Expected cumulative total %d after reset, got %d", movesBefore, state.TotalMoves)
	}
}

func TestEngine_SetState(t *testing.T) {
	engine, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	if err := engine.SetState(nil); err == nil {
		t.Error("Expected error when setting nil state")
	}

	// SetState recomputes dimensions and the solved flag from the grid
	loaded := &PuzzleState{Grid: NewSolvedGrid(4, 4)}
	if err := engine.SetState(loaded); err != nil {
		t.Fatalf("Failed to set state: %v", err)
	}
	state := engine.GetState()
	if state.Rows != 4 || state.Cols != 4 {
		t.Errorf("Expected 4x4 after SetState, got %dx%d", state.Rows, state.Cols)
	}
	if !state.Solved {
		t.Error("Expected solved flag recomputed on SetState")
	}
}

func TestEngine_SetConfig(t *testing.T) {
	engine, err := NewEngine(createTestConfig())
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}

	newConfig := createTestConfig()
	newConfig.Name = "bigger"
	newConfig.Rows = 4
	newConfig.Cols = 5

	if err := engine.SetConfig(newConfig); err != nil {
		t.Fatalf("Failed to set new config: %v", err)
	}
	state := engine.GetState()
	if state.Rows != 4 || state.Cols != 5 {
		t.Errorf("Expected 4x5 after SetConfig, got %dx%d", state.Rows, state.Cols)
	}

	invalid := createTestConfig()
	invalid.Cols = 0
	if err := engine.SetConfig(invalid); err == nil {
		t.Error("Expected error when setting invalid config")
	}
}
