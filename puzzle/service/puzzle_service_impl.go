package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/tilegames/slide-puzzle/puzzle/engine"
)

// puzzleServiceImpl implements the PuzzleService interface
type puzzleServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	rng      *rand.Rand
	mu       sync.Mutex
}

// NewPuzzleService creates a new puzzle service instance seeded from the
// wall clock.
func NewPuzzleService(sessions SessionManager, configs ConfigManager) PuzzleService {
	return NewPuzzleServiceWithRand(sessions, configs, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewPuzzleServiceWithRand creates a puzzle service with an injected random
// source, so shuffles can be made deterministic in tests.
func NewPuzzleServiceWithRand(sessions SessionManager, configs ConfigManager, rng *rand.Rand) PuzzleService {
	return &puzzleServiceImpl{
		sessions: sessions,
		configs:  configs,
		rng:      rng,
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *puzzleServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

func (s *puzzleServiceImpl) sessionInfo(sess *Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     s.getConfigID(sess.Config.Name),
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		PuzzleState:    sess.Engine.GetState(),
		PuzzleConfig:   sess.Config,
	}
}

// CreateSession creates a new puzzle session
func (s *puzzleServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.PuzzleConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	info := s.sessionInfo(session)
	if configName != "" {
		info.ConfigName = configName
	}
	return info, nil
}

// GetSession retrieves session information
func (s *puzzleServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return s.sessionInfo(session), nil
}

// ListSessions returns all active sessions
func (s *puzzleServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess))
	}

	return result, nil
}

// DeleteSession removes a session
func (s *puzzleServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Move applies a single move token to a session's puzzle
func (s *puzzleServiceImpl) Move(ctx context.Context, sessionID, token string) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	success := sess.Engine.Move(token)
	state := sess.Engine.GetState()

	result := &MoveResult{
		Success:       success,
		Token:         token,
		PuzzleState:   state,
		Message:       state.Message,
		Solved:        state.Solved,
		PossibleMoves: sess.Engine.GetPossibleMoves(),
	}
	if blank, err := sess.Engine.BlankPosition(); err == nil {
		result.Blank = blank
	}

	// Auto-save session after move
	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after move: %v\n", sessionID, err)
	}

	return result, nil
}

// ApplySequence feeds a literal move-letter string through a session's
// puzzle. Unrecognized characters are skipped and illegal moves ignored.
func (s *puzzleServiceImpl) ApplySequence(ctx context.Context, sessionID, tokens string) (*SequenceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	applied := sess.Engine.ApplySequence(tokens)
	state := sess.Engine.GetState()

	result := &SequenceResult{
		Sequence:      tokens,
		Requested:     len(tokens),
		Applied:       applied,
		Ignored:       len(tokens) - applied,
		Random:        false,
		PuzzleState:   state,
		Solved:        state.Solved,
		Message:       state.Message,
		PossibleMoves: sess.Engine.GetPossibleMoves(),
	}

	// Auto-save session after sequence
	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after sequence: %v\n", sessionID, err)
	}

	return result, nil
}

// Shuffle generates and applies a random move sequence. Length 0 selects
// the preset's shuffle_length, falling back to the rows*cols*10 heuristic.
func (s *puzzleServiceImpl) Shuffle(ctx context.Context, sessionID string, length int) (*SequenceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	if length <= 0 && sess.Config != nil {
		length = sess.Config.ShuffleLength
	}

	movesBefore := len(sess.Engine.GetMoveHistory())
	seq := sess.Engine.Shuffle(length, s.rng)
	state := sess.Engine.GetState()
	applied := 0
	for _, entry := range state.MoveHistory[movesBefore:] {
		if entry.Success {
			applied++
		}
	}

	result := &SequenceResult{
		Sequence:      seq,
		Requested:     len(seq),
		Applied:       applied,
		Ignored:       len(seq) - applied,
		Random:        true,
		PuzzleState:   state,
		Solved:        state.Solved,
		Message:       state.Message,
		PossibleMoves: sess.Engine.GetPossibleMoves(),
	}

	// Auto-save session after shuffle
	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after shuffle: %v\n", sessionID, err)
	}

	return result, nil
}

// Reset restores a session's puzzle to the solved configuration
func (s *puzzleServiceImpl) Reset(ctx context.Context, sessionID string) (*engine.PuzzleState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	state := sess.Engine.Reset()

	// Auto-save session after reset
	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after reset: %v\n", sessionID, err)
	}

	return state, nil
}

// GetPuzzleState retrieves the current puzzle state
func (s *puzzleServiceImpl) GetPuzzleState(ctx context.Context, sessionID string) (*engine.PuzzleState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Engine.GetState(), nil
}

// GetMoveHistory returns paginated move history
func (s *puzzleServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.Engine.GetMoveHistory()
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var moves []engine.MoveHistoryEntry
	if opts.Order == "desc" {
		// Most recent first
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			moves = append(moves, history[i])
		}
	} else {
		if start < total {
			moves = history[start:end]
		}
	}

	if moves == nil {
		moves = []engine.MoveHistoryEntry{}
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// SaveGrid writes a session's current grid to a save file in the documented
// {rows, cols, grid} format. An empty path uses puzzle_save.json.
func (s *puzzleServiceImpl) SaveGrid(ctx context.Context, sessionID, path string) (*SaveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	if path == "" {
		path = engine.DefaultSaveFile
	}
	state := sess.Engine.GetState()
	if err := engine.SaveGridToFile(state.Grid, path); err != nil {
		return nil, fmt.Errorf("failed to save grid: %w", err)
	}

	message := fmt.Sprintf("Saved state to %s", path)
	if sess.Config != nil && sess.Config.Messages.Saved != "" {
		message = fmt.Sprintf(sess.Config.Messages.Saved, path)
	}
	state.Message = message

	return &SaveResult{
		Path:    path,
		Rows:    state.Rows,
		Cols:    state.Cols,
		Message: message,
	}, nil
}

// LoadGrid replaces a session's grid with the contents of a save file.
// The load is lenient: structurally valid but logically corrupt grids are
// accepted as-is.
func (s *puzzleServiceImpl) LoadGrid(ctx context.Context, sessionID, path string) (*engine.PuzzleState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	grid, err := engine.LoadGridFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load grid: %w", err)
	}

	prev := sess.Engine.GetState()
	state := &engine.PuzzleState{
		Grid:        grid,
		ConfigName:  prev.ConfigName,
		Message:     fmt.Sprintf("Loaded state from %s", path),
		MoveHistory: prev.MoveHistory,
		TotalMoves:  prev.TotalMoves,
	}
	if err := sess.Engine.SetState(state); err != nil {
		return nil, fmt.Errorf("failed to set loaded state: %w", err)
	}

	// Auto-save session after load
	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after load: %v\n", sessionID, err)
	}

	return sess.Engine.GetState(), nil
}

// ListConfigs returns available puzzle presets
func (s *puzzleServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific puzzle preset
func (s *puzzleServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.PuzzleConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a puzzle preset to disk
func (s *puzzleServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.PuzzleConfig) error {
	return s.configs.SaveConfig(configName, config)
}
