package service

import (
	"context"
	"time"

	"github.com/tilegames/slide-puzzle/puzzle/engine"
)

// PuzzleService defines all puzzle-related operations
type PuzzleService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Puzzle Operations
	Move(ctx context.Context, sessionID, token string) (*MoveResult, error)
	ApplySequence(ctx context.Context, sessionID, tokens string) (*SequenceResult, error)
	Shuffle(ctx context.Context, sessionID string, length int) (*SequenceResult, error)
	Reset(ctx context.Context, sessionID string) (*engine.PuzzleState, error)

	// Puzzle State
	GetPuzzleState(ctx context.Context, sessionID string) (*engine.PuzzleState, error)
	GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Save files
	SaveGrid(ctx context.Context, sessionID, path string) (*SaveResult, error)
	LoadGrid(ctx context.Context, sessionID, path string) (*engine.PuzzleState, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.PuzzleConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.PuzzleConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.PuzzleConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, config *engine.PuzzleConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// ConfigManager handles puzzle preset loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.PuzzleConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.PuzzleConfig
	SaveConfig(name string, config *engine.PuzzleConfig) error
}

// Session represents an active puzzle session
type Session struct {
	ID             string
	Engine         *engine.PuzzleEngine
	Config         *engine.PuzzleConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
