package session

import (
	"time"

	"github.com/tilegames/slide-puzzle/puzzle/engine"
	"github.com/tilegames/slide-puzzle/puzzle/service"
)

// SessionPersistence defines the interface for persisting puzzle sessions
type SessionPersistence interface {
	// Save persists a session to storage
	Save(session *service.Session) error

	// Load retrieves a session from storage by ID
	Load(sessionID string) (*service.Session, error)

	// Delete removes a session from storage
	Delete(sessionID string) error

	// ListAll returns all persisted session IDs
	ListAll() ([]string, error)

	// Exists checks if a session exists in storage
	Exists(sessionID string) bool
}

// PersistedSessionData represents the serializable session data
type PersistedSessionData struct {
	ID             string              `json:"id"`
	ConfigName     string              `json:"config_name"`
	CreatedAt      time.Time           `json:"created_at"`
	LastAccessedAt time.Time           `json:"last_accessed_at"`
	PuzzleState    *engine.PuzzleState `json:"puzzle_state"`
}
