package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tilegames/slide-puzzle/puzzle/engine"
	"github.com/tilegames/slide-puzzle/puzzle/service"
)

// ConfigLoader resolves preset names when rehydrating persisted sessions
type ConfigLoader interface {
	LoadConfig(name string) (*engine.PuzzleConfig, error)
	GetDefault() *engine.PuzzleConfig
}

// FilePersistence implements SessionPersistence using the filesystem
type FilePersistence struct {
	sessionsDir string
	configs     ConfigLoader
}

// NewFilePersistence creates a new file-based persistence layer
func NewFilePersistence(sessionsDir string, configs ConfigLoader) (*FilePersistence, error) {
	// Ensure sessions directory exists
	if err := os.MkdirAll(sessionsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create sessions directory: %w", err)
	}

	return &FilePersistence{
		sessionsDir: sessionsDir,
		configs:     configs,
	}, nil
}

// Save persists a session to a JSON file
func (fp *FilePersistence) Save(session *service.Session) error {
	if session == nil {
		return fmt.Errorf("session cannot be nil")
	}

	data := PersistedSessionData{
		ID:             session.ID,
		ConfigName:     session.Engine.GetState().ConfigName,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		PuzzleState:    session.Engine.GetState(),
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	filePath := fp.sessionFilePath(session.ID)
	if err := os.WriteFile(filePath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// Load retrieves a session from a JSON file
func (fp *FilePersistence) Load(sessionID string) (*service.Session, error) {
	filePath := fp.sessionFilePath(sessionID)

	jsonData, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var data PersistedSessionData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	config := fp.resolveConfig(data.ConfigName)

	var eng *engine.PuzzleEngine
	if config != nil {
		eng, err = engine.NewEngine(config)
		if err != nil {
			return nil, fmt.Errorf("failed to create engine: %w", err)
		}
	} else {
		eng = engine.NewEngineWithDefaults()
		config = eng.GetConfig()
	}

	if data.PuzzleState != nil {
		if err := eng.SetState(data.PuzzleState); err != nil {
			return nil, fmt.Errorf("failed to restore puzzle state: %w", err)
		}
	}

	return &service.Session{
		ID:             data.ID,
		Engine:         eng,
		Config:         config,
		CreatedAt:      data.CreatedAt,
		LastAccessedAt: data.LastAccessedAt,
	}, nil
}

// Delete removes a session file
func (fp *FilePersistence) Delete(sessionID string) error {
	filePath := fp.sessionFilePath(sessionID)

	if err := os.Remove(filePath); err != nil {
		if os.IsNotExist(err) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to delete session file: %w", err)
	}

	return nil
}

// ListAll returns all persisted session IDs
func (fp *FilePersistence) ListAll() ([]string, error) {
	entries, err := os.ReadDir(fp.sessionsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read sessions directory: %w", err)
	}

	var sessionIDs []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		sessionIDs = append(sessionIDs, strings.TrimSuffix(entry.Name(), ".json"))
	}

	return sessionIDs, nil
}

// Exists checks if a session file exists
func (fp *FilePersistence) Exists(sessionID string) bool {
	_, err := os.Stat(fp.sessionFilePath(sessionID))
	return err == nil
}

// resolveConfig loads a preset by name, falling back to the default preset
func (fp *FilePersistence) resolveConfig(name string) *engine.PuzzleConfig {
	if fp.configs == nil {
		return nil
	}

	if name != "" {
		if config, err := fp.configs.LoadConfig(name); err == nil {
			return config
		}
	}

	return fp.configs.GetDefault()
}

// sessionFilePath returns the file path for a session ID
func (fp *FilePersistence) sessionFilePath(sessionID string) string {
	// Session IDs are stored lowercase for case-insensitive lookups
	return filepath.Join(fp.sessionsDir, strings.ToLower(sessionID)+".json")
}
