package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Drakonfox/Hard-to-Die/internal/game"
	"github.com/Drakonfox/Hard-to-Die/internal/storage"
)

// Manager tracks the live run sessions of this server instance. Runs are
// in-memory only; finished runs leave a record in storage and the session
// is dropped on teardown.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	catalog *game.Catalog
	repo    storage.Repository
}

func NewManager(catalog *game.Catalog, repo storage.Repository) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		catalog:  catalog,
		repo:     repo,
	}
}

// CreateRun starts a new run at the given difficulty and returns its
// session. The session id doubles as the run id.
func (m *Manager) CreateRun(difficulty game.Difficulty, playerName string) (*Session, error) {
	if _, ok := m.catalog.Difficulties[difficulty]; !ok {
		return nil, ErrUnknownDifficulty
	}
	id := uuid.NewString()
	s := NewSession(id, difficulty, playerName, m.catalog, m.repo, time.Now().UnixNano())
	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()
	return s, nil
}

// Get returns the session for a run id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrRunNotFound
}

// Remove tears a session down, stopping its loop.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if ok {
		s.StopLoop()
	}
}

// Catalog exposes the loaded game content for read-only handlers.
func (m *Manager) Catalog() *game.Catalog { return m.catalog }
