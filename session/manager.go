package session

import (
	"sync"

	"github.com/google/uuid"
)

// Manager is the process-wide session registry. Sessions live for the
// process lifetime; there is no logout or expiry.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create registers a fresh session with a unique ID.
func (m *Manager) Create() *Session {
	s := New()
	s.ID = uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s
}

// Get looks up a live session by ID.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Default is the registry used by the HTTP surface.
var Default = NewManager()
