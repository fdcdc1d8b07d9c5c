package session

import (
	"log/slog"
	"sync"
)

// Manager manages all active sessions.
type Manager struct {
	sessions map[string]*Session // code -> session
	opts     Options
	mu       sync.RWMutex
}

// NewManager creates a session manager. Every session it creates shares opts.
func NewManager(opts Options) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		opts:     opts,
	}
}

// Create registers a new session for nickname under a fresh code.
func (m *Manager) Create(nickname string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	code := GenerateCode(func(c string) bool {
		_, taken := m.sessions[c]
		return taken
	})
	s := New(code, nickname, m.opts)
	m.sessions[code] = s

	slog.Info("session created", "code", code, "nickname", nickname)
	return s
}

// Get returns a session by its code.
func (m *Manager) Get(code string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[code]
}

// Remove stops and forgets a session.
func (m *Manager) Remove(code string) {
	m.mu.Lock()
	s, ok := m.sessions[code]
	delete(m.sessions, code)
	m.mu.Unlock()

	if ok {
		s.Stop()
		slog.Info("session removed", "code", code)
	}
}

// Count returns the number of active sessions.
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// StopAll stops every session, for shutdown.
func (m *Manager) StopAll() {
	m.mu.RLock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.RUnlock()

	for _, s := range sessions {
		s.Stop()
	}
}
