// Package session tracks open browse sessions. Each session owns one
// browse coordinator and is addressed by an opaque id handed to clients.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/atriumhq/atrium/internal/browse"
)

// ErrNotFound is returned when no session exists for an id.
var ErrNotFound = errors.New("session not found")

// ErrLimitReached is returned when the session cap is hit.
var ErrLimitReached = errors.New("session limit reached")

// Session pairs a browse coordinator with its lifecycle bookkeeping.
type Session struct {
	ID          string
	Coordinator *browse.Coordinator

	mu       sync.Mutex
	lastUsed time.Time
}

// Touch marks the session as recently used.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastUsed = time.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

// Manager owns all open sessions and reaps idle ones.
type Manager struct {
	ttl    time.Duration
	max    int
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
	closed   bool

	stop     chan struct{}
	stopOnce sync.Once
}

// NewManager creates a session manager and starts the idle reaper.
func NewManager(ttl time.Duration, max int, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Manager{
		ttl:      ttl,
		max:      max,
		logger:   logger,
		sessions: make(map[string]*Session),
		stop:     make(chan struct{}),
	}
	go m.reap()
	return m
}

// Open registers a coordinator under a fresh session id.
func (m *Manager) Open(c *browse.Coordinator) (*Session, error) {
	s := &Session{
		ID:          uuid.New().String(),
		Coordinator: c,
		lastUsed:    time.Now(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, errors.New("session manager is shut down")
	}
	if m.max > 0 && len(m.sessions) >= m.max {
		return nil, ErrLimitReached
	}
	m.sessions[s.ID] = s
	return s, nil
}

// Get returns the session for an id, touching its idle timer.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, ErrNotFound)
	}
	s.Touch()
	return s, nil
}

// Close ends one session and releases its coordinator.
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("session %q: %w", id, ErrNotFound)
	}
	s.Coordinator.Close()
	return nil
}

// Len returns the number of open sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Shutdown closes every session and stops the reaper.
func (m *Manager) Shutdown() {
	m.stopOnce.Do(func() { close(m.stop) })

	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.closed = true
	m.mu.Unlock()

	for _, s := range sessions {
		s.Coordinator.Close()
	}
}

// reap closes sessions idle longer than the TTL.
func (m *Manager) reap() {
	if m.ttl <= 0 {
		return
	}
	ticker := time.NewTicker(m.ttl / 4)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-m.ttl)

			m.mu.Lock()
			var expired []*Session
			for id, s := range m.sessions {
				if s.idleSince().Before(cutoff) {
					expired = append(expired, s)
					delete(m.sessions, id)
				}
			}
			m.mu.Unlock()

			for _, s := range expired {
				m.logger.Debug("reaping idle browse session", "session", s.ID)
				s.Coordinator.Close()
			}
		}
	}
}
