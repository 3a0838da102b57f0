// Package shell composes the per-visitor service objects — preference
// store, notification bus and section tracker — and owns their lifecycle.
//
// The rendering layer holds no state of its own: it reads everything from
// the Session built here. Sessions are created on first contact and torn
// down by the idle sweep, which guarantees timers and subscribers never
// outlive the visitor state they reference.
package shell

import (
	"log"
	"sync"
	"time"

	"github.com/ghassen-kharrat/portfolio/internal/content"
	"github.com/ghassen-kharrat/portfolio/internal/notify"
	"github.com/ghassen-kharrat/portfolio/internal/prefs"
	"github.com/ghassen-kharrat/portfolio/internal/sections"
)

// Session is the composed UI state layer for one visitor.
type Session struct {
	VisitorID string
	Prefs     *prefs.Store
	Bus       *notify.Bus
	Tracker   *sections.Tracker

	mu       sync.Mutex
	lastSeen time.Time
	closed   bool
}

// Touch records visitor activity for idle eviction.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastSeen = time.Now()
	s.mu.Unlock()
}

// IdleSince returns the last recorded activity time.
func (s *Session) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Close tears the session down: all notification timers are cancelled and
// every subscriber is detached. Close is idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.Bus.Close()
	s.Tracker.Close()
	s.Prefs.Close()
}

// Manager creates and evicts visitor sessions.
type Manager struct {
	persister prefs.Persister

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a session manager backed by the given preference
// persister.
func NewManager(persister prefs.Persister) *Manager {
	return &Manager{
		persister: persister,
		sessions:  make(map[string]*Session),
	}
}

// Get returns the session for a visitor, creating and booting one on first
// contact. osThemeHint is only consulted on creation (first-load theme
// resolution); it is ignored for existing sessions.
func (m *Manager) Get(visitorID, osThemeHint string) *Session {
	m.mu.Lock()
	if session, ok := m.sessions[visitorID]; ok {
		m.mu.Unlock()
		session.Touch()
		return session
	}
	m.mu.Unlock()

	// Boot outside the manager lock: it hits the database.
	store := prefs.NewStore(visitorID, m.persister)
	store.Boot(osThemeHint)

	tracker := sections.NewTracker()
	tracker.RegisterSections(content.SectionIDs())

	session := &Session{
		VisitorID: visitorID,
		Prefs:     store,
		Bus:       notify.NewBus(),
		Tracker:   tracker,
		lastSeen:  time.Now(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.sessions[visitorID]; ok {
		// Lost the creation race; discard ours
		session.Close()
		existing.Touch()
		return existing
	}
	m.sessions[visitorID] = session
	return session
}

// Peek returns the session for a visitor without creating one.
func (m *Manager) Peek(visitorID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[visitorID]
}

// Count returns the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// EvictIdle closes and removes sessions with no activity since the cutoff
// duration. Returns how many were evicted.
func (m *Manager) EvictIdle(idleTimeout time.Duration) int {
	cutoff := time.Now().Add(-idleTimeout)

	m.mu.Lock()
	var stale []*Session
	for id, session := range m.sessions {
		if session.IdleSince().Before(cutoff) {
			stale = append(stale, session)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, session := range stale {
		session.Close()
	}
	if len(stale) > 0 {
		log.Printf("Evicted %d idle visitor sessions", len(stale))
	}
	return len(stale)
}

// Close tears down every session. Called on shutdown.
func (m *Manager) Close() {
	m.mu.Lock()
	all := make([]*Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		all = append(all, session)
	}
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, session := range all {
		session.Close()
	}
}
