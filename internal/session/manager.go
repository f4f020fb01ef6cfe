package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/averycrespi/calculator-mcp/internal/engine"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

var _ types.SessionStore = &Manager{}

// Manager owns one calculator engine per widget session
type Manager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
	now      func() time.Time
}

// NewManager creates an empty session manager
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Create starts a new session with a random ID
func (m *Manager) Create() (string, types.Calculator) {
	id := uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()

	s := newSession(id, m.now)
	m.sessions[id] = s
	slog.Debug("Created calculator session", "session_id", id, "sessions", len(m.sessions))
	return id, s
}

// Get returns the session with the given ID
func (m *Manager) Get(id string) (types.Calculator, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s, nil
}

// GetOrCreate returns the session with the given ID, creating it if needed
func (m *Manager) GetOrCreate(id string) types.Calculator {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok {
		return s
	}
	s = newSession(id, m.now)
	m.sessions[id] = s
	slog.Debug("Created calculator session", "session_id", id, "sessions", len(m.sessions))
	return s
}

// Delete drops a session and reports whether it existed
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	slog.Debug("Deleted calculator session", "session_id", id, "sessions", len(m.sessions))
	return true
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

// Attach returns the session with the given ID, creating it if needed, and
// pins it against Sweep until the returned release func is called. Release
// counts as a use, so the idle clock restarts when the last client detaches.
func (m *Manager) Attach(id string) (types.Calculator, func()) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if !ok {
		s = newSession(id, m.now)
		m.sessions[id] = s
		slog.Debug("Created calculator session", "session_id", id, "sessions", len(m.sessions))
	}
	s.attached.Add(1)
	m.mu.Unlock()

	var once sync.Once
	release := func() {
		once.Do(func() {
			s.touch()
			s.attached.Add(-1)
		})
	}
	return s, release
}

// Sweep drops sessions idle for longer than maxIdle and returns how many were
// removed. Attached sessions are never dropped.
func (m *Manager) Sweep(maxIdle time.Duration) int {
	cutoff := m.now().Add(-maxIdle)

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.sessions {
		if s.attached.Load() == 0 && s.LastUsed().Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		slog.Info("Swept idle calculator sessions", "removed", removed, "remaining", len(m.sessions))
	}
	return removed
}

// Session serializes button presses on one engine
type Session struct {
	id       string
	engine   *engine.Engine
	lastUsed time.Time
	now      func() time.Time
	mu       sync.Mutex
	attached atomic.Int32
}

var _ types.Calculator = &Session{}

func newSession(id string, now func() time.Time) *Session {
	return &Session{
		id:       id,
		engine:   engine.New(),
		lastUsed: now(),
		now:      now,
	}
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// LastUsed returns when the session last handled a button press
func (s *Session) LastUsed() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastUsed
}

func (s *Session) touch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastUsed = s.now()
}

// do runs fn with exclusive access to the engine
func (s *Session) do(fn func(e *engine.Engine) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastUsed = s.now()
	return fn(s.engine)
}

func (s *Session) DigitPressed(digit string) error {
	return s.do(func(e *engine.Engine) error { return e.DigitPressed(digit) })
}

func (s *Session) DecimalPressed() {
	_ = s.do(func(e *engine.Engine) error { e.DecimalPressed(); return nil })
}

func (s *Session) OperatorPressed(op string) error {
	return s.do(func(e *engine.Engine) error { return e.OperatorPressed(op) })
}

func (s *Session) EqualsPressed() {
	_ = s.do(func(e *engine.Engine) error { e.EqualsPressed(); return nil })
}

func (s *Session) Clear() {
	_ = s.do(func(e *engine.Engine) error { e.Clear(); return nil })
}

func (s *Session) Press(button string) error {
	return s.do(func(e *engine.Engine) error { return e.Press(button) })
}

func (s *Session) State() types.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.engine.State()
}
