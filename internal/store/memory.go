// apps/go-server/internal/store/memory.go
//
// In-memory stores.
//
// Characteristics:
//   - Sessions: *game.Session objects keyed by ID, expired after a TTL of inactivity.
//   - MemoryScores: a process-local game.ScoreStore (lost on restart).
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/guessnumber/apps/go-server/internal/game"
)

// ErrSessionNotFound is returned for unknown or expired session IDs.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps live sessions for front ends that outlive a single call.
type SessionStore interface {
	// Save persists or replaces a session.
	Save(ctx context.Context, s *game.Session) error

	// Get retrieves a session by ID.
	// Returns ErrSessionNotFound if it is missing or expired.
	Get(ctx context.Context, id string) (*game.Session, error)

	// Delete drops a session. Missing IDs are not an error.
	Delete(ctx context.Context, id string) error
}

type sessionEntry struct {
	session *game.Session
	seen    time.Time
}

// memory is an in-memory map-based SessionStore implementation.
type memory struct {
	mu       sync.RWMutex             // guards sessions
	sessions map[string]*sessionEntry // keyed by Session.ID
	ttl      time.Duration            // zero disables expiry
	now      func() time.Time
}

// NewMemorySessions constructs an in-memory SessionStore.
func NewMemorySessions(ttl time.Duration) SessionStore {
	return newMemory(ttl, time.Now)
}

func newMemory(ttl time.Duration, now func() time.Time) *memory {
	return &memory{sessions: make(map[string]*sessionEntry), ttl: ttl, now: now}
}

// Save adds or updates the session and refreshes its expiry.
func (m *memory) Save(ctx context.Context, s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked()
	m.sessions[s.ID] = &sessionEntry{session: s, seen: m.now()}
	return nil
}

// Get looks up a session by ID.
func (m *memory) Get(ctx context.Context, id string) (*game.Session, error) {
	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok || m.expired(e) {
		return nil, ErrSessionNotFound
	}
	return e.session, nil
}

// Delete removes a session.
func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) expired(e *sessionEntry) bool {
	return m.ttl > 0 && m.now().Sub(e.seen) > m.ttl
}

// sweepLocked drops expired sessions. Caller holds mu.
func (m *memory) sweepLocked() {
	if m.ttl <= 0 {
		return
	}
	for id, e := range m.sessions {
		if m.expired(e) {
			delete(m.sessions, id)
		}
	}
}

// MemoryScores is a process-local game.ScoreStore.
type MemoryScores struct {
	mu   sync.RWMutex
	best int
	has  bool
}

// NewMemoryScores returns an empty score store.
func NewMemoryScores() *MemoryScores { return &MemoryScores{} }

// Read returns the stored best score, if any.
func (m *MemoryScores) Read(ctx context.Context) (int, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.best, m.has, nil
}

// Write replaces the best score.
func (m *MemoryScores) Write(ctx context.Context, attempts int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best, m.has = attempts, true
	return nil
}
