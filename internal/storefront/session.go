// Package storefront holds per-visitor ordering state and the hooks that change it.
package storefront

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/wsawebmaster/delivery/internal/cart"
	"github.com/wsawebmaster/delivery/internal/delivery"
	"github.com/wsawebmaster/delivery/internal/metrics"
)

// DefaultSessionTTL is how long an idle session is kept.
const DefaultSessionTTL = 2 * time.Hour

// Session is the explicit state of one visitor. All fields are guarded by mu.
type Session struct {
	ID string

	mu             sync.Mutex
	cart           *cart.Cart
	tracker        delivery.Tracker
	activeCategory string
	lastSeen       time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:       id,
		cart:     cart.New(),
		lastSeen: now,
	}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// SessionStore keeps sessions in memory, keyed by ID.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionStore creates a store that forgets sessions idle for longer than ttl.
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the live session with id and marks it as seen.
func (st *SessionStore) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, false
	}

	now := st.now()
	if now.Sub(s.idleSince()) > st.ttl {
		st.remove(id)
		return nil, false
	}
	s.touch(now)
	return s, true
}

// Create starts a new session with a random ID.
func (st *SessionStore) Create() *Session {
	s := newSession(uuid.NewString(), st.now())

	st.mu.Lock()
	st.sessions[s.ID] = s
	n := len(st.sessions)
	st.mu.Unlock()

	metrics.SetActiveSessions(n)
	return s
}

// GetOrCreate returns the session with id, or a new one when it is unknown or expired.
// The boolean reports whether a session was created.
func (st *SessionStore) GetOrCreate(id string) (*Session, bool) {
	if s, ok := st.Get(id); ok {
		return s, false
	}
	return st.Create(), true
}

// Len returns the number of sessions held.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep drops expired sessions and returns how many were removed.
func (st *SessionStore) Sweep() int {
	now := st.now()

	st.mu.Lock()
	removed := 0
	for id, s := range st.sessions {
		if now.Sub(s.idleSince()) > st.ttl {
			delete(st.sessions, id)
			removed++
		}
	}
	n := len(st.sessions)
	st.mu.Unlock()

	metrics.SetActiveSessions(n)
	return removed
}

// RunSweeper sweeps every interval until ctx is done.
func (st *SessionStore) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := st.Sweep(); n > 0 {
				log.Debug().Int("removed", n).Int("active", st.Len()).Msg("Expired sessions swept")
			}
		case <-ctx.Done():
			return
		}
	}
}

func (st *SessionStore) remove(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	n := len(st.sessions)
	st.mu.Unlock()
	metrics.SetActiveSessions(n)
}
