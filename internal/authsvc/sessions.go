// Package authsvc implements the session service the catalog consults when
// resolving callers. Sessions are opaque server-issued tokens held in a
// bounded in-memory table; there is no persistence, a restart logs
// everyone out.
package authsvc

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/filecatalog/internal/common"
)

type sessionRecord struct {
	userID    int64
	email     string
	expiresAt time.Time
}

// SessionStore is a bounded in-memory session table. A zero TTL means
// sessions never expire. The now seam exists for expiry tests.
type SessionStore struct {
	mu         sync.RWMutex
	sessions   map[string]sessionRecord
	maxEntries int
	ttl        time.Duration
	now        func() time.Time
}

func NewSessionStore(maxEntries int, ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions:   make(map[string]sessionRecord),
		maxEntries: maxEntries,
		ttl:        ttl,
		now:        time.Now,
	}
}

func (s *SessionStore) expired(r sessionRecord) bool {
	return !r.expiresAt.IsZero() && s.now().After(r.expiresAt)
}

// Put registers a session. Replacing an existing session id never counts
// against the table limit.
func (s *SessionStore) Put(sessionID string, userID int64, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok && len(s.sessions) >= s.maxEntries {
		return common.ErrSessionTableFull
	}

	r := sessionRecord{userID: userID, email: email}
	if s.ttl > 0 {
		r.expiresAt = s.now().Add(s.ttl)
	}
	s.sessions[sessionID] = r
	return nil
}

// Get returns the session owner, or common.ErrInvalidSession for unknown or
// expired sessions.
func (s *SessionStore) Get(sessionID string) (int64, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.sessions[sessionID]
	if !ok || s.expired(r) {
		return 0, "", common.ErrInvalidSession
	}
	return r.userID, r.email, nil
}

// Delete removes a session. Deleting an unknown session is not an error.
func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionStore) prune() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, r := range s.sessions {
		if s.expired(r) {
			delete(s.sessions, id)
		}
	}
}

// RunJanitor prunes expired sessions every interval until ctx is done.
// It is a no-op for stores without a TTL.
func (s *SessionStore) RunJanitor(ctx context.Context, interval time.Duration) {
	if s.ttl <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.prune()
		}
	}
}
