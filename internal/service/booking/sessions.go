package booking

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session ties one wizard to one guest interaction. Drafts live only here;
// nothing is persisted until the final payment step succeeds.
type Session struct {
	Token     string
	Wizard    *Wizard
	CreatedAt time.Time

	expiresAt time.Time
	mu        sync.Mutex
}

// SessionStore keeps in-progress checkouts in memory with a fixed lifetime.
type SessionStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]*Session
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

func (s *SessionStore) Create(w *Wizard) *Session {
	now := time.Now()
	session := &Session{
		Token:     uuid.NewString(),
		Wizard:    w,
		CreatedAt: now,
		expiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()
	return session
}

func (s *SessionStore) Get(token string) (*Session, bool) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(session.expiresAt) {
		s.Delete(token)
		return nil, false
	}
	return session, true
}

func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Sweep drops expired sessions and reports how many were removed.
func (s *SessionStore) Sweep() int {
	now := time.Now()
	removed := 0

	s.mu.Lock()
	for token, session := range s.sessions {
		if now.After(session.expiresAt) {
			delete(s.sessions, token)
			removed++
		}
	}
	s.mu.Unlock()
	return removed
}
