package session

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

type registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func newRegistry() *registry {
	return &registry{sessions: make(map[string]*Session)}
}

func (r *registry) put(token string, s *Session) {
	r.mu.Lock()
	r.sessions[token] = s
	r.mu.Unlock()
}

// get returns the session for token, dropping it when it has expired.
func (r *registry) get(token string, now time.Time, ttl time.Duration) (*Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[token]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.expired(now, ttl) {
		r.mu.Lock()
		delete(r.sessions, token)
		r.mu.Unlock()
		return nil, false
	}
	return s, true
}

func (r *registry) sweep(now time.Time, ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int
	for token, s := range r.sessions {
		if s.expired(now, ttl) {
			delete(r.sessions, token)
			n++
		}
	}
	return n
}

func (r *registry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
