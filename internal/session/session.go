// Package session tracks quote sessions. Each session owns exactly one cart
// and is addressed by an opaque bearer token.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"laptophub/internal/cart"
)

var ErrInvalidToken = errors.New("invalid token")

const DefaultTTL = 72 * time.Hour

type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
	store    *cart.Store
}

// Do runs fn with exclusive access to the session's cart.
func (s *Session) Do(fn func(*cart.Store)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.store)
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.LastSeen()) > ttl
}

type Manager struct {
	sessions *registry
	ttl      time.Duration
	now      func() time.Time
	logger   *zap.SugaredLogger
}

type Option func(*Manager)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func NewManager(ttl time.Duration, logger *zap.SugaredLogger, opts ...Option) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	m := &Manager{
		sessions: newRegistry(),
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Issue starts a session with an empty cart.
func (m *Manager) Issue(ctx context.Context) (string, *Session, error) {
	token, err := randomToken()
	if err != nil {
		return "", nil, fmt.Errorf("issue session token: %w", err)
	}
	now := m.now()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		lastSeen:  now,
		store:     cart.New(),
	}
	m.sessions.put(token, s)
	m.logger.Debugf("session: issued id=%s", s.ID)
	return token, s, nil
}

// Lookup resolves token and marks the session as active.
func (m *Manager) Lookup(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	now := m.now()
	s, ok := m.sessions.get(token, now, m.ttl)
	if !ok {
		return nil, ErrInvalidToken
	}
	s.touch(now)
	return s, nil
}

// Sweep evicts every session idle for longer than the TTL.
func (m *Manager) Sweep(now time.Time) int {
	n := m.sessions.sweep(now, m.ttl)
	if n > 0 {
		m.logger.Infof("session: swept expired=%d remaining=%d", n, m.sessions.len())
	}
	return n
}

// RunSweeper calls Sweep every interval until ctx is done.
func (m *Manager) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep(m.now())
		}
	}
}

func (m *Manager) Len() int {
	return m.sessions.len()
}

func (m *Manager) TTLSeconds() int {
	return int(m.ttl.Seconds())
}
