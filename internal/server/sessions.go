package server

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kapu/character-lookup-go/internal/widget"
)

// session is one browser's widget: its own history and display state.
type session struct {
	id       string
	widget   *widget.Widget
	lastSeen time.Time
}

// sessionStore keeps sessions in memory until they sit idle for ttl.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	newFn    func() *widget.Widget
	now      func() time.Time
	logger   *zap.Logger
}

func newSessionStore(ttl time.Duration, newFn func() *widget.Widget, logger *zap.Logger) *sessionStore {
	return &sessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		newFn:    newFn,
		now:      time.Now,
		logger:   logger,
	}
}

// get returns the live session for id, or nil.
func (s *sessionStore) get(id string) *session {
	if id == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil
	}
	if s.now().Sub(sess.lastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil
	}
	sess.lastSeen = s.now()
	return sess
}

// create starts a new session with an empty history.
func (s *sessionStore) create() *session {
	sess := &session{
		id:       uuid.NewString(),
		widget:   s.newFn(),
		lastSeen: s.now(),
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	count := len(s.sessions)
	s.mu.Unlock()

	s.logger.Debug("Session created", zap.String("session", sess.id), zap.Int("sessions", count))
	return sess
}

// sweep drops idle sessions and returns how many were removed.
func (s *sessionStore) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	now := s.now()
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *sessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// runJanitor sweeps idle sessions every interval until ctx is done.
func (s *sessionStore) runJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.sweep(); removed > 0 {
				s.logger.Info("Expired idle sessions",
					zap.Int("removed", removed),
					zap.Int("remaining", s.len()),
				)
			}
		}
	}
}
