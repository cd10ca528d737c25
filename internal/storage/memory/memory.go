// Package memory provides an in-memory implementation of storage.SessionStore.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tipsplit/internal/form"
	"github.com/mmynk/tipsplit/internal/models"
	"github.com/mmynk/tipsplit/internal/storage"
)

// Ensure Store implements storage.SessionStore
var _ storage.SessionStore = (*Store)(nil)

// Store keeps sessions in a map. Sessions expire ttl after their last update.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]models.Session

	ttl           time.Duration
	sweepInterval time.Duration
	now           func() time.Time

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithSweepInterval sets how often expired sessions are purged.
// Zero disables the background sweeper; expired sessions are then only
// dropped when looked up.
func WithSweepInterval(d time.Duration) Option {
	return func(s *Store) { s.sweepInterval = d }
}

// New creates a Store whose sessions live for ttl after their last update.
// A ttl of zero or less means sessions never expire.
func New(ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		sessions:      make(map[string]models.Session),
		ttl:           ttl,
		sweepInterval: time.Minute,
		now:           time.Now,
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.sweepInterval > 0 && s.ttl > 0 {
		go s.sweepLoop()
	} else {
		close(s.done)
	}
	return s
}

// Close stops the sweeper. It is safe to call more than once.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		<-s.done
	})
	return nil
}

// CreateSession stores a new session.
func (s *Store) CreateSession(ctx context.Context, session *models.Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	now := s.now().Unix()
	if session.CreatedAt == 0 {
		session.CreatedAt = now
	}
	if session.UpdatedAt == 0 {
		session.UpdatedAt = now
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[session.ID]; exists {
		return fmt.Errorf("session already exists: %s", session.ID)
	}
	s.sessions[session.ID] = *session
	return nil
}

// GetSession retrieves a copy of a live session.
func (s *Store) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrSessionNotFound, sessionID)
	}
	if s.expired(session) {
		s.mu.Lock()
		delete(s.sessions, sessionID)
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", storage.ErrSessionNotFound, sessionID)
	}
	return &session, nil
}

// ModifySession runs fn on a live session's form under the write lock.
func (s *Store) ModifySession(ctx context.Context, sessionID string, fn func(form.State) form.State) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok || s.expired(session) {
		delete(s.sessions, sessionID)
		return nil, fmt.Errorf("%w: %s", storage.ErrSessionNotFound, sessionID)
	}

	session.Form = fn(session.Form)
	session.UpdatedAt = s.now().Unix()
	s.sessions[sessionID] = session
	return &session, nil
}

// DeleteSession removes a session.
func (s *Store) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return fmt.Errorf("%w: %s", storage.ErrSessionNotFound, sessionID)
	}
	delete(s.sessions, sessionID)
	return nil
}

// Count returns the number of sessions that have not expired.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, session := range s.sessions {
		if !s.expired(session) {
			n++
		}
	}
	return n, nil
}

// Sweep deletes expired sessions and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, session := range s.sessions {
		if s.expired(session) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Store) expired(session models.Session) bool {
	if s.ttl <= 0 {
		return false
	}
	deadline := time.Unix(session.UpdatedAt, 0).Add(s.ttl)
	return !s.now().Before(deadline)
}

func (s *Store) sweepLoop() {
	defer close(s.done)

	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				slog.Debug("Swept expired sessions", "count", n)
			}
		}
	}
}
