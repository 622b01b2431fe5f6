package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/travelglobal/planner/internal/domain"
)

// Registry tracks live sessions by id.
type Registry struct {
	ttl time.Duration
	now func() time.Time
	log *slog.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// Option customises a Registry.
type Option func(*Registry)

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// WithLogger sets the logger used by the sweeper.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) { r.log = l }
}

// NewRegistry returns an empty registry whose sessions expire after ttl of
// inactivity. A ttl of zero disables expiry.
func NewRegistry(ttl time.Duration, opts ...Option) *Registry {
	r := &Registry{
		ttl:      ttl,
		now:      time.Now,
		log:      slog.Default(),
		sessions: make(map[uuid.UUID]*Session),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Create starts a new session with an empty itinerary.
func (r *Registry) Create() *Session {
	s := newSession(uuid.New(), r.now())

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get returns the session with the given id and marks it active.
// Returns domain.ErrNotFound if it does not exist or has expired.
func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("session.Registry.Get: %w", domain.ErrNotFound)
	}
	s.touch(r.now())
	return s, nil
}

// Delete ends a session and disconnects its subscribers.
// Returns domain.ErrNotFound if it does not exist.
func (r *Registry) Delete(id uuid.UUID) error {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("session.Registry.Delete: %w", domain.ErrNotFound)
	}
	s.close()
	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep removes every session idle for longer than the ttl and returns how
// many were removed.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.ttl)

	var expired []*Session
	r.mu.Lock()
	for id, s := range r.sessions {
		if s.idleSince().Before(cutoff) {
			delete(r.sessions, id)
			expired = append(expired, s)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.close()
	}
	return len(expired)
}

// Run sweeps expired sessions every interval until ctx is cancelled.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if r.ttl <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.log.Info("expired idle sessions", "count", n, "live", r.Len())
			}
		}
	}
}
