// Package session owns one itinerary.Store per browser session and serialises
// access to it. Sessions live in memory only and are dropped after a period
// of inactivity.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/travelglobal/planner/internal/domain"
	"github.com/travelglobal/planner/internal/itinerary"
)

// Event is published to subscribers after every mutation.
type Event struct {
	Snapshot domain.Snapshot `json:"snapshot"`
	Notices  []domain.Notice `json:"notices"`
}

// subscriberBuffer is how many events a slow subscriber may lag behind
// before further events are dropped for it.
const subscriberBuffer = 16

// Session is a single traveller's store plus its subscribers.
type Session struct {
	ID uuid.UUID

	mu       sync.Mutex
	store    *itinerary.Store
	lastSeen time.Time
	subs     map[int]chan Event
	nextSub  int
	closed   bool
}

func newSession(id uuid.UUID, now time.Time) *Session {
	return &Session{
		ID:       id,
		store:    itinerary.New(),
		lastSeen: now,
		subs:     make(map[int]chan Event),
	}
}

// Mutation is a store operation as exposed by itinerary.Store's methods.
type Mutation func(s *itinerary.Store) (domain.Snapshot, []domain.Notice)

// Do applies fn under the session lock and publishes the result to every
// subscriber. Mutations that produce no notices are still published.
func (s *Session) Do(fn Mutation) (domain.Snapshot, []domain.Notice) {
	snap, notices, _ := s.Try(func(st *itinerary.Store) (domain.Snapshot, []domain.Notice, error) {
		snap, notices := fn(st)
		return snap, notices, nil
	})
	return snap, notices
}

// Try is Do for mutations that may reject their input. When fn returns an
// error nothing is published and the error is returned as-is.
func (s *Session) Try(fn func(st *itinerary.Store) (domain.Snapshot, []domain.Notice, error)) (domain.Snapshot, []domain.Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, notices, err := fn(s.store)
	if err != nil {
		return domain.Snapshot{}, nil, err
	}
	s.publish(Event{Snapshot: snap, Notices: notices})
	return snap, notices, nil
}

// View returns the current snapshot.
func (s *Session) View() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Snapshot()
}

// Subscribe registers for events. The returned cancel func unregisters and
// closes the channel; it is safe to call more than once. The channel is also
// closed when the session is deleted or expires.
func (s *Session) Subscribe() (<-chan Event, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if c, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(c)
			}
		})
	}
}

// publish must be called with s.mu held.
func (s *Session) publish(ev Event) {
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// close drops all subscribers. Further Subscribe calls get a closed channel.
func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
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
