package wizard

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps live wizard sessions keyed by an opaque id. Sessions are held
// in process memory only; abandoned ones are swept after the TTL.
type Store[T any] struct {
	mu        sync.Mutex
	sessions  map[string]*session[T]
	ttl       time.Duration
	stop      chan struct{}
	closeOnce sync.Once
}

type session[T any] struct {
	ctrl    *Controller[T]
	touched time.Time
}

func NewStore[T any](ttl time.Duration) *Store[T] {
	s := &Store[T]{
		sessions: make(map[string]*session[T]),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}

	go s.sweepLoop()

	return s
}

// Create opens a new session and returns its id.
func (s *Store[T]) Create(steps []Step[T], seed T) (string, *Controller[T]) {
	ctrl := NewController(steps, seed)
	id := uuid.NewString()

	s.mu.Lock()
	s.sessions[id] = &session[T]{ctrl: ctrl, touched: time.Now()}
	s.mu.Unlock()

	return id, ctrl
}

// Get returns the controller for the id and refreshes its TTL.
func (s *Store[T]) Get(id string) (*Controller[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	sess.touched = time.Now()
	return sess.ctrl, true
}

func (s *Store[T]) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Close stops the background sweeper. Safe to call more than once.
func (s *Store[T]) Close() {
	s.closeOnce.Do(func() {
		close(s.stop)
	})
}

func (s *Store[T]) sweepLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(time.Now().Add(-s.ttl))
		case <-s.stop:
			return
		}
	}
}

// sweep drops sessions finished or untouched since the cutoff.
func (s *Store[T]) sweep(cutoff time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		if sess.touched.Before(cutoff) || sess.ctrl.Finished() {
			delete(s.sessions, id)
		}
	}
}
