package session

import (
	"sync"
	"time"
)

// Store is an in-memory session map keyed by requester id. All methods are
// safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[int64]*Session),
		now:      time.Now,
	}
}

// Get returns the requester's session, or nil if none is active.
func (s *Store) Get(requesterID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[requesterID]
}

// GetOrCreate returns the requester's session, creating a fresh one in the
// given state when none exists. Touches UpdatedAt either way.
func (s *Store) GetOrCreate(requesterID int64, username string, initial State) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[requesterID]
	if !ok {
		sess = &Session{RequesterID: requesterID, Username: username, State: initial}
		s.sessions[requesterID] = sess
	}
	sess.UpdatedAt = s.now()
	return sess
}

// Reset replaces any existing session with a fresh one in the given state.
func (s *Store) Reset(requesterID int64, username string, initial State) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{RequesterID: requesterID, Username: username, State: initial, UpdatedAt: s.now()}
	s.sessions[requesterID] = sess
	return sess
}

// Touch refreshes the session's idle timer after a handled event.
func (s *Store) Touch(requesterID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[requesterID]; ok {
		sess.UpdatedAt = s.now()
	}
}

func (s *Store) Delete(requesterID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, requesterID)
}

// Reap drops sessions idle for longer than maxIdle and reports how many were
// removed. Called from the scheduler, never from the hot path.
func (s *Store) Reap(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	removed := 0
	for id, sess := range s.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of active sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
