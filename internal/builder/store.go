package builder

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session id is unknown or expired
var ErrSessionNotFound = fmt.Errorf("builder session not found")

// Store keeps live builder sessions in memory. Sessions are private to a
// single booking flow and discarded on submit, so they never outlive the
// process.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Put registers a session
func (st *Store) Put(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
}

// Get fetches a session by id
func (st *Store) Get(id uuid.UUID) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete discards a session
func (st *Store) Delete(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len reports how many sessions are live
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
