package core

import "sync"

// Registry stores active quiz sessions keyed by user id. It is owned by
// the handler aggregate and passed into engine operations explicitly.
type Registry struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewRegistry allocates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[int64]*Session)}
}

// Start creates a fresh session for the user, replacing any prior one.
func (r *Registry) Start(userID int64, category string) *Session {
	s := &Session{Category: category, Pending: IndexSet{}}
	r.mu.Lock()
	r.sessions[userID] = s
	r.mu.Unlock()
	return s
}

// Get returns the user's active session, if any.
func (r *Registry) Get(userID int64) (*Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[userID]
	r.mu.RUnlock()
	return s, ok
}

// Clear destroys the user's session.
func (r *Registry) Clear(userID int64) {
	r.mu.Lock()
	delete(r.sessions, userID)
	r.mu.Unlock()
}

// Active returns the number of live sessions.
func (r *Registry) Active() int {
	r.mu.RLock()
	n := len(r.sessions)
	r.mu.RUnlock()
	return n
}
