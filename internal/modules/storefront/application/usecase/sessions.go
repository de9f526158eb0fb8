package usecase

import "sync"

// SessionRegistry tracks the live sessions so change-event handlers can
// fan a refreshed dataset out to each of them.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[string]*Session)}
}

// Register binds a session to its connection id, replacing any previous
// session registered under the same id.
func (r *SessionRegistry) Register(id string, session *Session) {
	if id == "" || session == nil {
		return
	}
	r.mu.Lock()
	r.sessions[id] = session
	r.mu.Unlock()
}

// Unregister drops the session for the given id if it is still the one
// registered there.
func (r *SessionRegistry) Unregister(id string, session *Session) {
	r.mu.Lock()
	if current, ok := r.sessions[id]; ok && current == session {
		delete(r.sessions, id)
	}
	r.mu.Unlock()
}

// Each invokes fn for every live session. fn runs without the registry
// lock held, so it may call back into the registry.
func (r *SessionRegistry) Each(fn func(*Session)) {
	r.mu.RLock()
	snapshot := make([]*Session, 0, len(r.sessions))
	for _, session := range r.sessions {
		snapshot = append(snapshot, session)
	}
	r.mu.RUnlock()
	for _, session := range snapshot {
		fn(session)
	}
}

// Len reports the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
