package tui

import (
	"fmt"
	"sync"
	"time"
)

// SessionInfo describes one connected SSH player.
type SessionInfo struct {
	ID      string
	User    string
	Remote  string
	Started time.Time
}

// SessionRegistry tracks connected sessions and enforces a connection cap.
// Safe for concurrent use.
type SessionRegistry struct {
	mu       sync.RWMutex
	limit    int // 0 = unlimited
	nextID   int
	sessions map[string]SessionInfo
}

// NewSessionRegistry creates a registry admitting at most limit sessions.
func NewSessionRegistry(limit int) *SessionRegistry {
	return &SessionRegistry{
		limit:    max(limit, 0),
		sessions: make(map[string]SessionInfo),
	}
}

// Join admits a session, or reports false when the server is full.
func (r *SessionRegistry) Join(user, remote string, now time.Time) (SessionInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.limit > 0 && len(r.sessions) >= r.limit {
		return SessionInfo{}, false
	}
	r.nextID++
	info := SessionInfo{
		ID:      fmt.Sprintf("%s-%d", user, r.nextID),
		User:    user,
		Remote:  remote,
		Started: now,
	}
	r.sessions[info.ID] = info
	return info, true
}

// Leave removes a session.
func (r *SessionRegistry) Leave(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Get retrieves a session by ID.
func (r *SessionRegistry) Get(id string) (SessionInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Count returns the number of connected sessions.
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
