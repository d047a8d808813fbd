package agent

import (
	"sync"

	"tablebook/models"
)

// SessionStore owns the conversation sessions. Sessions live only while a
// conversation is incomplete: they are created lazily on first reference and
// deleted on finalization or reset.
type SessionStore interface {
	// Get returns the session for id, or nil if none exists.
	Get(id string) *models.ConversationSession
	// GetOrCreate returns the session for id, creating a fresh one at the
	// greeting step when the id is unknown.
	GetOrCreate(id string) *models.ConversationSession
	// Delete removes the session for id, if present.
	Delete(id string)
}

// InMemorySessionStore keeps sessions in a process-wide map. The map is
// unbounded and never evicted: abandoned conversations leak their entry
// until an explicit reset. This is a known limitation.
type InMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*models.ConversationSession
}

// NewInMemorySessionStore returns an empty in-memory store.
func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		sessions: make(map[string]*models.ConversationSession),
	}
}

func (s *InMemorySessionStore) Get(id string) *models.ConversationSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

func (s *InMemorySessionStore) GetOrCreate(id string) *models.ConversationSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		return sess
	}
	sess := &models.ConversationSession{Step: models.StepGreeting}
	s.sessions[id] = sess
	return sess
}

func (s *InMemorySessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
