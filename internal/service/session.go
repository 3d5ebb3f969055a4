package service

import (
	"sync"

	"spaceai/internal/model"
)

// Session is the server-side state of one conversation: the carried
// context plus the active result set the filter panel narrows. A
// session processes one utterance at a time; callers hold the session
// lock for the duration of a turn.
type Session struct {
	mu sync.Mutex

	Conversation model.Conversation
	Active       []model.Listing
}

// Lock serializes turns within one conversation.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the turn lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// SessionStore keeps per-conversation state for the lifetime of the
// process. Sessions are independent; the store is safe for concurrent
// use across conversations.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	fresh    func() *Session
}

// NewSessionStore creates a store whose new sessions start from the
// given factory (typically: empty conversation, full seed corpus).
func NewSessionStore(fresh func() *Session) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		fresh:    fresh,
	}
}

// Get returns the session for id, creating a fresh one when unknown.
func (s *SessionStore) Get(id string) *Session {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok = s.sessions[id]; ok {
		return sess
	}
	sess = s.fresh()
	s.sessions[id] = sess
	return sess
}

// Put stores the updated session state.
func (s *SessionStore) Put(id string, sess *Session) {
	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()
}

// Reset replaces the session with a fresh one and returns it: history
// cleared, carried location cleared, seed corpus restored.
func (s *SessionStore) Reset(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.fresh()
	s.sessions[id] = sess
	return sess
}
