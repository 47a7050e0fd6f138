package sessionstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/quizdesk/quizdesk/internal/question"
	"github.com/quizdesk/quizdesk/internal/session"
)

// MemoryStore is an in-process Store used by tests and single-process
// deployments that run without Redis.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]session.State
	sets     map[uuid.UUID]question.Set
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[uuid.UUID]session.State),
		sets:     make(map[uuid.UUID]question.Set),
	}
}

func (s *MemoryStore) SaveSession(_ context.Context, state session.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[state.ID] = state
	return nil
}

func (s *MemoryStore) GetSession(_ context.Context, id uuid.UUID) (session.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[id]
	if !ok {
		return session.State{}, ErrSessionNotFound
	}
	return state, nil
}

func (s *MemoryStore) SaveSet(_ context.Context, id uuid.UUID, set question.Set) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets[id] = set
	return nil
}

func (s *MemoryStore) GetSet(_ context.Context, id uuid.UUID) (question.Set, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set, ok := s.sets[id]
	if !ok {
		return question.Set{}, ErrSetNotFound
	}
	return set, nil
}
