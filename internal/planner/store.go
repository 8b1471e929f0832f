package planner

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps sessions. Sessions are values; changes go through Update.
type Store interface {
	Create(now time.Time) (Session, error)
	Get(id string) (Session, error)
	// Update runs fn on the stored session under the store's lock and saves
	// the result. Nothing is saved when fn fails.
	Update(id string, fn func(*Session) error) (Session, error)
	Delete(id string) error
	// Prune drops sessions not updated since before and reports how many.
	Prune(before time.Time) int
}

// InMemoryStore is process-local; sessions vanish on restart.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]Session)}
}

func (st *InMemoryStore) Create(now time.Time) (Session, error) {
	s := Session{
		ID:        uuid.NewString(),
		Step:      StepInput,
		CreatedAt: now,
		UpdatedAt: now,
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
	return s, nil
}

func (st *InMemoryStore) Get(id string) (Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return s, nil
}

func (st *InMemoryStore) Update(id string, fn func(*Session) error) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	if err := fn(&s); err != nil {
		return Session{}, err
	}
	st.sessions[s.ID] = s
	return s, nil
}

func (st *InMemoryStore) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(st.sessions, id)
	return nil
}

func (st *InMemoryStore) Prune(before time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()
	n := 0
	for id, s := range st.sessions {
		if s.UpdatedAt.Before(before) {
			delete(st.sessions, id)
			n++
		}
	}
	return n
}

// Len reports the number of live sessions.
func (st *InMemoryStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
