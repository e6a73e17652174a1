package session

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/yourname/serenedesk/internal"
)

// Registry holds the live sessions of the process. Sessions are in-memory
// only and disappear on restart.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Store
	clock    Clock
}

func NewRegistry(clock Clock) *Registry {
	return &Registry{
		sessions: make(map[string]*Store),
		clock:    clock,
	}
}

// Create starts an empty session owned by userID.
func (r *Registry) Create(userID string) *Store {
	st := NewStore(uuid.NewString(), userID, r.clock)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[st.ID] = st
	return st
}

// Get returns the session if it exists and belongs to userID.
func (r *Registry) Get(id, userID string) (*Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st, ok := r.sessions[id]
	if !ok {
		return nil, internal.NewNotFoundError("session", id)
	}
	if st.UserID != userID {
		return nil, internal.ErrForbidden
	}
	return st, nil
}

// Delete drops a session and everything it holds.
func (r *Registry) Delete(id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	st, ok := r.sessions[id]
	if !ok {
		return internal.NewNotFoundError("session", id)
	}
	if st.UserID != userID {
		return internal.ErrForbidden
	}
	delete(r.sessions, id)
	return nil
}

// ListByUser returns the user's sessions, oldest first.
func (r *Registry) ListByUser(userID string) []*Store {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Store
	for _, st := range r.sessions {
		if st.UserID == userID {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
