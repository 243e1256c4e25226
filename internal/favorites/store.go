package favorites

import (
	"sync"

	"github.com/BruksfildServices01/client-directory/internal/models"
)

// Store is the favorites set. It is created once by the router and handed
// to whoever needs it; there is no package-level instance.
type Store struct {
	mu    sync.RWMutex
	items map[uint]models.Client
	order []uint
}

func NewStore() *Store {
	return &Store{items: map[uint]models.Client{}}
}

// Add keeps the first insertion position; re-adding refreshes the snapshot.
func (s *Store) Add(c models.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[c.ID]; !ok {
		s.order = append(s.order, c.ID)
	}
	s.items[c.ID] = c
}

func (s *Store) Remove(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *Store) Contains(id uint) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.items[id]
	return ok
}

func (s *Store) List() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Client, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

func (s *Store) Total() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
