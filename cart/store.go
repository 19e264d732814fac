package cart

import (
	"slices"
	"sync"
	"time"
)

// Item is a level the user put aside.
type Item struct {
	List    string    `json:"list"`
	ID      int       `json:"id"`
	Level   string    `json:"level"`
	AddedAt time.Time `json:"addedAt"`
}

// Store is an append-only list of items that can be cleared as a whole.
type Store struct {
	mu    sync.Mutex
	items []Item
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Add(item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now()
	}
	s.items = append(s.items, item)
}

func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
