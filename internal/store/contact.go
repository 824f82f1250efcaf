package store

import (
	"sync"

	"omni/wa-simulator/internal/domain"
)

type ContactStore struct {
	mu    sync.RWMutex
	items map[string]domain.Contact
}

func NewContactStore() *ContactStore {
	return &ContactStore{items: make(map[string]domain.Contact)}
}

// Upsert inserts the contact unless its address is already known.
// Contacts are never mutated once created.
func (s *ContactStore) Upsert(c domain.Contact) domain.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.items[c.WaID]; ok {
		return existing
	}
	s.items[c.WaID] = c
	return c
}

func (s *ContactStore) Get(waID string) (domain.Contact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.items[waID]
	return c, ok
}

func (s *ContactStore) All() []domain.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Contact, 0, len(s.items))
	for _, c := range s.items {
		out = append(out, c)
	}
	return out
}

func (s *ContactStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *ContactStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]domain.Contact)
}
