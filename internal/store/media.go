package store

import (
	"sync"

	"omni/wa-simulator/internal/domain"
)

type MediaStore struct {
	mu    sync.RWMutex
	items map[string]domain.MediaRecord
}

func NewMediaStore() *MediaStore {
	return &MediaStore{items: make(map[string]domain.MediaRecord)}
}

func (s *MediaStore) Record(rec domain.MediaRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[rec.ID] = rec
}

func (s *MediaStore) Get(id string) (domain.MediaRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.items[id]
	return rec, ok
}

func (s *MediaStore) Query(pred func(domain.MediaRecord) bool) []domain.MediaRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.MediaRecord
	for _, rec := range s.items {
		if pred == nil || pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func (s *MediaStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *MediaStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]domain.MediaRecord)
}
