// Package store holds the simulator's in-memory state. The stores are the
// only shared mutable resources besides the emitter's subscriber set, so
// each guards itself with a mutex. Nothing is evicted; test harnesses are
// expected to call Clear between scenarios.
package store

import (
	"context"
	"sort"
	"sync"

	"omni/wa-simulator/internal/domain"
)

type MessageStore struct {
	mu      sync.RWMutex
	items   map[string]domain.Message
	cancels map[string]context.CancelFunc
}

func NewMessageStore() *MessageStore {
	return &MessageStore{
		items:   make(map[string]domain.Message),
		cancels: make(map[string]context.CancelFunc),
	}
}

// Record stores msg by identifier, overwriting any previous value fully.
func (s *MessageStore) Record(msg domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[msg.ID] = msg
}

func (s *MessageStore) Get(id string) (domain.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msg, ok := s.items[id]
	return msg, ok
}

// SetStatus mutates only the status field of a stored message. Returns
// false when the message is gone, which happens when a Clear raced the
// caller.
func (s *MessageStore) SetStatus(id string, status domain.MessageStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg, ok := s.items[id]
	if !ok {
		return false
	}
	msg.Status = status
	s.items[id] = msg
	return true
}

// Query returns all messages matching pred, unordered.
func (s *MessageStore) Query(pred func(domain.Message) bool) []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Message
	for _, msg := range s.items {
		if pred == nil || pred(msg) {
			out = append(out, msg)
		}
	}
	return out
}

// Recent returns messages newest-first, sliced by offset/limit, plus the
// total match count.
func (s *MessageStore) Recent(limit, offset int) ([]domain.Message, int64) {
	all := s.Query(nil)
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := int64(len(all))
	if offset >= len(all) {
		return nil, total
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, total
}

func (s *MessageStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// AttachCancel records the cancellation handle of the message's
// progression so Clear can stop outstanding timers. At most one handle
// per identifier.
func (s *MessageStore) AttachCancel(id string, cancel context.CancelFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancels[id] = cancel
}

// DetachCancel drops the handle once a progression reaches its terminal
// state.
func (s *MessageStore) DetachCancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cancels, id)
}

// Clear removes every message and cancels every outstanding progression
// timer, so nothing fires against a store that no longer holds its
// record. Idempotent.
func (s *MessageStore) Clear() {
	s.mu.Lock()
	cancels := s.cancels
	s.items = make(map[string]domain.Message)
	s.cancels = make(map[string]context.CancelFunc)
	s.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}
