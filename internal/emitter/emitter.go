// Package emitter is the simulator's webhook fan-out: a synchronous,
// ordered publish/subscribe channel with no buffering and no persistence.
// A payload published while nobody listens is dropped.
package emitter

import (
	"sync"
	"sync/atomic"

	log "github.com/sirupsen/logrus"

	"omni/wa-simulator/internal/domain"
)

// Handler consumes one published payload. Errors and panics are isolated
// per subscriber and never stop delivery to the rest.
type Handler func(payload domain.WebhookPayload) error

type Subscription struct {
	id uint64
}

type subscriber struct {
	id      uint64
	handler Handler
}

type Emitter struct {
	mu     sync.RWMutex
	subs   []subscriber
	nextID atomic.Uint64
	logger *log.Logger
}

func New(logger *log.Logger) *Emitter {
	return &Emitter{logger: logger}
}

// Subscribe registers a handler. Handlers are invoked in subscription
// order.
func (e *Emitter) Subscribe(h Handler) *Subscription {
	id := e.nextID.Add(1)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = append(e.subs, subscriber{id: id, handler: h})
	return &Subscription{id: id}
}

func (e *Emitter) Unsubscribe(s *Subscription) {
	if s == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, sub := range e.subs {
		if sub.id == s.id {
			e.subs = append(e.subs[:i], e.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers payload to every currently registered subscriber,
// synchronously and in subscription order.
func (e *Emitter) Publish(payload domain.WebhookPayload) {
	e.mu.RLock()
	subs := make([]subscriber, len(e.subs))
	copy(subs, e.subs)
	e.mu.RUnlock()

	for _, sub := range subs {
		e.deliver(sub, payload)
	}
}

func (e *Emitter) deliver(sub subscriber, payload domain.WebhookPayload) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Errorf("emitter: subscriber %d panicked: %v", sub.id, r)
		}
	}()

	if err := sub.handler(payload); err != nil {
		e.logger.Warnf("emitter: subscriber %d failed: %v", sub.id, err)
	}
}

// SubscriberCount is for introspection in tests and logs.
func (e *Emitter) SubscriberCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.subs)
}
