// Package progress drives the asynchronous status progression of sent
// messages: sent → delivered → read, one independent timer chain per
// message. The chain never produces "failed"; failures exist only at
// send time, injected before the message is recorded.
package progress

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"omni/wa-simulator/internal/config"
	"omni/wa-simulator/internal/constant"
	"omni/wa-simulator/internal/domain"
	"omni/wa-simulator/internal/emitter"
	"omni/wa-simulator/internal/injector"
	"omni/wa-simulator/internal/payload"
	"omni/wa-simulator/internal/store"
	"omni/wa-simulator/pkg/randx"
)

type Scheduler struct {
	messages *store.MessageStore
	emitter  *emitter.Emitter
	builder  *payload.Builder
	rnd      randx.Source
	logger   *log.Logger

	// Per-hop inter-arrival ranges. Sent covers the delay between the
	// synchronous ack and the first status webhook.
	sentHop      config.DelayRange
	deliveredHop config.DelayRange
	readHop      config.DelayRange

	mu     sync.Mutex
	active map[string]struct{}
}

func New(
	messages *store.MessageStore,
	em *emitter.Emitter,
	builder *payload.Builder,
	delays config.Delays,
	rnd randx.Source,
	logger *log.Logger,
) *Scheduler {
	return &Scheduler{
		messages:     messages,
		emitter:      em,
		builder:      builder,
		rnd:          rnd,
		logger:       logger,
		sentHop:      delays.Webhook,
		deliveredHop: delays.Delivered,
		readHop:      delays.Read,
		active:       make(map[string]struct{}),
	}
}

// Start launches the progression for msg. The message must already be
// recorded at status sent. Returns ProgressionExistsErr when a chain for
// the same identifier is still running.
func (s *Scheduler) Start(ctx context.Context, msg domain.Message) error {
	s.mu.Lock()
	if _, running := s.active[msg.ID]; running {
		s.mu.Unlock()
		return errors.WithMessage(constant.ProgressionExistsErr, msg.ID)
	}
	s.active[msg.ID] = struct{}{}
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.messages.AttachCancel(msg.ID, cancel)

	go s.run(ctx, msg)
	return nil
}

// Active reports whether a chain is currently running for the identifier.
func (s *Scheduler) Active(messageID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.active[messageID]
	return ok
}

func (s *Scheduler) run(ctx context.Context, msg domain.Message) {
	defer func() {
		s.messages.DetachCancel(msg.ID)
		s.mu.Lock()
		delete(s.active, msg.ID)
		s.mu.Unlock()
	}()

	// The sent status is already in the store; the first hop only emits
	// its webhook. Later hops mutate the store first, then publish, one
	// webhook per transition.
	status := domain.StatusSent
	hops := map[domain.MessageStatus]config.DelayRange{
		domain.StatusSent:      s.sentHop,
		domain.StatusDelivered: s.deliveredHop,
		domain.StatusRead:      s.readHop,
	}

	for {
		if !s.wait(ctx, hops[status]) {
			return
		}

		if status != domain.StatusSent {
			if !s.messages.SetStatus(msg.ID, status) {
				// Store was cleared underneath us; stop without
				// publishing a webhook for a vanished record.
				s.logger.Debugf("progress: %s cleared mid-flight, stopping", msg.ID)
				return
			}
		}

		s.emitter.Publish(s.builder.Status(msg.ID, status, msg.To, time.Now()))
		s.logger.WithFields(log.Fields{
			"message_id": msg.ID,
			"status":     status,
		}).Debug("progress: status advanced")

		next, ok := status.Next()
		if !ok {
			return
		}
		status = next
	}
}

func (s *Scheduler) wait(ctx context.Context, r config.DelayRange) bool {
	d := injector.Draw(s.rnd, r)
	if d <= 0 {
		return ctx.Err() == nil
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
