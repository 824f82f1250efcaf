// Package reply synthesizes correlated inbound answers to outbound
// interactive messages. One probabilistic decision per send, no retries:
// either a reply is scheduled or that message never gets one.
package reply

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"omni/wa-simulator/internal/config"
	"omni/wa-simulator/internal/domain"
	"omni/wa-simulator/internal/emitter"
	"omni/wa-simulator/internal/ident"
	"omni/wa-simulator/internal/injector"
	"omni/wa-simulator/internal/payload"
	"omni/wa-simulator/internal/seed"
	"omni/wa-simulator/internal/store"
	"omni/wa-simulator/pkg/randx"
)

type Simulator struct {
	emitter     *emitter.Emitter
	builder     *payload.Builder
	ids         *ident.Generator
	contacts    *store.ContactStore
	gen         *seed.Generator
	rnd         randx.Source
	logger      *log.Logger
	probability float64
	delay       config.DelayRange
}

func New(
	em *emitter.Emitter,
	builder *payload.Builder,
	ids *ident.Generator,
	contacts *store.ContactStore,
	gen *seed.Generator,
	probability float64,
	delay config.DelayRange,
	rnd randx.Source,
	logger *log.Logger,
) *Simulator {
	return &Simulator{
		emitter:     em,
		builder:     builder,
		ids:         ids,
		contacts:    contacts,
		gen:         gen,
		rnd:         rnd,
		logger:      logger,
		probability: probability,
		delay:       delay,
	}
}

// MaybeReply rolls once for msg and, on success, schedules a correlated
// button selection after a randomized delay. Only interactive messages
// are eligible.
func (r *Simulator) MaybeReply(ctx context.Context, msg domain.Message) {
	if msg.Type != domain.TypeInteractive {
		return
	}

	if r.rnd.Float64() >= r.probability {
		r.logger.Debugf("reply: %s gets no reply", msg.ID)
		return
	}

	go r.schedule(ctx, msg)
}

func (r *Simulator) schedule(ctx context.Context, msg domain.Message) {
	d := injector.Draw(r.rnd, r.delay)
	if d > 0 {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}

	contact := r.contact(msg.To)
	option := r.option(msg)

	inbound := domain.InboundMessage{
		From:      contact.WaID,
		ID:        r.ids.Next(ident.NamespaceMessage),
		Timestamp: payload.Timestamp(time.Now()),
		Type:      domain.TypeInteractive,
		Context:   &domain.Context{ID: msg.ID},
		Interactive: &domain.InteractiveReply{
			Type:        "button_reply",
			ButtonReply: &option,
		},
	}

	r.emitter.Publish(r.builder.Inbound(contact, inbound))
	r.logger.WithFields(log.Fields{
		"message_id": msg.ID,
		"option":     option.ID,
	}).Debug("reply: inbound reply published")
}

func (r *Simulator) contact(waID string) domain.Contact {
	if c, ok := r.contacts.Get(waID); ok {
		return c
	}
	return r.contacts.Upsert(domain.Contact{
		WaID:      waID,
		Name:      r.gen.Name(),
		CreatedAt: time.Now(),
	})
}

// option picks one of the message's own choices, falling back to a
// generic acknowledgment when the send carried none.
func (r *Simulator) option(msg domain.Message) domain.ReplyOption {
	if len(msg.Options) > 0 {
		return msg.Options[r.rnd.Int63n(int64(len(msg.Options)))]
	}
	return domain.ReplyOption{ID: "option_1", Title: "Confirm"}
}
