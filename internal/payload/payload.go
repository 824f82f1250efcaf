// Package payload assembles the webhook envelopes the simulator publishes.
// Status updates and inbound messages share one envelope shape; exactly
// one of the two sets is present per change.
package payload

import (
	"strconv"
	"time"

	"omni/wa-simulator/internal/constant"
	"omni/wa-simulator/internal/domain"
	"omni/wa-simulator/internal/ident"
)

type Builder struct {
	ids  *ident.Generator
	meta domain.Metadata
}

func NewBuilder(ids *ident.Generator, meta domain.Metadata) *Builder {
	return &Builder{ids: ids, meta: meta}
}

// Status wraps a single status update for one outbound message.
func (b *Builder) Status(messageID string, status domain.MessageStatus, recipient string, at time.Time) domain.WebhookPayload {
	return b.envelope(domain.ChangeValue{
		MessagingProduct: constant.MessagingProduct,
		Metadata:         b.meta,
		Statuses: []domain.StatusUpdate{{
			ID:          messageID,
			Status:      status,
			Timestamp:   Timestamp(at),
			RecipientID: recipient,
		}},
	})
}

// Inbound wraps a single received message together with its sender.
func (b *Builder) Inbound(contact domain.Contact, msg domain.InboundMessage) domain.WebhookPayload {
	return b.envelope(domain.ChangeValue{
		MessagingProduct: constant.MessagingProduct,
		Metadata:         b.meta,
		Contacts: []domain.WebhookContact{{
			WaID:    contact.WaID,
			Profile: domain.Profile{Name: contact.Name},
		}},
		Messages: []domain.InboundMessage{msg},
	})
}

func (b *Builder) envelope(value domain.ChangeValue) domain.WebhookPayload {
	return domain.WebhookPayload{
		Entry: []domain.Entry{{
			ID: b.ids.Next(ident.NamespaceEntry),
			Changes: []domain.Change{{
				Value: value,
				Field: constant.ChangeField,
			}},
		}},
	}
}

// Timestamp renders the epoch-seconds string the wire format carries.
func Timestamp(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}
