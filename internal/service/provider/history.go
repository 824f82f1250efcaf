package provider

import (
	"context"

	"github.com/pkg/errors"

	"omni/wa-simulator/internal/constant"
	"omni/wa-simulator/internal/domain"
)

// Messages lists recorded outbound messages newest-first.
func (p *Service) Messages(ctx context.Context, limit, offset int) ([]domain.Message, int64, error) {
	msgs, total := p.messages.Recent(limit, offset)
	return msgs, total, nil
}

// GetMessage returns one message by identifier.
func (p *Service) GetMessage(ctx context.Context, id string) (domain.Message, error) {
	msg, ok := p.messages.Get(id)
	if !ok {
		return domain.Message{}, errors.WithMessage(constant.MessageNotFoundErr, id)
	}
	return msg, nil
}

// ClearMessages wipes the message store and cancels every progression
// timer still pending against it.
func (p *Service) ClearMessages(ctx context.Context) {
	p.messages.Clear()
	p.logger.Info("provider: message store cleared")
}

// Contacts lists all known contacts.
func (p *Service) Contacts(ctx context.Context) []domain.Contact {
	return p.contacts.All()
}
