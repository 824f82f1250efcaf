package provider

import (
	"context"
	"time"

	"omni/wa-simulator/internal/api/request"
	"omni/wa-simulator/internal/constant"
	"omni/wa-simulator/internal/domain"
	"omni/wa-simulator/internal/ident"
	"omni/wa-simulator/internal/injector"
	"omni/wa-simulator/internal/payload"
)

// RegisterWebhook records a callback subscription and hands back its
// identifier. Delivery itself rides on the emitter; the HTTP forwarder
// picks registrations up from here.
func (p *Service) RegisterWebhook(ctx context.Context, req request.RegisterWebhookRequest) (domain.WebhookRegistration, error) {
	if err := p.injector.Delay(ctx, injector.CategoryWebhook); err != nil {
		return domain.WebhookRegistration{}, err
	}
	if err := p.injector.MaybeFail(p.injector.Rate(injector.CategoryWebhook), constant.ProviderUnavailableErr, "webhook registration rejected"); err != nil {
		return domain.WebhookRegistration{}, err
	}

	reg := domain.WebhookRegistration{
		ID:          p.ids.Next(ident.NamespaceWebhook),
		URL:         req.URL,
		VerifyToken: req.VerifyToken,
		CreatedAt:   time.Now(),
	}

	p.regMu.Lock()
	p.registrations[reg.ID] = reg
	p.regMu.Unlock()

	p.logger.Infof("provider: webhook %s registered for %s", reg.ID, reg.URL)
	return reg, nil
}

// Registrations returns the current subscription set.
func (p *Service) Registrations() []domain.WebhookRegistration {
	p.regMu.RLock()
	defer p.regMu.RUnlock()
	out := make([]domain.WebhookRegistration, 0, len(p.registrations))
	for _, reg := range p.registrations {
		out = append(out, reg)
	}
	return out
}

// SimulateInbound synthesizes an inbound text message and publishes it
// immediately. This is the harness entry point, not an emulated provider
// call, so the injector stays out of the way.
func (p *Service) SimulateInbound(req request.SimulateInboundRequest) domain.WebhookPayload {
	contact := domain.Contact{
		WaID:      req.From,
		Name:      req.Name,
		CreatedAt: time.Now(),
	}
	if contact.WaID == "" {
		contact.WaID = p.gen.PhoneNumber()
	}
	if contact.Name == "" {
		contact.Name = p.gen.Name()
	}
	contact = p.contacts.Upsert(contact)

	body := req.Body
	if body == "" {
		body = p.gen.Body()
	}

	inbound := domain.InboundMessage{
		From:      contact.WaID,
		ID:        p.ids.Next(ident.NamespaceMessage),
		Timestamp: payload.Timestamp(time.Now()),
		Type:      domain.TypeText,
		Text:      &domain.Text{Body: body},
	}

	out := p.builder.Inbound(contact, inbound)
	p.emitter.Publish(out)
	p.logger.Debugf("provider: simulated inbound message from %s", contact.WaID)
	return out
}
