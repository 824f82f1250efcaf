package provider

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"omni/wa-simulator/internal/api/request"
	"omni/wa-simulator/internal/constant"
	"omni/wa-simulator/internal/domain"
	"omni/wa-simulator/internal/ident"
	"omni/wa-simulator/internal/injector"
)

// SendMessage emulates the provider's send call: pay the simulated round
// trip, maybe get rejected, otherwise record the message at status sent,
// kick off its asynchronous progression and return the ack. The caller
// gets the ack as soon as the provider "accepts"; no part of the
// progression is awaited. A rejected send leaves no record behind.
func (p *Service) SendMessage(ctx context.Context, req request.SendMessageRequest) (domain.SendAck, error) {
	if err := p.injector.Delay(ctx, injector.CategorySend); err != nil {
		return domain.SendAck{}, err
	}
	if err := p.injector.MaybeFail(p.injector.Rate(injector.CategorySend), constant.ProviderUnavailableErr, "send rejected"); err != nil {
		return domain.SendAck{}, err
	}

	msg := domain.Message{
		ID:        p.ids.Next(ident.NamespaceMessage),
		To:        req.To,
		Type:      domain.MessageType(req.Type),
		Body:      bodyOf(req),
		Options:   optionsOf(req),
		Status:    domain.StatusSent,
		CreatedAt: time.Now(),
	}
	p.messages.Record(msg)

	if err := p.progress.Start(p.ctx, msg); err != nil {
		// Can only happen on an identifier collision, which the id
		// generator rules out; log and keep the accepted message.
		p.logger.WithField("message_id", msg.ID).Errorf("provider: progression not started: %v", err)
	}

	if msg.Type == domain.TypeInteractive {
		p.reply.MaybeReply(p.ctx, msg)
	}

	p.logger.WithFields(log.Fields{
		"message_id": msg.ID,
		"to":         msg.To,
		"type":       msg.Type,
	}).Info("provider: message accepted")

	return domain.SendAck{
		MessagingProduct: constant.MessagingProduct,
		Contacts:         []domain.AckContact{{Input: req.To, WaID: req.To}},
		Messages:         []domain.AckMessage{{ID: msg.ID}},
	}, nil
}

// SendTemplate is SendMessage with the content type pinned to template.
func (p *Service) SendTemplate(ctx context.Context, req request.SendMessageRequest) (domain.SendAck, error) {
	req.Type = string(domain.TypeTemplate)
	return p.SendMessage(ctx, req)
}

func bodyOf(req request.SendMessageRequest) string {
	switch domain.MessageType(req.Type) {
	case domain.TypeText:
		if req.Text != nil {
			return req.Text.Body
		}
	case domain.TypeTemplate:
		if req.Template != nil {
			return req.Template.Name
		}
	case domain.TypeImage:
		if req.Image != nil {
			return req.Image.Caption
		}
	case domain.TypeDocument:
		if req.Document != nil {
			return req.Document.Caption
		}
	case domain.TypeLocation:
		if req.Location != nil {
			return req.Location.Name
		}
	case domain.TypeInteractive:
		if req.Interactive != nil && req.Interactive.Body != nil {
			return req.Interactive.Body.Body
		}
	}
	return ""
}

func optionsOf(req request.SendMessageRequest) []domain.ReplyOption {
	if req.Interactive == nil || req.Interactive.Action == nil {
		return nil
	}
	opts := make([]domain.ReplyOption, 0, len(req.Interactive.Action.Buttons))
	for _, b := range req.Interactive.Action.Buttons {
		opts = append(opts, domain.ReplyOption{ID: b.Reply.ID, Title: b.Reply.Title})
	}
	return opts
}
