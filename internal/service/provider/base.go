package provider

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"omni/wa-simulator/internal/config"
	"omni/wa-simulator/internal/domain"
	"omni/wa-simulator/internal/emitter"
	"omni/wa-simulator/internal/ident"
	"omni/wa-simulator/internal/injector"
	"omni/wa-simulator/internal/payload"
	"omni/wa-simulator/internal/seed"
	"omni/wa-simulator/internal/store"
)

// Service is the provider façade: everything a client of the real
// messaging API would call, backed by the in-memory simulator instead of
// the network. One Service owns one isolated simulation session; tests
// construct their own and tear it down with Close.
type Service struct {
	cfg      config.Provider
	injector *injector.Injector
	ids      *ident.Generator
	messages *store.MessageStore
	media    *store.MediaStore
	contacts *store.ContactStore
	emitter  *emitter.Emitter
	builder  *payload.Builder
	gen      *seed.Generator
	progress progressStarter
	reply    replySimulator
	logger   *logrus.Logger

	// Timer chains outlive the caller's request context; they hang off
	// this one and die on Close.
	ctx    context.Context
	cancel context.CancelFunc

	regMu         sync.RWMutex
	registrations map[string]domain.WebhookRegistration
}

type progressStarter interface {
	Start(ctx context.Context, msg domain.Message) error
}

type replySimulator interface {
	MaybeReply(ctx context.Context, msg domain.Message)
}

func NewService(
	cfg config.Provider,
	inj *injector.Injector,
	ids *ident.Generator,
	messages *store.MessageStore,
	media *store.MediaStore,
	contacts *store.ContactStore,
	em *emitter.Emitter,
	builder *payload.Builder,
	gen *seed.Generator,
	progress progressStarter,
	reply replySimulator,
	logger *logrus.Logger,
) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		cfg:           cfg,
		injector:      inj,
		ids:           ids,
		messages:      messages,
		media:         media,
		contacts:      contacts,
		emitter:       em,
		builder:       builder,
		gen:           gen,
		progress:      progress,
		reply:         reply,
		logger:        logger,
		ctx:           ctx,
		cancel:        cancel,
		registrations: make(map[string]domain.WebhookRegistration),
	}
}

// SeedContacts preloads n synthetic contacts.
func (p *Service) SeedContacts(n int) {
	for i := 0; i < n; i++ {
		p.contacts.Upsert(p.gen.Contact())
	}
	p.logger.Infof("provider: seeded %d contacts", p.contacts.Len())
}

// Close stops all pending timer chains of this session.
func (p *Service) Close() {
	p.cancel()
}
