package reply

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omni/wa-simulator/internal/config"
	"omni/wa-simulator/internal/domain"
	"omni/wa-simulator/internal/emitter"
	"omni/wa-simulator/internal/ident"
	"omni/wa-simulator/internal/payload"
	"omni/wa-simulator/internal/seed"
	"omni/wa-simulator/internal/store"
	"omni/wa-simulator/pkg/randx"
)

type inboundCollector struct {
	mu       sync.Mutex
	messages []domain.InboundMessage
}

func (c *inboundCollector) handle(p domain.WebhookPayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, entry := range p.Entry {
		for _, change := range entry.Changes {
			c.messages = append(c.messages, change.Value.Messages...)
		}
	}
	return nil
}

func (c *inboundCollector) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

func (c *inboundCollector) first() domain.InboundMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.messages[0]
}

func newTestSimulator(t *testing.T, probability float64, seedVal int64) (*Simulator, *inboundCollector) {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	rnd := randx.New(seedVal)
	em := emitter.New(logger)
	collector := &inboundCollector{}
	em.Subscribe(collector.handle)

	ids := ident.New()
	builder := payload.NewBuilder(ids, domain.Metadata{
		DisplayPhoneNumber: "15550000001",
		PhoneNumberID:      "100000000000001",
	})

	sim := New(em, builder, ids, store.NewContactStore(), seed.New(rnd), probability, config.DelayRange{}, rnd, logger)
	return sim, collector
}

func interactiveMessage(id string) domain.Message {
	return domain.Message{
		ID:   id,
		To:   "5511999999999",
		Type: domain.TypeInteractive,
		Body: "Confirm your appointment?",
		Options: []domain.ReplyOption{
			{ID: "confirm", Title: "Confirm"},
			{ID: "reschedule", Title: "Reschedule"},
		},
		Status:    domain.StatusSent,
		CreatedAt: time.Now(),
	}
}

func TestMaybeReply_AlwaysRepliesAtProbabilityOne(t *testing.T) {
	sim, collector := newTestSimulator(t, 1, 3)

	msg := interactiveMessage("wamid.orig")
	sim.MaybeReply(context.Background(), msg)

	require.Eventually(t, func() bool {
		return collector.count() == 1
	}, 2*time.Second, time.Millisecond)

	reply := collector.first()
	require.NotNil(t, reply.Context)
	assert.Equal(t, "wamid.orig", reply.Context.ID)
	assert.Equal(t, domain.TypeInteractive, reply.Type)
	assert.Equal(t, msg.To, reply.From)

	require.NotNil(t, reply.Interactive)
	require.NotNil(t, reply.Interactive.ButtonReply)
	assert.Contains(t, []string{"confirm", "reschedule"}, reply.Interactive.ButtonReply.ID)
}

func TestMaybeReply_NeverRepliesAtProbabilityZero(t *testing.T) {
	sim, collector := newTestSimulator(t, 0, 3)

	for i := 0; i < 50; i++ {
		sim.MaybeReply(context.Background(), interactiveMessage("wamid.orig"))
	}

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, collector.count())
}

func TestMaybeReply_IgnoresNonInteractive(t *testing.T) {
	sim, collector := newTestSimulator(t, 1, 3)

	msg := interactiveMessage("wamid.orig")
	msg.Type = domain.TypeText
	sim.MaybeReply(context.Background(), msg)

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, collector.count())
}

func TestMaybeReply_FrequencyConverges(t *testing.T) {
	sim, collector := newTestSimulator(t, 0.7, 42)

	const n = 200
	for i := 0; i < n; i++ {
		sim.MaybeReply(context.Background(), interactiveMessage("wamid.orig"))
	}

	// Binomial with p=0.7, n=200: ±4 standard deviations around 140.
	require.Eventually(t, func() bool {
		return collector.count() >= 114
	}, 5*time.Second, 5*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	got := collector.count()
	assert.GreaterOrEqual(t, got, 114)
	assert.LessOrEqual(t, got, 166)
}

func TestMaybeReply_CancelledContextProducesNothing(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	rnd := randx.New(3)
	em := emitter.New(logger)
	collector := &inboundCollector{}
	em.Subscribe(collector.handle)

	ids := ident.New()
	builder := payload.NewBuilder(ids, domain.Metadata{})
	delay := config.DelayRange{Min: time.Second, Max: 2 * time.Second}
	sim := New(em, builder, ids, store.NewContactStore(), seed.New(rnd), 1, delay, rnd, logger)

	ctx, cancel := context.WithCancel(context.Background())
	sim.MaybeReply(ctx, interactiveMessage("wamid.orig"))
	cancel()

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, collector.count())
}
