package emitter

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omni/wa-simulator/internal/domain"
)

func testPayload(entryID string) domain.WebhookPayload {
	return domain.WebhookPayload{Entry: []domain.Entry{{ID: entryID}}}
}

func newTestEmitter() *Emitter {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return New(logger)
}

func TestPublish_DeliversInSubscriptionOrder(t *testing.T) {
	e := newTestEmitter()

	var order []string
	e.Subscribe(func(domain.WebhookPayload) error {
		order = append(order, "first")
		return nil
	})
	e.Subscribe(func(domain.WebhookPayload) error {
		order = append(order, "second")
		return nil
	})

	e.Publish(testPayload("entry.1"))

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestPublish_NoSubscribersDropsPayload(t *testing.T) {
	e := newTestEmitter()

	// Nothing to assert beyond "does not block or panic".
	e.Publish(testPayload("entry.1"))
	assert.Zero(t, e.SubscriberCount())
}

func TestPublish_SubscriberErrorDoesNotStopDelivery(t *testing.T) {
	e := newTestEmitter()

	var delivered int
	e.Subscribe(func(domain.WebhookPayload) error {
		return errors.New("sink down")
	})
	e.Subscribe(func(domain.WebhookPayload) error {
		delivered++
		return nil
	})

	e.Publish(testPayload("entry.1"))

	assert.Equal(t, 1, delivered)
}

func TestPublish_SubscriberPanicIsIsolated(t *testing.T) {
	e := newTestEmitter()

	var delivered int
	e.Subscribe(func(domain.WebhookPayload) error {
		panic("boom")
	})
	e.Subscribe(func(domain.WebhookPayload) error {
		delivered++
		return nil
	})

	require.NotPanics(t, func() {
		e.Publish(testPayload("entry.1"))
	})
	assert.Equal(t, 1, delivered)
}

func TestUnsubscribe(t *testing.T) {
	e := newTestEmitter()

	var calls int
	sub := e.Subscribe(func(domain.WebhookPayload) error {
		calls++
		return nil
	})

	e.Publish(testPayload("entry.1"))
	e.Unsubscribe(sub)
	e.Publish(testPayload("entry.2"))

	assert.Equal(t, 1, calls)
	assert.Zero(t, e.SubscriberCount())

	// Unknown subscriptions are ignored.
	e.Unsubscribe(sub)
	e.Unsubscribe(nil)
}
