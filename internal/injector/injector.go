// Package injector simulates the latency and flakiness of the real
// provider. Every provider-facing operation pays the delay first and only
// then rolls for failure, the same order a real round trip fails in.
package injector

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"omni/wa-simulator/internal/config"
	"omni/wa-simulator/pkg/randx"
)

type Category string

const (
	CategorySend        Category = "send"
	CategoryWebhook     Category = "webhook"
	CategoryMediaUpload Category = "media_upload"
	CategoryStorage     Category = "storage"
	CategoryExternal    Category = "external"
)

type Injector struct {
	delays map[Category]config.DelayRange
	rates  map[Category]float64
	rnd    randx.Source
}

func New(delays config.Delays, rates config.ErrorRates, rnd randx.Source) *Injector {
	return &Injector{
		delays: map[Category]config.DelayRange{
			CategorySend:        delays.Send,
			CategoryWebhook:     delays.Webhook,
			CategoryMediaUpload: delays.MediaUpload,
			CategoryStorage:     delays.Storage,
			CategoryExternal:    delays.External,
		},
		rates: map[Category]float64{
			CategorySend:        rates.Send,
			CategoryWebhook:     rates.Webhook,
			CategoryMediaUpload: rates.MediaUpload,
			CategoryStorage:     rates.Storage,
			CategoryExternal:    rates.External,
		},
		rnd: rnd,
	}
}

// Delay blocks the calling goroutine for a duration drawn uniformly from
// the category's configured range. Other in-flight operations keep
// running. Returns early with the context's error on cancellation.
func (i *Injector) Delay(ctx context.Context, cat Category) error {
	d := Draw(i.rnd, i.delays[cat])
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// MaybeFail fails with the given sentinel, annotated with msg, with
// probability rate. Rate is clamped to [0,1].
func (i *Injector) MaybeFail(rate float64, sentinel error, msg string) error {
	if rate <= 0 {
		return nil
	}
	if rate >= 1 || i.rnd.Float64() < rate {
		return errors.WithMessage(sentinel, msg)
	}
	return nil
}

// Rate returns the configured error rate of a category.
func (i *Injector) Rate(cat Category) float64 {
	return i.rates[cat]
}

// Draw picks a duration uniformly from r.
func Draw(rnd randx.Source, r config.DelayRange) time.Duration {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + time.Duration(rnd.Int63n(int64(r.Max-r.Min)+1))
}
