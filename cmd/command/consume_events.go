package command

import (
	"context"
	"encoding/json"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"omni/wa-simulator/internal/config"
	"omni/wa-simulator/internal/domain"
	"omni/wa-simulator/internal/infra"
)

type ConsumeEvents struct {
	Logger *log.Logger
}

func (cmd ConsumeEvents) Command(ctx context.Context, cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "consume-events",
		Short: "tail webhook events relayed to Kafka",
		Run: func(_ *cobra.Command, _ []string) {
			cmd.main(cfg, ctx)
		},
	}
}

func (cmd ConsumeEvents) main(cfg *config.Config, ctx context.Context) {
	reader := infra.NewKafkaReader(cfg.Kafka, "wasim-event-tail")
	defer func() {
		if err := reader.Close(); err != nil {
			cmd.Logger.WithContext(ctx).Errorf("failed to close kafka reader: %v", err)
		}
	}()

	cmd.Logger.WithContext(ctx).Info("event consumer started")

	for {
		select {
		case <-ctx.Done():
			cmd.Logger.WithContext(ctx).Info("event consumer: shutting down")
			return
		default:
		}

		m, err := reader.ReadMessage(ctx)
		if err != nil {
			select {
			case <-ctx.Done():
				return
			default:
			}
			cmd.Logger.WithContext(ctx).Errorf("event consumer: read error: %v", err)
			time.Sleep(500 * time.Millisecond)
			continue
		}

		var p domain.WebhookPayload
		if err := json.Unmarshal(m.Value, &p); err != nil {
			cmd.Logger.WithContext(ctx).Errorf("event consumer: failed to unmarshal payload: %v, raw: %s", err, string(m.Value))
			continue
		}

		for _, entry := range p.Entry {
			for _, change := range entry.Changes {
				for _, st := range change.Value.Statuses {
					cmd.Logger.WithFields(log.Fields{
						"message_id": st.ID,
						"status":     st.Status,
						"recipient":  st.RecipientID,
					}).Info("status update")
				}
				for _, msg := range change.Value.Messages {
					cmd.Logger.WithFields(log.Fields{
						"message_id": msg.ID,
						"from":       msg.From,
						"type":       msg.Type,
					}).Info("inbound message")
				}
			}
		}
	}
}
