// Package relay forwards published webhook payloads out of the process:
// to a Kafka topic for downstream consumers and over HTTP to registered
// callback URLs. Both sinks are emitter subscribers; a sink failure is
// isolated there and never touches the simulation itself.
package relay

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"

	"omni/wa-simulator/internal/constant"
	"omni/wa-simulator/internal/domain"
)

type kafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaSink struct {
	writer kafkaWriter
	logger *log.Logger
}

func NewKafkaSink(writer kafkaWriter, logger *log.Logger) *KafkaSink {
	return &KafkaSink{writer: writer, logger: logger}
}

// Handle writes the payload to the topic, keyed by its first entry so a
// message's events stay on one partition. Retries with backoff; gives up
// after the configured attempts and reports the error to the emitter.
func (s *KafkaSink) Handle(payload domain.WebhookPayload) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "relay: failed to marshal payload")
	}

	var key []byte
	if len(payload.Entry) > 0 {
		key = []byte(payload.Entry[0].ID)
	}

	var lastErr error
	for attempt := 0; attempt < constant.KafkaWriteRetries; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), constant.KafkaWriteTimeout)
		err := s.writer.WriteMessages(ctx, kafka.Message{
			Key:   key,
			Value: b,
			Time:  time.Now(),
		})
		cancel()
		if err == nil {
			return nil
		}
		lastErr = err
		s.logger.Warnf("relay: kafka write attempt %d failed: %v", attempt+1, err)
		time.Sleep(constant.KafkaRetryBackoff * time.Duration(attempt+1))
	}
	return errors.Wrap(lastErr, "relay: kafka write exhausted retries")
}
