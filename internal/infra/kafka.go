package infra

import (
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"omni/wa-simulator/internal/config"
	"omni/wa-simulator/internal/constant"
)

func NewKafkaWriter(cfg config.Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		Topic:        constant.KafkaTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: constant.KafkaProducerAcks,
		Async:        false, // the sink retries sync writes with a timeout
		BatchTimeout: 10 * time.Millisecond,
		BatchSize:    256,
	}
}

func NewKafkaReader(cfg config.Kafka, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)},
		Topic:    constant.KafkaTopic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	})
}
