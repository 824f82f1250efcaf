package constant

import (
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	MessagingProduct = "whatsapp"

	// ChangeField is the only change field this simulator emits; the real
	// provider multiplexes account updates through the same envelope.
	ChangeField = "messages"

	KafkaTopic         = "wasim.webhook-events"
	KafkaProducerAcks  = kafka.RequireOne
	KafkaWriteTimeout  = 5 * time.Second
	KafkaWriteRetries  = 3
	KafkaRetryBackoff  = 500 * time.Millisecond
	RedisWriteTimeout  = 2 * time.Second
	JournalKey         = "wasim:webhook-journal"
	ForwardHTTPTimeout = 10 * time.Second
)
