package relay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"omni/wa-simulator/internal/constant"
	"omni/wa-simulator/internal/domain"
)

// HTTPSink POSTs each published payload to every registered callback URL.
// The registration set is read per publish so late registrations start
// receiving events without re-subscribing the sink.
type HTTPSink struct {
	registrations func() []domain.WebhookRegistration
	client        *http.Client
	logger        *log.Logger
}

func NewHTTPSink(registrations func() []domain.WebhookRegistration, logger *log.Logger) *HTTPSink {
	return &HTTPSink{
		registrations: registrations,
		client: &http.Client{
			Timeout: constant.ForwardHTTPTimeout,
		},
		logger: logger,
	}
}

// Handle delivers the payload to all registered URLs. One slow or broken
// endpoint only costs its own delivery; the rest still get theirs.
func (s *HTTPSink) Handle(payload domain.WebhookPayload) error {
	regs := s.registrations()
	if len(regs) == 0 {
		return nil
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "relay: failed to marshal payload")
	}

	var lastErr error
	for _, reg := range regs {
		if err := s.post(reg, b); err != nil {
			s.logger.Warnf("relay: forward to %s failed: %v", reg.URL, err)
			lastErr = err
		}
	}
	return lastErr
}

func (s *HTTPSink) post(reg domain.WebhookRegistration, body []byte) error {
	req, err := http.NewRequest(http.MethodPost, reg.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if reg.VerifyToken != "" {
		req.Header.Set("Authorization", "Bearer "+reg.VerifyToken)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
