package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"payment-rails/internal/core/domain"
	"payment-rails/internal/core/ports"

	"github.com/rs/zerolog"
)

// notifyRetryIntervals defines the delivery retry schedule per endpoint.
var notifyRetryIntervals = []time.Duration{
	15 * time.Second,
	60 * time.Second,
	2 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
}

// signatureHeader carries the hex HMAC-SHA256 of the request body.
const signatureHeader = "X-Ledger-Signature"

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// eventNotifier implements ports.EventNotifier. Events are delivered as
// HMAC-signed JSON to each configured indexer endpoint asynchronously;
// delivery never affects the emitting operation.
type eventNotifier struct {
	endpoints  []string
	secret     string
	signer     ports.MessageSigner
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewEventNotifier creates the outbound event notifier.
func NewEventNotifier(
	endpoints []string,
	secret string,
	signer ports.MessageSigner,
	httpClient HTTPClient,
	log zerolog.Logger,
) ports.EventNotifier {
	return &eventNotifier{
		endpoints:  endpoints,
		secret:     secret,
		signer:     signer,
		httpClient: httpClient,
		log:        log,
	}
}

// Enqueue fires the event to every configured endpoint. Best-effort.
func (s *eventNotifier) Enqueue(ctx context.Context, event domain.Event) {
	if len(s.endpoints) == 0 {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		s.log.Error().Err(err).Str("event_id", event.ID.String()).Msg("notify: failed to marshal event")
		return
	}
	signature := s.signer.Sign(s.secret, string(body))

	for _, endpoint := range s.endpoints {
		go s.deliverWithRetries(endpoint, body, signature, event.ID.String())
	}
}

// deliverWithRetries attempts delivery on the fixed retry schedule.
func (s *eventNotifier) deliverWithRetries(url string, body []byte, signature, eventID string) {
	for attempt := 0; attempt <= len(notifyRetryIntervals); attempt++ {
		if attempt > 0 {
			time.Sleep(notifyRetryIntervals[attempt-1])
		}

		req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			s.log.Error().Err(err).Str("event_id", eventID).Int("attempt", attempt+1).Msg("notify: failed to create request")
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(signatureHeader, signature)

		resp, err := s.httpClient.Do(req)
		if err != nil {
			s.log.Warn().Err(err).Str("event_id", eventID).Int("attempt", attempt+1).Msg("notify: delivery failed")
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			s.log.Info().Str("event_id", eventID).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("notify: delivered")
			return
		}

		s.log.Warn().Str("event_id", eventID).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("notify: non-2xx response, retrying")
	}

	s.log.Error().Str("event_id", eventID).Str("endpoint", url).Msg("notify: all retry attempts exhausted")
}
