package service

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"payment-rails/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// mockHTTPClient implements HTTPClient for testing.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func TestEventNotifier_Enqueue_Delivers(t *testing.T) {
	var capturedReq *http.Request
	delivered := make(chan struct{}, 1)
	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			capturedReq = req
			delivered <- struct{}{}
			return &http.Response{StatusCode: 200, Body: io.NopCloser(nil)}, nil
		},
	}

	svc := NewEventNotifier(
		[]string{"https://indexer.example.com/events"},
		"notify-secret",
		NewHMACSigner(),
		httpClient,
		newTestLogger(),
	)

	event := domain.NewEvent(domain.EventPaymentProcessed, domain.PaymentEventPayload{
		PaymentID:  "pay_0001",
		MerchantID: "mch_0001",
		Amount:     10_000,
	})
	svc.Enqueue(context.Background(), event)

	select {
	case <-delivered:
		assert.NotNil(t, capturedReq)
		assert.Equal(t, "application/json", capturedReq.Header.Get("Content-Type"))
		assert.NotEmpty(t, capturedReq.Header.Get(signatureHeader))
	case <-time.After(2 * time.Second):
		t.Fatal("event delivery timed out")
	}
}

func TestEventNotifier_Enqueue_AllEndpoints(t *testing.T) {
	delivered := make(chan string, 2)
	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			delivered <- req.URL.Host
			return &http.Response{StatusCode: 200, Body: io.NopCloser(nil)}, nil
		},
	}

	svc := NewEventNotifier(
		[]string{"https://one.example.com/e", "https://two.example.com/e"},
		"secret",
		NewHMACSigner(),
		httpClient,
		newTestLogger(),
	)

	svc.Enqueue(context.Background(), domain.NewEvent(domain.EventMerchantRegistered, domain.MerchantEventPayload{
		MerchantID: "mch_0001",
	}))

	hosts := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case h := <-delivered:
			hosts[h] = true
		case <-time.After(2 * time.Second):
			t.Fatal("event delivery timed out")
		}
	}
	assert.True(t, hosts["one.example.com"])
	assert.True(t, hosts["two.example.com"])
}

func TestEventNotifier_Enqueue_NoEndpoints(t *testing.T) {
	httpClient := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}

	svc := NewEventNotifier(nil, "secret", NewHMACSigner(), httpClient, newTestLogger())
	svc.Enqueue(context.Background(), domain.NewEvent(domain.EventFullRefund, domain.RefundEventPayload{}))
}
