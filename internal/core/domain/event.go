package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType names a ledger notification consumed by off-ledger indexers.
type EventType string

const (
	EventMerchantRegistered    EventType = "MERCHANT_REGISTERED"
	EventMerchantStatusChanged EventType = "MERCHANT_STATUS_CHANGED"
	EventPaymentProcessed      EventType = "PAYMENT_PROCESSED"
	EventGaslessPayment        EventType = "GASLESS_PAYMENT"
	EventMerchantRefund        EventType = "MERCHANT_REFUND"
	EventFullRefund            EventType = "FULL_REFUND"
	EventPaymentDisputed       EventType = "PAYMENT_DISPUTED"
)

// Event is the envelope for one ledger notification.
type Event struct {
	ID         uuid.UUID   `json:"id"`
	Type       EventType   `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// NewEvent builds an event envelope stamped now.
func NewEvent(typ EventType, payload interface{}) Event {
	return Event{
		ID:         uuid.New(),
		Type:       typ,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// MerchantEventPayload describes merchant registration and status changes.
type MerchantEventPayload struct {
	MerchantID string `json:"merchant_id"`
	Owner      string `json:"owner"`
	Status     string `json:"status"`
	PrevStatus string `json:"prev_status,omitempty"`
}

// PaymentEventPayload describes processed payments, gasless or direct.
type PaymentEventPayload struct {
	PaymentID  string `json:"payment_id"`
	MerchantID string `json:"merchant_id"`
	Payer      string `json:"payer"`
	Asset      string `json:"asset"`
	Amount     int64  `json:"amount"`
	Fee        int64  `json:"fee"`
	OrderRef   string `json:"order_ref"`
	Relayer    string `json:"relayer,omitempty"` // set for gasless payments
}

// RefundEventPayload describes merchant and operator refunds.
type RefundEventPayload struct {
	PaymentID    string `json:"payment_id"`
	MerchantID   string `json:"merchant_id"`
	Payer        string `json:"payer"`
	Asset        string `json:"asset"`
	Amount       int64  `json:"amount"`
	FeeReturned  int64  `json:"fee_returned,omitempty"`
	Partial      bool   `json:"partial"`
	OperatorCall bool   `json:"operator_call"`
}
