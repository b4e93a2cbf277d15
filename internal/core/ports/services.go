package ports

import (
	"context"
	"time"

	"payment-rails/internal/core/domain"
)

// ValueTransferGateway is the external ledger that moves fungible balances
// between accounts. A transfer either fully succeeds or the whole
// surrounding operation is abandoned.
type ValueTransferGateway interface {
	Transfer(ctx context.Context, asset domain.Asset, from, to string, amount int64) error
	BalanceOf(ctx context.Context, asset domain.Asset, account string) (int64, error)
}

// CapabilityAuthorizer resolves a caller account to its capability set.
// Privileged operations query it once at entry.
type CapabilityAuthorizer interface {
	CapabilitiesOf(account string) domain.CapabilitySet
}

// IntentVerifier checks a payer's signature over a payment intent.
type IntentVerifier interface {
	Verify(intent domain.PaymentIntent, publicKey []byte, signature []byte) bool
}

// QuotaStore tracks per-payer daily gasless spend. Reserve commits the
// amount against today's bucket and returns the bucket's day; Release takes
// that day back so a settlement failing across midnight still returns the
// amount to the bucket it was reserved from, and no partial reservation
// survives.
type QuotaStore interface {
	Reserve(ctx context.Context, payer string, amount, quota int64) (bool, string, error)
	Release(ctx context.Context, payer, day string, amount int64) error
	SpentToday(ctx context.Context, payer string) (int64, error)
}

// MessageSigner signs and verifies opaque payloads, used for outbound
// notifications and gateway requests.
type MessageSigner interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// EventNotifier delivers ledger events to off-ledger consumers. Delivery is
// best-effort and never affects the outcome of the emitting operation.
type EventNotifier interface {
	Enqueue(ctx context.Context, event domain.Event)
}

// TokenService issues and validates the bearer tokens that carry a caller's
// account identity. Capabilities are resolved separately by the authorizer.
type TokenService interface {
	Generate(account string) (string, time.Time, error)
	Validate(tokenString string) (string, error)
}

// HealthChecker reports the availability of one dependency.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}

// --- Service Ports (Business Logic) ---

// MerchantProfile holds caller-supplied registration input.
type MerchantProfile struct {
	Name          string
	BusinessID    string
	Category      domain.MerchantCategory
	PayoutAccount string
	MetadataURI   string
	AcceptsCredit bool
	AcceptsStable bool
}

// DirectoryService owns merchant identity, acceptance policy, fee overrides
// and volume counters.
type DirectoryService interface {
	RegisterSelfService(ctx context.Context, caller string, profile MerchantProfile) (*domain.Merchant, error)
	RegisterDirect(ctx context.Context, caller string, profile MerchantProfile, owner string, feeOverride int64) (*domain.Merchant, error)
	Verify(ctx context.Context, caller, id string) error
	Suspend(ctx context.Context, caller, id string) error
	Reactivate(ctx context.Context, caller, id string) error
	Terminate(ctx context.Context, caller, id string) error
	UpdatePayoutAccount(ctx context.Context, caller, id, newAccount string) error
	UpdateAcceptedAssets(ctx context.Context, caller, id string, acceptsCredit, acceptsStable bool) error
	UpdateMetadata(ctx context.Context, caller, id, uri string) error
	SetFeeOverride(ctx context.Context, caller, id string, rateBps int64) error
	Get(ctx context.Context, id string) (*domain.Merchant, error)
	ByOwner(ctx context.Context, account string) (*domain.Merchant, error)
	ByPayout(ctx context.Context, account string) (*domain.Merchant, error)
	CanAcceptPayment(ctx context.Context, id string, asset domain.Asset) (bool, error)
	EffectiveFeeRate(ctx context.Context, id string) (int64, error)
}

// PayRequest holds validated input for a direct payment.
type PayRequest struct {
	Payer      string
	MerchantID string
	Asset      domain.Asset
	Amount     int64
	OrderRef   string
	Memo       string
}

// SignedPayRequest holds a relayer-submitted gasless payment.
type SignedPayRequest struct {
	Relayer    string
	Payer      string
	MerchantID string
	Asset      domain.Asset
	Amount     int64
	OrderRef   string
	Memo       string
	Nonce      uint64
	Deadline   time.Time
	Signature  []byte
}

// LedgerService orchestrates payments and refunds.
type LedgerService interface {
	Pay(ctx context.Context, req PayRequest) (*domain.Payment, error)
	PayWithSignature(ctx context.Context, req SignedPayRequest) (*domain.Payment, error)
	MerchantRefund(ctx context.Context, caller, paymentID string, refundAmount int64) (*domain.Payment, error)
	OperatorRefund(ctx context.Context, caller, paymentID string) (*domain.Payment, error)
	MarkDisputed(ctx context.Context, caller, paymentID string) error
	GetPayment(ctx context.Context, id string) (*domain.Payment, error)
	GetRefundableAmount(ctx context.Context, paymentID string) (int64, error)
	RegisterPayerKey(ctx context.Context, payer string, publicKey []byte) error
}

// ParamsService is the admin read/write surface for ledger parameters.
type ParamsService interface {
	Get(ctx context.Context) (*domain.LedgerParams, error)
	Update(ctx context.Context, caller string, params domain.LedgerParams) (*domain.LedgerParams, error)
}
