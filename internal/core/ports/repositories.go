package ports

import (
	"context"
	"time"

	"payment-rails/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// MerchantRepository defines persistence operations for the merchant
// directory. Methods accepting pgx.Tx run inside transaction blocks and take
// row locks for the duration of the surrounding operation.
type MerchantRepository interface {
	Create(ctx context.Context, tx pgx.Tx, merchant *domain.Merchant) error
	GetByID(ctx context.Context, id string) (*domain.Merchant, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Merchant, error)
	GetByOwner(ctx context.Context, owner string) (*domain.Merchant, error)
	GetByPayoutAccount(ctx context.Context, account string) (*domain.Merchant, error)
	Update(ctx context.Context, tx pgx.Tx, merchant *domain.Merchant) error
	// RecordPayment is the sole mutation path for the volume counters.
	RecordPayment(ctx context.Context, tx pgx.Tx, id string, amount int64, at time.Time) error
	NextSequence(ctx context.Context) (int64, error)
}

// PaymentRepository defines persistence operations for payment records.
type PaymentRepository interface {
	Create(ctx context.Context, tx pgx.Tx, payment *domain.Payment) error
	Exists(ctx context.Context, tx pgx.Tx, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Payment, error)
	// UpdateRefund mutates the only two mutable payment fields.
	UpdateRefund(ctx context.Context, tx pgx.Tx, id string, refundedAmount int64, status domain.PaymentStatus) error
	NextSequence(ctx context.Context) (int64, error)
}

// PayerRepository stores payer signing credentials and intent nonces.
type PayerRepository interface {
	Get(ctx context.Context, payer string) (*domain.PayerCredential, error)
	RegisterKey(ctx context.Context, payer string, publicKey []byte) error
	// IncrementNonce bumps the stored nonce from expected to expected+1,
	// failing if another operation advanced it first.
	IncrementNonce(ctx context.Context, tx pgx.Tx, payer string, expected uint64) error
}

// ParamsRepository persists the admin-adjustable ledger parameters.
type ParamsRepository interface {
	Get(ctx context.Context) (*domain.LedgerParams, error)
	Update(ctx context.Context, params *domain.LedgerParams) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
