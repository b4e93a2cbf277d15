package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payment-rails/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const merchantColumns = `id, name, business_id, category, owner, payout_account, fee_override,
		accepts_credit, accepts_stable, status, total_volume, total_tx_count,
		metadata_uri, registered_at, last_tx_at, updated_at`

// MerchantRepo implements ports.MerchantRepository.
type MerchantRepo struct {
	pool Pool
}

// NewMerchantRepo creates a new MerchantRepo.
func NewMerchantRepo(pool Pool) *MerchantRepo {
	return &MerchantRepo{pool: pool}
}

// Create inserts a new merchant within a transaction.
func (r *MerchantRepo) Create(ctx context.Context, tx pgx.Tx, m *domain.Merchant) error {
	query := `INSERT INTO merchants (` + merchantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := tx.Exec(ctx, query,
		m.ID, m.Name, m.BusinessID, m.Category, m.Owner, m.PayoutAccount, m.FeeOverride,
		m.AcceptsCredit, m.AcceptsStable, m.Status, m.TotalVolume, m.TotalTxCount,
		m.MetadataURI, m.RegisteredAt, m.LastTxAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert merchant: %w", err)
	}
	return nil
}

// GetByID fetches a merchant by its identifier (without locking).
func (r *MerchantRepo) GetByID(ctx context.Context, id string) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE id = $1`
	return r.scanMerchant(r.pool.QueryRow(ctx, query, id), "get merchant by id")
}

// GetByIDForUpdate fetches a merchant by ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *MerchantRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE id = $1 FOR UPDATE`
	return r.scanMerchant(tx.QueryRow(ctx, query, id), "get merchant for update")
}

// GetByOwner fetches a merchant by its owner account.
func (r *MerchantRepo) GetByOwner(ctx context.Context, owner string) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE owner = $1`
	return r.scanMerchant(r.pool.QueryRow(ctx, query, owner), "get merchant by owner")
}

// GetByPayoutAccount fetches a merchant by its payout account.
func (r *MerchantRepo) GetByPayoutAccount(ctx context.Context, account string) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE payout_account = $1`
	return r.scanMerchant(r.pool.QueryRow(ctx, query, account), "get merchant by payout account")
}

// Update rewrites the mutable merchant fields within a transaction.
func (r *MerchantRepo) Update(ctx context.Context, tx pgx.Tx, m *domain.Merchant) error {
	query := `UPDATE merchants
		SET name = $1, category = $2, payout_account = $3, fee_override = $4,
			accepts_credit = $5, accepts_stable = $6, status = $7,
			metadata_uri = $8, updated_at = NOW()
		WHERE id = $9`

	tag, err := tx.Exec(ctx, query,
		m.Name, m.Category, m.PayoutAccount, m.FeeOverride,
		m.AcceptsCredit, m.AcceptsStable, m.Status,
		m.MetadataURI, m.ID,
	)
	if err != nil {
		return fmt.Errorf("update merchant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("merchant not found: %s", m.ID)
	}
	return nil
}

// RecordPayment bumps the volume counters after a settled payment.
func (r *MerchantRepo) RecordPayment(ctx context.Context, tx pgx.Tx, id string, amount int64, at time.Time) error {
	query := `UPDATE merchants
		SET total_volume = total_volume + $1, total_tx_count = total_tx_count + 1,
			last_tx_at = $2, updated_at = NOW()
		WHERE id = $3`

	tag, err := tx.Exec(ctx, query, amount, at, id)
	if err != nil {
		return fmt.Errorf("record merchant payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("merchant not found: %s", id)
	}
	return nil
}

// NextSequence draws the next value from the merchant ID sequence.
func (r *MerchantRepo) NextSequence(ctx context.Context) (int64, error) {
	var seq int64
	err := r.pool.QueryRow(ctx, `SELECT nextval('merchant_seq')`).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next merchant sequence: %w", err)
	}
	return seq, nil
}

func (r *MerchantRepo) scanMerchant(row pgx.Row, op string) (*domain.Merchant, error) {
	m := &domain.Merchant{}
	err := row.Scan(
		&m.ID, &m.Name, &m.BusinessID, &m.Category, &m.Owner, &m.PayoutAccount, &m.FeeOverride,
		&m.AcceptsCredit, &m.AcceptsStable, &m.Status, &m.TotalVolume, &m.TotalTxCount,
		&m.MetadataURI, &m.RegisteredAt, &m.LastTxAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}
