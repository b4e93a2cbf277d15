package postgres

import (
	"context"
	"errors"
	"fmt"

	"payment-rails/internal/core/domain"
	"payment-rails/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

// PayerRepo implements ports.PayerRepository.
type PayerRepo struct {
	pool Pool
}

// NewPayerRepo creates a new PayerRepo.
func NewPayerRepo(pool Pool) *PayerRepo {
	return &PayerRepo{pool: pool}
}

// Get fetches a payer credential by account.
func (r *PayerRepo) Get(ctx context.Context, payer string) (*domain.PayerCredential, error) {
	query := `SELECT payer, public_key, nonce, updated_at FROM payers WHERE payer = $1`

	c := &domain.PayerCredential{}
	err := r.pool.QueryRow(ctx, query, payer).Scan(&c.Payer, &c.PublicKey, &c.Nonce, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payer credential: %w", err)
	}
	return c, nil
}

// RegisterKey stores or rotates a payer's verification key. Rotation keeps
// the current nonce so in-flight intents signed with the old key fail
// verification but cannot be replayed later.
func (r *PayerRepo) RegisterKey(ctx context.Context, payer string, publicKey []byte) error {
	query := `INSERT INTO payers (payer, public_key, nonce, updated_at)
		VALUES ($1, $2, 0, NOW())
		ON CONFLICT (payer) DO UPDATE SET public_key = EXCLUDED.public_key, updated_at = NOW()`

	_, err := r.pool.Exec(ctx, query, payer, publicKey)
	if err != nil {
		return fmt.Errorf("register payer key: %w", err)
	}
	return nil
}

// IncrementNonce advances the stored nonce from expected to expected+1 within
// a transaction. The WHERE clause makes concurrent settlements of the same
// intent lose the race instead of double-spending the nonce.
func (r *PayerRepo) IncrementNonce(ctx context.Context, tx pgx.Tx, payer string, expected uint64) error {
	query := `UPDATE payers SET nonce = nonce + 1, updated_at = NOW()
		WHERE payer = $1 AND nonce = $2`

	tag, err := tx.Exec(ctx, query, payer, expected)
	if err != nil {
		return fmt.Errorf("increment payer nonce: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrNonceMismatch()
	}
	return nil
}
