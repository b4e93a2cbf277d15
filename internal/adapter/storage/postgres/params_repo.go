package postgres

import (
	"context"
	"errors"
	"fmt"

	"payment-rails/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ParamsRepo implements ports.ParamsRepository over a single-row table.
type ParamsRepo struct {
	pool Pool
}

// NewParamsRepo creates a new ParamsRepo.
func NewParamsRepo(pool Pool) *ParamsRepo {
	return &ParamsRepo{pool: pool}
}

// Get fetches the current ledger parameters. Returns nil before the first
// Update seeds the row.
func (r *ParamsRepo) Get(ctx context.Context) (*domain.LedgerParams, error) {
	query := `SELECT max_fee_bps, default_fee_bps, min_payment_amount, daily_gasless_quota, updated_at
		FROM ledger_params WHERE id = 1`

	p := &domain.LedgerParams{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&p.MaxFeeBps, &p.DefaultFeeBps, &p.MinPaymentAmount, &p.DailyGaslessQuota, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger params: %w", err)
	}
	return p, nil
}

// Update upserts the singleton parameters row.
func (r *ParamsRepo) Update(ctx context.Context, params *domain.LedgerParams) error {
	query := `INSERT INTO ledger_params (id, max_fee_bps, default_fee_bps, min_payment_amount, daily_gasless_quota, updated_at)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			max_fee_bps = EXCLUDED.max_fee_bps,
			default_fee_bps = EXCLUDED.default_fee_bps,
			min_payment_amount = EXCLUDED.min_payment_amount,
			daily_gasless_quota = EXCLUDED.daily_gasless_quota,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		params.MaxFeeBps, params.DefaultFeeBps, params.MinPaymentAmount,
		params.DailyGaslessQuota, params.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update ledger params: %w", err)
	}
	return nil
}
