package postgres

import (
	"context"
	"errors"
	"fmt"

	"payment-rails/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, merchant_id, payer, asset, amount, fee, merchant_amount,
		status, order_ref, memo, refunded_amount, created_at, updated_at`

// PaymentRepo implements ports.PaymentRepository.
type PaymentRepo struct {
	pool Pool
}

// NewPaymentRepo creates a new PaymentRepo.
func NewPaymentRepo(pool Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// Create inserts a new payment record within a transaction.
func (r *PaymentRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.Payment) error {
	query := `INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := tx.Exec(ctx, query,
		p.ID, p.MerchantID, p.Payer, p.Asset, p.Amount, p.Fee, p.MerchantAmount,
		p.Status, p.OrderRef, p.Memo, p.RefundedAmount, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// Exists reports whether a payment with the given ID is already recorded.
// Checked within the settlement transaction so a derived-ID collision aborts
// the whole payment.
func (r *PaymentRepo) Exists(ctx context.Context, tx pgx.Tx, id string) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM payments WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check payment exists: %w", err)
	}
	return exists, nil
}

// GetByID fetches a payment by its identifier (without locking).
func (r *PaymentRepo) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	return r.scanPayment(r.pool.QueryRow(ctx, query, id), "get payment by id")
}

// GetByIDForUpdate fetches a payment by ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *PaymentRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1 FOR UPDATE`
	return r.scanPayment(tx.QueryRow(ctx, query, id), "get payment for update")
}

// UpdateRefund mutates the refunded amount and status within a transaction.
func (r *PaymentRepo) UpdateRefund(ctx context.Context, tx pgx.Tx, id string, refundedAmount int64, status domain.PaymentStatus) error {
	query := `UPDATE payments SET refunded_amount = $1, status = $2, updated_at = NOW() WHERE id = $3`

	tag, err := tx.Exec(ctx, query, refundedAmount, status, id)
	if err != nil {
		return fmt.Errorf("update payment refund: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment not found: %s", id)
	}
	return nil
}

// NextSequence draws the next value from the payment ID sequence.
func (r *PaymentRepo) NextSequence(ctx context.Context) (int64, error) {
	var seq int64
	err := r.pool.QueryRow(ctx, `SELECT nextval('payment_seq')`).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next payment sequence: %w", err)
	}
	return seq, nil
}

func (r *PaymentRepo) scanPayment(row pgx.Row, op string) (*domain.Payment, error) {
	p := &domain.Payment{}
	err := row.Scan(
		&p.ID, &p.MerchantID, &p.Payer, &p.Asset, &p.Amount, &p.Fee, &p.MerchantAmount,
		&p.Status, &p.OrderRef, &p.Memo, &p.RefundedAmount, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}
