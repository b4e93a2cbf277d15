package domain

import (
	"fmt"
	"time"
)

// LedgerParams are the admin-adjustable knobs of the payment rails. Writes
// go through Validate; reads come from the params repository.
type LedgerParams struct {
	MaxFeeBps         int64     `json:"max_fee_bps"`
	DefaultFeeBps     int64     `json:"default_fee_bps"`
	MinPaymentAmount  int64     `json:"min_payment_amount"`
	DailyGaslessQuota int64     `json:"daily_gasless_quota"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Validate checks every parameter against its fixed bound.
func (p LedgerParams) Validate() error {
	if p.MaxFeeBps < 0 || p.MaxFeeBps > 10000 {
		return fmt.Errorf("max_fee_bps must be within [0, 10000], got %d", p.MaxFeeBps)
	}
	if p.DefaultFeeBps < 0 || p.DefaultFeeBps > p.MaxFeeBps {
		return fmt.Errorf("default_fee_bps must be within [0, max_fee_bps], got %d", p.DefaultFeeBps)
	}
	if p.MinPaymentAmount < 1 {
		return fmt.Errorf("min_payment_amount must be at least 1, got %d", p.MinPaymentAmount)
	}
	if p.DailyGaslessQuota < p.MinPaymentAmount {
		return fmt.Errorf("daily_gasless_quota must be at least min_payment_amount, got %d", p.DailyGaslessQuota)
	}
	return nil
}
