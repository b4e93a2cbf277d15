package domain

import (
	"encoding/binary"
	"encoding/hex"
	"time"

	"golang.org/x/crypto/sha3"
)

// MerchantStatus represents the lifecycle state of a merchant.
type MerchantStatus string

const (
	MerchantStatusPending    MerchantStatus = "PENDING"
	MerchantStatusActive     MerchantStatus = "ACTIVE"
	MerchantStatusSuspended  MerchantStatus = "SUSPENDED"
	MerchantStatusTerminated MerchantStatus = "TERMINATED"
)

// MerchantCategory classifies the merchant's line of business.
type MerchantCategory string

const (
	CategoryRetail      MerchantCategory = "RETAIL"
	CategoryServices    MerchantCategory = "SERVICES"
	CategoryDigital     MerchantCategory = "DIGITAL"
	CategoryHospitality MerchantCategory = "HOSPITALITY"
	CategoryOther       MerchantCategory = "OTHER"
)

// IsValid reports whether the category is one of the known values.
func (c MerchantCategory) IsValid() bool {
	switch c {
	case CategoryRetail, CategoryServices, CategoryDigital, CategoryHospitality, CategoryOther:
		return true
	}
	return false
}

// Merchant is a registered payee in the directory. Volume and transaction
// counters are mutated only through the payment ledger's RecordPayment path.
type Merchant struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	BusinessID    string           `json:"business_id"`
	Category      MerchantCategory `json:"category"`
	Owner         string           `json:"owner"`
	PayoutAccount string           `json:"payout_account"`
	FeeOverride   int64            `json:"fee_override"` // basis points; 0 = directory default
	AcceptsCredit bool             `json:"accepts_credit"`
	AcceptsStable bool             `json:"accepts_stable"`
	Status        MerchantStatus   `json:"status"`
	TotalVolume   int64            `json:"total_volume"`
	TotalTxCount  int64            `json:"total_tx_count"`
	MetadataURI   string           `json:"metadata_uri,omitempty"`
	RegisteredAt  time.Time        `json:"registered_at"`
	LastTxAt      *time.Time       `json:"last_tx_at,omitempty"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// CanAccept returns true only for an active merchant with the asset flag set.
func (m *Merchant) CanAccept(asset Asset) bool {
	if m.Status != MerchantStatusActive {
		return false
	}
	switch asset {
	case AssetCredit:
		return m.AcceptsCredit
	case AssetStable:
		return m.AcceptsStable
	}
	return false
}

// EffectiveFeeRate returns the merchant's fee override when set, otherwise
// the directory default, in basis points.
func (m *Merchant) EffectiveFeeRate(defaultBps int64) int64 {
	if m.FeeOverride != 0 {
		return m.FeeOverride
	}
	return defaultBps
}

// CanTransitionTo reports whether the status state machine allows the move.
// Pending -> Active (verify), Active -> Suspended (suspend),
// Suspended -> Active (reactivate), Suspended -> Terminated (terminate).
func (m *Merchant) CanTransitionTo(next MerchantStatus) bool {
	switch m.Status {
	case MerchantStatusPending:
		return next == MerchantStatusActive
	case MerchantStatusActive:
		return next == MerchantStatusSuspended
	case MerchantStatusSuspended:
		return next == MerchantStatusActive || next == MerchantStatusTerminated
	}
	return false
}

// DeriveMerchantID computes the content-derived merchant identifier from the
// stable registration fields plus a monotonic sequence. Collisions are
// checked at creation, never silently overwritten.
func DeriveMerchantID(owner, payoutAccount, name string, seq int64) string {
	h := sha3.New256()
	writeLenPrefixed(h, []byte(owner))
	writeLenPrefixed(h, []byte(payoutAccount))
	writeLenPrefixed(h, []byte(name))
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(seq))
	h.Write(buf[:])
	sum := h.Sum(nil)
	return "mch_" + hex.EncodeToString(sum[:16])
}
