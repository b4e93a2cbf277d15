package domain

import (
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math/bits"
	"time"

	"golang.org/x/crypto/sha3"
)

// PaymentStatus represents the lifecycle state of a payment record.
type PaymentStatus string

const (
	PaymentStatusCompleted     PaymentStatus = "COMPLETED"
	PaymentStatusPartialRefund PaymentStatus = "PARTIAL_REFUND"
	PaymentStatusRefunded      PaymentStatus = "REFUNDED"
	PaymentStatusDisputed      PaymentStatus = "DISPUTED"
)

// Payment is an immutable ledger record of a completed payment. Only Status
// and RefundedAmount mutate after creation, and only through refund or
// dispute operations.
type Payment struct {
	ID             string        `json:"id"`
	MerchantID     string        `json:"merchant_id"`
	Payer          string        `json:"payer"`
	Asset          Asset         `json:"asset"`
	Amount         int64         `json:"amount"`          // gross
	Fee            int64         `json:"fee"`             // collector share
	MerchantAmount int64         `json:"merchant_amount"` // gross - fee
	Status         PaymentStatus `json:"status"`
	OrderRef       string        `json:"order_ref"`
	Memo           string        `json:"memo,omitempty"`
	RefundedAmount int64         `json:"refunded_amount"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// SplitFee computes the fee and merchant share for a gross amount at the
// given basis-point rate. The fee rounds down, so fee + merchant == amount
// exactly for every input. The product is taken in 128 bits: amount can be
// any int64 and amount*rate would overflow past ~9.2e14 at the 10000 bps cap.
func SplitFee(amount, feeRateBps int64) (fee, merchantAmount int64) {
	hi, lo := bits.Mul64(uint64(amount), uint64(feeRateBps))
	quo, _ := bits.Div64(hi, lo, 10000)
	fee = int64(quo)
	return fee, amount - fee
}

// RemainingRefundable returns what is still owed back to the payer from the
// merchant share. Zero once fully refunded.
func (p *Payment) RemainingRefundable() int64 {
	if p.Status == PaymentStatusRefunded {
		return 0
	}
	return p.MerchantAmount - p.RefundedAmount
}

// IsTerminal returns true if no refund transition can leave this state.
func (p *Payment) IsTerminal() bool {
	return p.Status == PaymentStatusRefunded || p.Status == PaymentStatusDisputed
}

// DerivePaymentID computes the deterministic payment identifier from the
// stable payment fields plus a monotonic sequence. An existing record with
// the same id is a fatal collision, not a retry.
func DerivePaymentID(merchantID, payer string, amount int64, at time.Time, orderRef string, seq int64) string {
	h := sha3.New256()
	writeLenPrefixed(h, []byte(merchantID))
	writeLenPrefixed(h, []byte(payer))
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(amount))
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(at.UTC().UnixNano()))
	h.Write(buf[:])
	writeLenPrefixed(h, []byte(orderRef))
	binary.BigEndian.PutUint64(buf[:], uint64(seq))
	h.Write(buf[:])
	sum := h.Sum(nil)
	return "pay_" + hex.EncodeToString(sum[:16])
}

// writeLenPrefixed writes a length-prefixed field so adjacent variable-length
// inputs cannot collide.
func writeLenPrefixed(h hash.Hash, b []byte) {
	var l [4]byte
	binary.BigEndian.PutUint32(l[:], uint32(len(b)))
	h.Write(l[:])
	h.Write(b)
}
