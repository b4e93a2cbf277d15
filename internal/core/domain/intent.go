package domain

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/sha3"
)

// PaymentIntent is the structured message a payer signs to authorize a
// gasless payment submitted by a relayer. The nonce binds the signature to
// the payer's current counter; the deadline is an absolute cutoff.
type PaymentIntent struct {
	Payer      string
	MerchantID string
	Asset      Asset
	Amount     int64
	OrderRef   string
	Memo       string
	Nonce      uint64
	Deadline   time.Time
}

// SigningDomain scopes intent signatures to one ledger deployment on one
// network. All four fields feed the domain hash, so a signature for another
// deployment never verifies here.
type SigningDomain struct {
	Name      string
	Version   string
	NetworkID string
	LedgerID  string
}

// Hash returns the 32-byte domain separator.
func (d SigningDomain) Hash() [32]byte {
	h := sha3.New256()
	writeLenPrefixed(h, []byte(d.Name))
	writeLenPrefixed(h, []byte(d.Version))
	writeLenPrefixed(h, []byte(d.NetworkID))
	writeLenPrefixed(h, []byte(d.LedgerID))
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Digest returns the canonical 32-byte digest a payer signs: the domain
// separator followed by every intent field, length-prefixed or fixed-width.
func (i PaymentIntent) Digest(domain SigningDomain) [32]byte {
	sep := domain.Hash()

	h := sha3.New256()
	h.Write(sep[:])
	writeLenPrefixed(h, []byte(i.Payer))
	writeLenPrefixed(h, []byte(i.MerchantID))
	writeLenPrefixed(h, []byte(i.Asset))
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(i.Amount))
	h.Write(buf[:])
	writeLenPrefixed(h, []byte(i.OrderRef))
	writeLenPrefixed(h, []byte(i.Memo))
	binary.BigEndian.PutUint64(buf[:], i.Nonce)
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(i.Deadline.UTC().Unix()))
	h.Write(buf[:])

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// PayerCredential holds a payer's registered verification key and current
// intent nonce. The nonce increments exactly once per authorized payment.
type PayerCredential struct {
	Payer     string    `json:"payer"`
	PublicKey []byte    `json:"public_key"` // Ed25519
	Nonce     uint64    `json:"nonce"`
	UpdatedAt time.Time `json:"updated_at"`
}
