package service

import (
	"crypto/ed25519"

	"payment-rails/internal/core/domain"
)

// Ed25519IntentVerifier implements ports.IntentVerifier using Ed25519 over
// the domain-separated intent digest.
type Ed25519IntentVerifier struct {
	domain domain.SigningDomain
}

// NewIntentVerifier creates a verifier bound to one signing domain. Intents
// signed for another ledger or network never verify here.
func NewIntentVerifier(d domain.SigningDomain) *Ed25519IntentVerifier {
	return &Ed25519IntentVerifier{domain: d}
}

// Verify checks the payer's signature over the intent digest.
func (v *Ed25519IntentVerifier) Verify(intent domain.PaymentIntent, publicKey []byte, signature []byte) bool {
	if len(publicKey) != ed25519.PublicKeySize || len(signature) != ed25519.SignatureSize {
		return false
	}
	digest := intent.Digest(v.domain)
	return ed25519.Verify(ed25519.PublicKey(publicKey), digest[:], signature)
}
