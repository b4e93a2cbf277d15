package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHMACSigner_SignAndVerify(t *testing.T) {
	s := NewHMACSigner()

	sig := s.Sign("secret", `{"payment_id":"pay_0001"}`)
	assert.NotEmpty(t, sig)
	assert.Len(t, sig, 64) // hex SHA-256

	assert.True(t, s.Verify("secret", `{"payment_id":"pay_0001"}`, sig))
}

func TestHMACSigner_VerifyRejects(t *testing.T) {
	s := NewHMACSigner()

	sig := s.Sign("secret", "payload")

	assert.False(t, s.Verify("secret", "payload-tampered", sig))
	assert.False(t, s.Verify("wrong-secret", "payload", sig))
	assert.False(t, s.Verify("secret", "payload", "deadbeef"))
}

func TestHMACSigner_Deterministic(t *testing.T) {
	s := NewHMACSigner()

	assert.Equal(t, s.Sign("k", "p"), s.Sign("k", "p"))
	assert.NotEqual(t, s.Sign("k", "p"), s.Sign("k2", "p"))
}
