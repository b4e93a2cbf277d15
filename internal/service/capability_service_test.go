package service

import (
	"testing"

	"payment-rails/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestCapabilityAuthorizer_Grants(t *testing.T) {
	a := NewCapabilityAuthorizer(
		[]string{"acct_admin"},
		[]string{"acct_registrar"},
		[]string{"acct_verifier"},
		[]string{"acct_relayer", "acct_registrar"},
	)

	assert.True(t, a.CapabilitiesOf("acct_registrar").Has(domain.CapabilityRegistrar))
	assert.True(t, a.CapabilitiesOf("acct_registrar").Has(domain.CapabilityRelayer))
	assert.False(t, a.CapabilitiesOf("acct_registrar").Has(domain.CapabilityAdmin))

	assert.True(t, a.CapabilitiesOf("acct_verifier").Has(domain.CapabilityVerifier))
	assert.True(t, a.CapabilitiesOf("acct_relayer").Has(domain.CapabilityRelayer))
	assert.False(t, a.CapabilitiesOf("acct_relayer").Has(domain.CapabilityVerifier))
}

func TestCapabilityAuthorizer_AdminHoldsAll(t *testing.T) {
	a := NewCapabilityAuthorizer([]string{"acct_admin"}, nil, nil, nil)

	set := a.CapabilitiesOf("acct_admin")
	assert.True(t, set.Has(domain.CapabilityAdmin))
	assert.True(t, set.Has(domain.CapabilityRegistrar))
	assert.True(t, set.Has(domain.CapabilityVerifier))
	assert.True(t, set.Has(domain.CapabilityRelayer))
}

func TestCapabilityAuthorizer_UnknownAccount(t *testing.T) {
	a := NewCapabilityAuthorizer([]string{"acct_admin"}, nil, nil, nil)

	set := a.CapabilitiesOf("acct_nobody")
	assert.False(t, set.Has(domain.CapabilityAdmin))
	assert.False(t, set.Has(domain.CapabilityRelayer))
}
