package service

import (
	"payment-rails/internal/core/domain"
	"payment-rails/internal/core/ports"
)

// grantAuthorizer implements ports.CapabilityAuthorizer from static grant
// lists. Grants change only by redeploying with new configuration.
type grantAuthorizer struct {
	grants map[string]domain.CapabilitySet
}

// NewCapabilityAuthorizer builds the authorizer from configured account
// lists. An account may appear in several lists; an admin additionally holds
// every other capability.
func NewCapabilityAuthorizer(admins, registrars, verifiers, relayers []string) ports.CapabilityAuthorizer {
	a := &grantAuthorizer{grants: make(map[string]domain.CapabilitySet)}
	for _, acct := range registrars {
		a.grant(acct, domain.CapabilityRegistrar)
	}
	for _, acct := range verifiers {
		a.grant(acct, domain.CapabilityVerifier)
	}
	for _, acct := range relayers {
		a.grant(acct, domain.CapabilityRelayer)
	}
	for _, acct := range admins {
		a.grant(acct, domain.CapabilityAdmin)
		a.grant(acct, domain.CapabilityRegistrar)
		a.grant(acct, domain.CapabilityVerifier)
		a.grant(acct, domain.CapabilityRelayer)
	}
	return a
}

func (a *grantAuthorizer) grant(account string, c domain.Capability) {
	set, ok := a.grants[account]
	if !ok {
		set = make(domain.CapabilitySet)
		a.grants[account] = set
	}
	set[c] = true
}

// CapabilitiesOf returns the account's capability set, empty when the
// account holds no grants.
func (a *grantAuthorizer) CapabilitiesOf(account string) domain.CapabilitySet {
	if set, ok := a.grants[account]; ok {
		return set
	}
	return domain.CapabilitySet{}
}
