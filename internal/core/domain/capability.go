package domain

// Capability names a privileged role gating ledger and directory operations.
type Capability string

const (
	CapabilityAdmin     Capability = "admin"
	CapabilityRegistrar Capability = "registrar"
	CapabilityVerifier  Capability = "verifier"
	CapabilityRelayer   Capability = "relayer"
)

// CapabilitySet is the set of capabilities held by one caller account.
type CapabilitySet map[Capability]bool

// Has reports whether the set contains the capability.
func (s CapabilitySet) Has(c Capability) bool {
	return s[c]
}
