package domain

// Asset identifies a fungible asset recognized by the ledger.
type Asset string

// The ledger settles in exactly two assets.
const (
	AssetCredit Asset = "CREDIT"
	AssetStable Asset = "STABLE"
)

// IsRecognized returns true if the asset is one the ledger settles in.
func (a Asset) IsRecognized() bool {
	return a == AssetCredit || a == AssetStable
}
