package domain

import "strings"

// ChainFamily identifies the cryptographic family a wallet belongs to.
// One deposit address exists per family; every EVM-compatible network
// shares the same EVM address.
type ChainFamily string

const (
	FamilyEVM     ChainFamily = "EVM"
	FamilyBitcoin ChainFamily = "BITCOIN"
	FamilySolana  ChainFamily = "SOLANA"
	FamilyTron    ChainFamily = "TRON"
)

// Families lists every supported chain family in a stable order.
func Families() []ChainFamily {
	return []ChainFamily{FamilyEVM, FamilyBitcoin, FamilySolana, FamilyTron}
}

// FallbackAddressPrefix marks a wallet whose derivation failed. The
// sentinel is deliberately not a plausible on-chain address so that
// balance readers and the reconciliation engine can skip it safely.
const FallbackAddressPrefix = "unavailable:"

// ChainWallet is a per-family deposit wallet derived from the master
// seed and the account's wallet index. Addresses are immutable for the
// lifetime of the account.
type ChainWallet struct {
	Family         ChainFamily `json:"family"`
	Address        string      `json:"address"`
	DerivationPath string      `json:"derivation_path"`
}

// IsFallback reports whether this wallet carries the derivation-failure
// sentinel instead of a real address.
func (w ChainWallet) IsFallback() bool {
	return strings.HasPrefix(w.Address, FallbackAddressPrefix)
}

// NewFallbackWallet builds the sentinel wallet recorded when derivation
// for a family fails. Recording it never aborts derivation of the other
// families or account creation.
func NewFallbackWallet(family ChainFamily) ChainWallet {
	return ChainWallet{
		Family:  family,
		Address: FallbackAddressPrefix + strings.ToLower(string(family)),
	}
}

// KeyMaterial holds exported private-key material in the chain-native
// external format: hex for EVM and Tron, WIF for Bitcoin, a bracketed
// decimal secret-key array for Solana. Never persisted, never logged.
type KeyMaterial struct {
	Family         ChainFamily `json:"family"`
	Address        string      `json:"address"`
	DerivationPath string      `json:"derivation_path"`
	Secret         string      `json:"secret"`
}
