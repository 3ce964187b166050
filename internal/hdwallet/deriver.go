// Package hdwallet derives per-account deposit wallets for every
// supported chain family from a single BIP39 master seed. Derivation is
// pure: no I/O, no entropy beyond the seed and the wallet index, so a
// fixed (seed, index, family) input always yields the same address.
package hdwallet

import (
	"fmt"

	"multichain-custody/internal/core/domain"
)

const hardened = 0x80000000

// Deriver implements ports.WalletDeriver. The two curve derivers are
// injectable so tests can fail one family without touching the others.
type Deriver struct {
	secpDerive SecpDeriveFunc
	edDerive   Ed25519DeriveFunc
}

// New creates a Deriver backed by the real curve implementations.
func New() *Deriver {
	return &Deriver{
		secpDerive: DeriveSecp256k1,
		edDerive:   DeriveEd25519,
	}
}

// NewWithDerivers creates a Deriver with custom curve derivers.
func NewWithDerivers(secp SecpDeriveFunc, ed Ed25519DeriveFunc) *Deriver {
	return &Deriver{secpDerive: secp, edDerive: ed}
}

// Path returns the derivation path for a family at the given index.
func Path(family domain.ChainFamily, index uint32) string {
	switch family {
	case domain.FamilyEVM:
		return fmt.Sprintf("m/44'/60'/0'/0/%d", index)
	case domain.FamilyBitcoin:
		return fmt.Sprintf("m/84'/0'/0'/0/%d", index)
	case domain.FamilySolana:
		return fmt.Sprintf("m/44'/501'/%d'/0'", index)
	case domain.FamilyTron:
		return fmt.Sprintf("m/44'/195'/0'/0/%d", index)
	}
	return ""
}

func pathIndices(family domain.ChainFamily, index uint32) []uint32 {
	switch family {
	case domain.FamilyEVM:
		return []uint32{44 | hardened, 60 | hardened, hardened, 0, index}
	case domain.FamilyBitcoin:
		return []uint32{84 | hardened, hardened, hardened, 0, index}
	case domain.FamilySolana:
		// SLIP-10 ed25519 supports hardened children only.
		return []uint32{44 | hardened, 501 | hardened, index | hardened, hardened}
	case domain.FamilyTron:
		return []uint32{44 | hardened, 195 | hardened, hardened, 0, index}
	}
	return nil
}

// Derive derives the deposit address for one chain family. On failure
// it returns the sentinel fallback wallet together with the cause, so
// callers can record both; a failing family never prevents derivation
// of the others.
func (d *Deriver) Derive(seed []byte, index uint32, family domain.ChainFamily) (domain.ChainWallet, error) {
	address, err := d.deriveAddress(seed, index, family)
	if err != nil {
		return domain.NewFallbackWallet(family), fmt.Errorf("derive %s wallet: %w", family, err)
	}
	return domain.ChainWallet{
		Family:         family,
		Address:        address,
		DerivationPath: Path(family, index),
	}, nil
}

// DeriveKeys reproduces the derivation path of Derive and extracts the
// private key in the chain-native export format. Privileged: callers
// must gate it behind export authorization.
func (d *Deriver) DeriveKeys(seed []byte, index uint32, family domain.ChainFamily) (domain.KeyMaterial, error) {
	switch family {
	case domain.FamilyEVM, domain.FamilyBitcoin, domain.FamilyTron:
		key, err := d.secpDerive(seed, pathIndices(family, index))
		if err != nil {
			return domain.KeyMaterial{}, fmt.Errorf("derive %s keys: %w", family, err)
		}
		return encodeSecpKeyMaterial(family, key, Path(family, index))
	case domain.FamilySolana:
		key, err := d.edDerive(seed, pathIndices(family, index))
		if err != nil {
			return domain.KeyMaterial{}, fmt.Errorf("derive %s keys: %w", family, err)
		}
		return encodeSolanaKeyMaterial(key, Path(family, index))
	}
	return domain.KeyMaterial{}, fmt.Errorf("unknown chain family: %s", family)
}

func (d *Deriver) deriveAddress(seed []byte, index uint32, family domain.ChainFamily) (string, error) {
	switch family {
	case domain.FamilyEVM, domain.FamilyBitcoin, domain.FamilyTron:
		key, err := d.secpDerive(seed, pathIndices(family, index))
		if err != nil {
			return "", err
		}
		return encodeSecpAddress(family, key)
	case domain.FamilySolana:
		key, err := d.edDerive(seed, pathIndices(family, index))
		if err != nil {
			return "", err
		}
		return encodeSolanaAddress(key)
	}
	return "", fmt.Errorf("unknown chain family: %s", family)
}
