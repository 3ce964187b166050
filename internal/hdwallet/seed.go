package hdwallet

import (
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

// SeedFromMnemonic converts the configured BIP39 mnemonic into the
// master seed. Called once at startup; the seed is then passed
// explicitly into every derivation so the deriver stays pure and
// testable with fixture seeds. Neither value may ever be logged.
func SeedFromMnemonic(mnemonic string) ([]byte, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("invalid bip39 mnemonic")
	}
	return bip39.NewSeed(mnemonic, ""), nil
}
