package hdwallet

import (
	"crypto/ed25519"
	"fmt"
	"strings"

	"multichain-custody/internal/core/domain"

	"github.com/gagliardetto/solana-go"
)

func encodeSolanaAddress(key ed25519.PrivateKey) (string, error) {
	if len(key) != ed25519.PrivateKeySize {
		return "", fmt.Errorf("solana key: unexpected length %d", len(key))
	}
	return solana.PrivateKey(key).PublicKey().String(), nil
}

// encodeSolanaKeyMaterial renders the full 64-byte secret key as the
// bracketed decimal array understood by solana-keygen and Phantom.
func encodeSolanaKeyMaterial(key ed25519.PrivateKey, path string) (domain.KeyMaterial, error) {
	address, err := encodeSolanaAddress(key)
	if err != nil {
		return domain.KeyMaterial{}, err
	}

	parts := make([]string, len(key))
	for i, b := range key {
		parts[i] = fmt.Sprintf("%d", b)
	}

	return domain.KeyMaterial{
		Family:         domain.FamilySolana,
		Address:        address,
		DerivationPath: path,
		Secret:         "[" + strings.Join(parts, ",") + "]",
	}, nil
}
