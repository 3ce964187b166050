package hdwallet

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
)

// slip10Key is the SLIP-10 master key derivation domain for ed25519.
var slip10Key = []byte("ed25519 seed")

// Ed25519DeriveFunc derives an ed25519 private key from a seed along a
// SLIP-10 path. Every index must be hardened; ed25519 has no normal
// child derivation.
type Ed25519DeriveFunc func(seed []byte, path []uint32) (ed25519.PrivateKey, error)

// DeriveEd25519 is the real SLIP-10 derivation over ed25519.
func DeriveEd25519(seed []byte, path []uint32) (ed25519.PrivateKey, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("slip10: empty seed")
	}

	mac := hmac.New(sha512.New, slip10Key)
	mac.Write(seed)
	sum := mac.Sum(nil)
	key, chainCode := sum[:32], sum[32:]

	for _, idx := range path {
		if idx&hardened == 0 {
			return nil, fmt.Errorf("slip10: index %d is not hardened", idx)
		}
		var ser [4]byte
		binary.BigEndian.PutUint32(ser[:], idx)

		mac = hmac.New(sha512.New, chainCode)
		mac.Write([]byte{0x00})
		mac.Write(key)
		mac.Write(ser[:])
		sum = mac.Sum(nil)
		key, chainCode = sum[:32], sum[32:]
	}

	return ed25519.NewKeyFromSeed(key), nil
}
