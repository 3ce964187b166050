package hdwallet

import (
	"encoding/hex"
	"fmt"

	"multichain-custody/internal/core/domain"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// tronAddressVersion is the base58check version byte for Tron mainnet.
const tronAddressVersion = 0x41

// SecpDeriveFunc derives a secp256k1 private key from a seed along a
// BIP32 path (indices carry the hardened bit where applicable).
type SecpDeriveFunc func(seed []byte, path []uint32) (*btcec.PrivateKey, error)

// DeriveSecp256k1 is the real BIP32 derivation over secp256k1.
func DeriveSecp256k1(seed []byte, path []uint32) (*btcec.PrivateKey, error) {
	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("bip32 master: %w", err)
	}
	key := master
	for _, idx := range path {
		key, err = key.Derive(idx)
		if err != nil {
			return nil, fmt.Errorf("bip32 child %d: %w", idx, err)
		}
	}
	priv, err := key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("bip32 private key: %w", err)
	}
	return priv, nil
}

func encodeSecpAddress(family domain.ChainFamily, key *btcec.PrivateKey) (string, error) {
	switch family {
	case domain.FamilyEVM:
		return ethcrypto.PubkeyToAddress(key.ToECDSA().PublicKey).Hex(), nil
	case domain.FamilyBitcoin:
		pubHash := btcutil.Hash160(key.PubKey().SerializeCompressed())
		addr, err := btcutil.NewAddressWitnessPubKeyHash(pubHash, &chaincfg.MainNetParams)
		if err != nil {
			return "", fmt.Errorf("p2wpkh address: %w", err)
		}
		return addr.EncodeAddress(), nil
	case domain.FamilyTron:
		// Tron reuses the EVM address bytes under a 0x41 base58check prefix.
		ethAddr := ethcrypto.PubkeyToAddress(key.ToECDSA().PublicKey)
		return base58.CheckEncode(ethAddr.Bytes(), tronAddressVersion), nil
	}
	return "", fmt.Errorf("family %s is not secp256k1", family)
}

func encodeSecpKeyMaterial(family domain.ChainFamily, key *btcec.PrivateKey, path string) (domain.KeyMaterial, error) {
	address, err := encodeSecpAddress(family, key)
	if err != nil {
		return domain.KeyMaterial{}, err
	}

	var secret string
	switch family {
	case domain.FamilyEVM, domain.FamilyTron:
		secret = hex.EncodeToString(ethcrypto.FromECDSA(key.ToECDSA()))
	case domain.FamilyBitcoin:
		wif, err := btcutil.NewWIF(key, &chaincfg.MainNetParams, true)
		if err != nil {
			return domain.KeyMaterial{}, fmt.Errorf("encode wif: %w", err)
		}
		secret = wif.String()
	}

	return domain.KeyMaterial{
		Family:         family,
		Address:        address,
		DerivationPath: path,
		Secret:         secret,
	}, nil
}
