// Package chain provides per-family balance readers normalizing
// chain-specific units into decimal native units. A read that fails for
// any reason yields ok=false, never a zero balance: a transient RPC
// failure must not be mistaken for an empty wallet.
package chain

import (
	"context"
	"strings"
	"time"

	"multichain-custody/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// familyReader is one chain family's balance source.
type familyReader interface {
	nativeBalance(ctx context.Context, address string, network domain.NetworkInfo) (decimal.Decimal, error)
}

// Registry implements ports.BalanceReader by dispatching to the
// family-specific reader and bounding every read with a timeout.
type Registry struct {
	readers map[domain.ChainFamily]familyReader
	timeout time.Duration
	log     zerolog.Logger
}

// NewRegistry wires the four family readers together.
func NewRegistry(evm *EVMReader, btc *BitcoinReader, sol *SolanaReader, trx *TronReader, timeout time.Duration, log zerolog.Logger) *Registry {
	readers := make(map[domain.ChainFamily]familyReader, 4)
	if evm != nil {
		readers[domain.FamilyEVM] = evm
	}
	if btc != nil {
		readers[domain.FamilyBitcoin] = btc
	}
	if sol != nil {
		readers[domain.FamilySolana] = sol
	}
	if trx != nil {
		readers[domain.FamilyTron] = trx
	}
	return &Registry{
		readers: readers,
		timeout: timeout,
		log:     log,
	}
}

// NativeBalance reads the native-unit balance of address on the given
// network. ok=false covers every failure mode: unknown family, sentinel
// address, RPC error, timeout.
func (r *Registry) NativeBalance(ctx context.Context, address string, network domain.NetworkInfo) (decimal.Decimal, bool) {
	if strings.HasPrefix(address, domain.FallbackAddressPrefix) {
		return decimal.Zero, false
	}
	reader, ok := r.readers[network.Family]
	if !ok {
		return decimal.Zero, false
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	balance, err := reader.nativeBalance(ctx, address, network)
	if err != nil {
		r.log.Warn().
			Err(err).
			Str("network", string(network.Network)).
			Str("address", address).
			Msg("balance read unavailable")
		return decimal.Zero, false
	}
	return balance, true
}
