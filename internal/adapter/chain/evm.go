package chain

import (
	"context"
	"fmt"

	"multichain-custody/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"
)

// weiDecimals converts wei to whole native units (ETH, BNB, POL, ...).
const weiDecimals = 18

// EVMReader reads native balances over JSON-RPC. One client per EVM
// network; the derived address is shared across all of them.
type EVMReader struct {
	clients map[domain.Network]*ethclient.Client
}

// NewEVMReader dials one RPC client per configured EVM network.
func NewEVMReader(endpoints map[domain.Network]string) (*EVMReader, error) {
	clients := make(map[domain.Network]*ethclient.Client, len(endpoints))
	for network, endpoint := range endpoints {
		client, err := ethclient.Dial(endpoint)
		if err != nil {
			return nil, fmt.Errorf("dial %s rpc: %w", network, err)
		}
		clients[network] = client
	}
	return &EVMReader{clients: clients}, nil
}

func (r *EVMReader) nativeBalance(ctx context.Context, address string, network domain.NetworkInfo) (decimal.Decimal, error) {
	client, ok := r.clients[network.Network]
	if !ok {
		return decimal.Zero, fmt.Errorf("no rpc client for network %s", network.Network)
	}
	if !common.IsHexAddress(address) {
		return decimal.Zero, fmt.Errorf("invalid evm address %q", address)
	}

	wei, err := client.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("balance at: %w", err)
	}
	return decimal.NewFromBigInt(wei, -weiDecimals), nil
}

// Close releases all RPC connections.
func (r *EVMReader) Close() {
	for _, client := range r.clients {
		client.Close()
	}
}
