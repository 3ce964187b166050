package chain

import (
	"context"
	"fmt"

	"multichain-custody/internal/core/domain"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/shopspring/decimal"
)

// lamportsPerSOL converts lamports to SOL.
var lamportsPerSOL = decimal.New(1, 9)

// SolanaReader reads SOL balances over the Solana JSON-RPC API.
type SolanaReader struct {
	client *rpc.Client
}

// NewSolanaReader creates a reader against the given RPC endpoint.
func NewSolanaReader(endpoint string) *SolanaReader {
	return &SolanaReader{client: rpc.New(endpoint)}
}

func (r *SolanaReader) nativeBalance(ctx context.Context, address string, _ domain.NetworkInfo) (decimal.Decimal, error) {
	pubkey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid solana address: %w", err)
	}

	out, err := r.client.GetBalance(ctx, pubkey, rpc.CommitmentConfirmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get balance: %w", err)
	}
	return decimal.NewFromUint64(out.Value).Div(lamportsPerSOL), nil
}
