package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"multichain-custody/internal/core/domain"

	"github.com/shopspring/decimal"
)

// satsPerBTC converts satoshis to BTC.
var satsPerBTC = decimal.New(1, 8)

// BitcoinReader reads confirmed balances from an Esplora-compatible
// HTTP API (Blockstream, mempool.space).
type BitcoinReader struct {
	baseURL string
	client  *http.Client
}

type esploraAddress struct {
	ChainStats struct {
		FundedTxoSum uint64 `json:"funded_txo_sum"`
		SpentTxoSum  uint64 `json:"spent_txo_sum"`
	} `json:"chain_stats"`
}

// NewBitcoinReader creates a reader against the given Esplora base URL.
func NewBitcoinReader(baseURL string, client *http.Client) *BitcoinReader {
	if client == nil {
		client = http.DefaultClient
	}
	return &BitcoinReader{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (r *BitcoinReader) nativeBalance(ctx context.Context, address string, _ domain.NetworkInfo) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/address/%s", r.baseURL, address)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("esplora request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("esplora: status %d", resp.StatusCode)
	}

	var body esploraAddress
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("esplora decode: %w", err)
	}

	sats := body.ChainStats.FundedTxoSum - body.ChainStats.SpentTxoSum
	return decimal.NewFromUint64(sats).Div(satsPerBTC), nil
}
