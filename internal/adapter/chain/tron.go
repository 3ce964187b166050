package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"multichain-custody/internal/core/domain"

	"github.com/shopspring/decimal"
)

// sunPerTRX converts sun to TRX.
var sunPerTRX = decimal.New(1, 6)

// TronReader reads TRX balances from a TronGrid-compatible HTTP API.
type TronReader struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

type tronAccountRequest struct {
	Address string `json:"address"`
	Visible bool   `json:"visible"`
}

type tronAccountResponse struct {
	Balance int64 `json:"balance"`
}

// NewTronReader creates a reader against the given TronGrid base URL.
func NewTronReader(baseURL, apiKey string, client *http.Client) *TronReader {
	if client == nil {
		client = http.DefaultClient
	}
	return &TronReader{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

func (r *TronReader) nativeBalance(ctx context.Context, address string, _ domain.NetworkInfo) (decimal.Decimal, error) {
	payload, err := json.Marshal(tronAccountRequest{Address: address, Visible: true})
	if err != nil {
		return decimal.Zero, err
	}

	url := r.baseURL + "/wallet/getaccount"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return decimal.Zero, err
	}
	req.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		req.Header.Set("TRON-PRO-API-KEY", r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("trongrid request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("trongrid: status %d", resp.StatusCode)
	}

	// An account with no on-chain activity returns an empty object;
	// that genuinely is a zero balance, not an outage.
	var body tronAccountResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("trongrid decode: %w", err)
	}
	return decimal.NewFromInt(body.Balance).Div(sunPerTRX), nil
}
