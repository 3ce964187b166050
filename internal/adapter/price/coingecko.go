// Package price provides the USD price oracle consumed by the
// reconciliation engine. The contract is deliberately fail-soft: any
// fetch failure returns 0, which the engine reads as "no usable price,
// no credit this cycle" rather than an error.
package price

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// coingeckoIDs maps native asset symbols to CoinGecko coin ids. Symbols
// absent from this map are treated as USD-pegged stable assets and
// priced 1:1 without an external call.
var coingeckoIDs = map[string]string{
	"BTC": "bitcoin",
	"ETH": "ethereum",
	"BNB": "binancecoin",
	"POL": "polygon-ecosystem-token",
	"SOL": "solana",
	"TRX": "tron",
}

// CoinGecko implements ports.PriceOracle against the CoinGecko simple
// price API.
type CoinGecko struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     zerolog.Logger
}

// NewCoinGecko creates the oracle. apiKey is optional.
func NewCoinGecko(baseURL, apiKey string, timeout time.Duration, log zerolog.Logger) *CoinGecko {
	if baseURL == "" {
		baseURL = "https://api.coingecko.com/api/v3"
	}
	return &CoinGecko{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  strings.TrimSpace(apiKey),
		client:  &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Price returns the spot USD price for symbol, 1 for unmapped
// (stable) symbols, and 0 on any failure.
func (c *CoinGecko) Price(ctx context.Context, symbol string) decimal.Decimal {
	coinID, ok := coingeckoIDs[strings.ToUpper(strings.TrimSpace(symbol))]
	if !ok {
		return decimal.NewFromInt(1)
	}

	value, err := c.fetch(ctx, coinID)
	if err != nil {
		c.log.Warn().Err(err).Str("symbol", symbol).Msg("price fetch failed, returning 0")
		return decimal.Zero
	}
	return value
}

func (c *CoinGecko) fetch(ctx context.Context, coinID string) (decimal.Decimal, error) {
	q := url.Values{}
	q.Set("ids", coinID)
	q.Set("vs_currencies", "usd")

	u := fmt.Sprintf("%s/simple/price?%s", c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return decimal.Zero, err
	}
	if c.apiKey != "" {
		req.Header.Set("x-cg-pro-api-key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return decimal.Zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("coingecko: status %d", resp.StatusCode)
	}

	var body map[string]map[string]json.Number
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("coingecko decode: %w", err)
	}
	usd, ok := body[coinID]["usd"]
	if !ok {
		return decimal.Zero, fmt.Errorf("coingecko: missing usd quote for %s", coinID)
	}
	value, err := decimal.NewFromString(usd.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("coingecko parse: %w", err)
	}
	return value, nil
}
