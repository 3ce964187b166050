package chain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"multichain-custody/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func btcNetwork() domain.NetworkInfo {
	info, _ := domain.ParseNetwork("btc")
	return info
}

func trxNetwork() domain.NetworkInfo {
	info, _ := domain.ParseNetwork("trx")
	return info
}

func newRegistry(btc *BitcoinReader, trx *TronReader, timeout time.Duration) *Registry {
	return NewRegistry(nil, btc, nil, trx, timeout, zerolog.Nop())
}

func TestBitcoinReader_ConvertsSatsToBTC(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/address/bc1qtest", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"chain_stats": map[string]uint64{
				"funded_txo_sum": 150_000_000,
				"spent_txo_sum":  50_000_000,
			},
		})
	}))
	defer srv.Close()

	reg := newRegistry(NewBitcoinReader(srv.URL, srv.Client()), nil, 5*time.Second)

	balance, ok := reg.NativeBalance(context.Background(), "bc1qtest", btcNetwork())
	require.True(t, ok)
	assert.True(t, balance.Equal(decimal.RequireFromString("1")), "got %s", balance)
}

func TestBitcoinReader_ServerErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	reg := newRegistry(NewBitcoinReader(srv.URL, srv.Client()), nil, 5*time.Second)

	_, ok := reg.NativeBalance(context.Background(), "bc1qtest", btcNetwork())
	assert.False(t, ok, "a failing RPC must never read as an empty wallet")
}

func TestTronReader_ConvertsSunToTRX(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wallet/getaccount", r.URL.Path)
		var req tronAccountRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.Visible)
		_ = json.NewEncoder(w).Encode(tronAccountResponse{Balance: 2_500_000})
	}))
	defer srv.Close()

	reg := newRegistry(nil, NewTronReader(srv.URL, "", srv.Client()), 5*time.Second)

	balance, ok := reg.NativeBalance(context.Background(), "TTestAddress", trxNetwork())
	require.True(t, ok)
	assert.True(t, balance.Equal(decimal.RequireFromString("2.5")), "got %s", balance)
}

func TestTronReader_EmptyAccountIsZeroNotUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	}))
	defer srv.Close()

	reg := newRegistry(nil, NewTronReader(srv.URL, "", srv.Client()), 5*time.Second)

	balance, ok := reg.NativeBalance(context.Background(), "TTestAddress", trxNetwork())
	require.True(t, ok)
	assert.True(t, balance.IsZero())
}

func TestRegistry_FallbackAddressShortCircuits(t *testing.T) {
	// No reader is ever consulted for the sentinel: readers are nil and
	// a call through them would panic.
	reg := newRegistry(nil, nil, 5*time.Second)

	fb := domain.NewFallbackWallet(domain.FamilyBitcoin)
	_, ok := reg.NativeBalance(context.Background(), fb.Address, btcNetwork())
	assert.False(t, ok)
}

func TestRegistry_TimeoutIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	reg := newRegistry(NewBitcoinReader(srv.URL, srv.Client()), nil, 50*time.Millisecond)

	start := time.Now()
	_, ok := reg.NativeBalance(context.Background(), "bc1qtest", btcNetwork())
	assert.False(t, ok)
	assert.Less(t, time.Since(start), time.Second, "timeout must bound the call")
}

func TestRegistry_UnknownFamilyReader(t *testing.T) {
	reg := newRegistry(nil, nil, 5*time.Second)

	// Solana reader not wired in this registry.
	info, _ := domain.ParseNetwork("sol")
	_, ok := reg.NativeBalance(context.Background(), "SoLAddr", info)
	assert.False(t, ok)
}
