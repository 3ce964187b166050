package ports

import (
	"context"
	"time"

	"multichain-custody/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=mocks/services.go -package=mocks

// --- Derivation ---

// WalletDeriver derives deposit addresses and key material from the
// master seed and a wallet index. Implementations must be pure: fixed
// (seed, index, family) always yields the same output, and a failure in
// one family must not affect the others.
type WalletDeriver interface {
	Derive(seed []byte, index uint32, family domain.ChainFamily) (domain.ChainWallet, error)
	DeriveKeys(seed []byte, index uint32, family domain.ChainFamily) (domain.KeyMaterial, error)
}

// --- Chain integration ---

// BalanceReader reads the native-unit balance of an address on a
// network. ok=false means the balance is unavailable this cycle (RPC
// failure, timeout); it is explicitly distinct from a zero balance.
type BalanceReader interface {
	NativeBalance(ctx context.Context, address string, network domain.NetworkInfo) (balance decimal.Decimal, ok bool)
}

// PriceOracle returns the spot USD price for a native asset symbol.
// Symbols outside the oracle's mapping are USD-pegged stables and
// return 1 without an external call; any fetch failure returns 0,
// which the reconciliation engine reads as "no usable price".
type PriceOracle interface {
	Price(ctx context.Context, symbol string) decimal.Decimal
}

// --- Concurrency ---

// ReconcileLock serializes reconciliation runs per (account, network).
// Acquire returns false when another run holds the lease; runs for
// other accounts or networks are unaffected.
type ReconcileLock interface {
	Acquire(ctx context.Context, accountID uuid.UUID, network domain.Network, ttl time.Duration) (bool, error)
	Release(ctx context.Context, accountID uuid.UUID, network domain.Network) error
}

// --- Business services ---

// ReconcileResult is the outcome of a deposit check.
type ReconcileResult struct {
	NewDeposit bool
	Amount     decimal.Decimal
}

// ReconcileService runs the deposit reconciliation algorithm for one
// (account, network) pair.
type ReconcileService interface {
	CheckDeposit(ctx context.Context, accountID uuid.UUID, network domain.Network) (ReconcileResult, error)
}

// AccountService provisions accounts and exposes wallet/ledger reads.
type AccountService interface {
	CreateAccount(ctx context.Context) (*domain.Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	ListLedger(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]domain.LedgerEntry, int64, error)
}

// ExportAuthorizer validates the credential presented with a privileged
// key-export request. Implementations are pluggable: a static admin
// credential or a short-lived signed token.
type ExportAuthorizer interface {
	Authorize(ctx context.Context, credential string) error
}

// KeyExportService performs the privileged per-chain key export.
type KeyExportService interface {
	ExportKeys(ctx context.Context, accountID uuid.UUID, credential, clientIP string) ([]domain.KeyMaterial, error)
}
