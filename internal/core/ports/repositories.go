package ports

import (
	"context"

	"multichain-custody/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories.go -package=mocks

// AccountRepository defines persistence operations for accounts and
// their chain wallets. Methods accepting pgx.Tx run inside transaction
// blocks; GetByIDForUpdate takes the row lock that serializes
// reconciliation steps against the same account.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, id uuid.UUID, balanceUSD decimal.Decimal) error
	// NextWalletIndex allocates the next value of the strictly
	// increasing wallet index sequence. Indices are never reused.
	NextWalletIndex(ctx context.Context) (uint32, error)
}

// LedgerRepository defines persistence for the append-only ledger.
type LedgerRepository interface {
	Create(ctx context.Context, tx pgx.Tx, entry *domain.LedgerEntry) error
	// SumApprovedDeposits returns the USD total of APPROVED DEPOSIT
	// entries for the account tagged with the given method. Must be
	// called inside the transaction holding the account row lock so the
	// baseline read and the credit write are serialized.
	SumApprovedDeposits(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, method string) (decimal.Decimal, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]domain.LedgerEntry, int64, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.EntryStatus) error
}

// ExportAuditRepository records privileged key-export attempts.
type ExportAuditRepository interface {
	Create(ctx context.Context, audit *domain.ExportAudit) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
