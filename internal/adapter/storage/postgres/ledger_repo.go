package postgres

import (
	"context"
	"fmt"

	"multichain-custody/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerRepo implements ports.LedgerRepository over the append-only
// ledger_entries table.
type LedgerRepo struct {
	pool Pool
}

// NewLedgerRepo creates a new LedgerRepo.
func NewLedgerRepo(pool Pool) *LedgerRepo {
	return &LedgerRepo{pool: pool}
}

// Create appends a ledger entry within a database transaction.
func (r *LedgerRepo) Create(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO ledger_entries (id, account_id, amount, type, status, method, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.AccountID, e.Amount, e.Type, e.Status, e.Method, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// SumApprovedDeposits totals APPROVED DEPOSIT entries for the account
// and method tag. The ledger itself is the record of what has already
// been credited per network; there is no separate cursor.
func (r *LedgerRepo) SumApprovedDeposits(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, method string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := tx.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM ledger_entries
		 WHERE account_id = $1 AND type = 'DEPOSIT' AND status = 'APPROVED' AND method = $2`,
		accountID, method,
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum approved deposits: %w", err)
	}
	return sum, nil
}

// ListByAccount fetches ledger entries for an account, newest first.
func (r *LedgerRepo) ListByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]domain.LedgerEntry, int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM ledger_entries WHERE account_id = $1`, accountID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count ledger entries: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, account_id, amount, type, status, method, created_at
		 FROM ledger_entries WHERE account_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		accountID, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Amount, &e.Type, &e.Status, &e.Method, &e.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate ledger entries: %w", err)
	}
	return entries, total, nil
}

// UpdateStatus moves a PENDING entry to its terminal status. Entries
// already settled are immutable; affecting zero rows is an error.
func (r *LedgerRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.EntryStatus) error {
	tag, err := tx.Exec(ctx,
		`UPDATE ledger_entries SET status = $1 WHERE id = $2 AND status = 'PENDING'`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("update ledger status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ledger entry not pending or not found: %s", id)
	}
	return nil
}
