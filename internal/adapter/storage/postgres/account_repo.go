package postgres

import (
	"context"
	"errors"
	"fmt"

	"multichain-custody/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// NextWalletIndex allocates the next wallet index from the dedicated
// sequence. Sequence values are never reused, so indices stay strictly
// increasing across accounts even if a creation later fails.
func (r *AccountRepo) NextWalletIndex(ctx context.Context) (uint32, error) {
	var idx int64
	if err := r.pool.QueryRow(ctx, `SELECT nextval('wallet_index_seq')`).Scan(&idx); err != nil {
		return 0, fmt.Errorf("next wallet index: %w", err)
	}
	return uint32(idx), nil
}

// Create inserts an account together with its chain wallets in one
// transaction, so a partially provisioned account is never visible.
func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create account: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	_, err = tx.Exec(ctx,
		`INSERT INTO accounts (id, balance_usd, wallet_index, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.BalanceUSD, a.WalletIndex, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}

	for _, family := range domain.Families() {
		w, ok := a.Wallets[family]
		if !ok {
			continue
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO account_wallets (account_id, family, address, derivation_path)
			 VALUES ($1, $2, $3, $4)`,
			a.ID, w.Family, w.Address, w.DerivationPath,
		)
		if err != nil {
			return fmt.Errorf("insert %s wallet: %w", family, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create account: %w", err)
	}
	return nil
}

// GetByID fetches an account and its wallets (without locking).
func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	a := &domain.Account{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, balance_usd, wallet_index, created_at, updated_at
		 FROM accounts WHERE id = $1`, id).
		Scan(&a.ID, &a.BalanceUSD, &a.WalletIndex, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by id: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT family, address, derivation_path
		 FROM account_wallets WHERE account_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get account wallets: %w", err)
	}
	a.Wallets, err = scanWallets(rows)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetByIDForUpdate fetches an account with pessimistic locking. The
// row lock serializes the baseline read and the credit write against
// any other writer. This MUST be called within a transaction.
func (r *AccountRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	a := &domain.Account{}
	err := tx.QueryRow(ctx,
		`SELECT id, balance_usd, wallet_index, created_at, updated_at
		 FROM accounts WHERE id = $1 FOR UPDATE`, id).
		Scan(&a.ID, &a.BalanceUSD, &a.WalletIndex, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account for update: %w", err)
	}

	rows, err := tx.Query(ctx,
		`SELECT family, address, derivation_path
		 FROM account_wallets WHERE account_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get account wallets for update: %w", err)
	}
	a.Wallets, err = scanWallets(rows)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateBalance sets an account's USD balance within a transaction.
func (r *AccountRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, id uuid.UUID, balanceUSD decimal.Decimal) error {
	tag, err := tx.Exec(ctx,
		`UPDATE accounts SET balance_usd = $1, updated_at = NOW() WHERE id = $2`,
		balanceUSD, id,
	)
	if err != nil {
		return fmt.Errorf("update account balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account not found: %s", id)
	}
	return nil
}

func scanWallets(rows pgx.Rows) (map[domain.ChainFamily]domain.ChainWallet, error) {
	defer rows.Close()

	wallets := make(map[domain.ChainFamily]domain.ChainWallet, 4)
	for rows.Next() {
		var w domain.ChainWallet
		if err := rows.Scan(&w.Family, &w.Address, &w.DerivationPath); err != nil {
			return nil, fmt.Errorf("scan wallet: %w", err)
		}
		wallets[w.Family] = w
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallets: %w", err)
	}
	return wallets, nil
}
