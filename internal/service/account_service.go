package service

import (
	"context"
	"fmt"
	"time"

	"multichain-custody/internal/core/domain"
	"multichain-custody/internal/core/ports"
	"multichain-custody/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// AccountServiceImpl implements ports.AccountService.
type AccountServiceImpl struct {
	accountRepo ports.AccountRepository
	ledgerRepo  ports.LedgerRepository
	deriver     ports.WalletDeriver
	seed        []byte
	log         zerolog.Logger
}

// NewAccountService creates a new AccountServiceImpl. The seed is the
// master seed derived once at startup; it stays in memory only.
func NewAccountService(
	accountRepo ports.AccountRepository,
	ledgerRepo ports.LedgerRepository,
	deriver ports.WalletDeriver,
	seed []byte,
	log zerolog.Logger,
) *AccountServiceImpl {
	return &AccountServiceImpl{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		deriver:     deriver,
		seed:        seed,
		log:         log,
	}
}

// CreateAccount allocates a wallet index and derives one deposit wallet
// per chain family. Derivation failures are isolated: a family that
// fails gets the fallback sentinel and the rest derive normally.
func (s *AccountServiceImpl) CreateAccount(ctx context.Context) (*domain.Account, error) {
	index, err := s.accountRepo.NextWalletIndex(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("allocate wallet index: %w", err))
	}

	wallets := make(map[domain.ChainFamily]domain.ChainWallet, 4)
	for _, family := range domain.Families() {
		wallet, err := s.deriver.Derive(s.seed, index, family)
		if err != nil {
			s.log.Warn().
				Err(err).
				Str("family", string(family)).
				Uint32("index", index).
				Msg("wallet derivation failed, recording fallback")
			wallet = domain.NewFallbackWallet(family)
		}
		wallets[family] = wallet
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:          uuid.New(),
		BalanceUSD:  decimal.Zero,
		WalletIndex: index,
		Wallets:     wallets,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("persist account: %w", err))
	}

	s.log.Info().
		Str("account_id", account.ID.String()).
		Uint32("wallet_index", index).
		Msg("account created")

	return account, nil
}

// GetAccount fetches an account with its wallets.
func (s *AccountServiceImpl) GetAccount(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrAccountNotFound()
	}
	return account, nil
}

// ListLedger returns a page of the account's ledger, newest first.
func (s *AccountServiceImpl) ListLedger(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]domain.LedgerEntry, int64, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("load account: %w", err))
	}
	if account == nil {
		return nil, 0, apperror.ErrAccountNotFound()
	}

	entries, total, err := s.ledgerRepo.ListByAccount(ctx, accountID, limit, offset)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list ledger: %w", err))
	}
	return entries, total, nil
}
