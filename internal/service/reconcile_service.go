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

var (
	// dustThresholdUSD is the minimum USD value a balance increase must
	// reach before it is credited. Smaller increases stay on-chain and
	// are picked up once they accumulate past the threshold.
	dustThresholdUSD = decimal.NewFromFloat(0.01)

	// balanceEpsilon absorbs native-unit rounding noise between the
	// observed balance and the credited baseline.
	balanceEpsilon = decimal.NewFromFloat(0.000001)
)

// ReconcileServiceImpl implements ports.ReconcileService.
//
// The credited baseline is reconstructed by dividing the USD sum of
// APPROVED deposit entries by the current spot price. When the price has
// moved since earlier credits the baseline drifts from the true on-chain
// history; the drift is bounded by the dust threshold per run and the
// next poll converges, so this approximation is kept.
type ReconcileServiceImpl struct {
	accountRepo ports.AccountRepository
	ledgerRepo  ports.LedgerRepository
	reader      ports.BalanceReader
	oracle      ports.PriceOracle
	lock        ports.ReconcileLock
	transactor  ports.DBTransactor
	lockTTL     time.Duration
	log         zerolog.Logger
}

// NewReconcileService creates a new ReconcileServiceImpl.
func NewReconcileService(
	accountRepo ports.AccountRepository,
	ledgerRepo ports.LedgerRepository,
	reader ports.BalanceReader,
	oracle ports.PriceOracle,
	lock ports.ReconcileLock,
	transactor ports.DBTransactor,
	lockTTL time.Duration,
	log zerolog.Logger,
) *ReconcileServiceImpl {
	return &ReconcileServiceImpl{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
		reader:      reader,
		oracle:      oracle,
		lock:        lock,
		transactor:  transactor,
		lockTTL:     lockTTL,
		log:         log,
	}
}

// CheckDeposit runs one reconciliation cycle for an (account, network)
// pair. Chain and oracle reads happen before any lock is taken; the
// baseline read, the ledger write and the balance update then run inside
// a single transaction holding the account row lock, guarded by a Redis
// lease so concurrent checks of the same pair cannot double-credit.
func (s *ReconcileServiceImpl) CheckDeposit(ctx context.Context, accountID uuid.UUID, network domain.Network) (ports.ReconcileResult, error) {
	noDeposit := ports.ReconcileResult{NewDeposit: false, Amount: decimal.Zero}

	info, ok := domain.ParseNetwork(string(network))
	if !ok {
		return noDeposit, apperror.ErrUnknownNetwork(string(network))
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return noDeposit, apperror.InternalError(fmt.Errorf("load account: %w", err))
	}
	if account == nil {
		return noDeposit, apperror.ErrAccountNotFound()
	}

	// A fallback wallet has no real on-chain address, so there is
	// nothing to reconcile. Soft outcome, same as an unavailable read.
	wallet, ok := account.WalletFor(info.Family)
	if !ok || wallet.IsFallback() {
		s.log.Warn().
			Str("account_id", accountID.String()).
			Str("family", string(info.Family)).
			Msg("no deposit wallet for family, skipping reconcile cycle")
		return noDeposit, nil
	}

	// Unavailable balance is not an error: skip this cycle, the next
	// poll retries. A genuine zero reads as (0, true) and flows through.
	balance, ok := s.reader.NativeBalance(ctx, wallet.Address, info)
	if !ok {
		s.log.Debug().
			Str("account_id", accountID.String()).
			Str("network", string(info.Network)).
			Msg("balance unavailable, skipping reconcile cycle")
		return noDeposit, nil
	}

	price := s.oracle.Price(ctx, info.Symbol)
	if price.IsZero() {
		s.log.Warn().
			Str("symbol", info.Symbol).
			Str("network", string(info.Network)).
			Msg("no usable price, skipping reconcile cycle")
		return noDeposit, nil
	}

	// A wallet whose whole balance is worth less than the dust
	// threshold can never produce a creditable delta, so skip it
	// before taking the lease or opening a transaction.
	if balance.Mul(price).LessThan(dustThresholdUSD) {
		return noDeposit, nil
	}

	acquired, err := s.lock.Acquire(ctx, accountID, info.Network, s.lockTTL)
	if err != nil {
		return noDeposit, apperror.InternalError(fmt.Errorf("acquire reconcile lease: %w", err))
	}
	if !acquired {
		// Another check holds the lease; its run is authoritative.
		s.log.Debug().
			Str("account_id", accountID.String()).
			Str("network", string(info.Network)).
			Msg("reconcile lease held elsewhere, skipping")
		return noDeposit, nil
	}
	defer func() {
		// Release even if the request context was cancelled mid-run,
		// otherwise the pair stays blocked for the full lease TTL.
		if err := s.lock.Release(context.WithoutCancel(ctx), accountID, info.Network); err != nil {
			s.log.Warn().Err(err).Msg("failed to release reconcile lease")
		}
	}()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return noDeposit, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lock the account row so the baseline read and the credit write
	// are serialized against any other writer.
	locked, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, accountID)
	if err != nil {
		return noDeposit, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if locked == nil {
		return noDeposit, apperror.ErrAccountNotFound()
	}

	creditedUSD, err := s.ledgerRepo.SumApprovedDeposits(ctx, dbTx, accountID, info.Method)
	if err != nil {
		return noDeposit, apperror.InternalError(fmt.Errorf("sum credited deposits: %w", err))
	}

	// Credited baseline in native units at today's price.
	baseline := creditedUSD.Div(price)
	delta := balance.Sub(baseline)
	if delta.LessThanOrEqual(balanceEpsilon) {
		return noDeposit, nil
	}

	deltaUSD := delta.Mul(price)
	if deltaUSD.LessThan(dustThresholdUSD) {
		s.log.Debug().
			Str("account_id", accountID.String()).
			Str("network", string(info.Network)).
			Str("delta_usd", deltaUSD.String()).
			Msg("deposit below dust threshold, not credited")
		return noDeposit, nil
	}

	now := time.Now().UTC()
	entry := &domain.LedgerEntry{
		ID:        uuid.New(),
		AccountID: accountID,
		Amount:    deltaUSD,
		Type:      domain.EntryTypeDeposit,
		Status:    domain.EntryStatusApproved,
		Method:    info.Method,
		CreatedAt: now,
	}
	if err := s.ledgerRepo.Create(ctx, dbTx, entry); err != nil {
		return noDeposit, apperror.ErrLedgerWrite(fmt.Errorf("create deposit entry: %w", err))
	}

	if err := s.accountRepo.UpdateBalance(ctx, dbTx, accountID, locked.BalanceUSD.Add(deltaUSD)); err != nil {
		return noDeposit, apperror.ErrLedgerWrite(fmt.Errorf("update balance: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return noDeposit, apperror.ErrLedgerWrite(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("account_id", accountID.String()).
		Str("network", string(info.Network)).
		Str("entry_id", entry.ID.String()).
		Str("amount_usd", deltaUSD.String()).
		Msg("deposit credited")

	return ports.ReconcileResult{NewDeposit: true, Amount: deltaUSD}, nil
}
