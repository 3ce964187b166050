package service

import (
	"context"
	"testing"

	"multichain-custody/internal/core/domain"
	"multichain-custody/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var accountTestSeed = []byte("test-master-seed-not-for-production------------------------64byt")

type accountTestDeps struct {
	svc         *AccountServiceImpl
	accountRepo *mocks.MockAccountRepository
	ledgerRepo  *mocks.MockLedgerRepository
	deriver     *mocks.MockWalletDeriver
	ctrl        *gomock.Controller
}

func setupAccountService(t *testing.T) *accountTestDeps {
	ctrl := gomock.NewController(t)
	d := &accountTestDeps{
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		ledgerRepo:  mocks.NewMockLedgerRepository(ctrl),
		deriver:     mocks.NewMockWalletDeriver(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewAccountService(d.accountRepo, d.ledgerRepo, d.deriver, accountTestSeed, zerolog.Nop())
	return d
}

func TestAccountService_CreateAccount(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	index := uint32(11)

	d.accountRepo.EXPECT().NextWalletIndex(ctx).Return(index, nil)
	for _, family := range domain.Families() {
		d.deriver.EXPECT().Derive(accountTestSeed, index, family).Return(domain.ChainWallet{
			Family:  family,
			Address: "addr-" + string(family),
		}, nil)
	}
	d.accountRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	account, err := d.svc.CreateAccount(ctx)
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, index, account.WalletIndex)
	assert.True(t, account.BalanceUSD.IsZero())
	assert.Len(t, account.Wallets, 4)
	assert.Equal(t, "addr-EVM", account.Wallets[domain.FamilyEVM].Address)
}

func TestAccountService_CreateAccount_DerivationFailureIsolated(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	index := uint32(12)

	d.accountRepo.EXPECT().NextWalletIndex(ctx).Return(index, nil)
	for _, family := range domain.Families() {
		if family == domain.FamilySolana {
			d.deriver.EXPECT().Derive(accountTestSeed, index, family).
				Return(domain.ChainWallet{}, assert.AnError)
			continue
		}
		d.deriver.EXPECT().Derive(accountTestSeed, index, family).Return(domain.ChainWallet{
			Family:  family,
			Address: "addr-" + string(family),
		}, nil)
	}
	d.accountRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	account, err := d.svc.CreateAccount(ctx)
	require.NoError(t, err, "one broken family must not abort account creation")
	assert.True(t, account.Wallets[domain.FamilySolana].IsFallback())
	assert.False(t, account.Wallets[domain.FamilyEVM].IsFallback())
	assert.False(t, account.Wallets[domain.FamilyBitcoin].IsFallback())
	assert.False(t, account.Wallets[domain.FamilyTron].IsFallback())
}

func TestAccountService_CreateAccount_IndexAllocationFails(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.accountRepo.EXPECT().NextWalletIndex(ctx).Return(uint32(0), assert.AnError)

	account, err := d.svc.CreateAccount(ctx)
	assert.Nil(t, account)
	assertAppError(t, err, "SYS_001")
}

func TestAccountService_GetAccount(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	stored := &domain.Account{ID: id, BalanceUSD: decimal.NewFromInt(50)}

	d.accountRepo.EXPECT().GetByID(ctx, id).Return(stored, nil)

	account, err := d.svc.GetAccount(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, account.ID)
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()

	d.accountRepo.EXPECT().GetByID(ctx, id).Return(nil, nil)

	account, err := d.svc.GetAccount(ctx, id)
	assert.Nil(t, account)
	assertAppError(t, err, "WAL_001")
}

func TestAccountService_ListLedger(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	stored := &domain.Account{ID: id}
	entries := []domain.LedgerEntry{
		{ID: uuid.New(), AccountID: id, Type: domain.EntryTypeDeposit, Method: "bitcoin"},
	}

	d.accountRepo.EXPECT().GetByID(ctx, id).Return(stored, nil)
	d.ledgerRepo.EXPECT().ListByAccount(ctx, id, 20, 0).Return(entries, int64(1), nil)

	got, total, err := d.svc.ListLedger(ctx, id, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, got, 1)
	assert.Equal(t, "bitcoin", got[0].Method)
}

func TestAccountService_ListLedger_AccountNotFound(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()

	d.accountRepo.EXPECT().GetByID(ctx, id).Return(nil, nil)

	got, total, err := d.svc.ListLedger(ctx, id, 20, 0)
	assert.Nil(t, got)
	assert.Zero(t, total)
	assertAppError(t, err, "WAL_001")
}
