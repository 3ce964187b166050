package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"multichain-custody/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// The in-memory repos emulate the PostgreSQL layer closely enough for
// end-to-end tests: a shared rowLocks table gives GetByIDForUpdate real
// pessimistic row locking, held until the transaction commits or rolls
// back. Without it the concurrency tests would not prove anything.

type rowLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newRowLocks() *rowLocks {
	return &rowLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (r *rowLocks) lockFor(id uuid.UUID) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.locks[id]
	if !ok {
		l = &sync.Mutex{}
		r.locks[id] = l
	}
	return l
}

// memTx is a pgx.Tx that tracks row locks taken during the transaction
// and releases them on Commit or Rollback. The embedded nil interface
// covers the pgx.Tx methods the repos never call.
type memTx struct {
	pgx.Tx
	mu      sync.Mutex
	unlocks []func()
	done    bool
}

func (t *memTx) hold(l *sync.Mutex) {
	l.Lock()
	t.mu.Lock()
	t.unlocks = append(t.unlocks, l.Unlock)
	t.mu.Unlock()
}

func (t *memTx) finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return
	}
	t.done = true
	for i := len(t.unlocks) - 1; i >= 0; i-- {
		t.unlocks[i]()
	}
}

func (t *memTx) Commit(ctx context.Context) error   { t.finish(); return nil }
func (t *memTx) Rollback(ctx context.Context) error { t.finish(); return nil }
func (t *memTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}

type memTransactor struct{}

func (memTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &memTx{}, nil
}

// --- In-memory account repo ---

type inMemoryAccountRepo struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*domain.Account
	seq      atomic.Uint32
	locks    *rowLocks
}

func newInMemoryAccountRepo(locks *rowLocks) *inMemoryAccountRepo {
	return &inMemoryAccountRepo{
		accounts: make(map[uuid.UUID]*domain.Account),
		locks:    locks,
	}
}

func (r *inMemoryAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *account
	cp.Wallets = copyWallets(account.Wallets)
	r.accounts[account.ID] = &cp
	return nil
}

func (r *inMemoryAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	cp.Wallets = copyWallets(a.Wallets)
	return &cp, nil
}

func (r *inMemoryAccountRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	mt, ok := tx.(*memTx)
	if !ok {
		return nil, fmt.Errorf("unexpected tx type %T", tx)
	}
	mt.hold(r.locks.lockFor(id))
	return r.GetByID(ctx, id)
}

func (r *inMemoryAccountRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, id uuid.UUID, balanceUSD decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return fmt.Errorf("account not found: %s", id)
	}
	a.BalanceUSD = balanceUSD
	return nil
}

func (r *inMemoryAccountRepo) NextWalletIndex(ctx context.Context) (uint32, error) {
	return r.seq.Add(1), nil
}

func copyWallets(in map[domain.ChainFamily]domain.ChainWallet) map[domain.ChainFamily]domain.ChainWallet {
	out := make(map[domain.ChainFamily]domain.ChainWallet, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// --- In-memory ledger repo ---

type inMemoryLedgerRepo struct {
	mu      sync.RWMutex
	entries []domain.LedgerEntry
}

func newInMemoryLedgerRepo() *inMemoryLedgerRepo {
	return &inMemoryLedgerRepo{}
}

func (r *inMemoryLedgerRepo) Create(ctx context.Context, tx pgx.Tx, entry *domain.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *inMemoryLedgerRepo) SumApprovedDeposits(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, method string) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sum := decimal.Zero
	for _, e := range r.entries {
		if e.AccountID == accountID &&
			e.Type == domain.EntryTypeDeposit &&
			e.Status == domain.EntryStatusApproved &&
			e.Method == method {
			sum = sum.Add(e.Amount)
		}
	}
	return sum, nil
}

func (r *inMemoryLedgerRepo) ListByAccount(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]domain.LedgerEntry, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []domain.LedgerEntry
	for _, e := range r.entries {
		if e.AccountID == accountID {
			matched = append(matched, e)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	total := int64(len(matched))
	if offset >= len(matched) {
		return []domain.LedgerEntry{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *inMemoryLedgerRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id uuid.UUID, status domain.EntryStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].ID == id {
			if r.entries[i].IsTerminal() {
				return fmt.Errorf("ledger entry %s not updatable", id)
			}
			r.entries[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("ledger entry not found: %s", id)
}

func (r *inMemoryLedgerRepo) countFor(accountID uuid.UUID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, e := range r.entries {
		if e.AccountID == accountID {
			n++
		}
	}
	return n
}

// --- In-memory export audit repo ---

type inMemoryExportAuditRepo struct {
	mu     sync.RWMutex
	audits []domain.ExportAudit
}

func newInMemoryExportAuditRepo() *inMemoryExportAuditRepo {
	return &inMemoryExportAuditRepo{}
}

func (r *inMemoryExportAuditRepo) Create(ctx context.Context, audit *domain.ExportAudit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.audits = append(r.audits, *audit)
	return nil
}

func (r *inMemoryExportAuditRepo) outcomes() []domain.ExportAuditOutcome {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.ExportAuditOutcome, 0, len(r.audits))
	for _, a := range r.audits {
		out = append(out, a.Outcome)
	}
	return out
}

// --- Fake chain reader and price oracle ---

// fakeBalanceReader serves balances keyed by network; unset networks
// report unavailable, mirroring an RPC outage.
type fakeBalanceReader struct {
	mu       sync.RWMutex
	balances map[domain.Network]decimal.Decimal
}

func newFakeBalanceReader() *fakeBalanceReader {
	return &fakeBalanceReader{balances: make(map[domain.Network]decimal.Decimal)}
}

func (f *fakeBalanceReader) set(network domain.Network, balance decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balances[network] = balance
}

func (f *fakeBalanceReader) NativeBalance(ctx context.Context, address string, network domain.NetworkInfo) (decimal.Decimal, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	b, ok := f.balances[network.Network]
	if !ok {
		return decimal.Zero, false
	}
	return b, true
}

type fakePriceOracle struct {
	mu     sync.RWMutex
	prices map[string]decimal.Decimal
}

func newFakePriceOracle() *fakePriceOracle {
	return &fakePriceOracle{prices: make(map[string]decimal.Decimal)}
}

func (f *fakePriceOracle) set(symbol string, price decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prices[symbol] = price
}

func (f *fakePriceOracle) Price(ctx context.Context, symbol string) decimal.Decimal {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.prices[symbol]
}
