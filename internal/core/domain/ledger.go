package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryType classifies a ledger entry. Amounts are signed by convention
// of the type: deposits, revenue and disbursements credit the account;
// withdrawals, transfers and card issuance debit it.
type EntryType string

const (
	EntryTypeDeposit          EntryType = "DEPOSIT"
	EntryTypeWithdraw         EntryType = "WITHDRAW"
	EntryTypeTransfer         EntryType = "TRANSFER"
	EntryTypeCardIssuance     EntryType = "CARD_ISSUANCE"
	EntryTypeRevenue          EntryType = "REVENUE"
	EntryTypeLoanDisbursement EntryType = "LOAN_DISBURSEMENT"
)

// EntryStatus is the lifecycle state of a ledger entry. An entry moves
// from PENDING to APPROVED or REJECTED exactly once and is otherwise
// immutable.
type EntryStatus string

const (
	EntryStatusPending  EntryStatus = "PENDING"
	EntryStatusApproved EntryStatus = "APPROVED"
	EntryStatusRejected EntryStatus = "REJECTED"
)

// LedgerEntry is an immutable record of a balance-affecting event.
// Deposit entries written by the reconciliation engine carry the
// canonical network tag in Method; the account's BalanceUSD must always
// equal the signed sum of its APPROVED entries.
type LedgerEntry struct {
	ID        uuid.UUID       `json:"id"`
	AccountID uuid.UUID       `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	Type      EntryType       `json:"type"`
	Status    EntryStatus     `json:"status"`
	Method    string          `json:"method"`
	CreatedAt time.Time       `json:"created_at"`
}

// IsTerminal returns true if the entry is in a final state.
func (e *LedgerEntry) IsTerminal() bool {
	return e.Status == EntryStatusApproved || e.Status == EntryStatusRejected
}
