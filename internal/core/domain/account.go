package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is a customer account with a fiat balance and one custodial
// deposit wallet per chain family. WalletIndex is allocated once from a
// strictly increasing sequence at creation and never changes; it is the
// sole per-account differentiator in every derivation path.
type Account struct {
	ID          uuid.UUID                   `json:"id"`
	BalanceUSD  decimal.Decimal             `json:"balance_usd"`
	WalletIndex uint32                      `json:"wallet_index"`
	Wallets     map[ChainFamily]ChainWallet `json:"wallets"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

// WalletFor returns the account's wallet for the given family.
// The second return is false when no wallet row exists at all, which
// only happens for accounts written before the family was supported.
func (a *Account) WalletFor(family ChainFamily) (ChainWallet, bool) {
	w, ok := a.Wallets[family]
	return w, ok
}
