package dto

// DepositCheckRequest is the request body for a deposit reconciliation
// check on one network.
type DepositCheckRequest struct {
	Network string `json:"network" binding:"required,network"`
}

// KeyExportRequest carries the export authorization. Exactly one of the
// two fields must be present: the pre-shared admin secret or a
// short-lived export token.
type KeyExportRequest struct {
	AuthorizationSecret string `json:"authorization_secret,omitempty"`
	ExportToken         string `json:"export_token,omitempty"`
}

// Credential returns whichever authorization field was supplied.
func (r KeyExportRequest) Credential() string {
	if r.ExportToken != "" {
		return r.ExportToken
	}
	return r.AuthorizationSecret
}

// WalletResponse is one per-family deposit wallet.
type WalletResponse struct {
	Family         string `json:"family"`
	Address        string `json:"address,omitempty"`
	DerivationPath string `json:"derivation_path,omitempty"`
	Available      bool   `json:"available"`
}

// AccountResponse is the response body for account creation and reads.
type AccountResponse struct {
	ID          string           `json:"id"`
	BalanceUSD  string           `json:"balance_usd"`
	WalletIndex uint32           `json:"wallet_index"`
	Wallets     []WalletResponse `json:"wallets"`
	CreatedAt   string           `json:"created_at"`
}

// WalletsResponse is the response body for the wallet listing. The EVM
// address is valid verbatim on every EVM network.
type WalletsResponse struct {
	AccountID string           `json:"account_id"`
	Wallets   []WalletResponse `json:"wallets"`
}

// DepositCheckResponse is the outcome of a reconciliation run.
type DepositCheckResponse struct {
	NewDeposit bool    `json:"new_deposit"`
	Amount     *string `json:"amount,omitempty"` // USD, present only when new_deposit
}

// LedgerEntryResponse is one ledger entry.
type LedgerEntryResponse struct {
	ID        string `json:"id"`
	Amount    string `json:"amount"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	Method    string `json:"method"`
	CreatedAt string `json:"created_at"`
}

// LedgerListResponse wraps a paginated ledger page.
type LedgerListResponse struct {
	Items      []LedgerEntryResponse `json:"items"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalPages int                   `json:"total_pages"`
}

// KeyMaterialResponse is one exported per-family key. Secret uses the
// chain-native external format: hex for EVM/Tron, WIF for Bitcoin, a
// bracketed decimal array for Solana.
type KeyMaterialResponse struct {
	Family         string `json:"family"`
	Address        string `json:"address"`
	DerivationPath string `json:"derivation_path"`
	Secret         string `json:"secret"`
}

// KeyExportResponse wraps the exported key material.
type KeyExportResponse struct {
	AccountID string                `json:"account_id"`
	Keys      []KeyMaterialResponse `json:"keys"`
}
