package handler

import (
	"strconv"
	"time"

	"multichain-custody/internal/adapter/http/dto"
	"multichain-custody/internal/core/domain"
	"multichain-custody/internal/core/ports"
	"multichain-custody/pkg/apperror"
	"multichain-custody/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccountHandler handles account and ledger endpoints.
type AccountHandler struct {
	accountSvc ports.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountSvc ports.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

// CreateAccount handles POST /api/v1/accounts.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	account, err := h.accountSvc.CreateAccount(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toAccountResponse(account))
}

// GetWallets handles GET /api/v1/accounts/:id/wallets.
func (h *AccountHandler) GetWallets(c *gin.Context) {
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	account, err := h.accountSvc.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WalletsResponse{
		AccountID: account.ID.String(),
		Wallets:   toWalletResponses(account),
	})
}

// ListLedger handles GET /api/v1/accounts/:id/ledger.
func (h *AccountHandler) ListLedger(c *gin.Context) {
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	entries, total, err := h.accountSvc.ListLedger(c.Request.Context(), accountID, pageSize, (page-1)*pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.LedgerEntryResponse{
			ID:        e.ID.String(),
			Amount:    e.Amount.String(),
			Type:      string(e.Type),
			Status:    string(e.Status),
			Method:    e.Method,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		})
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	response.OK(c, dto.LedgerListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}

// parseAccountID reads and validates the :id path parameter, writing
// the error response itself on failure.
func parseAccountID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return uuid.Nil, false
	}
	return id, true
}

func toWalletResponses(account *domain.Account) []dto.WalletResponse {
	out := make([]dto.WalletResponse, 0, len(account.Wallets))
	for _, family := range domain.Families() {
		w, ok := account.WalletFor(family)
		if !ok {
			continue
		}
		resp := dto.WalletResponse{
			Family:    string(family),
			Available: !w.IsFallback(),
		}
		if !w.IsFallback() {
			resp.Address = w.Address
			resp.DerivationPath = w.DerivationPath
		}
		out = append(out, resp)
	}
	return out
}

func toAccountResponse(account *domain.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:          account.ID.String(),
		BalanceUSD:  account.BalanceUSD.String(),
		WalletIndex: account.WalletIndex,
		Wallets:     toWalletResponses(account),
		CreatedAt:   account.CreatedAt.Format(time.RFC3339),
	}
}
