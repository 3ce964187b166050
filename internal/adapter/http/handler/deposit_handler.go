package handler

import (
	"multichain-custody/internal/adapter/http/dto"
	"multichain-custody/internal/core/domain"
	"multichain-custody/internal/core/ports"
	"multichain-custody/pkg/apperror"
	"multichain-custody/pkg/response"

	"github.com/gin-gonic/gin"
)

// DepositHandler handles deposit reconciliation endpoints.
type DepositHandler struct {
	reconcileSvc ports.ReconcileService
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(reconcileSvc ports.ReconcileService) *DepositHandler {
	return &DepositHandler{reconcileSvc: reconcileSvc}
}

// CheckDeposit handles POST /api/v1/accounts/:id/deposits/check.
func (h *DepositHandler) CheckDeposit(c *gin.Context) {
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	var req dto.DepositCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	info, ok := domain.ParseNetwork(req.Network)
	if !ok {
		response.Error(c, apperror.ErrUnknownNetwork(req.Network))
		return
	}

	result, err := h.reconcileSvc.CheckDeposit(c.Request.Context(), accountID, info.Network)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.DepositCheckResponse{NewDeposit: result.NewDeposit}
	if result.NewDeposit {
		amount := result.Amount.String()
		resp.Amount = &amount
	}
	response.OK(c, resp)
}
