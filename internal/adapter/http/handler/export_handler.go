package handler

import (
	"multichain-custody/internal/adapter/http/dto"
	"multichain-custody/internal/core/ports"
	"multichain-custody/pkg/apperror"
	"multichain-custody/pkg/response"

	"github.com/gin-gonic/gin"
)

// ExportHandler handles the privileged key-export endpoint.
type ExportHandler struct {
	exportSvc ports.KeyExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportSvc ports.KeyExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportKeys handles POST /api/v1/accounts/:id/keys/export. The
// response is the only place the key material ever exists.
func (h *ExportHandler) ExportKeys(c *gin.Context) {
	accountID, ok := parseAccountID(c)
	if !ok {
		return
	}

	var req dto.KeyExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if req.Credential() == "" {
		response.Error(c, apperror.Validation("authorization_secret or export_token is required"))
		return
	}

	materials, err := h.exportSvc.ExportKeys(c.Request.Context(), accountID, req.Credential(), c.ClientIP())
	if err != nil {
		response.Error(c, err)
		return
	}

	keys := make([]dto.KeyMaterialResponse, 0, len(materials))
	for _, m := range materials {
		keys = append(keys, dto.KeyMaterialResponse{
			Family:         string(m.Family),
			Address:        m.Address,
			DerivationPath: m.DerivationPath,
			Secret:         m.Secret,
		})
	}

	response.OK(c, dto.KeyExportResponse{
		AccountID: accountID.String(),
		Keys:      keys,
	})
}
