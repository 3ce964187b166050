package postgres

import (
	"context"
	"fmt"

	"multichain-custody/internal/core/domain"
)

// ExportAuditRepo implements ports.ExportAuditRepository.
type ExportAuditRepo struct {
	pool Pool
}

// NewExportAuditRepo creates a new ExportAuditRepo.
func NewExportAuditRepo(pool Pool) *ExportAuditRepo {
	return &ExportAuditRepo{pool: pool}
}

// Create records a key-export attempt. Key material is never stored.
func (r *ExportAuditRepo) Create(ctx context.Context, a *domain.ExportAudit) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO export_audits (id, account_id, outcome, client_ip, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.AccountID, a.Outcome, a.ClientIP, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert export audit: %w", err)
	}
	return nil
}
