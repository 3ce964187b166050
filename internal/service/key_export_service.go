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
)

// KeyExportServiceImpl implements ports.KeyExportService. Export is the
// only operation that re-derives private keys; the material exists only
// in the response and is never persisted or logged.
type KeyExportServiceImpl struct {
	accountRepo ports.AccountRepository
	auditRepo   ports.ExportAuditRepository
	authorizer  ports.ExportAuthorizer
	deriver     ports.WalletDeriver
	seed        []byte
	log         zerolog.Logger
}

// NewKeyExportService creates a new KeyExportServiceImpl.
func NewKeyExportService(
	accountRepo ports.AccountRepository,
	auditRepo ports.ExportAuditRepository,
	authorizer ports.ExportAuthorizer,
	deriver ports.WalletDeriver,
	seed []byte,
	log zerolog.Logger,
) *KeyExportServiceImpl {
	return &KeyExportServiceImpl{
		accountRepo: accountRepo,
		auditRepo:   auditRepo,
		authorizer:  authorizer,
		deriver:     deriver,
		seed:        seed,
		log:         log,
	}
}

// ExportKeys authorizes the request, re-derives key material for every
// family whose derivation succeeds, and records the attempt. A rejected
// credential reveals nothing and leaves no trace beyond the audit row.
func (s *KeyExportServiceImpl) ExportKeys(ctx context.Context, accountID uuid.UUID, credential, clientIP string) ([]domain.KeyMaterial, error) {
	if err := s.authorizer.Authorize(ctx, credential); err != nil {
		s.audit(ctx, accountID, domain.ExportOutcomeDenied, clientIP)
		return nil, err
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrAccountNotFound()
	}

	materials := make([]domain.KeyMaterial, 0, 4)
	for _, family := range domain.Families() {
		material, err := s.deriver.DeriveKeys(s.seed, account.WalletIndex, family)
		if err != nil {
			// Families that cannot derive are skipped, matching the
			// fallback wallets recorded at account creation.
			s.log.Warn().
				Err(err).
				Str("family", string(family)).
				Str("account_id", accountID.String()).
				Msg("key derivation failed during export, family skipped")
			continue
		}
		materials = append(materials, material)
	}

	s.audit(ctx, accountID, domain.ExportOutcomeGranted, clientIP)

	s.log.Info().
		Str("account_id", accountID.String()).
		Str("client_ip", clientIP).
		Int("families", len(materials)).
		Msg("key export granted")

	return materials, nil
}

func (s *KeyExportServiceImpl) audit(ctx context.Context, accountID uuid.UUID, outcome domain.ExportAuditOutcome, clientIP string) {
	entry := &domain.ExportAudit{
		ID:        uuid.New(),
		AccountID: accountID,
		Outcome:   outcome,
		ClientIP:  clientIP,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		s.log.Error().Err(err).
			Str("account_id", accountID.String()).
			Str("outcome", string(outcome)).
			Msg("failed to record export audit")
	}
}
