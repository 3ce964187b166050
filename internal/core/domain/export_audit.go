package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExportAuditOutcome records how a key-export attempt ended.
type ExportAuditOutcome string

const (
	ExportOutcomeGranted ExportAuditOutcome = "GRANTED"
	ExportOutcomeDenied  ExportAuditOutcome = "DENIED"
)

// ExportAudit is an append-only record of a privileged key-export
// attempt. Key material itself is never stored.
type ExportAudit struct {
	ID        uuid.UUID          `json:"id"`
	AccountID uuid.UUID          `json:"account_id"`
	Outcome   ExportAuditOutcome `json:"outcome"`
	ClientIP  string             `json:"client_ip,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}
