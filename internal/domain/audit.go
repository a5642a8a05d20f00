package domain

import (
	"time"
)

// AuditEventType clasifica los eventos que registra el sumidero de
// auditoría
type AuditEventType string

const (
	AuditRateManualOverride AuditEventType = "rate_manual_override"
	AuditCommissionPayout   AuditEventType = "commission_payout"
	AuditDebitApplied       AuditEventType = "debit_applied"
	AuditTotalClamped       AuditEventType = "total_clamped"
	AuditInvoiceCancelled   AuditEventType = "invoice_cancelled"
)

// AuditEvent es una notificación de tipo "fire-and-forget": una falla al
// registrarla nunca debe fallar la operación que la originó.
type AuditEvent struct {
	ID         string         `json:"id"`
	Type       AuditEventType `json:"type"`
	ActorID    int            `json:"actor_id"`
	EntityID   string         `json:"entity_id"`
	Detail     map[string]any `json:"detail,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}
