package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TechnicianRole distingue la fórmula de comisión aplicable
type TechnicianRole string

const (
	RoleTecnico TechnicianRole = "tecnico"
	RoleGerente TechnicianRole = "gerente"
)

// CommissionStatus es el ciclo de vida de una comisión
type CommissionStatus string

const (
	CommissionPendiente CommissionStatus = "pendiente"
	CommissionAprobada  CommissionStatus = "aprobada"
	CommissionPagada    CommissionStatus = "pagada"
	// CommissionDebitada indica que los débitos consumieron el monto neto
	CommissionDebitada CommissionStatus = "debitada"
)

// DebitReason es la causa enumerada de un débito (contracargo)
type DebitReason string

const (
	DebitGarantia       DebitReason = "garantia"
	DebitRepuestoDanado DebitReason = "repuesto_danado"
	DebitFaltanteCaja   DebitReason = "faltante_caja"
	DebitOtro           DebitReason = "otro"
)

func (r DebitReason) Valid() bool {
	switch r {
	case DebitGarantia, DebitRepuestoDanado, DebitFaltanteCaja, DebitOtro:
		return true
	}
	return false
}

// Technician es el perfil de comisión de un técnico o gerente, provisto
// por el registro de órdenes (colaborador externo).
type Technician struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Role            TechnicianRole  `json:"role"`
	CommissionRate  decimal.Decimal `json:"commission_rate"`
	FlatRatePerUnit decimal.Decimal `json:"flat_rate_per_unit"`
	AccessoryRate   decimal.Decimal `json:"accessory_rate"`
}

// Commission es la comisión por pagar de una orden completada.
// NetAmount = CommissionAmount + FlatRateAmount - DebitsTotal, con piso en
// cero; el piso fuerza el estado Debitada.
type Commission struct {
	ID               int64            `json:"id"`
	OrderID          int64            `json:"order_id"`
	TechnicianID     int              `json:"technician_id"`
	GrossProfit      decimal.Decimal  `json:"gross_profit"`
	CommissionRate   decimal.Decimal  `json:"commission_rate"`
	CommissionAmount decimal.Decimal  `json:"commission_amount"`
	FlatRateAmount   decimal.Decimal  `json:"flat_rate_amount"`
	DebitsTotal      decimal.Decimal  `json:"debits_total"`
	NetAmount        decimal.Decimal  `json:"net_amount"`
	PeriodMonth      int              `json:"period_month"`
	PeriodYear       int              `json:"period_year"`
	Status           CommissionStatus `json:"status"`
	PaidAt           *time.Time       `json:"paid_at,omitempty"`
	PaidBy           *int             `json:"paid_by,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// Debit es un contracargo aplicado a una comisión. Una vez aplicado queda
// adjunto de forma permanente; una reversión se registra como evento, no
// como borrado.
type Debit struct {
	ID               int64           `json:"id"`
	CommissionID     int64           `json:"commission_id"`
	Reason           DebitReason     `json:"reason"`
	Amount           decimal.Decimal `json:"amount"`
	Reference        string          `json:"reference"`
	EvidenceRequired bool            `json:"evidence_required"`
	CreatedAt        time.Time       `json:"created_at"`
}

// BatchPayResult resume una corrida de pago en lote
type BatchPayResult struct {
	Paid    int     `json:"paid"`
	Skipped int     `json:"skipped"`
	PaidIDs []int64 `json:"paid_ids"`
}
