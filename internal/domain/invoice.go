package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceLineKind clasifica un renglón de factura
type InvoiceLineKind string

const (
	LineKindServicio  InvoiceLineKind = "servicio"
	LineKindRepuesto  InvoiceLineKind = "repuesto"
	LineKindAccesorio InvoiceLineKind = "accesorio"
)

// PaymentMethod es el método con el que se registró un pago
type PaymentMethod string

const (
	// PaymentEfectivoUSD efectivo en divisa; dispara el recargo IGTF
	PaymentEfectivoUSD   PaymentMethod = "efectivo_usd"
	PaymentEfectivoBs    PaymentMethod = "efectivo_bs"
	PaymentPagoMovil     PaymentMethod = "pago_movil"
	PaymentTransferencia PaymentMethod = "transferencia"
	PaymentTarjeta       PaymentMethod = "tarjeta"
	PaymentZelle         PaymentMethod = "zelle"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentEfectivoUSD, PaymentEfectivoBs, PaymentPagoMovil,
		PaymentTransferencia, PaymentTarjeta, PaymentZelle:
		return true
	}
	return false
}

// IsForeignCash indica si el método es efectivo en moneda extranjera,
// la condición que activa el recargo sobre el subtotal
func (m PaymentMethod) IsForeignCash() bool {
	return m == PaymentEfectivoUSD
}

// InvoiceStatus es el estado de cobro de una factura
type InvoiceStatus string

const (
	InvoicePendiente InvoiceStatus = "pendiente"
	InvoiceParcial   InvoiceStatus = "parcial"
	InvoicePagada    InvoiceStatus = "pagada"
	InvoiceAnulada   InvoiceStatus = "anulada"
)

// InvoiceLine es un renglón de la factura en construcción. Inmutable una
// vez finalizada la factura.
type InvoiceLine struct {
	Kind        InvoiceLineKind `json:"kind"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Total es cantidad por precio unitario
func (l InvoiceLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// PaymentRecord es un pago aplicado a una factura
type PaymentRecord struct {
	Method    PaymentMethod   `json:"method"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference,omitempty"`
	PaidAt    time.Time       `json:"paid_at"`
}

// InvoiceTotals es el agregado calculado de una factura: totales derivados
// de los renglones, el conjunto de pagos y el descuento. No es el registro
// persistido sino el resultado del cálculo.
type InvoiceTotals struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	SurchargeAmount decimal.Decimal `json:"surcharge_amount"`
	Discount        decimal.Decimal `json:"discount"`
	TotalUSD        decimal.Decimal `json:"total_usd"`
	TotalLocal      decimal.Decimal `json:"total_local"`
	PaidTotal       decimal.Decimal `json:"paid_total"`
	Status          InvoiceStatus   `json:"status"`
	// ClampedToZero indica que el descuento superaba subtotal+recargo y el
	// total se fijó en cero; debe revisarse aguas abajo
	ClampedToZero bool `json:"clamped_to_zero,omitempty"`
	// RateUsed es la tasa aplicada para el total en bolívares
	RateUsed   decimal.Decimal `json:"rate_used"`
	RateKind   RateKind        `json:"rate_kind"`
	RateBackup bool            `json:"rate_backup,omitempty"`
}
