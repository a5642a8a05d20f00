package domain

import (
	"github.com/shopspring/decimal"
)

// OrderInvoiceItem es la vista mínima de un renglón de la factura de una
// orden que necesita el motor de comisiones (el tipo y su total).
type OrderInvoiceItem struct {
	Kind  InvoiceLineKind `json:"kind"`
	Total decimal.Decimal `json:"total"`
}

// Order es la orden completada que entrega el registro de órdenes: insumo
// de solo lectura del motor de comisiones. GrossProfit (ingresos menos
// costos) viene resuelto por el colaborador externo.
type Order struct {
	ID           int64              `json:"id"`
	StoreID      int                `json:"store_id"`
	GrossProfit  *decimal.Decimal   `json:"gross_profit"`
	Technician   *Technician        `json:"technician"`
	InvoiceItems []OrderInvoiceItem `json:"invoice_items"`
}

// AccessoryTotal suma los renglones de tipo accesorio de la factura de la
// orden, la base de la comisión variable del gerente.
func (o *Order) AccessoryTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.InvoiceItems {
		if item.Kind == LineKindAccesorio {
			total = total.Add(item.Total)
		}
	}
	return total
}
