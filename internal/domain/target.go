package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Store es una sucursal activa del taller
type Store struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// DailyTarget es la meta de ventas de punto de equilibrio de una tienda
// para un día. Existe a lo sumo una por (fecha, tienda): recalcular el
// mismo día sobrescribe en lugar de duplicar.
type DailyTarget struct {
	ID      int64     `json:"id"`
	StoreID int       `json:"store_id"`
	Date    time.Time `json:"date"`
	// FixedExpensesAllocated es la porción diaria de los gastos fijos
	// mensuales, siempre dividida entre 30 (simplificación documentada,
	// no ajustada a los días reales del mes)
	FixedExpensesAllocated decimal.Decimal `json:"fixed_expenses_allocated"`
	DiscretionarySpend     decimal.Decimal `json:"discretionary_spend"`
	TargetAmount           decimal.Decimal `json:"target_amount"`
	NetTarget              decimal.Decimal `json:"net_target"`
	ActualAmount           decimal.Decimal `json:"actual_amount"`
	IsMet                  bool            `json:"is_met"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}
