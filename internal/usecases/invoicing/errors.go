package invoicing

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeDiscount     = errors.New("el descuento no puede ser negativo")
	ErrInvalidLineQuantity  = errors.New("la cantidad de un renglón debe ser mayor que cero")
	ErrInvalidLineUnitPrice = errors.New("el precio unitario de un renglón no puede ser negativo")
	ErrInvalidPaymentMethod = errors.New("método de pago desconocido")
	ErrInvalidPaymentAmount = errors.New("el monto del pago debe ser mayor que cero")
	ErrCancelPaidInvoice    = errors.New("una factura pagada no puede anularse")
	ErrAlreadyCancelled     = errors.New("la factura ya está anulada")
)

// PaymentExceedsBalanceError lleva el detalle del rechazo: contra qué
// saldo se validó y por cuánto se excedió, para que el cajero corrija el
// monto.
type PaymentExceedsBalanceError struct {
	Attempted decimal.Decimal
	Remaining decimal.Decimal
	Excess    decimal.Decimal
}

func (e *PaymentExceedsBalanceError) Error() string {
	return fmt.Sprintf(
		"el pago de %s excede el saldo pendiente de %s por %s",
		e.Attempted.StringFixed(2), e.Remaining.StringFixed(2), e.Excess.StringFixed(2),
	)
}
