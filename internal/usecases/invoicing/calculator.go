package invoicing

import (
	"github.com/shopspring/decimal"
	"github.com/tallerapp/finanzas-api/internal/config"
	"github.com/tallerapp/finanzas-api/internal/domain"
	"github.com/tallerapp/finanzas-api/internal/usecases/converting"
)

// Calculator computa los totales de una factura a partir de sus renglones,
// el conjunto de pagos y el descuento. No guarda estado entre llamadas:
// la serialización de pagos concurrentes sobre una misma factura es
// responsabilidad de la capa de persistencia.
type Calculator interface {
	// ComputeTotals deriva el agregado completo. El recargo es una
	// propiedad del conjunto de pagos, no de los renglones: aparece o
	// desaparece según haya o no un pago en efectivo en divisa.
	ComputeTotals(lines []domain.InvoiceLine, payments []domain.PaymentRecord, discount decimal.Decimal, rateKind domain.RateKind) (*domain.InvoiceTotals, error)
	// AddPayment valida y aplica un pago contra el saldo vigente. El
	// chequeo de saldo usa el total posterior al recargo que este mismo
	// pago pueda disparar, nunca el total previo.
	AddPayment(lines []domain.InvoiceLine, payments []domain.PaymentRecord, discount decimal.Decimal, rateKind domain.RateKind, payment domain.PaymentRecord) (*domain.InvoiceTotals, error)
	// Cancel valida la transición hacia anulada
	Cancel(current domain.InvoiceStatus) (domain.InvoiceStatus, error)
}

type calculator struct {
	cfg       *config.Config
	converter converting.Converter
}

func NewCalculator(cfg *config.Config, converter converting.Converter) Calculator {
	return &calculator{cfg: cfg, converter: converter}
}

func (c *calculator) ComputeTotals(lines []domain.InvoiceLine, payments []domain.PaymentRecord, discount decimal.Decimal, rateKind domain.RateKind) (*domain.InvoiceTotals, error) {
	if discount.IsNegative() {
		return nil, ErrNegativeDiscount
	}

	subtotal := decimal.Zero
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, ErrInvalidLineQuantity
		}
		if line.UnitPrice.IsNegative() {
			return nil, ErrInvalidLineUnitPrice
		}
		subtotal = subtotal.Add(line.Total())
	}

	surcharge := decimal.Zero
	if hasForeignCashPayment(payments) {
		surcharge = subtotal.Mul(c.surchargePct()).Div(decimal.NewFromInt(100))
	}

	totals := &domain.InvoiceTotals{
		Subtotal:        subtotal,
		SurchargeAmount: surcharge,
		Discount:        discount,
	}

	totalUSD := subtotal.Add(surcharge).Sub(discount)
	if totalUSD.IsNegative() {
		// El descuento superó subtotal+recargo: el total se fija en cero
		// y se deja la marca para revisión, nunca un total negativo
		totalUSD = decimal.Zero
		totals.ClampedToZero = true
	}
	totals.TotalUSD = totalUSD

	totalLocal, rate, err := c.converter.ToLocal(totalUSD, rateKind)
	if err != nil {
		return nil, err
	}
	totals.TotalLocal = totalLocal
	totals.RateUsed = rate.Value
	totals.RateKind = rate.Kind
	totals.RateBackup = rate.IsBackup

	paidTotal := decimal.Zero
	for _, payment := range payments {
		paidTotal = paidTotal.Add(payment.Amount)
	}
	totals.PaidTotal = paidTotal
	totals.Status = paymentStatus(totalUSD, paidTotal, len(payments))

	return totals, nil
}

func (c *calculator) AddPayment(lines []domain.InvoiceLine, payments []domain.PaymentRecord, discount decimal.Decimal, rateKind domain.RateKind, payment domain.PaymentRecord) (*domain.InvoiceTotals, error) {
	if !payment.Method.Valid() {
		return nil, ErrInvalidPaymentMethod
	}
	if payment.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPaymentAmount
	}

	// El total se recalcula con el pago entrante incluido: si este pago
	// es el primero en efectivo en divisa, el recargo ya forma parte del
	// saldo contra el que se valida. Un cliente que paga exactamente el
	// total sin recargo no puede quedar por debajo.
	prospective := append(append([]domain.PaymentRecord{}, payments...), payment)

	totals, err := c.ComputeTotals(lines, prospective, discount, rateKind)
	if err != nil {
		return nil, err
	}

	priorPaid := totals.PaidTotal.Sub(payment.Amount)
	remaining := totals.TotalUSD.Sub(priorPaid)
	if payment.Amount.GreaterThan(remaining) {
		return nil, &PaymentExceedsBalanceError{
			Attempted: payment.Amount,
			Remaining: remaining,
			Excess:    payment.Amount.Sub(remaining),
		}
	}

	return totals, nil
}

func (c *calculator) Cancel(current domain.InvoiceStatus) (domain.InvoiceStatus, error) {
	switch current {
	case domain.InvoicePagada:
		// Anular una factura pagada está prohibido
		return current, ErrCancelPaidInvoice
	case domain.InvoiceAnulada:
		return current, ErrAlreadyCancelled
	}
	return domain.InvoiceAnulada, nil
}

func (c *calculator) surchargePct() decimal.Decimal {
	return decimal.NewFromFloat(c.cfg.Finance.SurchargePct)
}

func hasForeignCashPayment(payments []domain.PaymentRecord) bool {
	for _, payment := range payments {
		if payment.Method.IsForeignCash() {
			return true
		}
	}
	return false
}

func paymentStatus(totalUSD, paidTotal decimal.Decimal, paymentCount int) domain.InvoiceStatus {
	switch {
	case paidTotal.GreaterThanOrEqual(totalUSD) && (paymentCount > 0 || totalUSD.IsZero()):
		return domain.InvoicePagada
	case paidTotal.GreaterThan(decimal.Zero):
		return domain.InvoiceParcial
	default:
		return domain.InvoicePendiente
	}
}
