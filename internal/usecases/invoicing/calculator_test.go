package invoicing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallerapp/finanzas-api/internal/config"
	"github.com/tallerapp/finanzas-api/internal/domain"
	"github.com/tallerapp/finanzas-api/internal/usecases/converting"
	"github.com/tallerapp/finanzas-api/internal/usecases/invoicing"
	ratemocks "github.com/tallerapp/finanzas-api/internal/usecases/rates/mocks"
	"go.uber.org/mock/gomock"
)

func newCalculator(t *testing.T) invoicing.Calculator {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	reader := ratemocks.NewMockReader(ctrl)
	reader.EXPECT().GetCurrent(gomock.Any(), true).Return(&domain.CurrentRate{
		Kind:  domain.RateKindOficial,
		Value: decimal.RequireFromString("36.50"),
	}, nil).AnyTimes()

	cfg := &config.Config{
		Finance: config.Finance{
			SurchargePct:    3.0,
			InvoiceRateKind: string(domain.RateKindOficial),
		},
	}

	return invoicing.NewCalculator(cfg, converting.NewConverter(reader))
}

func serviceLines(amounts ...string) []domain.InvoiceLine {
	lines := make([]domain.InvoiceLine, 0, len(amounts))
	for _, amount := range amounts {
		lines = append(lines, domain.InvoiceLine{
			Kind:      domain.LineKindServicio,
			Quantity:  1,
			UnitPrice: decimal.RequireFromString(amount),
		})
	}
	return lines
}

func payment(method domain.PaymentMethod, amount string) domain.PaymentRecord {
	return domain.PaymentRecord{
		Method: method,
		Amount: decimal.RequireFromString(amount),
		PaidAt: time.Now(),
	}
}

func TestComputeTotals_SinRecargoSinPagosEnDivisa(t *testing.T) {
	calculator := newCalculator(t)

	totals, err := calculator.ComputeTotals(
		serviceLines("60", "40"),
		[]domain.PaymentRecord{payment(domain.PaymentPagoMovil, "50")},
		decimal.Zero,
		domain.RateKindOficial,
	)
	require.NoError(t, err)

	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("100")))
	assert.True(t, totals.SurchargeAmount.IsZero())
	assert.True(t, totals.TotalUSD.Equal(decimal.RequireFromString("100")))
	assert.True(t, totals.TotalLocal.Equal(decimal.RequireFromString("3650")))
	assert.Equal(t, domain.InvoiceParcial, totals.Status)
}

// Con subtotal de $100 y un pago de $100 en efectivo en divisa, el recargo
// del 3% sube el total a $103: el pago se acepta y quedan $3 pendientes.
func TestAddPayment_ElRecargoEntraAlChequeoDeSaldo(t *testing.T) {
	calculator := newCalculator(t)

	lines := serviceLines("100")

	totals, err := calculator.AddPayment(
		lines, nil, decimal.Zero, domain.RateKindOficial,
		payment(domain.PaymentEfectivoUSD, "100"),
	)
	require.NoError(t, err)

	assert.True(t, totals.SurchargeAmount.Equal(decimal.RequireFromString("3")))
	assert.True(t, totals.TotalUSD.Equal(decimal.RequireFromString("103")))
	assert.True(t, totals.PaidTotal.Equal(decimal.RequireFromString("100")))
	assert.Equal(t, domain.InvoiceParcial, totals.Status)

	remaining := totals.TotalUSD.Sub(totals.PaidTotal)
	assert.True(t, remaining.Equal(decimal.RequireFromString("3")))
}

func TestAddPayment_RechazaElPagoQueExcedeElSaldo(t *testing.T) {
	calculator := newCalculator(t)

	lines := serviceLines("100")

	_, err := calculator.AddPayment(
		lines, nil, decimal.Zero, domain.RateKindOficial,
		payment(domain.PaymentEfectivoUSD, "104"),
	)
	require.Error(t, err)

	var exceedsErr *invoicing.PaymentExceedsBalanceError
	require.ErrorAs(t, err, &exceedsErr)
	assert.True(t, exceedsErr.Remaining.Equal(decimal.RequireFromString("103")))
	assert.True(t, exceedsErr.Excess.Equal(decimal.RequireFromString("1")))
}

func TestAddPayment_PagoExactoDelTotalConRecargoCierraLaFactura(t *testing.T) {
	calculator := newCalculator(t)

	lines := serviceLines("100")

	totals, err := calculator.AddPayment(
		lines, nil, decimal.Zero, domain.RateKindOficial,
		payment(domain.PaymentEfectivoUSD, "103"),
	)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoicePagada, totals.Status)
}

// Agregar el primer pago en efectivo en divisa a un conjunto que no tenía
// ninguno sube el total exactamente en subtotal * 3%.
func TestComputeTotals_MonotoniaDelRecargo(t *testing.T) {
	calculator := newCalculator(t)

	lines := serviceLines("250")

	before, err := calculator.ComputeTotals(lines, []domain.PaymentRecord{
		payment(domain.PaymentTransferencia, "50"),
	}, decimal.Zero, domain.RateKindOficial)
	require.NoError(t, err)

	after, err := calculator.ComputeTotals(lines, []domain.PaymentRecord{
		payment(domain.PaymentTransferencia, "50"),
		payment(domain.PaymentEfectivoUSD, "10"),
	}, decimal.Zero, domain.RateKindOficial)
	require.NoError(t, err)

	expectedIncrease := decimal.RequireFromString("250").Mul(decimal.RequireFromString("0.03"))
	assert.True(t, after.TotalUSD.Sub(before.TotalUSD).Equal(expectedIncrease))
}

func TestComputeTotals_DescuentoMayorQueElTotalSeFijaEnCero(t *testing.T) {
	calculator := newCalculator(t)

	totals, err := calculator.ComputeTotals(
		serviceLines("50"), nil,
		decimal.RequireFromString("80"),
		domain.RateKindOficial,
	)
	require.NoError(t, err)

	assert.True(t, totals.TotalUSD.IsZero())
	assert.True(t, totals.ClampedToZero)
	assert.True(t, totals.TotalLocal.IsZero())
}

func TestComputeTotals_DescuentoNegativo(t *testing.T) {
	calculator := newCalculator(t)

	_, err := calculator.ComputeTotals(
		serviceLines("50"), nil,
		decimal.RequireFromString("-1"),
		domain.RateKindOficial,
	)
	assert.ErrorIs(t, err, invoicing.ErrNegativeDiscount)
}

func TestComputeTotals_RenglonInvalido(t *testing.T) {
	calculator := newCalculator(t)

	_, err := calculator.ComputeTotals(
		[]domain.InvoiceLine{{Kind: domain.LineKindRepuesto, Quantity: 0, UnitPrice: decimal.RequireFromString("10")}},
		nil, decimal.Zero, domain.RateKindOficial,
	)
	assert.ErrorIs(t, err, invoicing.ErrInvalidLineQuantity)
}

func TestAddPayment_MetodoDesconocido(t *testing.T) {
	calculator := newCalculator(t)

	_, err := calculator.AddPayment(
		serviceLines("10"), nil, decimal.Zero, domain.RateKindOficial,
		payment(domain.PaymentMethod("cheque"), "5"),
	)
	assert.ErrorIs(t, err, invoicing.ErrInvalidPaymentMethod)
}

func TestCancel(t *testing.T) {
	calculator := newCalculator(t)

	status, err := calculator.Cancel(domain.InvoicePendiente)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceAnulada, status)

	status, err = calculator.Cancel(domain.InvoiceParcial)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceAnulada, status)

	// Una factura pagada jamás se anula
	_, err = calculator.Cancel(domain.InvoicePagada)
	assert.ErrorIs(t, err, invoicing.ErrCancelPaidInvoice)

	// Anulada es terminal
	_, err = calculator.Cancel(domain.InvoiceAnulada)
	assert.ErrorIs(t, err, invoicing.ErrAlreadyCancelled)
}
