package commissioning_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/tallerapp/finanzas-api/infrastructure/repository/mocks"
	"github.com/tallerapp/finanzas-api/internal/domain"
	auditmocks "github.com/tallerapp/finanzas-api/internal/usecases/auditing/mocks"
	"github.com/tallerapp/finanzas-api/internal/usecases/commissioning"
	"github.com/tallerapp/finanzas-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

type engineMocks struct {
	commissionRepo *repomocks.MockCommissionRepository
	orderRepo      *repomocks.MockOrderRepository
	audit          *auditmocks.MockNotifier
}

func newEngine(t *testing.T) (commissioning.Engine, engineMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := engineMocks{
		commissionRepo: repomocks.NewMockCommissionRepository(ctrl),
		orderRepo:      repomocks.NewMockOrderRepository(ctrl),
		audit:          auditmocks.NewMockNotifier(ctrl),
	}

	return commissioning.NewEngine(m.commissionRepo, m.orderRepo, m.audit), m
}

func decimalPtr(raw string) *decimal.Decimal {
	value := decimal.RequireFromString(raw)
	return &value
}

// Técnico con ganancia bruta de $200 al 35% cobra $70
func TestComputeForOrder_Tecnico(t *testing.T) {
	engine, m := newEngine(t)

	order := &domain.Order{
		ID:          10,
		GrossProfit: decimalPtr("200"),
		Technician: &domain.Technician{
			ID:             3,
			Role:           domain.RoleTecnico,
			CommissionRate: decimal.RequireFromString("35"),
		},
	}

	m.orderRepo.EXPECT().GetForCommission(int64(10)).Return(order, nil)
	m.commissionRepo.EXPECT().GetByOrderID(int64(10)).Return(nil, nil)
	m.commissionRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *domain.Commission) error {
		assert.True(t, c.CommissionAmount.Equal(decimal.RequireFromString("70")))
		assert.True(t, c.FlatRateAmount.IsZero())
		assert.True(t, c.NetAmount.Equal(decimal.RequireFromString("70")))
		assert.Equal(t, domain.CommissionPendiente, c.Status)
		assert.Equal(t, int(time.Now().Month()), c.PeriodMonth)
		assert.Equal(t, time.Now().Year(), c.PeriodYear)
		return nil
	})

	commission, err := engine.ComputeForOrder(10)
	require.NoError(t, err)
	require.NotNil(t, commission)
}

// Gerente: $1 fijo por unidad más 10% de los accesorios ($50) = $6
func TestComputeForOrder_Gerente(t *testing.T) {
	engine, m := newEngine(t)

	order := &domain.Order{
		ID:          11,
		GrossProfit: decimalPtr("300"),
		Technician: &domain.Technician{
			ID:              4,
			Role:            domain.RoleGerente,
			FlatRatePerUnit: decimal.RequireFromString("1"),
			AccessoryRate:   decimal.RequireFromString("10"),
		},
		InvoiceItems: []domain.OrderInvoiceItem{
			{Kind: domain.LineKindAccesorio, Total: decimal.RequireFromString("30")},
			{Kind: domain.LineKindAccesorio, Total: decimal.RequireFromString("20")},
			{Kind: domain.LineKindServicio, Total: decimal.RequireFromString("500")},
		},
	}

	m.orderRepo.EXPECT().GetForCommission(int64(11)).Return(order, nil)
	m.commissionRepo.EXPECT().GetByOrderID(int64(11)).Return(nil, nil)
	m.commissionRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *domain.Commission) error {
		assert.True(t, c.CommissionAmount.Equal(decimal.RequireFromString("5")))
		assert.True(t, c.FlatRateAmount.Equal(decimal.RequireFromString("1")))
		assert.True(t, c.NetAmount.Equal(decimal.RequireFromString("6")))
		return nil
	})

	commission, err := engine.ComputeForOrder(11)
	require.NoError(t, err)
	require.NotNil(t, commission)
}

// Una orden sin técnico no genera comisión ni error
func TestComputeForOrder_SinTecnicoEsNoOp(t *testing.T) {
	engine, m := newEngine(t)

	m.orderRepo.EXPECT().GetForCommission(int64(12)).Return(&domain.Order{
		ID:          12,
		GrossProfit: decimalPtr("100"),
	}, nil)

	commission, err := engine.ComputeForOrder(12)
	require.NoError(t, err)
	assert.Nil(t, commission)
}

func TestComputeForOrder_SinGananciaBrutaEsNoOp(t *testing.T) {
	engine, m := newEngine(t)

	m.orderRepo.EXPECT().GetForCommission(int64(13)).Return(&domain.Order{
		ID:         13,
		Technician: &domain.Technician{ID: 1, Role: domain.RoleTecnico},
	}, nil)

	commission, err := engine.ComputeForOrder(13)
	require.NoError(t, err)
	assert.Nil(t, commission)
}

func TestComputeForOrder_RecalcularDevuelveLaExistente(t *testing.T) {
	engine, m := newEngine(t)

	existing := &domain.Commission{ID: 77, OrderID: 14}

	m.orderRepo.EXPECT().GetForCommission(int64(14)).Return(&domain.Order{
		ID:          14,
		GrossProfit: decimalPtr("100"),
		Technician:  &domain.Technician{ID: 1, Role: domain.RoleTecnico},
	}, nil)
	m.commissionRepo.EXPECT().GetByOrderID(int64(14)).Return(existing, nil)

	commission, err := engine.ComputeForOrder(14)
	require.NoError(t, err)
	assert.Equal(t, existing, commission)
}

func TestApplyDebit_ReduceElNeto(t *testing.T) {
	engine, m := newEngine(t)

	commission := &domain.Commission{
		ID:               20,
		CommissionAmount: decimal.RequireFromString("70"),
		FlatRateAmount:   decimal.Zero,
		DebitsTotal:      decimal.Zero,
		NetAmount:        decimal.RequireFromString("70"),
		Status:           domain.CommissionPendiente,
	}

	m.commissionRepo.EXPECT().GetByID(int64(20)).Return(commission, nil)
	m.commissionRepo.EXPECT().AppendDebit(gomock.Any()).Return(nil)
	m.commissionRepo.EXPECT().UpdateAmounts(gomock.Any()).Return(nil)
	m.audit.EXPECT().Notify(gomock.Any()).Do(func(event *domain.AuditEvent) {
		assert.Equal(t, domain.AuditDebitApplied, event.Type)
	})

	updated, err := engine.ApplyDebit(20, domain.DebitGarantia, decimal.RequireFromString("25"), "REF-1", true, 9)
	require.NoError(t, err)

	assert.True(t, updated.NetAmount.Equal(decimal.RequireFromString("45")))
	assert.Equal(t, domain.CommissionPendiente, updated.Status)
}

// El neto jamás queda negativo: el piso en cero fuerza el estado debitada
// aunque la comisión ya estuviera pagada.
func TestApplyDebit_PisoEnCeroFuerzaDebitada(t *testing.T) {
	engine, m := newEngine(t)

	paidAt := time.Now()
	commission := &domain.Commission{
		ID:               21,
		CommissionAmount: decimal.RequireFromString("50"),
		FlatRateAmount:   decimal.Zero,
		DebitsTotal:      decimal.RequireFromString("30"),
		NetAmount:        decimal.RequireFromString("20"),
		Status:           domain.CommissionPagada,
		PaidAt:           &paidAt,
	}

	m.commissionRepo.EXPECT().GetByID(int64(21)).Return(commission, nil)
	m.commissionRepo.EXPECT().AppendDebit(gomock.Any()).Return(nil)
	m.commissionRepo.EXPECT().UpdateAmounts(gomock.Any()).DoAndReturn(func(c *domain.Commission) error {
		assert.True(t, c.NetAmount.IsZero())
		assert.Equal(t, domain.CommissionDebitada, c.Status)
		return nil
	})
	m.audit.EXPECT().Notify(gomock.Any())

	updated, err := engine.ApplyDebit(21, domain.DebitFaltanteCaja, decimal.RequireFromString("35"), "", false, 9)
	require.NoError(t, err)

	assert.True(t, updated.NetAmount.GreaterThanOrEqual(decimal.Zero))
	assert.Equal(t, domain.CommissionDebitada, updated.Status)
}

func TestApplyDebit_MontoInvalido(t *testing.T) {
	engine, _ := newEngine(t)

	_, err := engine.ApplyDebit(22, domain.DebitOtro, decimal.Zero, "", false, 1)
	assert.ErrorIs(t, err, commissioning.ErrInvalidDebitAmount)
}

func TestApplyDebit_CausaDesconocida(t *testing.T) {
	engine, _ := newEngine(t)

	_, err := engine.ApplyDebit(22, domain.DebitReason("capricho"), decimal.RequireFromString("5"), "", false, 1)
	assert.ErrorIs(t, err, commissioning.ErrInvalidDebitReason)
}

// Las comisiones fuera de pendiente se omiten en silencio y quedan fuera
// del conteo de pagadas.
func TestBatchPay_OmiteLasNoPendientes(t *testing.T) {
	engine, m := newEngine(t)

	ids := []int64{1, 2, 3}

	m.commissionRepo.EXPECT().
		MarkPaid(ids, 9, gomock.Any()).
		Return([]int64{1, 3}, nil)
	m.audit.EXPECT().Notify(gomock.Any()).Times(2)

	result, err := engine.BatchPay(ids, 9)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Paid)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, []int64{1, 3}, result.PaidIDs)
}

func TestBatchPay_ListaVacia(t *testing.T) {
	engine, _ := newEngine(t)

	result, err := engine.BatchPay(nil, 9)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Paid)
	assert.Equal(t, 0, result.Skipped)
}
