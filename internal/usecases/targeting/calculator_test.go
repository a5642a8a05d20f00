package targeting_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/tallerapp/finanzas-api/infrastructure/repository/mocks"
	"github.com/tallerapp/finanzas-api/internal/config"
	"github.com/tallerapp/finanzas-api/internal/domain"
	"github.com/tallerapp/finanzas-api/internal/usecases/targeting"
	"github.com/tallerapp/finanzas-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

type calculatorMocks struct {
	expenseRepo *repomocks.MockExpenseRepository
	storeRepo   *repomocks.MockStoreRepository
	targetRepo  *repomocks.MockDailyTargetRepository
}

func newCalculator(t *testing.T, margin float64) (targeting.Calculator, calculatorMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := calculatorMocks{
		expenseRepo: repomocks.NewMockExpenseRepository(ctrl),
		storeRepo:   repomocks.NewMockStoreRepository(ctrl),
		targetRepo:  repomocks.NewMockDailyTargetRepository(ctrl),
	}

	cfg := &config.Config{
		Finance: config.Finance{DesiredMargin: margin},
	}

	return targeting.NewCalculator(cfg, m.expenseRepo, m.storeRepo, m.targetRepo), m
}

// Gastos fijos mensuales de $1950 ($65/día) más $25 discrecionales con
// margen del 30%: meta = 90/0.7 = $128.57, meta neta = $38.57.
func TestCalculateDaily(t *testing.T) {
	calculator, m := newCalculator(t, 0.30)

	m.expenseRepo.EXPECT().SumActiveFixedExpenses(1).Return(decimal.RequireFromString("1950"), nil)
	m.expenseRepo.EXPECT().SumDiscretionaryByDay(1, gomock.Any()).Return(decimal.RequireFromString("25"), nil)
	m.storeRepo.EXPECT().SumInvoicedByDay(1, gomock.Any()).Return(decimal.RequireFromString("130"), nil)
	m.targetRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

	target, err := calculator.CalculateDaily(1, "2026-08-27")
	require.NoError(t, err)

	assert.True(t, target.FixedExpensesAllocated.Equal(decimal.RequireFromString("65")))
	assert.True(t, target.DiscretionarySpend.Equal(decimal.RequireFromString("25")))
	assert.True(t, target.TargetAmount.Equal(decimal.RequireFromString("128.57")))
	assert.True(t, target.NetTarget.Equal(decimal.RequireFromString("38.57")))
	assert.True(t, target.ActualAmount.Equal(decimal.RequireFromString("130")))
	assert.True(t, target.IsMet)
}

func TestCalculateDaily_MetaNoAlcanzada(t *testing.T) {
	calculator, m := newCalculator(t, 0.30)

	m.expenseRepo.EXPECT().SumActiveFixedExpenses(1).Return(decimal.RequireFromString("1950"), nil)
	m.expenseRepo.EXPECT().SumDiscretionaryByDay(1, gomock.Any()).Return(decimal.RequireFromString("25"), nil)
	m.storeRepo.EXPECT().SumInvoicedByDay(1, gomock.Any()).Return(decimal.RequireFromString("100"), nil)
	m.targetRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

	target, err := calculator.CalculateDaily(1, "2026-08-27")
	require.NoError(t, err)
	assert.False(t, target.IsMet)
}

// Recalcular el mismo día con los mismos insumos produce una meta
// idéntica: el guardado es upsert, nunca duplicado.
func TestCalculateDaily_Idempotente(t *testing.T) {
	calculator, m := newCalculator(t, 0.30)

	m.expenseRepo.EXPECT().SumActiveFixedExpenses(1).Return(decimal.RequireFromString("1950"), nil).Times(2)
	m.expenseRepo.EXPECT().SumDiscretionaryByDay(1, gomock.Any()).Return(decimal.RequireFromString("25"), nil).Times(2)
	m.storeRepo.EXPECT().SumInvoicedByDay(1, gomock.Any()).Return(decimal.RequireFromString("130"), nil).Times(2)
	m.targetRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(2)

	first, err := calculator.CalculateDaily(1, "2026-08-27")
	require.NoError(t, err)

	second, err := calculator.CalculateDaily(1, "2026-08-27")
	require.NoError(t, err)

	assert.True(t, first.TargetAmount.Equal(second.TargetAmount))
	assert.True(t, first.NetTarget.Equal(second.NetTarget))
	assert.Equal(t, first.IsMet, second.IsMet)
}

// Margen >= 1 es un error de configuración: falla fuerte antes de tocar
// los repositorios.
func TestCalculateDaily_MargenInvalido(t *testing.T) {
	calculator, _ := newCalculator(t, 1.0)

	_, err := calculator.CalculateDaily(1, "2026-08-27")
	require.Error(t, err)
	assert.True(t, errors.Is(err, targeting.ErrInvalidMarginConfig))
}

func TestCalculateDaily_FechaInvalida(t *testing.T) {
	calculator, _ := newCalculator(t, 0.30)

	_, err := calculator.CalculateDaily(1, "27-08-2026")
	assert.Error(t, err)
}

func TestCalculateAll(t *testing.T) {
	calculator, m := newCalculator(t, 0.30)

	m.storeRepo.EXPECT().ListActive().Return([]*domain.Store{
		{ID: 1, Name: "Principal", Active: true},
		{ID: 2, Name: "Sucursal", Active: true},
	}, nil)

	for _, storeID := range []int{1, 2} {
		m.expenseRepo.EXPECT().SumActiveFixedExpenses(storeID).Return(decimal.RequireFromString("900"), nil)
		m.expenseRepo.EXPECT().SumDiscretionaryByDay(storeID, gomock.Any()).Return(decimal.Zero, nil)
		m.storeRepo.EXPECT().SumInvoicedByDay(storeID, gomock.Any()).Return(decimal.Zero, nil)
		m.targetRepo.EXPECT().Upsert(gomock.Any()).Return(nil)
	}

	targets, err := calculator.CalculateAll("2026-08-27")
	require.NoError(t, err)
	assert.Len(t, targets, 2)
}

// Una falla puntual de una tienda no frena a las demás
func TestCalculateAll_FallaPuntualContinua(t *testing.T) {
	calculator, m := newCalculator(t, 0.30)

	m.storeRepo.EXPECT().ListActive().Return([]*domain.Store{
		{ID: 1, Name: "Principal", Active: true},
		{ID: 2, Name: "Sucursal", Active: true},
	}, nil)

	m.expenseRepo.EXPECT().SumActiveFixedExpenses(1).Return(decimal.Zero, errors.New("conexión perdida"))

	m.expenseRepo.EXPECT().SumActiveFixedExpenses(2).Return(decimal.RequireFromString("900"), nil)
	m.expenseRepo.EXPECT().SumDiscretionaryByDay(2, gomock.Any()).Return(decimal.Zero, nil)
	m.storeRepo.EXPECT().SumInvoicedByDay(2, gomock.Any()).Return(decimal.Zero, nil)
	m.targetRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

	targets, err := calculator.CalculateAll("2026-08-27")
	require.NoError(t, err)
	assert.Len(t, targets, 1)
	assert.Equal(t, 2, targets[0].StoreID)
}
