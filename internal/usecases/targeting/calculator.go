package targeting

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/tallerapp/finanzas-api/infrastructure/repository"
	"github.com/tallerapp/finanzas-api/internal/config"
	"github.com/tallerapp/finanzas-api/internal/domain"
	"github.com/tallerapp/finanzas-api/pkg/log"
	"github.com/tallerapp/finanzas-api/pkg/utils"
)

var (
	ErrStoreNotFound = errors.New("tienda no encontrada o inactiva")
	// ErrInvalidMarginConfig es un error de despliegue, no una condición
	// de corrida: con margen >= 1 la fórmula divide por cero o negativo
	ErrInvalidMarginConfig = errors.New("el margen deseado debe ser menor que 1")
)

// monthlyAllocationDays es el divisor fijo de la asignación mensual de
// gastos fijos. No se ajusta a los días reales del mes; cambiarlo
// movería todas las metas proyectadas.
var monthlyAllocationDays = decimal.NewFromInt(30)

// Calculator computa la meta diaria de punto de equilibrio por tienda.
type Calculator interface {
	// CalculateDaily computa y guarda la meta del día. Es idempotente:
	// recalcular el mismo día sobrescribe el registro existente.
	CalculateDaily(storeID int, date string) (*domain.DailyTarget, error)
	// CalculateAll corre CalculateDaily para todas las tiendas activas
	CalculateAll(date string) ([]*domain.DailyTarget, error)
	GetDaily(storeID int, date string) (*domain.DailyTarget, error)
}

type calculator struct {
	cfg         *config.Config
	expenseRepo repository.ExpenseRepository
	storeRepo   repository.StoreRepository
	targetRepo  repository.DailyTargetRepository
}

func NewCalculator(
	cfg *config.Config,
	expenseRepo repository.ExpenseRepository,
	storeRepo repository.StoreRepository,
	targetRepo repository.DailyTargetRepository,
) Calculator {
	return &calculator{
		cfg:         cfg,
		expenseRepo: expenseRepo,
		storeRepo:   storeRepo,
		targetRepo:  targetRepo,
	}
}

func (c *calculator) CalculateDaily(storeID int, date string) (*domain.DailyTarget, error) {
	margin := decimal.NewFromFloat(c.cfg.Finance.DesiredMargin)
	if margin.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, errors.Wrapf(ErrInvalidMarginConfig, "margen configurado: %s", margin.String())
	}

	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, err
	}

	fixedMonthly, err := c.expenseRepo.SumActiveFixedExpenses(storeID)
	if err != nil {
		return nil, err
	}
	fixedAllocated := fixedMonthly.Div(monthlyAllocationDays)

	discretionary, err := c.expenseRepo.SumDiscretionaryByDay(storeID, *day)
	if err != nil {
		return nil, err
	}

	baseCost := fixedAllocated.Add(discretionary)
	targetAmount := baseCost.DivRound(decimal.NewFromInt(1).Sub(margin), 2)
	netTarget := targetAmount.Sub(baseCost)

	actualAmount, err := c.storeRepo.SumInvoicedByDay(storeID, *day)
	if err != nil {
		return nil, err
	}

	target := &domain.DailyTarget{
		StoreID:                storeID,
		Date:                   *day,
		FixedExpensesAllocated: fixedAllocated,
		DiscretionarySpend:     discretionary,
		TargetAmount:           targetAmount,
		NetTarget:              netTarget,
		ActualAmount:           actualAmount,
		IsMet:                  actualAmount.GreaterThanOrEqual(targetAmount),
	}

	if err := c.targetRepo.Upsert(target); err != nil {
		return nil, err
	}

	return target, nil
}

func (c *calculator) CalculateAll(date string) ([]*domain.DailyTarget, error) {
	stores, err := c.storeRepo.ListActive()
	if err != nil {
		return nil, err
	}

	targets := make([]*domain.DailyTarget, 0, len(stores))
	for _, store := range stores {
		target, err := c.CalculateDaily(store.ID, date)
		if err != nil {
			// El margen mal configurado aborta la corrida completa; una
			// falla puntual de tienda no debe frenar a las demás
			if errors.Is(err, ErrInvalidMarginConfig) {
				return nil, err
			}
			log.L.WithError(err).WithField("store_id", store.ID).
				Error("Error al calcular la meta diaria de la tienda")
			continue
		}
		targets = append(targets, target)
	}

	return targets, nil
}

func (c *calculator) GetDaily(storeID int, date string) (*domain.DailyTarget, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, err
	}
	return c.targetRepo.GetByStoreAndDate(storeID, *day)
}
