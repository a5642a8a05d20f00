package commissioning

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/tallerapp/finanzas-api/infrastructure/repository"
	"github.com/tallerapp/finanzas-api/internal/domain"
	"github.com/tallerapp/finanzas-api/internal/usecases/auditing"
	"github.com/tallerapp/finanzas-api/pkg/log"
	"github.com/tallerapp/finanzas-api/pkg/utils"
)

// Engine calcula y administra las comisiones por orden completada.
type Engine interface {
	// ComputeForOrder calcula la comisión de la orden según el rol del
	// técnico y la persiste en estado pendiente. Una orden sin técnico o
	// sin ganancia bruta resoluble no es un error: se registra en el log
	// y se devuelve nil para no frenar el cierre de la orden.
	ComputeForOrder(orderID int64) (*domain.Commission, error)
	// ApplyDebit adjunta un contracargo y recalcula el neto con piso en
	// cero; si el piso actúa, el estado pasa a debitada sin importar el
	// estado previo.
	ApplyDebit(commissionID int64, reason domain.DebitReason, amount decimal.Decimal, reference string, evidenceRequired bool, actorID int) (*domain.Commission, error)
	// BatchPay paga las comisiones pendientes entre los ids dados; las
	// que no están pendientes se omiten en silencio.
	BatchPay(ids []int64, paidBy int) (*domain.BatchPayResult, error)
	ListByPeriod(month, year int) ([]*domain.Commission, error)
	GetByID(id int64) (*domain.Commission, error)
	ListDebits(commissionID int64) ([]*domain.Debit, error)
}

type engine struct {
	commissionRepo repository.CommissionRepository
	orderRepo      repository.OrderRepository
	audit          auditing.Notifier
	now            func() time.Time
}

func NewEngine(
	commissionRepo repository.CommissionRepository,
	orderRepo repository.OrderRepository,
	audit auditing.Notifier,
) Engine {
	return &engine{
		commissionRepo: commissionRepo,
		orderRepo:      orderRepo,
		audit:          audit,
		now:            time.Now,
	}
}

func (e *engine) ComputeForOrder(orderID int64) (*domain.Commission, error) {
	order, err := e.orderRepo.GetForCommission(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	logger := log.L.WithField("order_id", orderID)

	if order.Technician == nil {
		logger.Info("Orden sin técnico asignado; no se genera comisión")
		return nil, nil
	}
	if order.GrossProfit == nil {
		logger.Info("Orden sin ganancia bruta resoluble; no se genera comisión")
		return nil, nil
	}

	// Recalcular la misma orden devuelve la comisión existente
	existing, err := e.commissionRepo.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	technician := order.Technician
	grossProfit := *order.GrossProfit

	var commissionAmount, flatRateAmount decimal.Decimal

	switch technician.Role {
	case domain.RoleGerente:
		// El gerente cobra una tarifa fija por unidad completada más un
		// porcentaje de los accesorios facturados; la ganancia bruta no
		// entra en su fórmula
		flatRateAmount = technician.FlatRatePerUnit
		commissionAmount = order.AccessoryTotal().
			Mul(technician.AccessoryRate).
			Div(decimal.NewFromInt(100))
	default:
		commissionAmount = grossProfit.
			Mul(technician.CommissionRate).
			Div(decimal.NewFromInt(100))
		flatRateAmount = decimal.Zero
	}

	// El período es el del momento del cálculo, no el de la creación de
	// la orden
	now := e.now()

	commission := &domain.Commission{
		OrderID:          orderID,
		TechnicianID:     technician.ID,
		GrossProfit:      grossProfit,
		CommissionRate:   technician.CommissionRate,
		CommissionAmount: commissionAmount,
		FlatRateAmount:   flatRateAmount,
		DebitsTotal:      decimal.Zero,
		NetAmount:        commissionAmount.Add(flatRateAmount),
		PeriodMonth:      int(now.Month()),
		PeriodYear:       now.Year(),
		Status:           domain.CommissionPendiente,
	}

	if err := e.commissionRepo.Create(commission); err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{
		"technician_id": technician.ID,
		"net_amount":    commission.NetAmount.String(),
	}).Info("Comisión generada")

	return commission, nil
}

func (e *engine) ApplyDebit(commissionID int64, reason domain.DebitReason, amount decimal.Decimal, reference string, evidenceRequired bool, actorID int) (*domain.Commission, error) {
	if !reason.Valid() {
		return nil, ErrInvalidDebitReason
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidDebitAmount
	}

	commission, err := e.commissionRepo.GetByID(commissionID)
	if err != nil {
		return nil, err
	}
	if commission == nil {
		return nil, ErrCommissionNotFound
	}

	if reference == "" {
		reference, err = utils.GenerateID()
		if err != nil {
			return nil, errors.Wrap(err, "error generando referencia del débito")
		}
	}

	debit := &domain.Debit{
		CommissionID:     commissionID,
		Reason:           reason,
		Amount:           amount,
		Reference:        reference,
		EvidenceRequired: evidenceRequired,
	}
	if err := e.commissionRepo.AppendDebit(debit); err != nil {
		return nil, err
	}

	commission.DebitsTotal = commission.DebitsTotal.Add(amount)

	net := commission.CommissionAmount.
		Add(commission.FlatRateAmount).
		Sub(commission.DebitsTotal)
	if net.IsNegative() {
		// Piso en cero: los débitos consumieron la comisión completa. El
		// estado pasa a debitada aunque ya estuviera pagada (decisión de
		// política confirmada con administración).
		net = decimal.Zero
		commission.Status = domain.CommissionDebitada
	}
	commission.NetAmount = net

	if err := e.commissionRepo.UpdateAmounts(commission); err != nil {
		return nil, err
	}

	e.audit.Notify(&domain.AuditEvent{
		Type:     domain.AuditDebitApplied,
		ActorID:  actorID,
		EntityID: formatID(commissionID),
		Detail: map[string]any{
			"reason":     string(reason),
			"amount":     amount.String(),
			"net_amount": commission.NetAmount.String(),
			"status":     string(commission.Status),
		},
	})

	return commission, nil
}

func (e *engine) BatchPay(ids []int64, paidBy int) (*domain.BatchPayResult, error) {
	if len(ids) == 0 {
		return &domain.BatchPayResult{PaidIDs: []int64{}}, nil
	}

	paidAt := e.now()

	paidIDs, err := e.commissionRepo.MarkPaid(ids, paidBy, paidAt)
	if err != nil {
		return nil, err
	}

	result := &domain.BatchPayResult{
		Paid:    len(paidIDs),
		Skipped: len(ids) - len(paidIDs),
		PaidIDs: paidIDs,
	}

	for _, id := range paidIDs {
		e.audit.Notify(&domain.AuditEvent{
			Type:     domain.AuditCommissionPayout,
			ActorID:  paidBy,
			EntityID: formatID(id),
			Detail:   map[string]any{"paid_at": paidAt},
		})
	}

	log.L.WithFields(log.Fields{
		"paid":    result.Paid,
		"skipped": result.Skipped,
	}).Info("Pago de comisiones en lote ejecutado")

	return result, nil
}

func (e *engine) ListByPeriod(month, year int) ([]*domain.Commission, error) {
	return e.commissionRepo.ListByPeriod(month, year)
}

func (e *engine) GetByID(id int64) (*domain.Commission, error) {
	commission, err := e.commissionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if commission == nil {
		return nil, ErrCommissionNotFound
	}
	return commission, nil
}

func (e *engine) ListDebits(commissionID int64) ([]*domain.Debit, error) {
	return e.commissionRepo.ListDebits(commissionID)
}
