package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/tallerapp/finanzas-api/infrastructure/database/postgres"
	"github.com/tallerapp/finanzas-api/internal/domain"
)

const (
	commissionsTable  = "commissions c"
	commissionColumns = "c.id, c.order_id, c.technician_id, c.gross_profit, c.commission_rate, c.commission_amount, c.flat_rate_amount, c.debits_total, c.net_amount, c.period_month, c.period_year, c.status, c.paid_at, c.paid_by, c.created_at, c.updated_at"
)

type CommissionRepository interface {
	Create(commission *domain.Commission) error
	GetByID(id int64) (*domain.Commission, error)
	GetByOrderID(orderID int64) (*domain.Commission, error)
	UpdateAmounts(commission *domain.Commission) error
	ListByPeriod(month, year int) ([]*domain.Commission, error)
	// MarkPaid paga en lote: solo las comisiones en estado pendiente entre
	// los ids dados cambian a pagada; devuelve los ids efectivamente
	// pagados.
	MarkPaid(ids []int64, paidBy int, paidAt time.Time) ([]int64, error)
	AppendDebit(debit *domain.Debit) error
	ListDebits(commissionID int64) ([]*domain.Debit, error)
}

type commissionRepository struct {
	conn *postgres.Connection
}

func NewCommissionRepository(conn *postgres.Connection) CommissionRepository {
	return &commissionRepository{
		conn: conn,
	}
}

func (r *commissionRepository) Create(commission *domain.Commission) error {
	query, args, err := squirrel.
		Insert("commissions").
		Columns(
			"order_id", "technician_id", "gross_profit", "commission_rate",
			"commission_amount", "flat_rate_amount", "debits_total",
			"net_amount", "period_month", "period_year", "status",
		).
		Values(
			commission.OrderID,
			commission.TechnicianID,
			commission.GrossProfit,
			commission.CommissionRate,
			commission.CommissionAmount,
			commission.FlatRateAmount,
			commission.DebitsTotal,
			commission.NetAmount,
			commission.PeriodMonth,
			commission.PeriodYear,
			commission.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&commission.ID, &commission.CreatedAt, &commission.UpdatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("error de base de datos: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error al insertar la comisión: %w", err)
	}

	return nil
}

func (r *commissionRepository) GetByID(id int64) (*domain.Commission, error) {
	query, args, err := squirrel.
		Select(commissionColumns).
		From(commissionsTable).
		Where(squirrel.Eq{"c.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	return r.scanCommission(r.conn.QueryRow(query, args...))
}

func (r *commissionRepository) GetByOrderID(orderID int64) (*domain.Commission, error) {
	query, args, err := squirrel.
		Select(commissionColumns).
		From(commissionsTable).
		Where(squirrel.Eq{"c.order_id": orderID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	return r.scanCommission(r.conn.QueryRow(query, args...))
}

func (r *commissionRepository) UpdateAmounts(commission *domain.Commission) error {
	query, args, err := squirrel.
		Update("commissions").
		Set("debits_total", commission.DebitsTotal).
		Set("net_amount", commission.NetAmount).
		Set("status", commission.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": commission.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("error al actualizar la comisión: %w", err)
	}

	return nil
}

func (r *commissionRepository) ListByPeriod(month, year int) ([]*domain.Commission, error) {
	query, args, err := squirrel.
		Select(commissionColumns).
		From(commissionsTable).
		Where(squirrel.Eq{"c.period_month": month, "c.period_year": year}).
		OrderBy("c.technician_id ASC", "c.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al ejecutar la consulta: %w", err)
	}
	defer rows.Close()

	commissions := make([]*domain.Commission, 0)
	for rows.Next() {
		commission, err := r.scanCommissionRows(rows)
		if err != nil {
			return nil, fmt.Errorf("error al escanear la comisión: %w", err)
		}
		commissions = append(commissions, commission)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return commissions, nil
}

func (r *commissionRepository) MarkPaid(ids []int64, paidBy int, paidAt time.Time) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := squirrel.
		Update("commissions").
		Set("status", domain.CommissionPagada).
		Set("paid_at", paidAt).
		Set("paid_by", paidBy).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Expr("id = ANY(?)", pq.Array(ids))).
		Where(squirrel.Eq{"status": domain.CommissionPendiente}).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al ejecutar la consulta: %w", err)
	}
	defer rows.Close()

	paidIDs := make([]int64, 0, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error al escanear el id pagado: %w", err)
		}
		paidIDs = append(paidIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return paidIDs, nil
}

func (r *commissionRepository) AppendDebit(debit *domain.Debit) error {
	query, args, err := squirrel.
		Insert("commission_debits").
		Columns("commission_id", "reason", "amount", "reference", "evidence_required").
		Values(
			debit.CommissionID,
			debit.Reason,
			debit.Amount,
			debit.Reference,
			debit.EvidenceRequired,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&debit.ID, &debit.CreatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("error de base de datos: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error al insertar el débito: %w", err)
	}

	return nil
}

func (r *commissionRepository) ListDebits(commissionID int64) ([]*domain.Debit, error) {
	query, args, err := squirrel.
		Select("cd.id, cd.commission_id, cd.reason, cd.amount, cd.reference, cd.evidence_required, cd.created_at").
		From("commission_debits cd").
		Where(squirrel.Eq{"cd.commission_id": commissionID}).
		OrderBy("cd.created_at ASC", "cd.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al ejecutar la consulta: %w", err)
	}
	defer rows.Close()

	debits := make([]*domain.Debit, 0)
	for rows.Next() {
		debit := &domain.Debit{}
		err := rows.Scan(
			&debit.ID,
			&debit.CommissionID,
			&debit.Reason,
			&debit.Amount,
			&debit.Reference,
			&debit.EvidenceRequired,
			&debit.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error al escanear el débito: %w", err)
		}
		debits = append(debits, debit)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return debits, nil
}

func (r *commissionRepository) scanCommission(row *sql.Row) (*domain.Commission, error) {
	commission := &domain.Commission{}

	err := row.Scan(
		&commission.ID,
		&commission.OrderID,
		&commission.TechnicianID,
		&commission.GrossProfit,
		&commission.CommissionRate,
		&commission.CommissionAmount,
		&commission.FlatRateAmount,
		&commission.DebitsTotal,
		&commission.NetAmount,
		&commission.PeriodMonth,
		&commission.PeriodYear,
		&commission.Status,
		&commission.PaidAt,
		&commission.PaidBy,
		&commission.CreatedAt,
		&commission.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al escanear la comisión: %w", err)
	}

	return commission, nil
}

func (r *commissionRepository) scanCommissionRows(rows *sql.Rows) (*domain.Commission, error) {
	commission := &domain.Commission{}

	err := rows.Scan(
		&commission.ID,
		&commission.OrderID,
		&commission.TechnicianID,
		&commission.GrossProfit,
		&commission.CommissionRate,
		&commission.CommissionAmount,
		&commission.FlatRateAmount,
		&commission.DebitsTotal,
		&commission.NetAmount,
		&commission.PeriodMonth,
		&commission.PeriodYear,
		&commission.Status,
		&commission.PaidAt,
		&commission.PaidBy,
		&commission.CreatedAt,
		&commission.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return commission, nil
}
