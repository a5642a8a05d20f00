package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/tallerapp/finanzas-api/infrastructure/database/postgres"
)

// ExpenseRepository es la fuente de registros de gastos: montos fijos
// activos por tienda y gastos discrecionales registrados contra las cajas
// abiertas de un día. Insumo de solo lectura de la calculadora de metas.
type ExpenseRepository interface {
	SumActiveFixedExpenses(storeID int) (decimal.Decimal, error)
	SumDiscretionaryByDay(storeID int, date time.Time) (decimal.Decimal, error)
}

type expenseRepository struct {
	conn *postgres.Connection
}

func NewExpenseRepository(conn *postgres.Connection) ExpenseRepository {
	return &expenseRepository{
		conn: conn,
	}
}

func (r *expenseRepository) SumActiveFixedExpenses(storeID int) (decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(fe.amount), 0)").
		From("fixed_expenses fe").
		Where(squirrel.Eq{"fe.store_id": storeID, "fe.active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("error al construir la consulta: %w", err)
	}

	return r.scanSum(r.conn.QueryRow(query, args...))
}

func (r *expenseRepository) SumDiscretionaryByDay(storeID int, date time.Time) (decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(re.amount), 0)").
		From("register_expenses re").
		Join("cash_registers cr ON cr.id = re.register_id").
		Where(squirrel.Eq{
			"cr.store_id": storeID,
			"re.date":     date.Format("2006-01-02"),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("error al construir la consulta: %w", err)
	}

	return r.scanSum(r.conn.QueryRow(query, args...))
}

func (r *expenseRepository) scanSum(row *sql.Row) (decimal.Decimal, error) {
	var sum decimal.Decimal
	if err := row.Scan(&sum); err != nil {
		if err == sql.ErrNoRows {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("error al escanear la suma: %w", err)
	}
	return sum, nil
}
