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

// DailyTargetRepository persiste las metas diarias con semántica de
// upsert por (fecha, tienda): recalcular un día ya calculado sobrescribe.
type DailyTargetRepository interface {
	Upsert(target *domain.DailyTarget) error
	GetByStoreAndDate(storeID int, date time.Time) (*domain.DailyTarget, error)
}

type dailyTargetRepository struct {
	conn *postgres.Connection
}

func NewDailyTargetRepository(conn *postgres.Connection) DailyTargetRepository {
	return &dailyTargetRepository{
		conn: conn,
	}
}

func (r *dailyTargetRepository) Upsert(target *domain.DailyTarget) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("daily_targets").
		Columns(
			"store_id", "date", "fixed_expenses_allocated",
			"discretionary_spend", "target_amount", "net_target",
			"actual_amount", "is_met",
		).
		Values(
			target.StoreID,
			target.Date.Format("2006-01-02"),
			target.FixedExpensesAllocated,
			target.DiscretionarySpend,
			target.TargetAmount,
			target.NetTarget,
			target.ActualAmount,
			target.IsMet,
		).
		Suffix(`
			ON CONFLICT (store_id, date) DO UPDATE SET
				fixed_expenses_allocated = EXCLUDED.fixed_expenses_allocated,
				discretionary_spend = EXCLUDED.discretionary_spend,
				target_amount = EXCLUDED.target_amount,
				net_target = EXCLUDED.net_target,
				actual_amount = EXCLUDED.actual_amount,
				is_met = EXCLUDED.is_met,
				updated_at = NOW()
			RETURNING id, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&target.ID, &target.CreatedAt, &target.UpdatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("error de base de datos: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error al guardar la meta diaria: %w", err)
	}

	return nil
}

func (r *dailyTargetRepository) GetByStoreAndDate(storeID int, date time.Time) (*domain.DailyTarget, error) {
	query, args, err := squirrel.
		Select("dt.id, dt.store_id, dt.date, dt.fixed_expenses_allocated, dt.discretionary_spend, dt.target_amount, dt.net_target, dt.actual_amount, dt.is_met, dt.created_at, dt.updated_at").
		From("daily_targets dt").
		Where(squirrel.Eq{"dt.store_id": storeID, "dt.date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	target := &domain.DailyTarget{}
	var dateStr string

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&target.ID,
		&target.StoreID,
		&dateStr,
		&target.FixedExpensesAllocated,
		&target.DiscretionarySpend,
		&target.TargetAmount,
		&target.NetTarget,
		&target.ActualAmount,
		&target.IsMet,
		&target.CreatedAt,
		&target.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al escanear la meta diaria: %w", err)
	}

	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, fmt.Errorf("error al convertir la fecha: %w", err)
	}
	target.Date = parsed

	return target, nil
}
