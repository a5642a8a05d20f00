package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/tallerapp/finanzas-api/infrastructure/database/postgres"
	"github.com/tallerapp/finanzas-api/internal/domain"
)

// StoreRepository lista las sucursales y expone la recaudación real de un
// día: la suma de facturas pagadas o parcialmente pagadas de la tienda.
type StoreRepository interface {
	ListActive() ([]*domain.Store, error)
	SumInvoicedByDay(storeID int, date time.Time) (decimal.Decimal, error)
}

type storeRepository struct {
	conn *postgres.Connection
}

func NewStoreRepository(conn *postgres.Connection) StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

func (r *storeRepository) ListActive() ([]*domain.Store, error) {
	query, args, err := squirrel.
		Select("s.id, s.name, s.active").
		From("stores s").
		Where(squirrel.Eq{"s.active": true}).
		OrderBy("s.id ASC").
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

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		store := &domain.Store{}
		if err := rows.Scan(&store.ID, &store.Name, &store.Active); err != nil {
			return nil, fmt.Errorf("error al escanear la tienda: %w", err)
		}
		stores = append(stores, store)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return stores, nil
}

func (r *storeRepository) SumInvoicedByDay(storeID int, date time.Time) (decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(i.total_usd), 0)").
		From("invoices i").
		Where(squirrel.Eq{
			"i.store_id": storeID,
			"i.date":     date.Format("2006-01-02"),
		}).
		Where(squirrel.Eq{"i.status": []domain.InvoiceStatus{
			domain.InvoicePagada,
			domain.InvoiceParcial,
		}}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("error al construir la consulta: %w", err)
	}

	var sum decimal.Decimal
	if err := r.conn.QueryRow(query, args...).Scan(&sum); err != nil {
		if err == sql.ErrNoRows {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("error al escanear la suma facturada: %w", err)
	}

	return sum, nil
}
