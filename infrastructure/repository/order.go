package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/tallerapp/finanzas-api/infrastructure/database/postgres"
	"github.com/tallerapp/finanzas-api/internal/domain"
)

// OrderRepository es el registro de órdenes: entrega la orden completada
// con su técnico asignado y los renglones de su factura, ya resueltos por
// la capa de persistencia del taller. Solo lectura para este núcleo.
type OrderRepository interface {
	GetForCommission(orderID int64) (*domain.Order, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

func (r *orderRepository) GetForCommission(orderID int64) (*domain.Order, error) {
	query, args, err := squirrel.
		Select("o.id, o.store_id, o.gross_profit, t.id, t.name, t.role, t.commission_rate, t.flat_rate_per_unit, t.accessory_rate").
		From("orders o").
		LeftJoin("technicians t ON t.id = o.technician_id").
		Where(squirrel.Eq{"o.id": orderID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	order := &domain.Order{}
	technician := &domain.Technician{}

	var (
		grossProfit decimal.NullDecimal
		techID      sql.NullInt64
		techName    sql.NullString
		techRole    sql.NullString
		commRate    sql.NullString
		flatRate    sql.NullString
		accessRate  sql.NullString
	)

	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&order.ID,
		&order.StoreID,
		&grossProfit,
		&techID,
		&techName,
		&techRole,
		&commRate,
		&flatRate,
		&accessRate,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al escanear la orden: %w", err)
	}

	if grossProfit.Valid {
		order.GrossProfit = &grossProfit.Decimal
	}

	// La orden puede no tener técnico asignado; el motor de comisiones lo
	// trata como no-op, no como error
	if techID.Valid {
		technician.ID = int(techID.Int64)
		technician.Name = techName.String
		technician.Role = domain.TechnicianRole(techRole.String)
		if technician.CommissionRate, err = parseNullDecimal(commRate); err != nil {
			return nil, err
		}
		if technician.FlatRatePerUnit, err = parseNullDecimal(flatRate); err != nil {
			return nil, err
		}
		if technician.AccessoryRate, err = parseNullDecimal(accessRate); err != nil {
			return nil, err
		}
		order.Technician = technician
	}

	items, err := r.listInvoiceItems(orderID)
	if err != nil {
		return nil, err
	}
	order.InvoiceItems = items

	return order, nil
}

func (r *orderRepository) listInvoiceItems(orderID int64) ([]domain.OrderInvoiceItem, error) {
	query, args, err := squirrel.
		Select("ii.kind, ii.quantity * ii.unit_price AS total").
		From("invoice_items ii").
		Join("invoices i ON i.id = ii.invoice_id").
		Where(squirrel.Eq{"i.order_id": orderID}).
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

	items := make([]domain.OrderInvoiceItem, 0)
	for rows.Next() {
		var item domain.OrderInvoiceItem
		if err := rows.Scan(&item.Kind, &item.Total); err != nil {
			return nil, fmt.Errorf("error al escanear el renglón de factura: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return items, nil
}
