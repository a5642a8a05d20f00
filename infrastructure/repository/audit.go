package repository

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/tallerapp/finanzas-api/infrastructure/database/postgres"
	"github.com/tallerapp/finanzas-api/internal/domain"
)

// AuditRepository persiste los eventos del sumidero de auditoría. Las
// fallas aquí se registran y se descartan: nunca fallan la operación que
// originó el evento.
type AuditRepository interface {
	Insert(event *domain.AuditEvent) error
}

type auditRepository struct {
	conn *postgres.Connection
}

func NewAuditRepository(conn *postgres.Connection) AuditRepository {
	return &auditRepository{
		conn: conn,
	}
}

func (r *auditRepository) Insert(event *domain.AuditEvent) error {
	var detailJSON []byte
	var err error

	if event.Detail != nil {
		detailJSON, err = json.Marshal(event.Detail)
		if err != nil {
			return fmt.Errorf("error al serializar el detalle del evento: %w", err)
		}
	}

	query, args, err := squirrel.
		Insert("audit_events").
		Columns("id", "type", "actor_id", "entity_id", "detail", "occurred_at").
		Values(
			event.ID,
			event.Type,
			event.ActorID,
			event.EntityID,
			detailJSON,
			event.OccurredAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("error al insertar el evento de auditoría: %w", err)
	}

	return nil
}
