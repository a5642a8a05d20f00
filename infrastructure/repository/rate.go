package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/tallerapp/finanzas-api/infrastructure/database/postgres"
	"github.com/tallerapp/finanzas-api/internal/domain"
)

const (
	rateObservationsTable = "rate_observations ro"
	rateColumns           = "ro.id, ro.kind, ro.value, ro.provenance, ro.observed_at, ro.created_at"
)

// RateRepository es el libro append-only de observaciones de tasa. Nunca
// muta una observación pasada; la única transición permitida es marcar la
// más reciente como respaldo cuando una actualización posterior falla.
type RateRepository interface {
	Append(observation *domain.RateObservation) error
	GetLatest(kind domain.RateKind) (*domain.RateObservation, error)
	GetLatestNonBackup(kind domain.RateKind) (*domain.RateObservation, error)
	// MarkLatestAsBackup marca la observación más reciente del tipo como
	// respaldo, de forma condicional y atómica: si ya está marcada (por
	// una corrida concurrente) no hace nada y devuelve false.
	MarkLatestAsBackup(kind domain.RateKind) (bool, error)
	ListByKind(kind domain.RateKind, limit uint64) ([]*domain.RateObservation, error)
}

type rateRepository struct {
	conn *postgres.Connection
}

func NewRateRepository(conn *postgres.Connection) RateRepository {
	return &rateRepository{
		conn: conn,
	}
}

func (r *rateRepository) Append(observation *domain.RateObservation) error {
	query, args, err := squirrel.
		Insert("rate_observations").
		Columns("kind", "value", "provenance", "observed_at").
		Values(
			observation.Kind,
			observation.Value,
			observation.Provenance,
			observation.ObservedAt,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error al construir la consulta: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&observation.ID, &observation.CreatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("error de base de datos: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error al insertar la observación de tasa: %w", err)
	}

	return nil
}

func (r *rateRepository) GetLatest(kind domain.RateKind) (*domain.RateObservation, error) {
	query, args, err := squirrel.
		Select(rateColumns).
		From(rateObservationsTable).
		Where(squirrel.Eq{"ro.kind": kind}).
		OrderBy("ro.observed_at DESC", "ro.id DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	return r.scanObservation(r.conn.QueryRow(query, args...))
}

func (r *rateRepository) GetLatestNonBackup(kind domain.RateKind) (*domain.RateObservation, error) {
	query, args, err := squirrel.
		Select(rateColumns).
		From(rateObservationsTable).
		Where(squirrel.Eq{"ro.kind": kind}).
		Where(squirrel.NotEq{"ro.provenance": domain.ProvenanceRespaldo}).
		OrderBy("ro.observed_at DESC", "ro.id DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error al construir la consulta: %w", err)
	}

	return r.scanObservation(r.conn.QueryRow(query, args...))
}

func (r *rateRepository) MarkLatestAsBackup(kind domain.RateKind) (bool, error) {
	// El WHERE compara contra el último id en la misma sentencia para que
	// dos sincronizaciones fallidas concurrentes no dupliquen la marca
	query, args, err := squirrel.
		Update("rate_observations").
		Set("provenance", domain.ProvenanceRespaldo).
		Where(squirrel.Expr(
			`id = (SELECT id FROM rate_observations WHERE kind = ? ORDER BY observed_at DESC, id DESC LIMIT 1)`,
			kind,
		)).
		Where(squirrel.NotEq{"provenance": domain.ProvenanceRespaldo}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("error al construir la consulta: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("error al ejecutar la consulta: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error al obtener el número de filas afectadas: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *rateRepository) ListByKind(kind domain.RateKind, limit uint64) ([]*domain.RateObservation, error) {
	query, args, err := squirrel.
		Select(rateColumns).
		From(rateObservationsTable).
		Where(squirrel.Eq{"ro.kind": kind}).
		OrderBy("ro.observed_at DESC", "ro.id DESC").
		Limit(limit).
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

	observations := make([]*domain.RateObservation, 0)
	for rows.Next() {
		observation := &domain.RateObservation{}
		err := rows.Scan(
			&observation.ID,
			&observation.Kind,
			&observation.Value,
			&observation.Provenance,
			&observation.ObservedAt,
			&observation.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error al escanear la observación de tasa: %w", err)
		}
		observations = append(observations, observation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return observations, nil
}

func (r *rateRepository) scanObservation(row *sql.Row) (*domain.RateObservation, error) {
	observation := &domain.RateObservation{}

	err := row.Scan(
		&observation.ID,
		&observation.Kind,
		&observation.Value,
		&observation.Provenance,
		&observation.ObservedAt,
		&observation.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error al escanear la observación de tasa: %w", err)
	}

	return observation, nil
}
