package rates

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tallerapp/finanzas-api/internal/domain"
)

// Provider obtiene un valor de tasa desde una fuente externa. Función
// pura de "ahora" hacia tasa-o-falla, con timeout acotado en el cliente
// HTTP subyacente.
type Provider interface {
	Kind() domain.RateKind
	FetchRate(ctx context.Context) (decimal.Decimal, error)
}

// Reader es la vista de lectura que consumen el convertidor, la
// facturación y las metas diarias.
type Reader interface {
	// GetCurrent devuelve la tasa vigente del tipo. Con useCache se sirve
	// del caché en memoria; nunca devuelve nil: si el libro está vacío
	// devuelve la constante por defecto documentada.
	GetCurrent(kind domain.RateKind, useCache bool) (*domain.CurrentRate, error)
}

// Syncer es la operación de sincronización: bajo demanda, por cron o con
// valor manual.
type Syncer interface {
	// Sync actualiza la tasa del tipo. Con manualValue corta camino y
	// escribe una observación manual sin llamada de red. Una falla de la
	// fuente no es un error: se devuelve en el resultado con la última
	// observación marcada como respaldo.
	Sync(ctx context.Context, kind domain.RateKind, manualValue *decimal.Decimal, actorID int) (*SyncResult, error)
	// SyncAll corre Sync para todos los tipos de tasa conocidos
	SyncAll(ctx context.Context) map[domain.RateKind]*SyncResult
}

// Service combina lectura, sincronización e historial
type Service interface {
	Reader
	Syncer
	History(kind domain.RateKind, limit uint64) ([]*domain.RateObservation, error)
}

// SyncResult es el resultado de una corrida de sincronización: una
// observación nueva, o la falla con su razón cuando la fuente no
// respondió.
type SyncResult struct {
	Observation *domain.RateObservation `json:"observation,omitempty"`
	Failure     *SyncFailure            `json:"failure,omitempty"`
}

// SyncFailure describe una falla de la fuente. BackupMarked indica si
// esta corrida marcó la última observación como respaldo (false cuando ya
// estaba marcada por una corrida anterior).
type SyncFailure struct {
	Kind         domain.RateKind `json:"kind"`
	Reason       string          `json:"reason"`
	BackupMarked bool            `json:"backup_marked"`
}
