package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateKind identifica la fuente de la tasa de cambio
type RateKind string

const (
	RateKindOficial  RateKind = "oficial"
	RateKindParalelo RateKind = "paralelo"
)

// AllRateKinds lista los tipos de tasa que el sincronizador mantiene
var AllRateKinds = []RateKind{RateKindOficial, RateKindParalelo}

func (k RateKind) Valid() bool {
	return k == RateKindOficial || k == RateKindParalelo
}

// RateProvenance indica cómo se obtuvo una observación de tasa
type RateProvenance string

const (
	// ProvenanceAutomatica tasa obtenida de la fuente externa
	ProvenanceAutomatica RateProvenance = "automatica"
	// ProvenanceManual tasa registrada manualmente por un administrador
	ProvenanceManual RateProvenance = "manual"
	// ProvenanceRespaldo observación marcada como obsoleta porque un
	// intento de actualización posterior falló
	ProvenanceRespaldo RateProvenance = "respaldo"
)

// RateObservation es una entrada inmutable del libro de tasas observadas.
// Para un mismo RateKind las observaciones están totalmente ordenadas por
// ObservedAt; la "tasa vigente" es la última observación no-respaldo, o la
// última de cualquier procedencia si todas están marcadas como respaldo.
type RateObservation struct {
	ID         int64           `json:"id"`
	Kind       RateKind        `json:"kind"`
	Value      decimal.Decimal `json:"value"`
	Provenance RateProvenance  `json:"provenance"`
	ObservedAt time.Time       `json:"observed_at"`
	CreatedAt  time.Time       `json:"created_at"`
}

// IsBackup indica si la observación quedó marcada como obsoleta
func (o *RateObservation) IsBackup() bool {
	return o.Provenance == ProvenanceRespaldo
}

// CurrentRate es la vista que consumen la calculadora de facturas y el
// convertidor: el valor vigente más su indicador de obsolescencia.
type CurrentRate struct {
	Kind     RateKind        `json:"kind"`
	Value    decimal.Decimal `json:"value"`
	IsBackup bool            `json:"is_backup"`
	// IsDefault indica que no existe ninguna observación y se devolvió la
	// constante por defecto documentada
	IsDefault  bool      `json:"is_default"`
	ObservedAt time.Time `json:"observed_at"`
}
