package rates

import "github.com/pkg/errors"

var (
	ErrUnknownRateKind    = errors.New("tipo de tasa desconocido")
	ErrInvalidManualValue = errors.New("el valor manual de la tasa debe ser mayor que cero")
)
