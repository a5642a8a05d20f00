package commissioning

import (
	"strconv"

	"github.com/pkg/errors"
)

var (
	ErrOrderNotFound      = errors.New("orden no encontrada")
	ErrCommissionNotFound = errors.New("comisión no encontrada")
	ErrInvalidDebitReason = errors.New("causa de débito desconocida")
	ErrInvalidDebitAmount = errors.New("el monto del débito debe ser mayor que cero")
)

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
