package repository

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

// parseNullDecimal convierte un numeric que puede venir NULL; NULL se
// trata como cero para los perfiles de comisión incompletos.
func parseNullDecimal(value sql.NullString) (decimal.Decimal, error) {
	if !value.Valid || value.String == "" {
		return decimal.Zero, nil
	}

	parsed, err := decimal.NewFromString(value.String)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error al convertir el valor decimal: %w", err)
	}

	return parsed, nil
}
