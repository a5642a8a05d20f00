package converting

import (
	"github.com/shopspring/decimal"
	"github.com/tallerapp/finanzas-api/internal/domain"
	"github.com/tallerapp/finanzas-api/internal/usecases/rates"
)

// Converter convierte montos entre la moneda base (USD) y bolívares con
// el tipo de tasa que elija el llamador. No guarda estado propio; la
// tasa vigente vive en el lector de tasas.
type Converter interface {
	ToLocal(amount decimal.Decimal, kind domain.RateKind) (decimal.Decimal, *domain.CurrentRate, error)
	ToUSD(amount decimal.Decimal, kind domain.RateKind) (decimal.Decimal, *domain.CurrentRate, error)
}

type converter struct {
	rateReader rates.Reader
}

func NewConverter(rateReader rates.Reader) Converter {
	return &converter{rateReader: rateReader}
}

func (c *converter) ToLocal(amount decimal.Decimal, kind domain.RateKind) (decimal.Decimal, *domain.CurrentRate, error) {
	rate, err := c.rateReader.GetCurrent(kind, true)
	if err != nil {
		return decimal.Zero, nil, err
	}

	return amount.Mul(rate.Value), rate, nil
}

func (c *converter) ToUSD(amount decimal.Decimal, kind domain.RateKind) (decimal.Decimal, *domain.CurrentRate, error) {
	rate, err := c.rateReader.GetCurrent(kind, true)
	if err != nil {
		return decimal.Zero, nil, err
	}

	// GetCurrent nunca devuelve una tasa <= 0: las fuentes rechazan esos
	// valores y las constantes por defecto son positivas
	return amount.DivRound(rate.Value, 8), rate, nil
}
