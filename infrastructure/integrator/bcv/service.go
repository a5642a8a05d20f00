package bcv

import (
	"context"
	"regexp"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/tallerapp/finanzas-api/infrastructure/integrator/bcv/bcvclient"
	"github.com/tallerapp/finanzas-api/internal/config"
	"github.com/tallerapp/finanzas-api/internal/domain"
	"github.com/tallerapp/finanzas-api/pkg/utils"
)

// dolarPattern ubica el bloque del dólar en la página del BCV; el valor
// viene con formato de locale (punto de miles, coma decimal)
var dolarPattern = regexp.MustCompile(`(?s)id="dolar".*?<strong>\s*([\d.,]+)\s*</strong>`)

// BCVIntegrator obtiene la tasa oficial publicada por el banco central.
type BCVIntegrator struct {
	cfg    *config.Config
	client bcvclient.Client
}

func New(cfg *config.Config, client bcvclient.Client) *BCVIntegrator {
	return &BCVIntegrator{
		cfg:    cfg,
		client: client,
	}
}

func (i *BCVIntegrator) Kind() domain.RateKind {
	return domain.RateKindOficial
}

// FetchRate descarga la página y extrae el valor del dólar. Un valor que
// no parsea o que resulta <= 0 es una falla de parseo, no una tasa válida.
func (i *BCVIntegrator) FetchRate(ctx context.Context) (decimal.Decimal, error) {
	page, err := i.client.GetRatePage(ctx)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "error al consultar la página del BCV")
	}

	matches := dolarPattern.FindSubmatch(page)
	if len(matches) < 2 {
		return decimal.Zero, errors.New("no se encontró el valor del dólar en la página del BCV")
	}

	normalized := utils.NormalizeLocaleDecimal(string(matches[1]))

	value, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "valor de tasa no numérico: %q", string(matches[1]))
	}

	if value.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, errors.Errorf("valor de tasa no positivo: %s", value)
	}

	return value, nil
}
