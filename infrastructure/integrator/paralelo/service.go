package paralelo

import (
	"context"
	"math"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/tallerapp/finanzas-api/infrastructure/integrator/paralelo/paraleloclient"
	"github.com/tallerapp/finanzas-api/internal/config"
	"github.com/tallerapp/finanzas-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// marketResponse es la porción de la respuesta de la API de precios que
// interesa: el precio del monitor paralelo
type marketResponse struct {
	Monitors struct {
		EnParaleloVzla struct {
			Price float64 `json:"price"`
		} `json:"enparalelovzla"`
	} `json:"monitors"`
}

// ParaleloIntegrator obtiene la tasa de mercado desde la API de precios.
type ParaleloIntegrator struct {
	cfg    *config.Config
	client paraleloclient.Client
}

func New(cfg *config.Config, client paraleloclient.Client) *ParaleloIntegrator {
	return &ParaleloIntegrator{
		cfg:    cfg,
		client: client,
	}
}

func (i *ParaleloIntegrator) Kind() domain.RateKind {
	return domain.RateKindParalelo
}

func (i *ParaleloIntegrator) FetchRate(ctx context.Context) (decimal.Decimal, error) {
	body, err := i.client.GetMarketPrice(ctx)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "error al consultar la API de precios")
	}

	response := &marketResponse{}
	if err := json.Unmarshal(body, response); err != nil {
		return decimal.Zero, errors.Wrap(err, "error al deserializar la respuesta de la API de precios")
	}

	price := response.Monitors.EnParaleloVzla.Price

	// Un precio no finito haría entrar en pánico al constructor decimal;
	// se trata como falla de parseo igual que un valor ausente o negativo
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return decimal.Zero, errors.Errorf("precio de mercado no finito: %f", price)
	}

	value := decimal.NewFromFloat(price)
	if value.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, errors.Errorf("precio de mercado no positivo: %s", value)
	}

	return value, nil
}
