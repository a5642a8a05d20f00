package paralelo

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallerapp/finanzas-api/internal/config"
	"github.com/tallerapp/finanzas-api/internal/domain"
)

type stubClient struct {
	body []byte
	err  error
}

func (s *stubClient) GetMarketPrice(_ context.Context) ([]byte, error) {
	return s.body, s.err
}

func TestFetchRate(t *testing.T) {
	body := []byte(`{"monitors":{"enparalelovzla":{"price":38.95,"title":"EnParaleloVzla"}}}`)
	integrator := New(&config.Config{}, &stubClient{body: body})

	value, err := integrator.FetchRate(context.Background())
	require.NoError(t, err)
	assert.True(t, value.Equal(decimal.RequireFromString("38.95")))
	assert.Equal(t, domain.RateKindParalelo, integrator.Kind())
}

func TestFetchRate_RespuestaSinMonitor(t *testing.T) {
	integrator := New(&config.Config{}, &stubClient{body: []byte(`{"monitors":{}}`)})

	// Sin el monitor el precio queda en cero: falla, no tasa válida
	_, err := integrator.FetchRate(context.Background())
	assert.Error(t, err)
}

func TestFetchRate_CuerpoInvalido(t *testing.T) {
	integrator := New(&config.Config{}, &stubClient{body: []byte("<html>503</html>")})

	_, err := integrator.FetchRate(context.Background())
	assert.Error(t, err)
}

func TestFetchRate_PrecioNegativo(t *testing.T) {
	body := []byte(`{"monitors":{"enparalelovzla":{"price":-1}}}`)
	integrator := New(&config.Config{}, &stubClient{body: body})

	_, err := integrator.FetchRate(context.Background())
	assert.Error(t, err)
}
