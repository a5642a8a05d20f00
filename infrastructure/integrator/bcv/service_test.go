package bcv

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallerapp/finanzas-api/internal/config"
	"github.com/tallerapp/finanzas-api/internal/domain"
)

type stubClient struct {
	page []byte
	err  error
}

func (s *stubClient) GetRatePage(_ context.Context) ([]byte, error) {
	return s.page, s.err
}

const ratePage = `
<div id="dolar">
  <div class="centrado"><strong> 36.123,45 </strong></div>
</div>`

func TestFetchRate(t *testing.T) {
	integrator := New(&config.Config{}, &stubClient{page: []byte(ratePage)})

	value, err := integrator.FetchRate(context.Background())
	require.NoError(t, err)
	assert.True(t, value.Equal(decimal.RequireFromString("36123.45")))
	assert.Equal(t, domain.RateKindOficial, integrator.Kind())
}

func TestFetchRate_PaginaSinValor(t *testing.T) {
	integrator := New(&config.Config{}, &stubClient{page: []byte("<html><body>mantenimiento</body></html>")})

	_, err := integrator.FetchRate(context.Background())
	assert.Error(t, err)
}

func TestFetchRate_ValorNoPositivo(t *testing.T) {
	page := `<div id="dolar"><strong> 0,00 </strong></div>`
	integrator := New(&config.Config{}, &stubClient{page: []byte(page)})

	_, err := integrator.FetchRate(context.Background())
	assert.Error(t, err)
}

func TestFetchRate_FallaDeRed(t *testing.T) {
	integrator := New(&config.Config{}, &stubClient{err: errors.New("connection refused")})

	_, err := integrator.FetchRate(context.Background())
	assert.Error(t, err)
}
