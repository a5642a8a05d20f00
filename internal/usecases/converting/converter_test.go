package converting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallerapp/finanzas-api/internal/domain"
	"github.com/tallerapp/finanzas-api/internal/usecases/converting"
	ratemocks "github.com/tallerapp/finanzas-api/internal/usecases/rates/mocks"
	"go.uber.org/mock/gomock"
)

func fixedRateReader(ctrl *gomock.Controller, kind domain.RateKind, rate string) *ratemocks.MockReader {
	reader := ratemocks.NewMockReader(ctrl)
	reader.EXPECT().GetCurrent(kind, true).Return(&domain.CurrentRate{
		Kind:  kind,
		Value: decimal.RequireFromString(rate),
	}, nil).AnyTimes()
	return reader
}

func TestToLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := fixedRateReader(ctrl, domain.RateKindOficial, "36.50")
	converter := converting.NewConverter(reader)

	local, rate, err := converter.ToLocal(decimal.RequireFromString("100"), domain.RateKindOficial)
	require.NoError(t, err)
	assert.True(t, local.Equal(decimal.RequireFromString("3650")))
	assert.Equal(t, domain.RateKindOficial, rate.Kind)
}

func TestToUSD(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := fixedRateReader(ctrl, domain.RateKindParalelo, "38.00")
	converter := converting.NewConverter(reader)

	usd, _, err := converter.ToUSD(decimal.RequireFromString("3800"), domain.RateKindParalelo)
	require.NoError(t, err)
	assert.True(t, usd.Equal(decimal.RequireFromString("100")))
}

// Ida y vuelta: convertir a bolívares y de regreso devuelve el monto
// original dentro de la tolerancia de redondeo.
func TestRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := fixedRateReader(ctrl, domain.RateKindOficial, "36.123456")
	converter := converting.NewConverter(reader)

	amounts := []string{"0.01", "1", "19.99", "103", "12345.67"}
	tolerance := decimal.RequireFromString("0.0001")

	for _, raw := range amounts {
		amount := decimal.RequireFromString(raw)

		local, _, err := converter.ToLocal(amount, domain.RateKindOficial)
		require.NoError(t, err)

		back, _, err := converter.ToUSD(local, domain.RateKindOficial)
		require.NoError(t, err)

		diff := back.Sub(amount).Abs()
		assert.True(t, diff.LessThanOrEqual(tolerance),
			"ida y vuelta de %s se desvió %s", raw, diff.String())
	}
}
