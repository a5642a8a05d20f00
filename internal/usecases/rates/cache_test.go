package rates

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tallerapp/finanzas-api/internal/domain"
)

func TestCache_GetDevuelveLoGuardado(t *testing.T) {
	cache := NewCache(time.Hour)

	value := decimal.RequireFromString("36.50")
	observedAt := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	cache.Set(domain.RateKindOficial, value, false, observedAt)

	got, ok := cache.Get(domain.RateKindOficial)
	assert.True(t, ok)
	assert.False(t, got.IsBackup)
	assert.True(t, got.Value.Equal(value))
}

func TestCache_ConservaElMomentoDeObservacion(t *testing.T) {
	cache := NewCache(time.Hour)

	observedAt := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	cache.Set(domain.RateKindOficial, decimal.RequireFromString("36.50"), false, observedAt)

	got, ok := cache.Get(domain.RateKindOficial)
	assert.True(t, ok)
	assert.True(t, got.ObservedAt.Equal(observedAt))
}

func TestCache_EntradaExpiradaNoSeSirve(t *testing.T) {
	cache := NewCache(time.Hour)
	cache.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC) }

	cache.Set(domain.RateKindOficial, decimal.RequireFromString("36.50"), false, time.Now())

	// Una hora y un segundo después la entrada venció
	cache.now = func() time.Time { return time.Date(2026, 3, 1, 11, 0, 1, 0, time.UTC) }

	_, ok := cache.Get(domain.RateKindOficial)
	assert.False(t, ok)
}

func TestCache_ClearAllVaciaTodosLosTipos(t *testing.T) {
	cache := NewCache(time.Hour)

	cache.Set(domain.RateKindOficial, decimal.RequireFromString("36.50"), false, time.Now())
	cache.Set(domain.RateKindParalelo, decimal.RequireFromString("38.00"), true, time.Now())

	cache.ClearAll()

	_, ok := cache.Get(domain.RateKindOficial)
	assert.False(t, ok)
	_, ok = cache.Get(domain.RateKindParalelo)
	assert.False(t, ok)
}

func TestCache_ConservaLaMarcaDeRespaldo(t *testing.T) {
	cache := NewCache(time.Hour)

	cache.Set(domain.RateKindParalelo, decimal.RequireFromString("38.00"), true, time.Now())

	got, ok := cache.Get(domain.RateKindParalelo)
	assert.True(t, ok)
	assert.True(t, got.IsBackup)
}
