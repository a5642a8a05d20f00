package rates

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tallerapp/finanzas-api/internal/domain"
)

// cachedRate es una entrada del caché; nunca se persiste
type cachedRate struct {
	value      decimal.Decimal
	isBackup   bool
	observedAt time.Time
	cachedAt   time.Time
}

// Cache es el caché en memoria de tasas por tipo, compartido por todos
// los lectores del proceso. Se lee mucho más de lo que se escribe; las
// carreras de población entre dos misses son aceptables (gana el último,
// los valores son equivalentes).
type Cache struct {
	mu      sync.RWMutex
	entries map[domain.RateKind]cachedRate
	ttl     time.Duration
	now     func() time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[domain.RateKind]cachedRate),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get devuelve la entrada vigente del tipo, si existe y no expiró. La
// entrada conserva el momento de observación original para que el
// consumidor pueda mostrar la antigüedad de la tasa sin releer el libro.
func (c *Cache) Get(kind domain.RateKind) (*domain.CurrentRate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[kind]
	if !ok {
		return nil, false
	}

	if c.now().Sub(entry.cachedAt) > c.ttl {
		return nil, false
	}

	return &domain.CurrentRate{
		Kind:       kind,
		Value:      entry.value,
		IsBackup:   entry.isBackup,
		ObservedAt: entry.observedAt,
	}, true
}

// Set guarda la entrada con cachedAt = ahora
func (c *Cache) Set(kind domain.RateKind, value decimal.Decimal, isBackup bool, observedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[kind] = cachedRate{
		value:      value,
		isBackup:   isBackup,
		observedAt: observedAt,
		cachedAt:   c.now(),
	}
}

// ClearAll vacía el caché completo; se invoca tras cada sincronización
// exitosa para no servir un valor más viejo que el recién escrito
func (c *Cache) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[domain.RateKind]cachedRate)
}
