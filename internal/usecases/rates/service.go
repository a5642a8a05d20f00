package rates

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tallerapp/finanzas-api/infrastructure/repository"
	"github.com/tallerapp/finanzas-api/internal/config"
	"github.com/tallerapp/finanzas-api/internal/domain"
	"github.com/tallerapp/finanzas-api/internal/usecases/auditing"
	"github.com/tallerapp/finanzas-api/pkg/log"
)

// service implementa Service: sincronización con política de respaldo,
// caché de lecturas y tasa por defecto cuando el libro está vacío.
type service struct {
	cfg       *config.Config
	rateRepo  repository.RateRepository
	cache     *Cache
	providers map[domain.RateKind]Provider
	audit     auditing.Notifier
	// syncMutexes serializa las sincronizaciones por tipo de tasa para
	// que dos corridas concurrentes no compitan por la marca de respaldo
	syncMutexes map[domain.RateKind]*sync.Mutex
	now         func() time.Time
}

func NewService(
	cfg *config.Config,
	rateRepo repository.RateRepository,
	cache *Cache,
	audit auditing.Notifier,
	providers ...Provider,
) Service {
	providerMap := make(map[domain.RateKind]Provider, len(providers))
	mutexes := make(map[domain.RateKind]*sync.Mutex, len(domain.AllRateKinds))

	for _, provider := range providers {
		providerMap[provider.Kind()] = provider
	}
	for _, kind := range domain.AllRateKinds {
		mutexes[kind] = &sync.Mutex{}
	}

	return &service{
		cfg:         cfg,
		rateRepo:    rateRepo,
		cache:       cache,
		providers:   providerMap,
		audit:       audit,
		syncMutexes: mutexes,
		now:         time.Now,
	}
}

func (s *service) Sync(ctx context.Context, kind domain.RateKind, manualValue *decimal.Decimal, actorID int) (*SyncResult, error) {
	mutex, ok := s.syncMutexes[kind]
	if !ok {
		return nil, ErrUnknownRateKind
	}
	mutex.Lock()
	defer mutex.Unlock()

	logger := log.ForContext(ctx).WithFields(log.Fields{"rate_kind": kind})

	// Valor manual: se escribe directo, sin llamada de red
	if manualValue != nil {
		if manualValue.LessThanOrEqual(decimal.Zero) {
			return nil, ErrInvalidManualValue
		}

		observation := &domain.RateObservation{
			Kind:       kind,
			Value:      *manualValue,
			Provenance: domain.ProvenanceManual,
			ObservedAt: s.now(),
		}
		if err := s.rateRepo.Append(observation); err != nil {
			return nil, err
		}

		s.cache.ClearAll()

		s.audit.Notify(&domain.AuditEvent{
			Type:     domain.AuditRateManualOverride,
			ActorID:  actorID,
			EntityID: string(kind),
			Detail:   map[string]any{"value": manualValue.String()},
		})

		logger.WithField("rate_value", manualValue.String()).Info("Tasa manual registrada")
		return &SyncResult{Observation: observation}, nil
	}

	provider, ok := s.providers[kind]
	if !ok {
		return nil, ErrUnknownRateKind
	}

	value, err := provider.FetchRate(ctx)
	if err != nil {
		// La falla de la fuente no se propaga: se marca la última
		// observación como respaldo y se informa en el resultado. El
		// sistema nunca queda sin alguna tasa conocida, aunque degradada.
		logger.WithError(err).Warn("Falla al obtener la tasa; aplicando política de respaldo")

		marked, markErr := s.rateRepo.MarkLatestAsBackup(kind)
		if markErr != nil {
			logger.WithError(markErr).Error("Error al marcar la última observación como respaldo")
		}

		return &SyncResult{
			Failure: &SyncFailure{
				Kind:         kind,
				Reason:       err.Error(),
				BackupMarked: marked,
			},
		}, nil
	}

	observation := &domain.RateObservation{
		Kind:       kind,
		Value:      value,
		Provenance: domain.ProvenanceAutomatica,
		ObservedAt: s.now(),
	}
	if err := s.rateRepo.Append(observation); err != nil {
		return nil, err
	}

	s.cache.ClearAll()

	logger.WithField("rate_value", value.String()).Info("Tasa sincronizada")
	return &SyncResult{Observation: observation}, nil
}

func (s *service) SyncAll(ctx context.Context) map[domain.RateKind]*SyncResult {
	results := make(map[domain.RateKind]*SyncResult, len(domain.AllRateKinds))

	for _, kind := range domain.AllRateKinds {
		result, err := s.Sync(ctx, kind, nil, 0)
		if err != nil {
			log.ForContext(ctx).WithError(err).WithField("rate_kind", kind).
				Error("Error al sincronizar la tasa")
			continue
		}
		results[kind] = result
	}

	return results
}

func (s *service) GetCurrent(kind domain.RateKind, useCache bool) (*domain.CurrentRate, error) {
	if !kind.Valid() {
		return nil, ErrUnknownRateKind
	}

	if useCache {
		if cached, ok := s.cache.Get(kind); ok {
			return cached, nil
		}
	}

	observation, err := s.rateRepo.GetLatestNonBackup(kind)
	if err != nil {
		return nil, err
	}

	// Sin observación fresca se sirve la última de cualquier procedencia
	if observation == nil {
		observation, err = s.rateRepo.GetLatest(kind)
		if err != nil {
			return nil, err
		}
	}

	// Libro vacío: constante por defecto para que los cálculos de dinero
	// nunca multipliquen por una tasa ausente en silencio. No se cachea
	// porque no proviene de una lectura del libro.
	if observation == nil {
		return &domain.CurrentRate{
			Kind:      kind,
			Value:     s.defaultRate(kind),
			IsDefault: true,
		}, nil
	}

	s.cache.Set(kind, observation.Value, observation.IsBackup(), observation.ObservedAt)

	return &domain.CurrentRate{
		Kind:       kind,
		Value:      observation.Value,
		IsBackup:   observation.IsBackup(),
		ObservedAt: observation.ObservedAt,
	}, nil
}

func (s *service) History(kind domain.RateKind, limit uint64) ([]*domain.RateObservation, error) {
	if !kind.Valid() {
		return nil, ErrUnknownRateKind
	}
	if limit == 0 || limit > 500 {
		limit = 100
	}
	return s.rateRepo.ListByKind(kind, limit)
}

func (s *service) defaultRate(kind domain.RateKind) decimal.Decimal {
	switch kind {
	case domain.RateKindParalelo:
		return decimal.NewFromFloat(s.cfg.Finance.DefaultParaleloRate)
	default:
		return decimal.NewFromFloat(s.cfg.Finance.DefaultOficialRate)
	}
}
