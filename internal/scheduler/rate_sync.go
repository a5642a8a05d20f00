package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/tallerapp/finanzas-api/internal/config"
	"github.com/tallerapp/finanzas-api/internal/usecases/rates"
)

// RateSyncConfig es la configuración del agendador de tasas de cambio
type RateSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// RateSyncService agenda y ejecuta la sincronización periódica de las
// tasas de cambio (oficial y paralela)
type RateSyncService struct {
	scheduler           *gocron.Scheduler
	config              RateSyncConfig
	rateService         rates.Service
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncFailures    int
}

func NewRateSyncService(rateService rates.Service, appConfig *config.Config) *RateSyncService {
	syncConfig := RateSyncConfig{
		CronSchedule: appConfig.RateSync.CronSchedule,
		SyncEnabled:  appConfig.RateSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuración del agendador de tasas cargada")

	return &RateSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		rateService: rateService,
		syncRunning: false,
	}
}

// Start inicia el agendador
func (s *RateSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronización de tasas deshabilitada por configuración")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronización de tasas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllRates(context.Background())
	})
	if err != nil {
		return fmt.Errorf("error al agendar la sincronización de tasas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronización de tasas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllRates corre la sincronización de todos los tipos de tasa. Una
// corrida en curso hace que la nueva se ignore, no que se encole.
func (s *RateSyncService) syncAllRates(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronización de tasas ya en curso, ignorando")
		return
	}
	startTime := time.Now()
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronización de tasas de cambio")

	results := s.rateService.SyncAll(ctx)

	failures := 0
	for kind, result := range results {
		if result.Failure != nil {
			failures++
			logrus.WithFields(logrus.Fields{
				"rate_kind":     kind,
				"reason":        result.Failure.Reason,
				"backup_marked": result.Failure.BackupMarked,
			}).Warn("Tasa no sincronizada; se sirve la última conocida como respaldo")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"rate_kind":  kind,
			"rate_value": result.Observation.Value.String(),
		}).Info("Tasa sincronizada")
	}

	s.syncMutex.Lock()
	s.lastSyncFailures = failures
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"rates":    len(results),
		"failures": failures,
	}).Info("Sincronización de tasas concluida")
}

// TriggerManualSync dispara una sincronización fuera del cron
func (s *RateSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronización de tasas ya en curso, ignorando solicitud manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronización manual de tasas")
	go s.syncAllRates(context.Background())
}

// GetStatus devuelve el estado actual del agendador. Toma el mismo mutex
// que las escrituras de la corrida para leer un estado consistente.
func (s *RateSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_failures":     s.lastSyncFailures,
	}
}
