package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/tallerapp/finanzas-api/internal/config"
	"github.com/tallerapp/finanzas-api/internal/usecases/targeting"
)

// DailyTargetSyncConfig es la configuración del agendador de metas diarias
type DailyTargetSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DailyTargetSyncService calcula cada madrugada la meta de punto de
// equilibrio del día para todas las tiendas activas
type DailyTargetSyncService struct {
	scheduler           *gocron.Scheduler
	config              DailyTargetSyncConfig
	targetCalculator    targeting.Calculator
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncStores      int
}

func NewDailyTargetSyncService(targetCalculator targeting.Calculator, appConfig *config.Config) *DailyTargetSyncService {
	syncConfig := DailyTargetSyncConfig{
		CronSchedule: appConfig.TargetSync.CronSchedule,
		SyncEnabled:  appConfig.TargetSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuración del agendador de metas diarias cargada")

	return &DailyTargetSyncService{
		scheduler:        scheduler,
		config:           syncConfig,
		targetCalculator: targetCalculator,
		syncRunning:      false,
	}
}

// Start inicia el agendador
func (s *DailyTargetSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cálculo de metas diarias deshabilitado por configuración")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de metas diarias")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.calculateAllTargets()
	})
	if err != nil {
		return fmt.Errorf("error al agendar el cálculo de metas diarias: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de metas diarias")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DailyTargetSyncService) calculateAllTargets() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Cálculo de metas diarias ya en curso, ignorando")
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

	today := time.Now().Format(time.DateOnly)
	logrus.WithField("date", today).Info("Iniciando cálculo de metas diarias")

	targets, err := s.targetCalculator.CalculateAll(today)
	if err != nil {
		logrus.WithError(err).Error("Error al calcular las metas diarias")
		return
	}

	s.syncMutex.Lock()
	s.lastSyncStores = len(targets)
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"stores":   len(targets),
	}).Info("Cálculo de metas diarias concluido")
}

// TriggerManualSync dispara el cálculo fuera del cron
func (s *DailyTargetSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Cálculo de metas diarias ya en curso, ignorando solicitud manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando cálculo manual de metas diarias")
	go s.calculateAllTargets()
}

// GetStatus devuelve el estado actual del agendador. Toma el mismo mutex
// que las escrituras de la corrida para leer un estado consistente.
func (s *DailyTargetSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_stores":       s.lastSyncStores,
	}
}
