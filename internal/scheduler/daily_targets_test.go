package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tallerapp/finanzas-api/internal/config"
	"github.com/tallerapp/finanzas-api/internal/domain"
)

type stubTargetCalculator struct {
	targets []*domain.DailyTarget
	err     error
	started chan struct{}
	release chan struct{}
}

func (s *stubTargetCalculator) CalculateDaily(storeID int, date string) (*domain.DailyTarget, error) {
	return nil, nil
}

func (s *stubTargetCalculator) CalculateAll(date string) ([]*domain.DailyTarget, error) {
	if s.started != nil {
		close(s.started)
		<-s.release
	}
	return s.targets, s.err
}

func (s *stubTargetCalculator) GetDaily(storeID int, date string) (*domain.DailyTarget, error) {
	return nil, nil
}

func targetSyncConfig() *config.Config {
	return &config.Config{
		TargetSync: config.TargetSync{
			CronSchedule: "30 0 * * *",
			Enabled:      true,
		},
	}
}

func TestCalculateAllTargets_ActualizaElEstado(t *testing.T) {
	calculator := &stubTargetCalculator{
		targets: []*domain.DailyTarget{{StoreID: 1}, {StoreID: 2}},
	}

	service := NewDailyTargetSyncService(calculator, targetSyncConfig())
	service.calculateAllTargets()

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, 2, status["last_sync_stores"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestGetStatus_DuranteCalculoEnCurso(t *testing.T) {
	calculator := &stubTargetCalculator{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}

	service := NewDailyTargetSyncService(calculator, targetSyncConfig())

	done := make(chan struct{})
	go func() {
		service.calculateAllTargets()
		close(done)
	}()

	<-calculator.started
	status := service.GetStatus()
	assert.Equal(t, true, status["sync_running"])

	close(calculator.release)
	<-done

	status = service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
}
