package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tallerapp/finanzas-api/internal/config"
	"github.com/tallerapp/finanzas-api/internal/domain"
	"github.com/tallerapp/finanzas-api/internal/usecases/rates"
	ratemocks "github.com/tallerapp/finanzas-api/internal/usecases/rates/mocks"
	"github.com/tallerapp/finanzas-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func rateSyncConfig() *config.Config {
	return &config.Config{
		RateSync: config.RateSync{
			CronSchedule: "0 8 * * *",
			Enabled:      true,
		},
	}
}

func TestSyncAllRates_ActualizaElEstado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := ratemocks.NewMockService(ctrl)
	mockService.EXPECT().SyncAll(gomock.Any()).Return(map[domain.RateKind]*rates.SyncResult{
		domain.RateKindOficial: {
			Observation: &domain.RateObservation{
				Kind:  domain.RateKindOficial,
				Value: decimal.RequireFromString("36.50"),
			},
		},
		domain.RateKindParalelo: {
			Failure: &rates.SyncFailure{
				Kind:         domain.RateKindParalelo,
				Reason:       "timeout",
				BackupMarked: true,
			},
		},
	})

	service := NewRateSyncService(mockService, rateSyncConfig())
	service.syncAllRates(context.Background())

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, 1, status["last_sync_failures"])
	assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

// GetStatus debe poder leerse desde el handler de estado mientras una
// corrida está en curso, sin carrera con las escrituras de la corrida.
func TestGetStatus_DuranteCorridaEnCurso(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})

	mockService := ratemocks.NewMockService(ctrl)
	mockService.EXPECT().SyncAll(gomock.Any()).DoAndReturn(
		func(ctx context.Context) map[domain.RateKind]*rates.SyncResult {
			close(started)
			<-release
			return map[domain.RateKind]*rates.SyncResult{}
		})

	service := NewRateSyncService(mockService, rateSyncConfig())

	done := make(chan struct{})
	go func() {
		service.syncAllRates(context.Background())
		close(done)
	}()

	<-started
	status := service.GetStatus()
	assert.Equal(t, true, status["sync_running"])

	close(release)
	<-done

	status = service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
}
