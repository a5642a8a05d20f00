package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/tallerapp/finanzas-api/internal/scheduler"
	"github.com/tallerapp/finanzas-api/pkg/apiErrors"
)

// CronJobType define el tipo de cron job a ejecutar
const (
	CronJobTypeRates   = "rates"
	CronJobTypeTargets = "targets"
	CronJobTypeAll     = "all"
)

// CronJobServices contiene los agendadores que pueden dispararse a mano
type CronJobServices struct {
	RateSyncService        *scheduler.RateSyncService
	DailyTargetSyncService *scheduler.DailyTargetSyncService
}

// RunCronJob ejecuta manualmente un cron job específico
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job no especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeRates:
			if services.RateSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Servicio de sincronización de tasas no disponible", nil)
				return
			}
			services.RateSyncService.TriggerManualSync()

		case CronJobTypeTargets:
			if services.DailyTargetSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Servicio de metas diarias no disponible", nil)
				return
			}
			services.DailyTargetSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.RateSyncService != nil {
				services.RateSyncService.TriggerManualSync()
			}
			if services.DailyTargetSyncService != nil {
				services.DailyTargetSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceptados: rates, targets, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciado con éxito",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus devuelve el estado de los cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"rates":   services.RateSyncService.GetStatus(),
			"targets": services.DailyTargetSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
