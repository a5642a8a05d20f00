package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tallerapp/finanzas-api/internal/usecases/targeting"
	"github.com/tallerapp/finanzas-api/pkg/apiErrors"
)

type calculateTargetRequest struct {
	Date string `json:"date,omitempty"`
}

// CalculateDailyTarget computa (o recomputa) la meta de punto de
// equilibrio de la tienda para el día. Idempotente: repetir el día
// sobrescribe el registro.
func CalculateDailyTarget(calculator targeting.Calculator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CalculateDailyTarget")

		storeID, err := parseStoreIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "El id de la tienda debe ser numérico", nil)
			return
		}

		var req calculateTargetRequest
		if r.Body != nil && r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cuerpo de la solicitud inválido", nil)
				return
			}
		}
		if req.Date == "" {
			req.Date = time.Now().Format(time.DateOnly)
		}

		target, err := calculator.CalculateDaily(storeID, req.Date)
		if err != nil {
			if errors.Is(err, targeting.ErrInvalidMarginConfig) {
				logrus.WithError(err).Error("Margen deseado mal configurado")
				apiErrors.WriteError(w, apiErrors.ErrInvalidMarginConfig, err.Error(), nil)
				return
			}
			logrus.WithError(err).Error("Error al calcular la meta diaria")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al calcular la meta diaria", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(target)
	})
}

// GetDailyTarget consulta la meta calculada de la tienda para una fecha
func GetDailyTarget(calculator targeting.Calculator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		storeID, err := parseStoreIDParam(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "El id de la tienda debe ser numérico", nil)
			return
		}

		date := r.URL.Query().Get("date")
		if date == "" {
			date = time.Now().Format(time.DateOnly)
		}

		target, err := calculator.GetDaily(storeID, date)
		if err != nil {
			logrus.WithError(err).Error("Error al consultar la meta diaria")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar la meta diaria", nil)
			return
		}

		if target == nil {
			apiErrors.WriteError(w, apiErrors.ErrStoreNotFound, "No hay meta calculada para la tienda y fecha", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(target)
	})
}

func parseStoreIDParam(r *http.Request) (int, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")
	return strconv.Atoi(raw)
}
