package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/tallerapp/finanzas-api/internal/domain"
	"github.com/tallerapp/finanzas-api/internal/usecases/rates"
	"github.com/tallerapp/finanzas-api/pkg/apiErrors"
	"github.com/tallerapp/finanzas-api/pkg/middleware"
)

// GetCurrentRate es el endpoint público de consulta de tasa: sin token,
// para mostrar precios fuera del sistema. Por defecto devuelve la oficial.
func GetCurrentRate(service rates.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind := domain.RateKind(r.URL.Query().Get("kind"))
		if kind == "" {
			kind = domain.RateKindOficial
		}

		current, err := service.GetCurrent(kind, true)
		if err != nil {
			if err == rates.ErrUnknownRateKind {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRateKind, err.Error(), nil)
				return
			}
			logrus.WithError(err).Error("Error al consultar la tasa vigente")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar la tasa", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(current)
	})
}

// GetRateHistory lista las últimas observaciones del tipo de tasa
func GetRateHistory(service rates.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind := domain.RateKind(httprouter.ParamsFromContext(r.Context()).ByName("kind"))

		var limit uint64
		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			parsed, err := strconv.ParseUint(rawLimit, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "El límite debe ser un entero positivo", nil)
				return
			}
			limit = parsed
		}

		observations, err := service.History(kind, limit)
		if err != nil {
			if err == rates.ErrUnknownRateKind {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRateKind, err.Error(), nil)
				return
			}
			logrus.WithError(err).Error("Error al consultar el historial de tasas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar el historial", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"kind":         kind,
			"observations": observations,
		})
	})
}

// SyncRate fuerza una sincronización inmediata del tipo de tasa. La falla
// de la fuente no es un 5xx: se devuelve el resultado con la razón y la
// marca de respaldo.
func SyncRate(service rates.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncRate")

		kind := domain.RateKind(httprouter.ParamsFromContext(r.Context()).ByName("kind"))
		actorID := actorIDFromContext(r)

		result, err := service.Sync(r.Context(), kind, nil, actorID)
		if err != nil {
			if err == rates.ErrUnknownRateKind {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRateKind, err.Error(), nil)
				return
			}
			logrus.WithError(err).Error("Error al sincronizar la tasa")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al sincronizar la tasa", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	})
}

type overrideRateRequest struct {
	Value decimal.Decimal `json:"value"`
}

// OverrideRate registra una tasa manual para el tipo indicado
func OverrideRate(service rates.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - OverrideRate")

		kind := domain.RateKind(httprouter.ParamsFromContext(r.Context()).ByName("kind"))

		var req overrideRateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cuerpo de la solicitud inválido", nil)
			return
		}

		actorID := actorIDFromContext(r)

		result, err := service.Sync(r.Context(), kind, &req.Value, actorID)
		if err != nil {
			switch err {
			case rates.ErrUnknownRateKind:
				apiErrors.WriteError(w, apiErrors.ErrInvalidRateKind, err.Error(), nil)
			case rates.ErrInvalidManualValue:
				apiErrors.WriteError(w, apiErrors.ErrInvalidRateValue, err.Error(), nil)
			default:
				logrus.WithError(err).Error("Error al registrar la tasa manual")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al registrar la tasa manual", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	})
}

// actorIDFromContext extrae el id del usuario autenticado; cero cuando la
// ruta no pasó por el middleware de autenticación
func actorIDFromContext(r *http.Request) int {
	if claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims); ok {
		return claims.UserID
	}
	return 0
}
