package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/tallerapp/finanzas-api/internal/domain"
	"github.com/tallerapp/finanzas-api/internal/usecases/commissioning"
	"github.com/tallerapp/finanzas-api/pkg/apiErrors"
)

// ComputeOrderCommission genera la comisión de una orden completada. Una
// orden sin técnico o sin ganancia bruta devuelve 204: no es un error,
// simplemente no hay comisión que generar.
func ComputeOrderCommission(engine commissioning.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ComputeOrderCommission")

		orderID, err := parseIDParam(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "El id de la orden debe ser numérico", nil)
			return
		}

		commission, err := engine.ComputeForOrder(orderID)
		if err != nil {
			if err == commissioning.ErrOrderNotFound {
				apiErrors.WriteError(w, apiErrors.ErrOrderNotFound, err.Error(), nil)
				return
			}
			logrus.WithError(err).Error("Error al generar la comisión de la orden")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al generar la comisión", nil)
			return
		}

		if commission == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(commission)
	})
}

type applyDebitRequest struct {
	Reason           domain.DebitReason `json:"reason"`
	Amount           decimal.Decimal    `json:"amount"`
	Reference        string             `json:"reference,omitempty"`
	EvidenceRequired bool               `json:"evidence_required"`
}

// ApplyCommissionDebit adjunta un contracargo a la comisión
func ApplyCommissionDebit(engine commissioning.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ApplyCommissionDebit")

		commissionID, err := parseIDParam(r, "id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "El id de la comisión debe ser numérico", nil)
			return
		}

		var req applyDebitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cuerpo de la solicitud inválido", nil)
			return
		}

		commission, err := engine.ApplyDebit(
			commissionID, req.Reason, req.Amount, req.Reference,
			req.EvidenceRequired, actorIDFromContext(r),
		)
		if err != nil {
			switch err {
			case commissioning.ErrCommissionNotFound:
				apiErrors.WriteError(w, apiErrors.ErrCommissionNotFound, err.Error(), nil)
			case commissioning.ErrInvalidDebitReason, commissioning.ErrInvalidDebitAmount:
				apiErrors.WriteError(w, apiErrors.ErrInvalidDebit, err.Error(), nil)
			default:
				logrus.WithError(err).Error("Error al aplicar el débito")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al aplicar el débito", nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(commission)
	})
}

type batchPayRequest struct {
	CommissionIDs []int64 `json:"commission_ids"`
}

// BatchPayCommissions paga en lote las comisiones pendientes indicadas
func BatchPayCommissions(engine commissioning.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - BatchPayCommissions")

		var req batchPayRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cuerpo de la solicitud inválido", nil)
			return
		}

		result, err := engine.BatchPay(req.CommissionIDs, actorIDFromContext(r))
		if err != nil {
			logrus.WithError(err).Error("Error al pagar las comisiones en lote")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al pagar las comisiones", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	})
}

// ListCommissions lista las comisiones del período (mes/año); por defecto
// el período corriente
func ListCommissions(engine commissioning.Engine) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()

		month := int(now.Month())
		year := now.Year()

		if rawMonth := r.URL.Query().Get("month"); rawMonth != "" {
			parsed, err := strconv.Atoi(rawMonth)
			if err != nil || parsed < 1 || parsed > 12 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "El mes debe ser un entero entre 1 y 12", nil)
				return
			}
			month = parsed
		}
		if rawYear := r.URL.Query().Get("year"); rawYear != "" {
			parsed, err := strconv.Atoi(rawYear)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "El año debe ser un entero", nil)
				return
			}
			year = parsed
		}

		commissions, err := engine.ListByPeriod(month, year)
		if err != nil {
			logrus.WithError(err).Error("Error al listar las comisiones del período")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al listar las comisiones", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"period_month": month,
			"period_year":  year,
			"commissions":  commissions,
		})
	})
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName(name)
	return strconv.ParseInt(raw, 10, 64)
}
