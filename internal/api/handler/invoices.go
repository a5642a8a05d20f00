package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/tallerapp/finanzas-api/internal/config"
	"github.com/tallerapp/finanzas-api/internal/domain"
	"github.com/tallerapp/finanzas-api/internal/usecases/auditing"
	"github.com/tallerapp/finanzas-api/internal/usecases/invoicing"
	"github.com/tallerapp/finanzas-api/pkg/apiErrors"
)

// InvoiceHandlers agrupa las dependencias de las rutas de facturación
type InvoiceHandlers struct {
	Config     *config.Config
	Calculator invoicing.Calculator
	Audit      auditing.Notifier
}

type quoteRequest struct {
	Lines    []domain.InvoiceLine   `json:"lines"`
	Payments []domain.PaymentRecord `json:"payments"`
	Discount decimal.Decimal        `json:"discount"`
	RateKind domain.RateKind        `json:"rate_kind,omitempty"`
}

type addPaymentRequest struct {
	Lines    []domain.InvoiceLine   `json:"lines"`
	Payments []domain.PaymentRecord `json:"payments"`
	Discount decimal.Decimal        `json:"discount"`
	RateKind domain.RateKind        `json:"rate_kind,omitempty"`
	Payment  struct {
		Method    domain.PaymentMethod `json:"method"`
		Amount    decimal.Decimal      `json:"amount"`
		Reference string               `json:"reference,omitempty"`
	} `json:"payment"`
}

// QuoteInvoice computa los totales de una factura en construcción
func QuoteInvoice(h InvoiceHandlers) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req quoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cuerpo de la solicitud inválido", nil)
			return
		}

		if len(req.Lines) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "La factura debe tener al menos un renglón", nil)
			return
		}

		totals, err := h.Calculator.ComputeTotals(req.Lines, req.Payments, req.Discount, h.rateKind(req.RateKind))
		if err != nil {
			writeInvoiceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(totals)
	})
}

// AddInvoicePayment valida y aplica un pago contra el saldo vigente de la
// factura. El estado de la factura viaja en el cuerpo: el registro
// persistido es del sistema administrativo, no de este servicio.
func AddInvoicePayment(h InvoiceHandlers) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AddInvoicePayment")

		invoiceID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req addPaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cuerpo de la solicitud inválido", nil)
			return
		}

		payment := domain.PaymentRecord{
			Method:    req.Payment.Method,
			Amount:    req.Payment.Amount,
			Reference: req.Payment.Reference,
			PaidAt:    time.Now(),
		}

		totals, err := h.Calculator.AddPayment(req.Lines, req.Payments, req.Discount, h.rateKind(req.RateKind), payment)
		if err != nil {
			writeInvoiceError(w, err)
			return
		}

		if totals.ClampedToZero {
			h.Audit.Notify(&domain.AuditEvent{
				Type:     domain.AuditTotalClamped,
				ActorID:  actorIDFromContext(r),
				EntityID: invoiceID,
				Detail: map[string]any{
					"subtotal": totals.Subtotal.String(),
					"discount": totals.Discount.String(),
				},
			})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(totals)
	})
}

type cancelInvoiceRequest struct {
	Status domain.InvoiceStatus `json:"status"`
}

type cancelInvoiceResponse struct {
	InvoiceID string               `json:"invoice_id"`
	Status    domain.InvoiceStatus `json:"status"`
}

// CancelInvoice valida la transición hacia anulada. El estado vigente
// viaja en el cuerpo, igual que en el registro de pagos: la factura
// persistida pertenece al sistema administrativo.
func CancelInvoice(h InvoiceHandlers) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		invoiceID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req cancelInvoiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cuerpo de la solicitud inválido", nil)
			return
		}

		status, err := h.Calculator.Cancel(req.Status)
		if err != nil {
			writeInvoiceError(w, err)
			return
		}

		h.Audit.Notify(&domain.AuditEvent{
			Type:     domain.AuditInvoiceCancelled,
			ActorID:  actorIDFromContext(r),
			EntityID: invoiceID,
			Detail:   map[string]any{"previous_status": string(req.Status)},
		})

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(cancelInvoiceResponse{InvoiceID: invoiceID, Status: status})
	})
}

func (h InvoiceHandlers) rateKind(requested domain.RateKind) domain.RateKind {
	if requested != "" {
		return requested
	}
	return domain.RateKind(h.Config.Finance.InvoiceRateKind)
}

func writeInvoiceError(w http.ResponseWriter, err error) {
	var exceedsErr *invoicing.PaymentExceedsBalanceError
	if errors.As(err, &exceedsErr) {
		apiErrors.WriteError(w, apiErrors.ErrPaymentExceedsBalance, exceedsErr.Error(), map[string]any{
			"attempted": exceedsErr.Attempted.StringFixed(2),
			"remaining": exceedsErr.Remaining.StringFixed(2),
			"excess":    exceedsErr.Excess.StringFixed(2),
		})
		return
	}

	switch err {
	case invoicing.ErrNegativeDiscount:
		apiErrors.WriteError(w, apiErrors.ErrNegativeDiscount, err.Error(), nil)
	case invoicing.ErrInvalidPaymentMethod:
		apiErrors.WriteError(w, apiErrors.ErrInvalidPaymentMethod, err.Error(), nil)
	case invoicing.ErrInvalidPaymentAmount, invoicing.ErrInvalidLineQuantity, invoicing.ErrInvalidLineUnitPrice:
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case invoicing.ErrCancelPaidInvoice, invoicing.ErrAlreadyCancelled:
		apiErrors.WriteError(w, apiErrors.ErrInvoiceNotPayable, err.Error(), nil)
	default:
		logrus.WithError(err).Error("Error al calcular los totales de la factura")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al calcular los totales", nil)
	}
}
