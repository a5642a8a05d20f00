package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallerapp/finanzas-api/internal/config"
	"github.com/tallerapp/finanzas-api/internal/domain"
	auditmocks "github.com/tallerapp/finanzas-api/internal/usecases/auditing/mocks"
	"github.com/tallerapp/finanzas-api/internal/usecases/invoicing"
	"github.com/tallerapp/finanzas-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func cancelRequest(invoiceID, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/invoices/cancel/"+invoiceID, strings.NewReader(body))
	params := httprouter.Params{{Key: "id", Value: invoiceID}}
	return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
}

func TestCancelInvoice_TransicionaHaciaAnulada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAudit := auditmocks.NewMockNotifier(ctrl)
	mockAudit.EXPECT().Notify(gomock.Any()).Do(func(event *domain.AuditEvent) {
		assert.Equal(t, domain.AuditInvoiceCancelled, event.Type)
		assert.Equal(t, "55", event.EntityID)
	})

	h := InvoiceHandlers{
		Config:     &config.Config{},
		Calculator: invoicing.NewCalculator(&config.Config{}, nil),
		Audit:      mockAudit,
	}

	recorder := httptest.NewRecorder()
	CancelInvoice(h).ServeHTTP(recorder, cancelRequest("55", `{"status":"parcial"}`))

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp cancelInvoiceResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "55", resp.InvoiceID)
	assert.Equal(t, domain.InvoiceAnulada, resp.Status)
}

func TestCancelInvoice_PagadaNoSePuedeAnular(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := InvoiceHandlers{
		Config:     &config.Config{},
		Calculator: invoicing.NewCalculator(&config.Config{}, nil),
		Audit:      auditmocks.NewMockNotifier(ctrl),
	}

	recorder := httptest.NewRecorder()
	CancelInvoice(h).ServeHTTP(recorder, cancelRequest("55", `{"status":"pagada"}`))

	require.Equal(t, http.StatusConflict, recorder.Code)

	var resp apiErrors.APIError
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, apiErrors.ErrInvoiceNotPayable, resp.Code)
}

func TestCancelInvoice_AnuladaEsTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := InvoiceHandlers{
		Config:     &config.Config{},
		Calculator: invoicing.NewCalculator(&config.Config{}, nil),
		Audit:      auditmocks.NewMockNotifier(ctrl),
	}

	recorder := httptest.NewRecorder()
	CancelInvoice(h).ServeHTTP(recorder, cancelRequest("55", `{"status":"anulada"}`))

	assert.Equal(t, http.StatusConflict, recorder.Code)
}
