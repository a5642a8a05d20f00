package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tallerapp/finanzas-api/internal/api/handler/router"
	"github.com/tallerapp/finanzas-api/internal/config"
	"github.com/tallerapp/finanzas-api/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func fullRouteTable() router.Router {
	return router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Rates(nil, "")...),
		router.WithRoutes(Invoices(InvoiceHandlers{Config: &config.Config{}})...),
		router.WithRoutes(Commissions(nil)...),
		router.WithRoutes(Targets(nil)...),
		router.WithRoutes(CronJobs(CronJobServices{})...),
	)
}

// httprouter no admite un hermano estático y un comodín en la misma
// posición del árbol de un método: una tabla mal armada tumba el proceso
// al arrancar. Este test registra la tabla completa, igual que api.New.
func TestRouteTable_SeRegistraSinPanico(t *testing.T) {
	assert.NotPanics(t, func() {
		fullRouteTable()
	})
}

// Las rutas con comodín bajo /v1/invoices y /v1/commissions deben seguir
// resolviendo tras la separación de los segmentos estáticos. Sin claims
// el middleware de rol responde 401: la ruta existe y fue alcanzada.
func TestRouteTable_RutasConComodinResuelven(t *testing.T) {
	rt := fullRouteTable()

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/v1/invoices/quote"},
		{http.MethodPost, "/v1/invoices/payments/42"},
		{http.MethodPost, "/v1/invoices/cancel/42"},
		{http.MethodPost, "/v1/commissions/debits/7"},
		{http.MethodPost, "/v1/commissions/pay"},
		{http.MethodPost, "/v1/orders/7/commission"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			rt.ServeHTTP(recorder, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}
