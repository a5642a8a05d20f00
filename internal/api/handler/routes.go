package handler

import (
	"net/http"

	"github.com/tallerapp/finanzas-api/internal/api/handler/router"
	"github.com/tallerapp/finanzas-api/internal/usecases/commissioning"
	"github.com/tallerapp/finanzas-api/internal/usecases/rates"
	"github.com/tallerapp/finanzas-api/internal/usecases/targeting"
	"github.com/tallerapp/finanzas-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Rates expone la consulta pública y las operaciones administrativas
// sobre las tasas de cambio. La anulación manual y la resincronización
// exigen además la clave administrativa.
func Rates(service rates.Service, adminKeyHash string) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/rates/current",
			Method:  http.MethodGet,
			Handler: GetCurrentRate(service),
		},
		{
			Path:        "/v1/rates/history/:kind",
			Method:      http.MethodGet,
			Handler:     GetRateHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:    "/v1/rates/:kind/sync",
			Method:  http.MethodPost,
			Handler: SyncRate(service),
			Middlewares: []func(http.Handler) http.Handler{
				middleware.AdminOnly(),
				middleware.AdminKeyMiddleware(adminKeyHash),
			},
		},
		{
			Path:    "/v1/rates/:kind",
			Method:  http.MethodPut,
			Handler: OverrideRate(service),
			Middlewares: []func(http.Handler) http.Handler{
				middleware.AdminOnly(),
				middleware.AdminKeyMiddleware(adminKeyHash),
			},
		},
	}
}

func Invoices(h InvoiceHandlers) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/invoices/quote",
			Method:      http.MethodPost,
			Handler:     QuoteInvoice(h),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		// Los segmentos estáticos van antes del comodín: httprouter no
		// admite hermanos estáticos y comodín en la misma posición
		{
			Path:        "/v1/invoices/payments/:id",
			Method:      http.MethodPost,
			Handler:     AddInvoicePayment(h),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/invoices/cancel/:id",
			Method:      http.MethodPost,
			Handler:     CancelInvoice(h),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Commissions(engine commissioning.Engine) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/orders/:id/commission",
			Method:      http.MethodPost,
			Handler:     ComputeOrderCommission(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/commissions/debits/:id",
			Method:      http.MethodPost,
			Handler:     ApplyCommissionDebit(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/commissions/pay",
			Method:      http.MethodPost,
			Handler:     BatchPayCommissions(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/commissions",
			Method:      http.MethodGet,
			Handler:     ListCommissions(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Targets(calculator targeting.Calculator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/:id/targets/daily",
			Method:      http.MethodGet,
			Handler:     GetDailyTarget(calculator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:id/targets/daily",
			Method:      http.MethodPost,
			Handler:     CalculateDailyTarget(calculator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
