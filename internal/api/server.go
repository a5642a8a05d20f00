package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/tallerapp/finanzas-api/internal/api/handler"
	"github.com/tallerapp/finanzas-api/internal/api/handler/router"
	"github.com/tallerapp/finanzas-api/internal/config"
	"github.com/tallerapp/finanzas-api/internal/scheduler"
	"github.com/tallerapp/finanzas-api/internal/usecases/auditing"
	"github.com/tallerapp/finanzas-api/internal/usecases/commissioning"
	"github.com/tallerapp/finanzas-api/internal/usecases/invoicing"
	"github.com/tallerapp/finanzas-api/internal/usecases/rates"
	"github.com/tallerapp/finanzas-api/internal/usecases/targeting"
	"github.com/tallerapp/finanzas-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	rateService rates.Service,
	invoiceCalculator invoicing.Calculator,
	commissionEngine commissioning.Engine,
	targetCalculator targeting.Calculator,
	auditNotifier auditing.Notifier,
	rateSyncService *scheduler.RateSyncService,
	dailyTargetSyncService *scheduler.DailyTargetSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		RateSyncService:        rateSyncService,
		DailyTargetSyncService: dailyTargetSyncService,
	}

	invoiceHandlers := handler.InvoiceHandlers{
		Config:     config,
		Calculator: invoiceCalculator,
		Audit:      auditNotifier,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Rates(rateService, config.Auth.AdminKeyHash)...),
		router.WithRoutes(handler.Invoices(invoiceHandlers)...),
		router.WithRoutes(handler.Commissions(commissionEngine)...),
		router.WithRoutes(handler.Targets(targetCalculator)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(config.Auth.Secret),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Error durante la ejecución del servidor")
		}
	}()

	// Canal para esperar señales de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Señal de interrupción recibida")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicación cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando apagado controlado del servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error durante el apagado del servidor")
		return err
	}

	logrus.Info("Servidor apagado con éxito")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP apagado con éxito")
	return nil
}
