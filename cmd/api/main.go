package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tallerapp/finanzas-api/infrastructure/database/postgres"
	"github.com/tallerapp/finanzas-api/infrastructure/integrator/bcv"
	"github.com/tallerapp/finanzas-api/infrastructure/integrator/bcv/bcvclient"
	"github.com/tallerapp/finanzas-api/infrastructure/integrator/paralelo"
	"github.com/tallerapp/finanzas-api/infrastructure/integrator/paralelo/paraleloclient"
	"github.com/tallerapp/finanzas-api/infrastructure/repository"
	"github.com/tallerapp/finanzas-api/internal/api"
	"github.com/tallerapp/finanzas-api/internal/config"
	"github.com/tallerapp/finanzas-api/internal/scheduler"
	"github.com/tallerapp/finanzas-api/internal/usecases/auditing"
	"github.com/tallerapp/finanzas-api/internal/usecases/commissioning"
	"github.com/tallerapp/finanzas-api/internal/usecases/converting"
	"github.com/tallerapp/finanzas-api/internal/usecases/invoicing"
	"github.com/tallerapp/finanzas-api/internal/usecases/rates"
	"github.com/tallerapp/finanzas-api/internal/usecases/targeting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nivel de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nivel de log configurado en: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	rateRepo := repository.NewRateRepository(pgConn)
	commissionRepo := repository.NewCommissionRepository(pgConn)
	orderRepo := repository.NewOrderRepository(pgConn)
	expenseRepo := repository.NewExpenseRepository(pgConn)
	storeRepo := repository.NewStoreRepository(pgConn)
	targetRepo := repository.NewDailyTargetRepository(pgConn)
	auditRepo := repository.NewAuditRepository(pgConn)

	auditNotifier := auditing.NewNotifier(auditRepo)
	defer auditNotifier.Close()

	bcvIntegrator := bcv.New(cfg, bcvclient.NewClient(cfg))
	paraleloIntegrator := paralelo.New(cfg, paraleloclient.NewClient(cfg))

	rateCache := rates.NewCache(time.Duration(cfg.Finance.RateCacheTTLMinutes) * time.Minute)
	rateService := rates.NewService(cfg, rateRepo, rateCache, auditNotifier, bcvIntegrator, paraleloIntegrator)

	converter := converting.NewConverter(rateService)
	invoiceCalculator := invoicing.NewCalculator(cfg, converter)
	commissionEngine := commissioning.NewEngine(commissionRepo, orderRepo, auditNotifier)
	targetCalculator := targeting.NewCalculator(cfg, expenseRepo, storeRepo, targetRepo)

	rateSyncService := scheduler.NewRateSyncService(rateService, cfg)
	dailyTargetSyncService := scheduler.NewDailyTargetSyncService(targetCalculator, cfg)

	if err := rateSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador de sincronización de tasas")
	} else {
		logrus.Info("Agendador de sincronización de tasas iniciado con éxito")
	}

	if err := dailyTargetSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador de metas diarias")
	} else {
		logrus.Info("Agendador de metas diarias iniciado con éxito")
	}

	server, err := api.New(
		cfg,
		rateService,
		invoiceCalculator,
		commissionEngine,
		targetCalculator,
		auditNotifier,
		rateSyncService,
		dailyTargetSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura el formato y comportamiento de los logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn crea la conexión con la base de datos
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error al conectar con PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error al probar la conexión con PostgreSQL")
	}

	logrus.Info("Conexión con PostgreSQL establecida con éxito")
	return conn
}
