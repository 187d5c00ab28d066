package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/fleetboard/internal/config"
	"github.com/mamadbah2/fleetboard/internal/domain/filter"
	"github.com/mamadbah2/fleetboard/internal/repository"
	"github.com/mamadbah2/fleetboard/internal/repository/memory"
	"github.com/mamadbah2/fleetboard/internal/repository/mongodb"
	"github.com/mamadbah2/fleetboard/internal/repository/sheets"
	"github.com/mamadbah2/fleetboard/internal/repository/sqlite"
	"github.com/mamadbah2/fleetboard/internal/scheduler"
	"github.com/mamadbah2/fleetboard/internal/server/handlers"
	"github.com/mamadbah2/fleetboard/internal/server/metrics"
	"github.com/mamadbah2/fleetboard/internal/server/router"
	dashboardsvc "github.com/mamadbah2/fleetboard/internal/service/dashboard"
	"github.com/mamadbah2/fleetboard/internal/service/notify"
	reportingsvc "github.com/mamadbah2/fleetboard/internal/service/reporting"
	submissionsvc "github.com/mamadbah2/fleetboard/internal/service/submission"
	whatsappclient "github.com/mamadbah2/fleetboard/pkg/clients/whatsapp"
	"github.com/mamadbah2/fleetboard/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	catalog, err := loadCatalog(cfg.Records.ProfilesPath)
	if err != nil {
		baseLogger.Fatal("failed to load kind profiles", zap.Error(err))
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	// MongoDB backs the record source when selected and stores digests
	// whenever it is configured.
	var mongoRepo *mongodb.MongoDBRepository
	if cfg.MongoDB.URI != "" {
		mongoRepo, err = mongodb.NewMongoDBRepository(startupCtx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
	}

	source, closeSource, err := openSource(startupCtx, cfg, mongoRepo, baseLogger)
	if err != nil {
		baseLogger.Fatal("failed to open record source", zap.String("source", cfg.Records.Source), zap.Error(err))
	}
	defer closeSource()

	var notifier notify.Notifier
	if cfg.WhatsApp.Enabled() {
		notifier = notify.NewWhatsAppNotifier(whatsappclient.NewClient(cfg.WhatsApp), cfg.WhatsApp.AlertRecipient, baseLogger.Named("notify.whatsapp"))
		baseLogger.Info("whatsapp alerts enabled")
	} else {
		baseLogger.Warn("whatsapp token missing, dispatch alerts disabled")
	}

	m := metrics.New()
	dashboardSvc := dashboardsvc.NewService(source, catalog, m, baseLogger.Named("svc.dashboard"))
	submissionSvc := submissionsvc.NewService(dashboardSvc, catalog, notifier, cfg.Submission.Timeout, baseLogger.Named("svc.submission"))
	reportingSvc := reportingsvc.NewService(dashboardSvc, baseLogger.Named("svc.reporting"))

	loc, err := time.LoadLocation(cfg.Reporting.Timezone)
	if err != nil {
		baseLogger.Fatal("failed to load timezone", zap.Error(err))
	}

	engine := router.New(
		handlers.NewDashboardHandler(dashboardSvc, reportingSvc, loc, baseLogger.Named("handlers.dashboard")),
		handlers.NewSubmissionHandler(submissionSvc, baseLogger.Named("handlers.submission")),
		m,
		baseLogger.Named("router"),
	)

	var digestStore scheduler.DigestStore
	if mongoRepo != nil {
		digestStore = mongoRepo
	}
	sched, err := scheduler.NewScheduler(cfg.Reporting, reportingSvc, digestStore, notifier, baseLogger.Named("scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init scheduler", zap.Error(err))
	}
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port), zap.String("source", cfg.Records.Source))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func loadCatalog(path string) (*filter.Catalog, error) {
	if path == "" {
		return filter.DefaultCatalog(), nil
	}
	profiles, err := filter.LoadProfiles(path)
	if err != nil {
		return nil, err
	}
	return filter.NewCatalog(profiles)
}

func openSource(ctx context.Context, cfg *config.Config, mongoRepo *mongodb.MongoDBRepository, log *zap.Logger) (repository.Source, func(), error) {
	noop := func() {}

	switch cfg.Records.Source {
	case repository.BackendMemory:
		return memory.NewSeeded(), noop, nil

	case repository.BackendMongoDB:
		return mongoRepo, noop, nil

	case repository.BackendSheets:
		sheetsRepo, err := sheets.NewGoogleSheetRepository(ctx, cfg.Sheets, log.Named("repo.sheets"))
		if err != nil {
			return nil, nil, err
		}
		return sheets.NewSource(sheetsRepo, log.Named("repo.sheets")), noop, nil

	case repository.BackendSQLite:
		store, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		closeStore := func() {
			if err := store.Close(); err != nil {
				log.Error("failed to close sqlite store", zap.Error(err))
			}
		}
		if cfg.SQLite.Seed {
			empty, err := store.Empty(ctx)
			if err != nil {
				closeStore()
				return nil, nil, err
			}
			if empty {
				if err := store.ImportDataset(ctx, memory.Seed()); err != nil {
					closeStore()
					return nil, nil, err
				}
				log.Info("seeded sqlite store", zap.String("path", cfg.SQLite.Path))
			}
		}
		return store, closeStore, nil

	default:
		return nil, nil, fmt.Errorf("%w: %s", repository.ErrUnknownSource, cfg.Records.Source)
	}
}
