package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/poultry/internal/config"
	"github.com/mamadbah2/poultry/internal/repository/mongodb"
	"github.com/mamadbah2/poultry/internal/repository/sheets"
	"github.com/mamadbah2/poultry/internal/scheduler"
	"github.com/mamadbah2/poultry/internal/server/handlers"
	"github.com/mamadbah2/poultry/internal/server/router"
	authsvc "github.com/mamadbah2/poultry/internal/service/auth"
	dashboardsvc "github.com/mamadbah2/poultry/internal/service/dashboard"
	eggsvc "github.com/mamadbah2/poultry/internal/service/eggs"
	feedsvc "github.com/mamadbah2/poultry/internal/service/feed"
	mortalitysvc "github.com/mamadbah2/poultry/internal/service/mortality"
	reportsvc "github.com/mamadbah2/poultry/internal/service/reports"
	"github.com/mamadbah2/poultry/pkg/clients/notify"
	"github.com/mamadbah2/poultry/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	repo, err := mongodb.NewRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	if err := repo.EnsureIndexes(context.Background()); err != nil {
		baseLogger.Fatal("failed to create indexes", zap.Error(err))
	}

	authService := authsvc.NewService(repo.Users(), cfg.Auth.JWTSecret, baseLogger.Named("svc.auth"))
	eggService := eggsvc.NewService(repo.Eggs(), baseLogger.Named("svc.eggs"))
	feedService := feedsvc.NewService(repo.Feed(), baseLogger.Named("svc.feed"))
	mortalityService := mortalitysvc.NewService(repo.Mortality(), baseLogger.Named("svc.mortality"))
	dashboardService := dashboardsvc.NewService(repo.Eggs(), repo.Feed(), repo.Mortality(), baseLogger.Named("svc.dashboard"))

	// Report export to Google Sheets is optional.
	var exporter reportsvc.Exporter
	if cfg.SheetsEnabled() {
		sheetsRepo, err := sheets.NewExportRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets export repository", zap.Error(err))
		}
		exporter = sheetsRepo
		baseLogger.Info("sheets report export enabled")
	}
	reportService := reportsvc.NewService(repo.Eggs(), repo.Feed(), repo.Mortality(), exporter, baseLogger.Named("svc.reports"))

	engine := router.New(router.Handlers{
		Auth:      handlers.NewAuthHandler(authService, baseLogger.Named("handlers.auth")),
		Dashboard: handlers.NewDashboardHandler(dashboardService, baseLogger.Named("handlers.dashboard")),
		Eggs:      handlers.NewEggHandler(eggService, baseLogger.Named("handlers.eggs")),
		Feed:      handlers.NewFeedHandler(feedService, baseLogger.Named("handlers.feed")),
		Mortality: handlers.NewMortalityHandler(mortalityService, baseLogger.Named("handlers.mortality")),
		Reports:   handlers.NewReportHandler(reportService, baseLogger.Named("handlers.reports")),
	}, []byte(cfg.Auth.JWTSecret), baseLogger.Named("router"))

	var notifier notify.Client
	if cfg.Alerts.WebhookURL != "" {
		notifier = notify.NewClient(cfg.Alerts.WebhookURL)
		baseLogger.Info("low stock alert webhook enabled")
	}

	sched := scheduler.NewScheduler(cfg.Scheduler, dashboardService, feedService, repo.Snapshots(), notifier, baseLogger.Named("scheduler"))
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
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
