// Package main is the entry point for the wa-broadcast service.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/popeskul/wa-broadcast/internal/config"
	"github.com/popeskul/wa-broadcast/internal/handler"
	"github.com/popeskul/wa-broadcast/internal/middleware"
	"github.com/popeskul/wa-broadcast/internal/scheduler"
	"github.com/popeskul/wa-broadcast/internal/service"
	"github.com/popeskul/wa-broadcast/internal/whatsapp"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("Failed to load .env file", zap.Error(err))
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	settings, err := config.LoadSettings(cfg.Campaign.SettingsPath)
	if err != nil {
		logger.Fatal("Failed to load campaign settings", zap.Error(err))
	}

	contacts, err := config.LoadContacts(cfg.Campaign.ContactsPath)
	if err != nil {
		logger.Fatal("Failed to load contacts", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := newRepository(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer closeRepo()

	wa, err := whatsapp.NewClient(ctx, cfg.WhatsApp, logger)
	if err != nil {
		logger.Fatal("Failed to initialize messaging client", zap.Error(err))
	}

	svc := service.NewService(cfg, settings, contacts, repo, wa, whatsapp.QRPrinter(os.Stdout), logger)
	wa.SetEventHandler(svc.Events)

	router := setupRouter(handler.NewHandler(svc, logger))
	finalHandler := middleware.Chain(ctx, middleware.NewConfig(&cfg.Middleware, logger))(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      finalHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	logger.Info("Campaign loaded",
		zap.Int("contacts", len(contacts)),
		zap.Bool("enabled", settings.CampaignEnabled),
		zap.String("storage", cfg.Storage.Driver))

	if err := wa.Connect(ctx); err != nil {
		logger.Fatal("Failed to connect messaging client", zap.Error(err))
	}

	<-ctx.Done()
	logger.Info("Shutting down server...")

	if err := svc.Scheduler.Stop(); err != nil && !errors.Is(err, scheduler.ErrSchedulerNotRunning) {
		logger.Error("Failed to stop campaign", zap.Error(err))
	}

	wa.Disconnect()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
