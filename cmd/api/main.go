package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dealerdesk_backend/internal/activity"
	"dealerdesk_backend/internal/automation"
	"dealerdesk_backend/internal/events"
	apphttp "dealerdesk_backend/internal/http"
	"dealerdesk_backend/internal/http/router"
	"dealerdesk_backend/internal/insights"
	"dealerdesk_backend/platform/config"
	"dealerdesk_backend/platform/logger"
	"dealerdesk_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	automationModule := automation.NewModule(cfg, eventBus, val, log)
	insightsModule := insights.NewModule(cfg, val, log)

	// Activity module subscribes to automation decision events
	activityModule := activity.NewModule(log)
	activityModule.RegisterHandlers(eventBus)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Modules: []apphttp.Module{
			automationModule,
			insightsModule,
			activityModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
