package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tradedesk_backend/internal/document"
	"tradedesk_backend/internal/enrichment"
	"tradedesk_backend/internal/http/router"
	"tradedesk_backend/internal/intake"
	"tradedesk_backend/internal/ledger"
	"tradedesk_backend/internal/mailer"
	"tradedesk_backend/platform/config"
	"tradedesk_backend/platform/logger"
	"tradedesk_backend/platform/validator"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Pipeline components
	// ========================================================================

	enrichmentModule := enrichment.NewModule(ctx, cfg, log)
	builder := document.NewBuilder(document.DefaultBusiness, cfg, log)
	dispatcher := mailer.NewDispatcher(cfg, log)
	leadLedger := ledger.New(ctx, cfg, log)

	if !cfg.IsMailConfigured() {
		log.Warn("mail delivery not configured, customer sends will fail closed")
	}

	val := validator.New()
	intakeModule := intake.NewModule(enrichmentModule.Service(), builder, dispatcher, leadLedger, val, log)

	// ========================================================================
	// HTTP server
	// ========================================================================

	engine := router.New(cfg, cfg.Env, intakeModule, log)
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server stopped", "error", err)
			stop()
		}
	}()
	log.Info("server listening", "addr", cfg.HTTPAddr)

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
