package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FelipeFerreiradv/legal-lead-page-pro/config"
	_ "github.com/FelipeFerreiradv/legal-lead-page-pro/docs" // Important for Swagger
	v1 "github.com/FelipeFerreiradv/legal-lead-page-pro/internal/delivery/http/v1"
	"github.com/FelipeFerreiradv/legal-lead-page-pro/internal/usecase"
	"github.com/FelipeFerreiradv/legal-lead-page-pro/pkg/email"
	"github.com/FelipeFerreiradv/legal-lead-page-pro/pkg/logger"
	"github.com/FelipeFerreiradv/legal-lead-page-pro/pkg/validation"
)

// @title           Legal Lead Page API
// @version         1.0
// @description     Contact relay backend for the marketing site.
// @host            localhost:4000
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting lead page backend", "port", cfg.Port)

	// 3. Setup Mail Transport
	mailer := email.NewMailer(cfg)
	logger.Log.Info("smtp configuration",
		"host", cfg.SMTPHost,
		"port", cfg.SMTPPort,
		"secure", cfg.SMTPSecure,
		"user", email.Mask(cfg.SMTPUser),
	)
	if !mailer.IsConfigured() {
		logger.Log.Warn("Mail transport not fully configured - contact dispatch will fail")
	} else {
		// Connectivity self-check: logged, never enforced
		verifyCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := mailer.Verify(verifyCtx); err != nil {
			logger.Log.Warn("SMTP self-check failed", "error", err)
		} else {
			logger.Log.Info("SMTP transport verified")
		}
		cancel()
	}

	// 4. Setup UseCases
	validate := validation.New()
	contactUC := usecase.NewContactUsecase(mailer, validate)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		Config:    cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}
}
