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

	"portfolio-backend/config"
	_ "portfolio-backend/docs" // Important for Swagger
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/repository/catalog"
	"portfolio-backend/internal/repository/postgres"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/database"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Contact form relay and showcase data for the portfolio site.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "portfolio-api",
		Short:        "Backend for the portfolio site: contact form and showcase data",
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API (default)",
			Args:  cobra.NoArgs,
			RunE:  runServe,
		},
		newPreviewCmd(),
	)
	return root
}

func runServe(cmd *cobra.Command, args []string) error {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.Env)
	defer logger.Sync()
	logger.Log.Info("Starting portfolio backend", zap.String("port", cfg.Port), zap.String("env", cfg.Env))

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Optional submission archive
	var contactRepo domain.ContactRepository
	var dbPinger usecase.Pinger
	if cfg.DBUrl != "" {
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", zap.Error(err))
			return err
		}
		defer pool.Close()

		if err := postgres.EnsureContactSchema(ctx, pool); err != nil {
			logger.Log.Error("Failed to prepare contact archive", zap.Error(err))
			return err
		}
		contactRepo = postgres.NewContactRepository(pool)
		dbPinger = pool
	} else {
		logger.Log.Info("DATABASE_URL not set - contact submissions will not be archived")
	}

	// 4. Setup Email Service
	sender := email.NewSMTPSender(cfg)
	if !sender.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form will fail until SMTP credentials are set")
	}
	emailService, err := email.NewEmailService(cfg, sender)
	if err != nil {
		return err
	}

	// 5. Setup UseCases
	validate := validation.New()
	portfolioRepo, err := catalog.NewDefaultRepository(validate)
	if err != nil {
		return err
	}
	contactUC := usecase.NewContactUsecase(emailService, contactRepo, validate, cfg.ContactMinMessageLength)
	portfolioUC := usecase.NewPortfolioUsecase(portfolioRepo, validate, cfg)
	healthUC := usecase.NewHealthUsecase(dbPinger)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:   contactUC,
		PortfolioUC: portfolioUC,
		HealthUC:    healthUC,
		Config:      cfg,
	})

	// 7. Start Server
	// Two sequential SMTP sends must fit inside the write timeout
	smtpTimeout := time.Duration(cfg.SMTPTimeoutSeconds) * time.Second
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      2*smtpTimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Graceful Shutdown
	select {
	case err := <-serveErr:
		if err != nil {
			logger.Log.Error("Listen failed", zap.Error(err))
			return err
		}
	case <-ctx.Done():
	}
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Log.Info("Server exiting")
	return nil
}
