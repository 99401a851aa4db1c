package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/anmolenterprise/invoicer/internal/api"
	"github.com/anmolenterprise/invoicer/internal/cache"
	"github.com/anmolenterprise/invoicer/internal/config"
	"github.com/anmolenterprise/invoicer/internal/httpclient"
	"github.com/anmolenterprise/invoicer/internal/logger"
	"github.com/anmolenterprise/invoicer/internal/pdf"
	"github.com/anmolenterprise/invoicer/internal/sentry"
	"github.com/anmolenterprise/invoicer/internal/service"
	"github.com/anmolenterprise/invoicer/internal/types"
	"github.com/anmolenterprise/invoicer/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Invoice dates carry no zone; keep every timestamp in UTC
	time.Local = time.UTC
}

func main() {
	// Initialize Fx application
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// HTTP client for invoice submission
			httpclient.NewDefaultClient,

			// Document cache
			cache.NewInMemoryCache,

			// PDF generation
			provideGenerator,
		),
		sentry.Module(),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,
			service.NewSubmitter,
			service.NewInvoiceService,
		),
	)

	// API layer
	opts = append(opts,
		fx.Provide(
			api.NewHandlers,
			api.NewRouter,
		),
		fx.Invoke(
			// request DTOs validate through the package level validator
			validator.NewValidator,
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideGenerator(cfg *config.Configuration, log *logger.Logger, c cache.Cache) pdf.Generator {
	generator := pdf.NewGenerator(cfg, log)
	if !cfg.Cache.Enabled {
		return generator
	}
	return pdf.NewCachedGenerator(generator, c, cfg, log)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal, types.ModeAPI:
		startAPIServer(lc, r, cfg, log)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("Starting API server...", "address", cfg.Server.Address, "mode", cfg.Deployment.Mode)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return srv.Shutdown(ctx)
		},
	})
}
