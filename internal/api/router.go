package api

import (
	v1 "github.com/anmolenterprise/invoicer/internal/api/v1"
	"github.com/anmolenterprise/invoicer/internal/config"
	"github.com/anmolenterprise/invoicer/internal/logger"
	"github.com/anmolenterprise/invoicer/internal/rest/middleware"
	"github.com/anmolenterprise/invoicer/internal/types"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health   *v1.HealthHandler
	Template *v1.TemplateHandler
	Invoice  *v1.InvoiceHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	if cfg.Deployment.Mode != types.ModeLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Add middlewares
	router.Use(
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.SentryMiddleware(cfg),
	)
	if cfg.RateLimit.Enabled {
		router.Use(middleware.NewClientRateLimiter(cfg.RateLimit).Middleware())
	}
	router.Use(middleware.ErrorHandler(logger))

	router.GET("/health", handlers.Health.Health)

	v1Router := router.Group("/v1")
	{
		v1Router.GET("/templates", handlers.Template.ListTemplates)

		invoices := v1Router.Group("/invoices")
		{
			invoices.POST("/pdf", handlers.Invoice.GenerateInvoicePDF)
			invoices.POST("/summary", handlers.Invoice.SummarizeInvoice)
		}
	}

	return router
}
