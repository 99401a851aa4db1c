package api

import (
	v1 "github.com/anmolenterprise/invoicer/internal/api/v1"
	"github.com/anmolenterprise/invoicer/internal/config"
	"github.com/anmolenterprise/invoicer/internal/logger"
	"github.com/anmolenterprise/invoicer/internal/service"
)

// NewHandlers builds every HTTP handler from the services
func NewHandlers(cfg *config.Configuration, logger *logger.Logger, invoiceService service.InvoiceService) Handlers {
	return Handlers{
		Health:   v1.NewHealthHandler(cfg, logger),
		Template: v1.NewTemplateHandler(invoiceService, logger),
		Invoice:  v1.NewInvoiceHandler(invoiceService, logger),
	}
}
