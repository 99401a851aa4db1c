package v1

import (
	"net/http"

	"github.com/anmolenterprise/invoicer/internal/logger"
	"github.com/anmolenterprise/invoicer/internal/service"
	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	invoiceService service.InvoiceService
	logger         *logger.Logger
}

func NewTemplateHandler(invoiceService service.InvoiceService, logger *logger.Logger) *TemplateHandler {
	return &TemplateHandler{
		invoiceService: invoiceService,
		logger:         logger,
	}
}

// ListTemplates godoc
// @Summary List invoice templates
// @Description List the layouts an invoice can be rendered with
// @Tags Templates
// @Produce json
// @Success 200 {object} dto.ListTemplatesResponse
// @Router /templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, h.invoiceService.ListTemplates(c.Request.Context()))
}
