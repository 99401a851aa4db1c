package v1

import (
	"net/http"

	"github.com/anmolenterprise/invoicer/internal/api/dto"
	"github.com/anmolenterprise/invoicer/internal/config"
	"github.com/anmolenterprise/invoicer/internal/logger"
	"github.com/gin-gonic/gin"
)

// Version is stamped at build time with -ldflags "-X ...v1.Version=..."
var Version = "dev"

type HealthHandler struct {
	cfg    *config.Configuration
	logger *logger.Logger
}

func NewHealthHandler(cfg *config.Configuration, logger *logger.Logger) *HealthHandler {
	return &HealthHandler{
		cfg:    cfg,
		logger: logger,
	}
}

// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Mode:    string(h.cfg.Deployment.Mode),
		Version: Version,
	})
}
