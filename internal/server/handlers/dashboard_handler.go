package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/poultry/internal/service/dashboard"
)

// DashboardHandler handles the aggregated statistics route.
type DashboardHandler struct {
	svc    *dashboard.Service
	logger *zap.Logger
}

// NewDashboardHandler constructs the HTTP handler adapter.
func NewDashboardHandler(svc *dashboard.Service, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardHandler{svc: svc, logger: logger}
}

// Stats returns the combined dashboard payload.
func (h *DashboardHandler) Stats(c *gin.Context) {
	summary, err := h.svc.GetStats(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to assemble dashboard stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching dashboard data", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
