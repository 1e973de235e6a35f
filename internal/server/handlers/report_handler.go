package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/poultry/internal/domain/models"
	"github.com/mamadbah2/poultry/internal/service/reports"
)

// ReportHandler handles report generation and export routes.
type ReportHandler struct {
	svc    *reports.Service
	logger *zap.Logger
}

// NewReportHandler constructs the HTTP handler adapter.
func NewReportHandler(svc *reports.Service, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{svc: svc, logger: logger}
}

// Generate builds a type-specific summary over the requested date range.
func (h *ReportHandler) Generate(c *gin.Context) {
	reportType := c.Query("type")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	report, err := h.svc.Generate(c.Request.Context(), reportType, startDate, endDate)
	if err != nil {
		if errors.Is(err, models.ErrInvalidReportType) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid report type"})
			return
		}
		if verr, ok := models.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Error generating report", "error": verr.Error()})
			return
		}
		h.logger.Error("failed to generate report", zap.Error(err), zap.String("type", reportType))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error generating report", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// Export answers an export request. Only the sheets backend performs a real
// export; other formats get the placeholder response.
func (h *ReportHandler) Export(c *gin.Context) {
	format := c.Param("format")
	reportType := c.Query("type")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	result, err := h.svc.Export(c.Request.Context(), format, reportType, startDate, endDate)
	if err != nil {
		if errors.Is(err, models.ErrInvalidReportType) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid report type"})
			return
		}
		if verr, ok := models.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Error exporting report", "error": verr.Error()})
			return
		}
		h.logger.Error("failed to export report", zap.Error(err), zap.String("format", format))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error exporting report", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
