package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/poultry/internal/domain/models"
	"github.com/mamadbah2/poultry/internal/service/mortality"
)

// MortalityHandler handles mortality record routes.
type MortalityHandler struct {
	svc    *mortality.Service
	logger *zap.Logger
}

// NewMortalityHandler constructs the HTTP handler adapter.
func NewMortalityHandler(svc *mortality.Service, logger *zap.Logger) *MortalityHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MortalityHandler{svc: svc, logger: logger}
}

// List returns the most recent mortality records, newest first.
func (h *MortalityHandler) List(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list mortality records", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching mortality records", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

type createMortalityRequest struct {
	Date     string `json:"date" binding:"required"`
	Count    *int   `json:"count" binding:"required"`
	AgeGroup string `json:"ageGroup" binding:"required"`
	Cause    string `json:"cause" binding:"required"`
	Notes    string `json:"notes"`
}

// Create stores a new mortality record.
func (h *MortalityHandler) Create(c *gin.Context) {
	var req createMortalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid mortality payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "error": err.Error()})
		return
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error adding mortality record", "error": err.Error()})
		return
	}

	record := models.Mortality{
		Date:     date,
		Count:    *req.Count,
		AgeGroup: req.AgeGroup,
		Cause:    req.Cause,
		Notes:    req.Notes,
	}

	stored, err := h.svc.Create(c.Request.Context(), record)
	if err != nil {
		if verr, ok := models.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Error adding mortality record", "error": verr.Error()})
			return
		}
		h.logger.Error("failed to create mortality record", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding mortality record", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Mortality record added", "record": stored})
}

// Analytics returns loss totals over the recent window.
func (h *MortalityHandler) Analytics(c *gin.Context) {
	summary, err := h.svc.Analytics(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to compute mortality analytics", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching analytics", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
