package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/poultry/internal/domain/models"
	"github.com/mamadbah2/poultry/internal/service/eggs"
)

// EggHandler handles egg production routes.
type EggHandler struct {
	svc    *eggs.Service
	logger *zap.Logger
}

// NewEggHandler constructs the HTTP handler adapter.
func NewEggHandler(svc *eggs.Service, logger *zap.Logger) *EggHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EggHandler{svc: svc, logger: logger}
}

// List returns the most recent production records, newest first.
func (h *EggHandler) List(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list egg productions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching production data", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

type createEggRequest struct {
	Date           string `json:"date" binding:"required"`
	TotalEggs      *int   `json:"totalEggs" binding:"required"`
	BrokenEggs     int    `json:"brokenEggs"`
	CollectionTime string `json:"collectionTime"`
	Notes          string `json:"notes"`
}

// Create stores a new production record.
func (h *EggHandler) Create(c *gin.Context) {
	var req createEggRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid egg production payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "error": err.Error()})
		return
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error adding production record", "error": err.Error()})
		return
	}

	record := models.EggProduction{
		Date:           date,
		TotalEggs:      *req.TotalEggs,
		BrokenEggs:     req.BrokenEggs,
		CollectionTime: req.CollectionTime,
		Notes:          req.Notes,
	}

	stored, err := h.svc.Create(c.Request.Context(), record)
	if err != nil {
		if verr, ok := models.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Error adding production record", "error": verr.Error()})
			return
		}
		h.logger.Error("failed to create egg production", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding production record", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Production record added", "production": stored})
}

// Analytics returns production totals over the recent window.
func (h *EggHandler) Analytics(c *gin.Context) {
	summary, err := h.svc.Analytics(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to compute egg analytics", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching analytics", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
