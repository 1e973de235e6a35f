package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/poultry/internal/domain/models"
	"github.com/mamadbah2/poultry/internal/service/feed"
)

// FeedHandler handles feed stock routes.
type FeedHandler struct {
	svc    *feed.Service
	logger *zap.Logger
}

// NewFeedHandler constructs the HTTP handler adapter.
func NewFeedHandler(svc *feed.Service, logger *zap.Logger) *FeedHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedHandler{svc: svc, logger: logger}
}

// List returns every stock entry, most recently created first.
func (h *FeedHandler) List(c *gin.Context) {
	stocks, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list feed stocks", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching feed stock", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stocks)
}

type createFeedRequest struct {
	FeedType     string   `json:"feedType" binding:"required"`
	Quantity     *float64 `json:"quantity" binding:"required"`
	Unit         string   `json:"unit"`
	Supplier     string   `json:"supplier" binding:"required"`
	PurchaseDate string   `json:"purchaseDate" binding:"required"`
	ExpiryDate   string   `json:"expiryDate" binding:"required"`
	CostPerUnit  *float64 `json:"costPerUnit" binding:"required"`
}

// Create stores a new feed stock entry.
func (h *FeedHandler) Create(c *gin.Context) {
	var req createFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid feed stock payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "error": err.Error()})
		return
	}

	purchaseDate, err := models.ParseDate(req.PurchaseDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error adding feed stock", "error": err.Error()})
		return
	}
	expiryDate, err := models.ParseDate(req.ExpiryDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Error adding feed stock", "error": err.Error()})
		return
	}

	stock := models.FeedStock{
		FeedType:     req.FeedType,
		Quantity:     *req.Quantity,
		Unit:         req.Unit,
		Supplier:     req.Supplier,
		PurchaseDate: purchaseDate,
		ExpiryDate:   expiryDate,
		CostPerUnit:  *req.CostPerUnit,
	}

	stored, err := h.svc.Create(c.Request.Context(), stock)
	if err != nil {
		if verr, ok := models.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Error adding feed stock", "error": verr.Error()})
			return
		}
		h.logger.Error("failed to create feed stock", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding feed stock", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Feed stock added", "stock": stored})
}

type updateFeedRequest struct {
	FeedType     *string  `json:"feedType"`
	Quantity     *float64 `json:"quantity"`
	Unit         *string  `json:"unit"`
	Supplier     *string  `json:"supplier"`
	PurchaseDate *string  `json:"purchaseDate"`
	ExpiryDate   *string  `json:"expiryDate"`
	CostPerUnit  *float64 `json:"costPerUnit"`
}

// Update applies a partial update to an existing stock entry.
func (h *FeedHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req updateFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid feed update payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "error": err.Error()})
		return
	}

	update := models.FeedStockUpdate{
		FeedType:    req.FeedType,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Supplier:    req.Supplier,
		CostPerUnit: req.CostPerUnit,
	}

	if req.PurchaseDate != nil {
		date, err := models.ParseDate(*req.PurchaseDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating stock", "error": err.Error()})
			return
		}
		update.PurchaseDate = &date
	}
	if req.ExpiryDate != nil {
		date, err := models.ParseDate(*req.ExpiryDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating stock", "error": err.Error()})
			return
		}
		update.ExpiryDate = &date
	}

	updated, err := h.svc.Update(c.Request.Context(), id, update)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Stock not found"})
			return
		}
		if verr, ok := models.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Error updating stock", "error": verr.Error()})
			return
		}
		h.logger.Error("failed to update feed stock", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating stock", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Stock updated", "stock": updated})
}

// Alerts returns stock entries under the low-stock threshold.
func (h *FeedHandler) Alerts(c *gin.Context) {
	stocks, err := h.svc.LowStockAlerts(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to fetch low stock alerts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching alerts", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stocks)
}
