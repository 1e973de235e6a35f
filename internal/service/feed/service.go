package feed

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/poultry/internal/domain/models"
)

// LowStockThreshold is the quantity under which a stock entry raises an alert.
const LowStockThreshold = 100

// Store is the feed stock persistence surface the service depends on.
type Store interface {
	Insert(ctx context.Context, stock *models.FeedStock) (models.FeedStock, error)
	ListAll(ctx context.Context) ([]models.FeedStock, error)
	Update(ctx context.Context, id string, update models.FeedStockUpdate) (models.FeedStock, error)
	FindBelowQuantity(ctx context.Context, threshold float64) ([]models.FeedStock, error)
	FindByPurchaseRange(ctx context.Context, start, end time.Time) ([]models.FeedStock, error)
}

// Service exposes feed stock record keeping.
type Service struct {
	store  Store
	logger *zap.Logger
}

// NewService wires a new feed stock service instance.
func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// List returns every stock entry, most recently created first.
func (s *Service) List(ctx context.Context) ([]models.FeedStock, error) {
	return s.store.ListAll(ctx)
}

// Create validates and stores a new stock entry.
func (s *Service) Create(ctx context.Context, stock models.FeedStock) (models.FeedStock, error) {
	stored, err := s.store.Insert(ctx, &stock)
	if err != nil {
		return models.FeedStock{}, err
	}

	s.logger.Info("feed stock added",
		zap.String("feed_type", stored.FeedType),
		zap.Float64("quantity", stored.Quantity),
		zap.String("unit", stored.Unit))

	return stored, nil
}

// Update applies a partial update to an existing stock entry. An unknown id
// surfaces as models.ErrNotFound.
func (s *Service) Update(ctx context.Context, id string, update models.FeedStockUpdate) (models.FeedStock, error) {
	updated, err := s.store.Update(ctx, id, update)
	if err != nil {
		return models.FeedStock{}, err
	}

	s.logger.Info("feed stock updated", zap.String("id", id))
	return updated, nil
}

// LowStockAlerts returns the stock entries with quantity under the threshold.
func (s *Service) LowStockAlerts(ctx context.Context) ([]models.FeedStock, error) {
	return s.store.FindBelowQuantity(ctx, LowStockThreshold)
}
