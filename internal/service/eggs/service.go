package eggs

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/poultry/internal/domain/models"
)

// Bounded recent windows read by list and analytics. Callers always see the
// head window, never the full history.
const (
	listWindow      = 50
	analyticsWindow = 30
)

// Store is the egg production persistence surface the service depends on.
type Store interface {
	Insert(ctx context.Context, record *models.EggProduction) (models.EggProduction, error)
	ListRecent(ctx context.Context, limit int) ([]models.EggProduction, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]models.EggProduction, error)
}

// Service exposes egg production record keeping and analytics.
type Service struct {
	store  Store
	logger *zap.Logger
}

// NewService wires a new egg production service instance.
func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// List returns the most recent records, newest date first.
func (s *Service) List(ctx context.Context) ([]models.EggProduction, error) {
	return s.store.ListRecent(ctx, listWindow)
}

// Create validates and stores a new production record.
func (s *Service) Create(ctx context.Context, record models.EggProduction) (models.EggProduction, error) {
	stored, err := s.store.Insert(ctx, &record)
	if err != nil {
		return models.EggProduction{}, err
	}

	s.logger.Info("egg production recorded",
		zap.Time("date", stored.Date),
		zap.Int("total_eggs", stored.TotalEggs))

	return stored, nil
}

// Analytics summarizes egg production over the bounded recent window.
type Analytics struct {
	TotalEggs   int    `json:"totalEggs"`
	TotalBroken int    `json:"totalBroken"`
	AvgPerDay   int    `json:"avgPerDay"`
	SuccessRate string `json:"successRate"`
}

// Analytics folds the recent window into production totals and a success
// rate. An empty window, or one with no eggs at all, yields a 0.0% rate
// rather than a division by zero.
func (s *Service) Analytics(ctx context.Context) (Analytics, error) {
	records, err := s.store.ListRecent(ctx, analyticsWindow)
	if err != nil {
		return Analytics{}, fmt.Errorf("load recent productions: %w", err)
	}

	var totalEggs, totalBroken int
	for _, record := range records {
		totalEggs += record.TotalEggs
		totalBroken += record.BrokenEggs
	}

	var avgPerDay int
	if len(records) > 0 {
		avgPerDay = int(math.Round(float64(totalEggs) / float64(len(records))))
	}

	return Analytics{
		TotalEggs:   totalEggs,
		TotalBroken: totalBroken,
		AvgPerDay:   avgPerDay,
		SuccessRate: SuccessRate(totalEggs, totalBroken),
	}, nil
}

// SuccessRate renders (total-broken)/total as a percentage with one decimal,
// defined as "0.0" when total is zero.
func SuccessRate(totalEggs, totalBroken int) string {
	if totalEggs == 0 {
		return "0.0"
	}
	rate := float64(totalEggs-totalBroken) / float64(totalEggs) * 100
	return fmt.Sprintf("%.1f", rate)
}
