package mortality

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/poultry/internal/domain/models"
)

// Bounded recent windows read by list and analytics.
const (
	listWindow      = 50
	analyticsWindow = 30
)

// Store is the mortality persistence surface the service depends on.
type Store interface {
	Insert(ctx context.Context, record *models.Mortality) (models.Mortality, error)
	ListRecent(ctx context.Context, limit int) ([]models.Mortality, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Mortality, error)
}

// Service exposes mortality record keeping and analytics.
type Service struct {
	store  Store
	logger *zap.Logger
}

// NewService wires a new mortality service instance.
func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// List returns the most recent records, newest date first.
func (s *Service) List(ctx context.Context) ([]models.Mortality, error) {
	return s.store.ListRecent(ctx, listWindow)
}

// Create validates and stores a new mortality record.
func (s *Service) Create(ctx context.Context, record models.Mortality) (models.Mortality, error) {
	stored, err := s.store.Insert(ctx, &record)
	if err != nil {
		return models.Mortality{}, err
	}

	s.logger.Info("mortality recorded",
		zap.Time("date", stored.Date),
		zap.Int("count", stored.Count),
		zap.String("age_group", stored.AgeGroup))

	return stored, nil
}

// Analytics summarizes losses over the bounded recent window.
type Analytics struct {
	TotalDeaths   int            `json:"totalDeaths"`
	ByAgeGroup    map[string]int `json:"byAgeGroup"`
	MortalityRate string         `json:"mortalityRate"`
}

// Analytics folds the recent window into a death total, a per-age-group
// breakdown, and a rate against the fixed flock size. The total is an
// accumulating sum over every record in the window.
func (s *Service) Analytics(ctx context.Context) (Analytics, error) {
	records, err := s.store.ListRecent(ctx, analyticsWindow)
	if err != nil {
		return Analytics{}, fmt.Errorf("load recent mortality records: %w", err)
	}

	totalDeaths := 0
	byAgeGroup := map[string]int{}
	for _, record := range records {
		totalDeaths += record.Count
		byAgeGroup[record.AgeGroup] += record.Count
	}

	rate := float64(totalDeaths) / float64(models.FlockSize) * 100

	return Analytics{
		TotalDeaths:   totalDeaths,
		ByAgeGroup:    byAgeGroup,
		MortalityRate: fmt.Sprintf("%.1f", rate),
	}, nil
}
