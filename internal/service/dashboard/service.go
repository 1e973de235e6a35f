package dashboard

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/poultry/internal/domain/models"
	"github.com/mamadbah2/poultry/internal/service/eggs"
	"github.com/mamadbah2/poultry/internal/service/feed"
	"github.com/mamadbah2/poultry/internal/service/mortality"
)

// Aggregation windows.
const (
	eggWindowDays       = 7
	mortalityWindowDays = 30
	chartDays           = 7
)

// chartFeedPlaceholder is the fixed per-day feed figure on the chart; feed
// consumption is not tracked per day.
const chartFeedPlaceholder = 120

// Service combines recent slices of all three record types into a single
// statistics payload.
type Service struct {
	eggStore       eggs.Store
	feedStore      feed.Store
	mortalityStore mortality.Store
	logger         *zap.Logger
}

// NewService wires a new dashboard aggregator instance.
func NewService(eggStore eggs.Store, feedStore feed.Store, mortalityStore mortality.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		eggStore:       eggStore,
		feedStore:      feedStore,
		mortalityStore: mortalityStore,
		logger:         logger,
	}
}

// Stats is the headline figure block.
type Stats struct {
	TotalEggs   int     `json:"totalEggs"`
	FeedStock   float64 `json:"feedStock"`
	Mortality   int     `json:"mortality"`
	ActiveBirds int     `json:"activeBirds"`
}

// ChartPoint is one day's entry on the 7-day series. Date carries the short
// weekday name.
type ChartPoint struct {
	Date string `json:"date"`
	Eggs int    `json:"eggs"`
	Feed int    `json:"feed"`
}

// Summary is the full dashboard payload.
type Summary struct {
	Stats     Stats        `json:"stats"`
	ChartData []ChartPoint `json:"chartData"`
}

// GetStats assembles the dashboard: a 7-day egg total, the unbounded feed
// stock sum, a 30-day mortality sum, the derived active-bird count, and a
// 7-entry chart series ordered oldest day first.
func (s *Service) GetStats(ctx context.Context) (Summary, error) {
	now := time.Now()

	weekAgo := now.AddDate(0, 0, -eggWindowDays)
	eggRecords, err := s.eggStore.FindByDateRange(ctx, weekAgo, now)
	if err != nil {
		return Summary{}, fmt.Errorf("load weekly egg productions: %w", err)
	}
	totalEggs := 0
	for _, record := range eggRecords {
		totalEggs += record.TotalEggs
	}

	stocks, err := s.feedStore.ListAll(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("load feed stocks: %w", err)
	}
	var totalFeedStock float64
	for _, stock := range stocks {
		totalFeedStock += stock.Quantity
	}

	monthAgo := now.AddDate(0, 0, -mortalityWindowDays)
	mortalityRecords, err := s.mortalityStore.FindByDateRange(ctx, monthAgo, now)
	if err != nil {
		return Summary{}, fmt.Errorf("load monthly mortality records: %w", err)
	}
	totalMortality := 0
	for _, record := range mortalityRecords {
		totalMortality += record.Count
	}

	chartData, err := s.chartSeries(ctx, now)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Stats: Stats{
			TotalEggs:   totalEggs,
			FeedStock:   totalFeedStock,
			Mortality:   totalMortality,
			ActiveBirds: models.FlockSize - totalMortality,
		},
		ChartData: chartData,
	}, nil
}

// chartSeries issues one query per day, from 6 days ago through today. Day
// boundaries are local midnight to midnight.
func (s *Service) chartSeries(ctx context.Context, now time.Time) ([]ChartPoint, error) {
	series := make([]ChartPoint, 0, chartDays)

	for i := chartDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)

		records, err := s.eggStore.FindByDateRange(ctx, dayStart, dayEnd)
		if err != nil {
			return nil, fmt.Errorf("load productions for %s: %w", dayStart.Format("2006-01-02"), err)
		}

		dayEggs := 0
		for _, record := range records {
			dayEggs += record.TotalEggs
		}

		series = append(series, ChartPoint{
			Date: dayStart.Format("Mon"),
			Eggs: dayEggs,
			Feed: chartFeedPlaceholder,
		})
	}

	return series, nil
}
