package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/poultry/internal/config"
	"github.com/mamadbah2/poultry/internal/domain/models"
	"github.com/mamadbah2/poultry/internal/service/dashboard"
	"github.com/mamadbah2/poultry/internal/service/feed"
	"github.com/mamadbah2/poultry/pkg/clients/notify"
)

// SnapshotStore persists the daily dashboard picture.
type SnapshotStore interface {
	SaveDailySnapshot(ctx context.Context, snapshot models.DailySnapshot) error
}

// Scheduler runs the daily snapshot and low-stock alert job.
type Scheduler struct {
	cron         *cron.Cron
	dashboardSvc *dashboard.Service
	feedSvc      *feed.Service
	snapshots    SnapshotStore
	notifier     notify.Client
	cfg          config.SchedulerConfig
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance. notifier may be nil when no
// alert webhook is configured.
func NewScheduler(cfg config.SchedulerConfig, dashboardSvc *dashboard.Service, feedSvc *feed.Service, snapshots SnapshotStore, notifier notify.Client, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:         cron.New(),
		dashboardSvc: dashboardSvc,
		feedSvc:      feedSvc,
		snapshots:    snapshots,
		notifier:     notifier,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.runDaily); err != nil {
		return fmt.Errorf("schedule daily job: %w", err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runDaily() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	s.saveSnapshot(ctx)
	s.sendLowStockAlerts(ctx)
}

func (s *Scheduler) saveSnapshot(ctx context.Context) {
	summary, err := s.dashboardSvc.GetStats(ctx)
	if err != nil {
		s.logger.Error("failed to compute daily snapshot", zap.Error(err))
		return
	}

	now := time.Now()
	snapshot := models.DailySnapshot{
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		Eggs:        summary.Stats.TotalEggs,
		FeedStock:   summary.Stats.FeedStock,
		Mortality:   summary.Stats.Mortality,
		ActiveBirds: summary.Stats.ActiveBirds,
		CreatedAt:   now,
	}

	if err := s.snapshots.SaveDailySnapshot(ctx, snapshot); err != nil {
		s.logger.Error("failed to save daily snapshot", zap.Error(err))
		return
	}

	s.logger.Info("daily snapshot saved", zap.Time("date", snapshot.Date))
}

func (s *Scheduler) sendLowStockAlerts(ctx context.Context) {
	if s.notifier == nil {
		return
	}

	stocks, err := s.feedSvc.LowStockAlerts(ctx)
	if err != nil {
		s.logger.Error("failed to load low stock alerts", zap.Error(err))
		return
	}
	if len(stocks) == 0 {
		return
	}

	items := make([]notify.Item, 0, len(stocks))
	for _, stock := range stocks {
		items = append(items, notify.Item{
			FeedType: stock.FeedType,
			Quantity: stock.Quantity,
			Unit:     stock.Unit,
			Supplier: stock.Supplier,
		})
	}

	payload := notify.Payload{
		Event:   "feed.low_stock",
		Message: fmt.Sprintf("%d feed stock entries are below the low-stock threshold", len(items)),
		Items:   items,
	}

	if err := s.notifier.Send(ctx, payload); err != nil {
		s.logger.Error("failed to send low stock alert", zap.Error(err))
		return
	}

	s.logger.Info("low stock alert sent", zap.Int("items", len(items)))
}
