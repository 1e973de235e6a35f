package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/poultry/internal/config"
	"github.com/mamadbah2/poultry/internal/domain/models"
	"github.com/mamadbah2/poultry/internal/service/dashboard"
	"github.com/mamadbah2/poultry/internal/service/feed"
	"github.com/mamadbah2/poultry/pkg/clients/notify"
)

type fakeEggStore struct {
	records []models.EggProduction
}

func (f *fakeEggStore) Insert(_ context.Context, record *models.EggProduction) (models.EggProduction, error) {
	return *record, nil
}

func (f *fakeEggStore) ListRecent(_ context.Context, limit int) ([]models.EggProduction, error) {
	return f.records, nil
}

func (f *fakeEggStore) FindByDateRange(_ context.Context, start, end time.Time) ([]models.EggProduction, error) {
	out := []models.EggProduction{}
	for _, record := range f.records {
		if record.Date.Before(start) || record.Date.After(end) {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

type fakeFeedStore struct {
	stocks []models.FeedStock
}

func (f *fakeFeedStore) Insert(_ context.Context, stock *models.FeedStock) (models.FeedStock, error) {
	return *stock, nil
}

func (f *fakeFeedStore) ListAll(_ context.Context) ([]models.FeedStock, error) {
	return f.stocks, nil
}

func (f *fakeFeedStore) Update(_ context.Context, id string, update models.FeedStockUpdate) (models.FeedStock, error) {
	return models.FeedStock{}, models.ErrNotFound
}

func (f *fakeFeedStore) FindBelowQuantity(_ context.Context, threshold float64) ([]models.FeedStock, error) {
	out := []models.FeedStock{}
	for _, stock := range f.stocks {
		if stock.Quantity < threshold {
			out = append(out, stock)
		}
	}
	return out, nil
}

func (f *fakeFeedStore) FindByPurchaseRange(_ context.Context, start, end time.Time) ([]models.FeedStock, error) {
	return f.stocks, nil
}

type fakeMortalityStore struct {
	records []models.Mortality
}

func (f *fakeMortalityStore) Insert(_ context.Context, record *models.Mortality) (models.Mortality, error) {
	return *record, nil
}

func (f *fakeMortalityStore) ListRecent(_ context.Context, limit int) ([]models.Mortality, error) {
	return f.records, nil
}

func (f *fakeMortalityStore) FindByDateRange(_ context.Context, start, end time.Time) ([]models.Mortality, error) {
	out := []models.Mortality{}
	for _, record := range f.records {
		if record.Date.Before(start) || record.Date.After(end) {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

type fakeSnapshotStore struct {
	snapshots []models.DailySnapshot
}

func (f *fakeSnapshotStore) SaveDailySnapshot(_ context.Context, snapshot models.DailySnapshot) error {
	f.snapshots = append(f.snapshots, snapshot)
	return nil
}

type fakeNotifier struct {
	payloads []notify.Payload
}

func (f *fakeNotifier) Send(_ context.Context, payload notify.Payload) error {
	f.payloads = append(f.payloads, payload)
	return nil
}

func newTestScheduler(eggStore *fakeEggStore, feedStore *fakeFeedStore, mortalityStore *fakeMortalityStore, snapshots *fakeSnapshotStore, notifier notify.Client) *Scheduler {
	dashboardSvc := dashboard.NewService(eggStore, feedStore, mortalityStore, nil)
	feedSvc := feed.NewService(feedStore, nil)
	cfg := config.SchedulerConfig{CronSchedule: "0 21 * * *"}
	return NewScheduler(cfg, dashboardSvc, feedSvc, snapshots, notifier, nil)
}

func TestDailyJobSavesSnapshot(t *testing.T) {
	now := time.Now()
	eggStore := &fakeEggStore{records: []models.EggProduction{
		{Date: now, TotalEggs: 10},
		{Date: now.AddDate(0, 0, -1), TotalEggs: 15},
	}}
	feedStore := &fakeFeedStore{stocks: []models.FeedStock{
		{FeedType: "Layer Mash", Quantity: 130},
		{FeedType: "Starter Feed", Quantity: 100},
	}}
	mortalityStore := &fakeMortalityStore{records: []models.Mortality{
		{Date: now, Count: 3},
	}}
	snapshots := &fakeSnapshotStore{}

	sched := newTestScheduler(eggStore, feedStore, mortalityStore, snapshots, nil)
	sched.runDaily()

	require.Len(t, snapshots.snapshots, 1)
	snapshot := snapshots.snapshots[0]

	assert.Equal(t, 25, snapshot.Eggs)
	assert.Equal(t, 230.0, snapshot.FeedStock)
	assert.Equal(t, 3, snapshot.Mortality)
	assert.Equal(t, models.FlockSize-3, snapshot.ActiveBirds)

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	assert.Equal(t, midnight, snapshot.Date)
	assert.False(t, snapshot.CreatedAt.IsZero())
}

func TestDailyJobSendsLowStockAlert(t *testing.T) {
	feedStore := &fakeFeedStore{stocks: []models.FeedStock{
		{FeedType: "Layer Mash", Quantity: 80, Unit: models.UnitKg, Supplier: "AgroSupplies"},
		{FeedType: "Starter Feed", Quantity: 150, Unit: models.UnitKg, Supplier: "AgroSupplies"},
	}}
	notifier := &fakeNotifier{}

	sched := newTestScheduler(&fakeEggStore{}, feedStore, &fakeMortalityStore{}, &fakeSnapshotStore{}, notifier)
	sched.runDaily()

	require.Len(t, notifier.payloads, 1)
	payload := notifier.payloads[0]

	assert.Equal(t, "feed.low_stock", payload.Event)
	require.Len(t, payload.Items, 1)
	assert.Equal(t, "Layer Mash", payload.Items[0].FeedType)
	assert.Equal(t, 80.0, payload.Items[0].Quantity)
}

func TestDailyJobSkipsAlertWhenStockIsHealthy(t *testing.T) {
	feedStore := &fakeFeedStore{stocks: []models.FeedStock{
		{FeedType: "Layer Mash", Quantity: 500},
	}}
	notifier := &fakeNotifier{}

	sched := newTestScheduler(&fakeEggStore{}, feedStore, &fakeMortalityStore{}, &fakeSnapshotStore{}, notifier)
	sched.runDaily()

	assert.Empty(t, notifier.payloads)
}

func TestDailyJobWithoutNotifier(t *testing.T) {
	feedStore := &fakeFeedStore{stocks: []models.FeedStock{
		{FeedType: "Layer Mash", Quantity: 10},
	}}
	snapshots := &fakeSnapshotStore{}

	sched := newTestScheduler(&fakeEggStore{}, feedStore, &fakeMortalityStore{}, snapshots, nil)
	sched.runDaily()

	require.Len(t, snapshots.snapshots, 1, "the snapshot is saved even when no webhook is configured")
}
