package eggs

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mamadbah2/poultry/internal/domain/models"
)

type fakeStore struct {
	records []models.EggProduction
}

func (f *fakeStore) Insert(_ context.Context, record *models.EggProduction) (models.EggProduction, error) {
	if err := record.Validate(); err != nil {
		return models.EggProduction{}, err
	}
	record.ID = primitive.NewObjectID()
	record.CreatedAt = time.Now()
	f.records = append(f.records, *record)
	return *record, nil
}

func (f *fakeStore) ListRecent(_ context.Context, limit int) ([]models.EggProduction, error) {
	out := append([]models.EggProduction(nil), f.records...)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) FindByDateRange(_ context.Context, start, end time.Time) ([]models.EggProduction, error) {
	out := []models.EggProduction{}
	for _, record := range f.records {
		if record.Date.Before(start) || record.Date.After(end) {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

func day(offset int) time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location()).AddDate(0, 0, offset)
}

func TestCreateRejectsNegativeTotals(t *testing.T) {
	svc := NewService(&fakeStore{}, nil)

	_, err := svc.Create(context.Background(), models.EggProduction{Date: day(0), TotalEggs: -1})
	require.Error(t, err)
	_, ok := models.AsValidationError(err)
	assert.True(t, ok, "negative totals should fail validation")
}

func TestAnalyticsEmptyWindow(t *testing.T) {
	svc := NewService(&fakeStore{}, nil)

	summary, err := svc.Analytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalEggs)
	assert.Equal(t, 0, summary.AvgPerDay)
	assert.Equal(t, "0.0", summary.SuccessRate, "an empty window must not divide by zero")
}

func TestAnalyticsSuccessRate(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil)

	_, err := svc.Create(context.Background(), models.EggProduction{Date: day(-1), TotalEggs: 60, BrokenEggs: 5})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), models.EggProduction{Date: day(0), TotalEggs: 40, BrokenEggs: 15})
	require.NoError(t, err)

	summary, err := svc.Analytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 100, summary.TotalEggs)
	assert.Equal(t, 20, summary.TotalBroken)
	assert.Equal(t, 50, summary.AvgPerDay)
	assert.Equal(t, "80.0", summary.SuccessRate)
}

func TestAnalyticsZeroEggWindow(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil)

	_, err := svc.Create(context.Background(), models.EggProduction{Date: day(0), TotalEggs: 0})
	require.NoError(t, err)

	summary, err := svc.Analytics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.0", summary.SuccessRate, "a window with zero eggs must report a 0.0 rate")
}

func TestListIsBoundedAndNewestFirst(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil)

	for i := 0; i < 60; i++ {
		_, err := svc.Create(context.Background(), models.EggProduction{Date: day(-i), TotalEggs: i})
		require.NoError(t, err)
	}

	records, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, records, 50)
	for i := 1; i < len(records); i++ {
		assert.False(t, records[i].Date.After(records[i-1].Date), "records must be date-descending")
	}
}
