package mortality

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
	records []models.Mortality
}

func (f *fakeStore) Insert(_ context.Context, record *models.Mortality) (models.Mortality, error) {
	if err := record.Validate(); err != nil {
		return models.Mortality{}, err
	}
	record.ID = primitive.NewObjectID()
	record.CreatedAt = time.Now()
	f.records = append(f.records, *record)
	return *record, nil
}

func (f *fakeStore) ListRecent(_ context.Context, limit int) ([]models.Mortality, error) {
	out := append([]models.Mortality(nil), f.records...)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) FindByDateRange(_ context.Context, start, end time.Time) ([]models.Mortality, error) {
	out := []models.Mortality{}
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

// Regression guard: the total must accumulate over every record in the
// window, not collapse to the last element's count.
func TestAnalyticsTotalIsAccumulatingSum(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil)

	counts := []int{2, 1, 3}
	for i, count := range counts {
		_, err := svc.Create(context.Background(), models.Mortality{
			Date:     day(-i),
			Count:    count,
			AgeGroup: models.AgeGroupChick,
			Cause:    "Disease",
		})
		require.NoError(t, err)
	}

	summary, err := svc.Analytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, summary.TotalDeaths)
	assert.Equal(t, "1.2", summary.MortalityRate)
}

func TestAnalyticsByAgeGroup(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil)

	entries := []models.Mortality{
		{Date: day(0), Count: 2, AgeGroup: models.AgeGroupChick, Cause: "Disease"},
		{Date: day(-1), Count: 3, AgeGroup: models.AgeGroupChick, Cause: "Predator"},
		{Date: day(-2), Count: 1, AgeGroup: models.AgeGroupAdult, Cause: "Natural"},
	}
	for _, entry := range entries {
		_, err := svc.Create(context.Background(), entry)
		require.NoError(t, err)
	}

	summary, err := svc.Analytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, summary.TotalDeaths)
	assert.Equal(t, map[string]int{
		models.AgeGroupChick: 5,
		models.AgeGroupAdult: 1,
	}, summary.ByAgeGroup)
}

func TestAnalyticsEmptyWindow(t *testing.T) {
	svc := NewService(&fakeStore{}, nil)

	summary, err := svc.Analytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalDeaths)
	assert.Equal(t, "0.0", summary.MortalityRate)
	assert.Empty(t, summary.ByAgeGroup)
}

func TestCreateRejectsZeroCount(t *testing.T) {
	svc := NewService(&fakeStore{}, nil)

	_, err := svc.Create(context.Background(), models.Mortality{
		Date:     day(0),
		Count:    0,
		AgeGroup: models.AgeGroupChick,
		Cause:    "Disease",
	})
	require.Error(t, err)
	_, ok := models.AsValidationError(err)
	assert.True(t, ok)
}
