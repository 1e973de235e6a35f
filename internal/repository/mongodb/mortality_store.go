package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/poultry/internal/domain/models"
)

// MortalityStore persists mortality records.
type MortalityStore struct {
	coll *mongo.Collection
}

// Insert validates and stores a new mortality record. Records are immutable
// after creation.
func (s *MortalityStore) Insert(ctx context.Context, record *models.Mortality) (models.Mortality, error) {
	if err := record.Validate(); err != nil {
		return models.Mortality{}, err
	}

	record.CreatedAt = time.Now()

	res, err := s.coll.InsertOne(ctx, record)
	if err != nil {
		return models.Mortality{}, fmt.Errorf("insert mortality record: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		record.ID = id
	}

	return *record, nil
}

// ListRecent returns at most limit records, newest date first.
func (s *MortalityStore) ListRecent(ctx context.Context, limit int) ([]models.Mortality, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list mortality records: %w", err)
	}

	records := []models.Mortality{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode mortality records: %w", err)
	}
	return records, nil
}

// FindByDateRange returns records with start <= date <= end.
func (s *MortalityStore) FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Mortality, error) {
	filter := bson.M{"date": bson.M{"$gte": start, "$lte": end}}

	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find mortality records in range: %w", err)
	}

	records := []models.Mortality{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode mortality records: %w", err)
	}
	return records, nil
}
