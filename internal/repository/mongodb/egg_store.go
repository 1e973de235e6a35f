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

// EggStore persists egg production records.
type EggStore struct {
	coll *mongo.Collection
}

// Insert validates and stores a new production record. CreatedAt is stamped
// here; records are immutable afterwards.
func (s *EggStore) Insert(ctx context.Context, record *models.EggProduction) (models.EggProduction, error) {
	if err := record.Validate(); err != nil {
		return models.EggProduction{}, err
	}

	record.CreatedAt = time.Now()

	res, err := s.coll.InsertOne(ctx, record)
	if err != nil {
		return models.EggProduction{}, fmt.Errorf("insert egg production: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		record.ID = id
	}

	return *record, nil
}

// ListRecent returns at most limit records, newest date first.
func (s *EggStore) ListRecent(ctx context.Context, limit int) ([]models.EggProduction, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list egg productions: %w", err)
	}

	records := []models.EggProduction{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode egg productions: %w", err)
	}
	return records, nil
}

// FindByDateRange returns records with start <= date <= end.
func (s *EggStore) FindByDateRange(ctx context.Context, start, end time.Time) ([]models.EggProduction, error) {
	filter := bson.M{"date": bson.M{"$gte": start, "$lte": end}}

	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find egg productions in range: %w", err)
	}

	records := []models.EggProduction{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode egg productions: %w", err)
	}
	return records, nil
}
