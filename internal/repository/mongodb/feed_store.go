package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/poultry/internal/domain/models"
)

// FeedStore persists feed stock records.
type FeedStore struct {
	coll *mongo.Collection
}

// Insert validates and stores a new feed stock entry.
func (s *FeedStore) Insert(ctx context.Context, stock *models.FeedStock) (models.FeedStock, error) {
	if err := stock.Validate(); err != nil {
		return models.FeedStock{}, err
	}

	stock.CreatedAt = time.Now()

	res, err := s.coll.InsertOne(ctx, stock)
	if err != nil {
		return models.FeedStock{}, fmt.Errorf("insert feed stock: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		stock.ID = id
	}

	return *stock, nil
}

// ListAll returns every stock entry, most recently created first.
func (s *FeedStore) ListAll(ctx context.Context) ([]models.FeedStock, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list feed stocks: %w", err)
	}

	stocks := []models.FeedStock{}
	if err := cursor.All(ctx, &stocks); err != nil {
		return nil, fmt.Errorf("decode feed stocks: %w", err)
	}
	return stocks, nil
}

// Update applies a validated partial update and returns the updated record.
// Concurrent updates race with last-write-wins semantics.
func (s *FeedStore) Update(ctx context.Context, id string, update models.FeedStockUpdate) (models.FeedStock, error) {
	if err := update.Validate(); err != nil {
		return models.FeedStock{}, err
	}

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.FeedStock{}, models.ErrNotFound
	}

	set := bson.M{}
	if update.FeedType != nil {
		set["feedType"] = *update.FeedType
	}
	if update.Quantity != nil {
		set["quantity"] = *update.Quantity
	}
	if update.Unit != nil {
		set["unit"] = *update.Unit
	}
	if update.Supplier != nil {
		set["supplier"] = *update.Supplier
	}
	if update.PurchaseDate != nil {
		set["purchaseDate"] = *update.PurchaseDate
	}
	if update.ExpiryDate != nil {
		set["expiryDate"] = *update.ExpiryDate
	}
	if update.CostPerUnit != nil {
		set["costPerUnit"] = *update.CostPerUnit
	}

	// MongoDB rejects an empty $set; a body with no fields reads back the
	// record unchanged instead.
	if len(set) == 0 {
		var existing models.FeedStock
		err := s.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&existing)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return models.FeedStock{}, models.ErrNotFound
			}
			return models.FeedStock{}, fmt.Errorf("find feed stock %s: %w", id, err)
		}
		return existing, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.FeedStock
	err = s.coll.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.FeedStock{}, models.ErrNotFound
		}
		return models.FeedStock{}, fmt.Errorf("update feed stock %s: %w", id, err)
	}

	return updated, nil
}

// FindBelowQuantity returns stocks with quantity strictly under the threshold.
func (s *FeedStore) FindBelowQuantity(ctx context.Context, threshold float64) ([]models.FeedStock, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"quantity": bson.M{"$lt": threshold}})
	if err != nil {
		return nil, fmt.Errorf("find low feed stocks: %w", err)
	}

	stocks := []models.FeedStock{}
	if err := cursor.All(ctx, &stocks); err != nil {
		return nil, fmt.Errorf("decode feed stocks: %w", err)
	}
	return stocks, nil
}

// FindByPurchaseRange returns stocks purchased within start <= date <= end.
func (s *FeedStore) FindByPurchaseRange(ctx context.Context, start, end time.Time) ([]models.FeedStock, error) {
	filter := bson.M{"purchaseDate": bson.M{"$gte": start, "$lte": end}}

	cursor, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find feed stocks in range: %w", err)
	}

	stocks := []models.FeedStock{}
	if err := cursor.All(ctx, &stocks); err != nil {
		return nil, fmt.Errorf("decode feed stocks: %w", err)
	}
	return stocks, nil
}
