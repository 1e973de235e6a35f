package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mamadbah2/poultry/internal/domain/models"
)

// SnapshotStore persists daily dashboard snapshots.
type SnapshotStore struct {
	coll *mongo.Collection
}

// SaveDailySnapshot stores one snapshot document.
func (s *SnapshotStore) SaveDailySnapshot(ctx context.Context, snapshot models.DailySnapshot) error {
	if _, err := s.coll.InsertOne(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to insert daily snapshot: %w", err)
	}
	return nil
}
