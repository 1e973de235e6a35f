package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names, one per entity type.
const (
	eggCollection       = "egg_productions"
	feedCollection      = "feed_stocks"
	mortalityCollection = "mortalities"
	userCollection      = "users"
	snapshotCollection  = "daily_snapshots"
)

// Repository owns the MongoDB connection and hands out per-entity stores.
type Repository struct {
	client *mongo.Client
	dbName string
}

// NewRepository connects to MongoDB and verifies the connection.
func NewRepository(ctx context.Context, uri string, dbName string) (*Repository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Repository{client: client, dbName: dbName}, nil
}

// EnsureIndexes creates the unique indexes backing account identity fields.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	users := r.collection(userCollection)

	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}
	return nil
}

// Eggs returns the egg production store.
func (r *Repository) Eggs() *EggStore {
	return &EggStore{coll: r.collection(eggCollection)}
}

// Feed returns the feed stock store.
func (r *Repository) Feed() *FeedStore {
	return &FeedStore{coll: r.collection(feedCollection)}
}

// Mortality returns the mortality record store.
func (r *Repository) Mortality() *MortalityStore {
	return &MortalityStore{coll: r.collection(mortalityCollection)}
}

// Users returns the account store.
func (r *Repository) Users() *UserStore {
	return &UserStore{coll: r.collection(userCollection)}
}

// Snapshots returns the daily snapshot store.
func (r *Repository) Snapshots() *SnapshotStore {
	return &SnapshotStore{coll: r.collection(snapshotCollection)}
}

// Close closes the MongoDB connection.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func (r *Repository) collection(name string) *mongo.Collection {
	return r.client.Database(r.dbName).Collection(name)
}
