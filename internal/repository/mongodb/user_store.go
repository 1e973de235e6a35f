package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mamadbah2/poultry/internal/domain/models"
)

// UserStore persists farm staff accounts.
type UserStore struct {
	coll *mongo.Collection
}

// Insert validates and stores a new account. A username or email collision
// with the unique indexes surfaces as models.ErrDuplicateKey so callers can
// distinguish it from a generic validation failure.
func (s *UserStore) Insert(ctx context.Context, user *models.User) (models.User, error) {
	if err := user.Validate(); err != nil {
		return models.User{}, err
	}

	user.CreatedAt = time.Now()

	res, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, fmt.Errorf("insert user: %w", models.ErrDuplicateKey)
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}

	return *user, nil
}

// FindByUsername looks up an account by username. Absence surfaces as
// models.ErrNotFound.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &user, nil
}

// FindByUsernameOrEmail matches either identity field, for registration
// conflict pre-checks.
func (s *UserStore) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}}

	var user models.User
	err := s.coll.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("find user by username or email: %w", err)
	}
	return &user, nil
}
