package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mamadbah2/poultry/internal/domain/models"
)

// UserStore is the account persistence surface the service depends on.
type UserStore interface {
	Insert(ctx context.Context, user *models.User) (models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
}

// Service verifies credentials and issues signed bearer credentials.
type Service struct {
	users  UserStore
	secret []byte
	logger *zap.Logger
}

// NewService wires a new auth service instance.
func NewService(users UserStore, secret string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{users: users, secret: []byte(secret), logger: logger}
}

// RegisterRequest carries the fields of a registration attempt.
type RegisterRequest struct {
	Username string
	Email    string
	Password string
	Role     string
}

// Session is the result of a successful register or login.
type Session struct {
	Token string
	User  models.PublicProfile
}

// Register creates an account with a hashed password and signs a credential
// for it. An existing username or email yields models.ErrDuplicateKey.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	existing, err := s.users.FindByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, models.ErrDuplicateKey
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
	}

	stored, err := s.users.Insert(ctx, user)
	if err != nil {
		// The unique indexes backstop the pre-check under concurrent registrations.
		return nil, err
	}

	token, err := SignToken(s.secret, stored.ID.Hex(), stored.Username, time.Now())
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("username", stored.Username), zap.String("role", stored.Role))

	return &Session{Token: token, User: stored.Public()}, nil
}

// Login verifies a username/password pair. Unknown users and wrong passwords
// both produce models.ErrInvalidCredentials so callers cannot tell which
// check failed.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	token, err := SignToken(s.secret, user.ID.Hex(), user.Username, time.Now())
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", zap.String("username", user.Username))

	return &Session{Token: token, User: user.Public()}, nil
}
