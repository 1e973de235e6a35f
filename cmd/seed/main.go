package main

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mamadbah2/poultry/internal/config"
	"github.com/mamadbah2/poultry/internal/domain/models"
	"github.com/mamadbah2/poultry/internal/repository/mongodb"
	"github.com/mamadbah2/poultry/pkg/logger"
)

// Seeds the bootstrap admin account so a fresh deployment has a login.
func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo, err := mongodb.NewRepository(ctx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	if err := repo.EnsureIndexes(ctx); err != nil {
		baseLogger.Fatal("failed to create indexes", zap.Error(err))
	}

	users := repo.Users()

	if _, err := users.FindByUsername(ctx, "admin"); err == nil {
		baseLogger.Info("admin user already exists")
		return
	} else if !errors.Is(err, models.ErrNotFound) {
		baseLogger.Fatal("failed to check admin user", zap.Error(err))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		baseLogger.Fatal("failed to hash admin password", zap.Error(err))
	}

	admin := &models.User{
		Username: "admin",
		Email:    "admin@example.com",
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}

	if _, err := users.Insert(ctx, admin); err != nil {
		baseLogger.Fatal("failed to create admin user", zap.Error(err))
	}

	baseLogger.Info("admin user created", zap.String("username", "admin"))
}
