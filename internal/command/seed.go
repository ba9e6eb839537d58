package command

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/psds-microservice/seeder/internal/config"
	"github.com/psds-microservice/seeder/internal/password"
	"github.com/psds-microservice/seeder/internal/seeder"
	"github.com/psds-microservice/seeder/internal/store"
)

// Seed открывает хранилище из конфига и записывает учётки по умолчанию
func Seed(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*seeder.Report, error) {
	s, err := store.New(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	defer func() {
		if err := s.Close(); err != nil {
			logger.Warn("Failed to close store", zap.Error(err))
		}
	}()

	return SeedStore(ctx, s, cfg, logger)
}

// SeedStore записывает учётки по умолчанию в уже открытое хранилище
func SeedStore(ctx context.Context, s store.UserStore, cfg *config.Config, logger *zap.Logger) (*seeder.Report, error) {
	hasher := password.NewHasher(cfg.Seed.BcryptCost)
	users := seeder.DefaultUsers()
	logger.Info("Seeding users",
		zap.String("driver", cfg.Store.Driver),
		zap.String("table", cfg.Store.Table),
		zap.Int("count", len(users)),
		zap.Int("bcrypt_cost", hasher.Cost()))

	return seeder.New(s, hasher, logger).Run(ctx, cfg.Seed.Password, users)
}
