package store

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/psds-microservice/seeder/internal/config"
	"github.com/psds-microservice/seeder/internal/database"
	"github.com/psds-microservice/seeder/internal/models"
	"github.com/psds-microservice/seeder/pkg/constants"
)

// UserStore — хранилище пользователей с upsert по email
type UserStore interface {
	// UpsertUser вставляет или перезаписывает строку с тем же email и возвращает записанную строку
	UpsertUser(ctx context.Context, u *models.User) (*models.User, error)
	Close() error
}

// New создаёт хранилище по cfg.Store.Driver
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (UserStore, error) {
	switch cfg.Store.Driver {
	case constants.StoreDriverREST:
		logger.Debug("Using REST store", zap.String("url", cfg.Store.URL), zap.String("table", cfg.Store.Table))
		return NewRESTStore(cfg.Store.URL, cfg.Store.ServiceKey, cfg.Store.Table,
			time.Duration(cfg.Store.TimeoutSec)*time.Second), nil
	case constants.StoreDriverPostgres:
		db, err := database.Open(ctx, cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("db: %w", err)
		}
		logger.Debug("Using postgres store", zap.String("host", cfg.Database.Host), zap.String("table", cfg.Store.Table))
		return NewPostgresStore(db, cfg.Store.Table), nil
	case constants.StoreDriverSQLite:
		logger.Debug("Using sqlite store", zap.String("path", cfg.SQLite.Path), zap.String("table", cfg.Store.Table))
		return OpenSQLiteStore(cfg.SQLite.Path, cfg.Store.Table)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
