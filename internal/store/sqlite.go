package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/psds-microservice/seeder/internal/models"
	"github.com/psds-microservice/seeder/pkg/constants"
)

// SQLiteStore — локальное хранилище на GORM + SQLite (разработка и тесты)
type SQLiteStore struct {
	db    *gorm.DB
	table string
}

// OpenSQLiteStore открывает (или создаёт) файл базы и мигрирует таблицу пользователей
func OpenSQLiteStore(path, table string) (*SQLiteStore, error) {
	if table == "" {
		table = constants.TableUsers
	}
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := gdb.Table(table).AutoMigrate(&models.User{}); err != nil {
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return &SQLiteStore{db: gdb, table: table}, nil
}

func (s *SQLiteStore) UpsertUser(ctx context.Context, u *models.User) (*models.User, error) {
	row := *u
	if row.ID == "" {
		row.ID = uuid.NewString()
	}

	err := s.db.WithContext(ctx).Table(s.table).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: constants.ConflictKeyEmail}},
		DoUpdates: clause.AssignmentColumns([]string{"full_name", "role", "is_active", "password_hash", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}

	// при конфликте id в row — новый uuid, а в таблице остаётся прежний
	var out models.User
	if err := s.db.WithContext(ctx).Table(s.table).Where("email = ?", row.Email).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// Count возвращает число строк в таблице
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Table(s.table).Count(&n).Error
	return n, err
}

func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
