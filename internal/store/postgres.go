package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/psds-microservice/seeder/internal/models"
	"github.com/psds-microservice/seeder/pkg/constants"
)

// PostgresStore пишет напрямую в PostgreSQL через lib/pq
type PostgresStore struct {
	db    *sql.DB
	table string
}

func NewPostgresStore(db *sql.DB, table string) *PostgresStore {
	if table == "" {
		table = constants.TableUsers
	}
	return &PostgresStore{db: db, table: table}
}

func (s *PostgresStore) upsertQuery() string {
	return fmt.Sprintf(`INSERT INTO %s (email, full_name, role, is_active, password_hash)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (email) DO UPDATE SET
    full_name = EXCLUDED.full_name,
    role = EXCLUDED.role,
    is_active = EXCLUDED.is_active,
    password_hash = EXCLUDED.password_hash,
    updated_at = NOW()
RETURNING id, email, full_name, role, is_active, password_hash, created_at, updated_at`, pq.QuoteIdentifier(s.table))
}

func (s *PostgresStore) UpsertUser(ctx context.Context, u *models.User) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var (
		out       models.User
		createdAt time.Time
		updatedAt time.Time
	)
	err := s.db.QueryRowContext(ctx, s.upsertQuery(),
		u.Email,
		u.FullName,
		u.Role,
		u.IsActive,
		u.PasswordHash,
	).Scan(
		&out.ID,
		&out.Email,
		&out.FullName,
		&out.Role,
		&out.IsActive,
		&out.PasswordHash,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	out.CreatedAt = &createdAt
	out.UpdatedAt = &updatedAt
	return &out, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
