package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psds-microservice/seeder/internal/models"
	"github.com/psds-microservice/seeder/internal/store"
)

func openSQLite(t *testing.T, name string) *store.SQLiteStore {
	t.Helper()
	s, err := store.OpenSQLiteStore("file:"+name+"?mode=memory&cache=shared", "users")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStore_UpsertOverwrites(t *testing.T) {
	s := openSQLite(t, "sqlite_upsert")
	ctx := context.Background()

	first, err := s.UpsertUser(ctx, &models.User{Email: "admin@sh.com", FullName: "Admin", Role: "admin", IsActive: true, PasswordHash: "h1"})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := s.UpsertUser(ctx, &models.User{Email: "admin@sh.com", FullName: "Admin Two", Role: "super_admin", IsActive: false, PasswordHash: "h2"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Admin Two", second.FullName)
	assert.Equal(t, "super_admin", second.Role)
	assert.False(t, second.IsActive)
	assert.Equal(t, "h2", second.PasswordHash)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSQLiteStore_DistinctEmails(t *testing.T) {
	s := openSQLite(t, "sqlite_distinct")
	ctx := context.Background()

	for _, email := range []string{"a@sh.com", "b@sh.com", "c@sh.com"} {
		_, err := s.UpsertUser(ctx, &models.User{Email: email, Role: "student", PasswordHash: "h"})
		require.NoError(t, err)
	}

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
