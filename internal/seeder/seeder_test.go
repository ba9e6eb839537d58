package seeder_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/psds-microservice/seeder/internal/errors"
	"github.com/psds-microservice/seeder/internal/models"
	"github.com/psds-microservice/seeder/internal/password"
	"github.com/psds-microservice/seeder/internal/seeder"
	"github.com/psds-microservice/seeder/internal/store"
)

const seedPassword = "Password123!"

// memoryStore — in-memory таблица users с upsert по email
type memoryStore struct {
	mu     sync.Mutex
	rows   map[string]*models.User
	failOn map[string]error
	calls  []string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{rows: make(map[string]*models.User), failOn: make(map[string]error)}
}

func (m *memoryStore) UpsertUser(_ context.Context, u *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, u.Email)
	if err, ok := m.failOn[u.Email]; ok {
		return nil, err
	}
	row := *u
	m.rows[u.Email] = &row
	out := row
	return &out, nil
}

func (m *memoryStore) Close() error { return nil }

var _ store.UserStore = (*memoryStore)(nil)

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) { return "", errors.New("hash failed") }

func newSeeder(s store.UserStore) (*seeder.Seeder, *observer.ObservedLogs, *password.Hasher) {
	core, logs := observer.New(zapcore.InfoLevel)
	hasher := password.NewHasher(bcrypt.MinCost)
	return seeder.New(s, hasher, zap.New(core)), logs, hasher
}

func TestRun_DefaultUsers(t *testing.T) {
	ms := newMemoryStore()
	sd, logs, hasher := newSeeder(ms)

	report, err := sd.Run(context.Background(), seedPassword, seeder.DefaultUsers())
	require.NoError(t, err)
	require.True(t, report.OK())
	require.Len(t, report.Succeeded, 3)

	expected := map[string]string{
		"superadmin@sh.com": "super_admin",
		"admin@sh.com":      "admin",
		"learner@sh.com":    "student",
	}
	require.Len(t, ms.rows, 3)

	var sharedHash string
	for email, role := range expected {
		row, ok := ms.rows[email]
		require.True(t, ok, email)
		assert.Equal(t, role, row.Role)
		assert.True(t, row.IsActive)
		assert.True(t, hasher.Verify(row.PasswordHash, seedPassword))
		if sharedHash == "" {
			sharedHash = row.PasswordHash
		}
		assert.Equal(t, sharedHash, row.PasswordHash, "hash is computed once per run")
	}

	// записи пишутся по порядку определения
	assert.Equal(t, []string{"superadmin@sh.com", "admin@sh.com", "learner@sh.com"}, ms.calls)
	assert.Equal(t, 3, logs.FilterMessage("User seeded").Len())
	assert.Equal(t, 0, logs.FilterMessage("User seed failed").Len())
}

func TestRun_Idempotent(t *testing.T) {
	ms := newMemoryStore()
	sd, _, _ := newSeeder(ms)

	_, err := sd.Run(context.Background(), seedPassword, seeder.DefaultUsers())
	require.NoError(t, err)
	firstHash := ms.rows["admin@sh.com"].PasswordHash

	_, err = sd.Run(context.Background(), seedPassword, seeder.DefaultUsers())
	require.NoError(t, err)

	assert.Len(t, ms.rows, 3)
	assert.NotEqual(t, firstHash, ms.rows["admin@sh.com"].PasswordHash, "second run overwrites the row")
}

func TestRun_LowercasesEmail(t *testing.T) {
	ms := newMemoryStore()
	sd, logs, _ := newSeeder(ms)

	_, err := sd.Run(context.Background(), seedPassword, []seeder.UserSeed{
		{Email: "Admin@SH.com", FullName: "Admin", Role: "admin", IsActive: true},
	})
	require.NoError(t, err)

	_, ok := ms.rows["admin@sh.com"]
	assert.True(t, ok)
	assert.Len(t, ms.rows, 1)
	entry := logs.FilterMessage("User seeded").All()[0]
	assert.Equal(t, "admin@sh.com", entry.ContextMap()["email"])
	assert.Equal(t, "admin", entry.ContextMap()["role"])
}

func TestRun_PartialFailure(t *testing.T) {
	ms := newMemoryStore()
	ms.failOn["admin@sh.com"] = errors.New("store unavailable")
	sd, logs, _ := newSeeder(ms)

	report, err := sd.Run(context.Background(), seedPassword, seeder.DefaultUsers())
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrWriteFailure))
	assert.EqualError(t, err, "write failure: 1 of 3 users failed")

	require.NotNil(t, report)
	assert.False(t, report.OK())
	assert.Len(t, report.Succeeded, 2)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, "admin@sh.com", report.Failed[0].Email)

	// батч продолжается после ошибки
	assert.Equal(t, []string{"superadmin@sh.com", "admin@sh.com", "learner@sh.com"}, ms.calls)
	assert.Equal(t, 2, logs.FilterMessage("User seeded").Len())
	failed := logs.FilterMessage("User seed failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "store unavailable", failed[0].ContextMap()["error"])
}

func TestRun_InvalidUserIsRecordFailure(t *testing.T) {
	ms := newMemoryStore()
	sd, _, _ := newSeeder(ms)

	report, err := sd.Run(context.Background(), seedPassword, []seeder.UserSeed{
		{Email: "not-an-email", Role: "admin"},
		{Email: "learner@sh.com", Role: "student", IsActive: true},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrWriteFailure))
	require.Len(t, report.Failed, 1)
	assert.True(t, errors.Is(report.Failed[0].Err, apperrors.ErrInvalidUser))
	assert.Len(t, report.Succeeded, 1)
	assert.Equal(t, []string{"learner@sh.com"}, ms.calls)
}

func TestRun_HashErrorAbortsBeforeWrites(t *testing.T) {
	ms := newMemoryStore()
	sd := seeder.New(ms, failingHasher{}, zap.NewNop())

	report, err := sd.Run(context.Background(), seedPassword, seeder.DefaultUsers())
	assert.Nil(t, report)
	assert.EqualError(t, err, "hash failed")
	assert.Empty(t, ms.calls)
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "admin@sh.com", seeder.NormalizeEmail("  Admin@SH.com "))
}
