package seeder

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/psds-microservice/seeder/internal/errors"
	"github.com/psds-microservice/seeder/internal/models"
	"github.com/psds-microservice/seeder/internal/store"
)

// Hasher считает хэш общего пароля
type Hasher interface {
	Hash(plain string) (string, error)
}

// Failure — запись, которую не удалось записать
type Failure struct {
	Email string
	Err   error
}

// Report — итог прогона
type Report struct {
	Succeeded []*models.User
	Failed    []Failure
}

// OK — все записи записаны
func (r *Report) OK() bool {
	return len(r.Failed) == 0
}

// Seeder последовательно upsert'ит учётки в хранилище.
// Ошибка одной записи не прерывает батч, но делает прогон неуспешным.
type Seeder struct {
	store    store.UserStore
	hasher   Hasher
	logger   *zap.Logger
	validate *validator.Validate
}

func New(s store.UserStore, hasher Hasher, logger *zap.Logger) *Seeder {
	return &Seeder{
		store:    s,
		hasher:   hasher,
		logger:   logger,
		validate: validator.New(),
	}
}

// Run хэширует пароль один раз и пишет seeds по одной записи.
// Возвращает ErrWriteFailure, если хотя бы одна запись не записана.
func (s *Seeder) Run(ctx context.Context, password string, seeds []UserSeed) (*Report, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for _, seed := range seeds {
		u := &models.User{
			Email:        NormalizeEmail(seed.Email),
			FullName:     seed.FullName,
			Role:         seed.Role,
			IsActive:     seed.IsActive,
			PasswordHash: hash,
		}

		written, err := s.upsert(ctx, u)
		if err != nil {
			s.logger.Error("User seed failed", zap.String("email", u.Email), zap.Error(err))
			report.Failed = append(report.Failed, Failure{Email: u.Email, Err: err})
			continue
		}
		s.logger.Info("User seeded", zap.String("email", written.Email), zap.String("role", written.Role))
		report.Succeeded = append(report.Succeeded, written)
	}

	if !report.OK() {
		return report, fmt.Errorf("%w: %d of %d users failed", apperrors.ErrWriteFailure, len(report.Failed), len(seeds))
	}
	return report, nil
}

func (s *Seeder) upsert(ctx context.Context, u *models.User) (*models.User, error) {
	if err := s.validate.Struct(u); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidUser, err)
	}
	return s.store.UpsertUser(ctx, u)
}
