package cmd

import (
	"errors"

	apperrors "github.com/psds-microservice/seeder/internal/errors"
)

// Коды завершения процесса
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitConfigMissing = 2
)

// ExitCode маппит ошибку команды в код завершения
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, apperrors.ErrConfigurationMissing):
		return ExitConfigMissing
	default:
		return ExitFailure
	}
}
