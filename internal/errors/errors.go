package errors

import "errors"

// Доменные ошибки. Команда (cmd) маппит их в код завершения процесса.
var (
	ErrConfigurationMissing = errors.New("configuration missing")
	ErrWriteFailure         = errors.New("write failure")
	ErrInvalidUser          = errors.New("invalid user")
)
