package cmd

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/psds-microservice/seeder/internal/config"
)

// newLogger: --debug — development-логгер, иначе production с уровнем и форматом из конфига
func newLogger(debug bool, cfg *config.Config) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}

	zcfg := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zcfg.Level = level
	if cfg.Logging.Format == "console" {
		zcfg.Encoding = "console"
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zcfg.Build()
}
