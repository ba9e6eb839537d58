package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/psds-microservice/seeder/internal/command"
	"github.com/psds-microservice/seeder/internal/config"
)

var seedPassword string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Upsert the default users (idempotent, keyed by email)",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedPassword, "password", "", "Shared password for seeded users (overrides SEED_PASSWORD)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	// до любых сетевых вызовов
	cfg, err := config.LoadSeedConfig(flagConfig, config.WithSeedPassword(seedPassword))
	if err != nil {
		reportConfigError(err)
		return err
	}

	logger, err := newLogger(flagDebug, cfg)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	report, err := command.Seed(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	logger.Info("Seed finished", zap.Int("succeeded", len(report.Succeeded)))
	log.Println("seed: ok")
	return nil
}

// reportConfigError пишет ошибку конфигурации логгером с настройками по умолчанию
func reportConfigError(err error) {
	logger, lerr := newLogger(flagDebug, config.GetDefaultConfig())
	if lerr != nil {
		log.Printf("configuration error: %v", err)
		return
	}
	logger.Error("Configuration error", zap.Error(err))
	_ = logger.Sync()
}
