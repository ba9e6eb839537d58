package cmd

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/psds-microservice/seeder/internal/command"
	"github.com/psds-microservice/seeder/internal/config"
)

const (
	migrateUp   = "up"
	migrateDown = "down"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply (up) or roll back one (down) postgres migration",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{migrateUp, migrateDown},
	RunE:      runMigrate,
}

// migrateDirection — направление миграции из аргументов, по умолчанию up
func migrateDirection(args []string) string {
	if len(args) == 1 && args[0] == migrateDown {
		return migrateDown
	}
	return migrateUp
}

func runMigrate(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(flagConfig)
	if err != nil {
		return err
	}
	if err := cfg.ValidateMigrate(); err != nil {
		return err
	}

	direction := migrateDirection(args)
	switch direction {
	case migrateDown:
		err = command.MigrateDown(cfg.MigrationsURL(), cfg.DatabaseURL())
	default:
		err = command.MigrateUp(cfg.MigrationsURL(), cfg.DatabaseURL())
	}
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Printf("migrate %s: ok", direction)
	return nil
}
