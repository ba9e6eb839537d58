package cmd

import (
	"github.com/spf13/cobra"
)

var (
	flagDebug  bool
	flagConfig string
)

var rootCmd = &cobra.Command{
	Use:           "seeder",
	Short:         "Seeder: upsert administrative and test accounts into the users table",
	RunE:          runSeed, // по умолчанию — сиды
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute запускает корневую команду (Cobra CLI)
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "./config/config.yaml", "Path to config.yaml")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}
