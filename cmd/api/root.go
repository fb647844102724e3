package main

import (
	"fmt"

	"manhour-tracker/internal/config"
	"manhour-tracker/internal/infrastructure/db"
	"manhour-tracker/internal/infrastructure/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newRootCmd() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:           "manhours",
		Short:         "Man-hours request tracker API",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			// a missing .env is fine, the environment may already be set
			_ = godotenv.Load(envFile)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file loaded before reading the environment")
	cmd.AddCommand(newServeCmd(), newMigrateCmd())
	return cmd
}

// bootstrap loads config, builds the logger and opens the entity store.
func bootstrap() (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("config: %w", err)
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("logger: %w", err)
	}
	gdb, err := db.OpenGorm(db.Options{
		Driver:   cfg.DBDriver,
		DSN:      cfg.DSN(),
		LogLevel: cfg.LogLevel,
		Log:      log,
	})
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, fmt.Errorf("db: %w", err)
	}
	return cfg, log, gdb, nil
}
