package main

import (
	"manhour-tracker/internal/adapter/repository/mysql"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, gdb, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			if err := mysql.AutoMigrate(gdb); err != nil {
				return err
			}
			log.Info("schema migrated")
			return nil
		},
	}
}
