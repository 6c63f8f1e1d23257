package cmd

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/templui/taskboard/internal/config"
	"github.com/templui/taskboard/internal/db"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(driver string, database *sqlx.DB) error {
				err := db.RunMigrations(database.DB, driver)
				if err != nil {
					return err
				}
				return printVersion(cmd, driver, database)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(driver string, database *sqlx.DB) error {
				err := db.MigrateDown(database.DB, driver)
				if err != nil {
					return err
				}
				return printVersion(cmd, driver, database)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(driver string, database *sqlx.DB) error {
				return printVersion(cmd, driver, database)
			})
		},
	})

	return cmd
}

func withDB(fn func(driver string, database *sqlx.DB) error) error {
	cfg := config.Load()

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close(database) }()

	return fn(cfg.DBDriver, database)
}

func printVersion(cmd *cobra.Command, driver string, database *sqlx.DB) error {
	version, err := db.Version(database.DB, driver)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)
	return err
}
