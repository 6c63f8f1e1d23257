package db

import "embed"

// migrationsFS holds the goose SQL migrations applied by RunMigrations.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS
