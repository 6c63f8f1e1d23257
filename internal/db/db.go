package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Init opens the store and verifies it is reachable.
// driver is a database/sql driver name: "sqlite" or "pgx".
func Init(driver, connection string) (*sqlx.DB, error) {
	// SQLite: create data directory if needed
	if driver == "sqlite" && !isMemory(connection) {
		dir := filepath.Dir(dataPath(connection))
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sqlx.Open(driver, connection)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	// Connection pool configuration (good defaults for all drivers)
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = db.PingContext(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("database connected", "driver", driver)
	return db, nil
}

func Close(db *sqlx.DB) error {
	if db != nil {
		return db.Close()
	}
	return nil
}

// dataPath strips the query string and file: scheme from a sqlite DSN.
func dataPath(connection string) string {
	path, _, _ := strings.Cut(connection, "?")
	return strings.TrimPrefix(path, "file:")
}

func isMemory(connection string) bool {
	return strings.Contains(connection, ":memory:") || strings.Contains(connection, "mode=memory")
}
