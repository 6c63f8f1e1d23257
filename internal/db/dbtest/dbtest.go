// Package dbtest provides migrated in-memory SQLite databases for tests.
package dbtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/templui/taskboard/internal/db"
)

// New returns an isolated database with all migrations applied.
// It is closed automatically when the test finishes.
func New(t *testing.T) *sqlx.DB {
	t.Helper()

	name := strings.ReplaceAll(uuid.NewString(), "-", "")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)

	conn, err := db.Init("sqlite", dsn)
	require.NoError(t, err)
	// one connection keeps shared-cache table locks out of the way
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, db.RunMigrations(conn.DB, "sqlite"))
	return conn
}
