package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/j-veylop/workload-dashboard-tui/internal/db"
)

// testEnv points configuration at a fresh SQLite path in a temp dir and
// returns that path. Tests using it cannot run in parallel.
func testEnv(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "workload.db")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_PATH", path)
	t.Setenv("DASHBOARD_TIMEZONE", "UTC")
	t.Setenv("COST_PER_CALL", "0.25")
	t.Setenv("WATCH_DATABASE", "false")
	t.Setenv("DESKTOP_NOTIFICATIONS", "false")
	t.Setenv("LOG_PATH", filepath.Join(dir, "wdt.log"))
	return path
}

// writeRows creates the schema at path and inserts the given rows.
func writeRows(t *testing.T, path string, data seedData) {
	t.Helper()

	ctx := context.Background()
	store, err := db.Open(ctx, db.Options{
		Driver:    db.DriverSQLite,
		DSN:       path,
		Location:  time.UTC,
		Bootstrap: true,
	})
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, insertSeed(ctx, store, data))
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func flag(v int) *int { return &v }
