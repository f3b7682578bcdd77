// Package db manages the connection to the record store holding the
// ai_response, model_create and photo_upload tables.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Import modernc.org/sqlite as a blank import to register the driver
	_ "modernc.org/sqlite"
	// mysql driver
	_ "github.com/go-sql-driver/mysql"
)

// Supported drivers.
const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Options configures a record store connection.
type Options struct {
	// Location is used to interpret timestamps stored without a zone.
	Location *time.Location
	// Driver is DriverSQLite or DriverMySQL.
	Driver string
	// DSN is the SQLite file path or a MySQL DSN.
	DSN string
	// Bootstrap creates the SQLite file and schema when missing.
	// The dashboard opens stores read-only and leaves it false.
	Bootstrap bool
}

// DB wraps the SQL database connection with application-specific methods.
type DB struct {
	*sql.DB
	loc      *time.Location
	driver   string
	writable bool
}

// Open connects to the record store described by opts.
// Failures to reach the store are reported as ErrConnection.
func Open(ctx context.Context, opts Options) (*DB, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	dsn := opts.DSN
	switch opts.Driver {
	case DriverSQLite:
		if err := prepareSQLitePath(dsn, opts.Bootstrap); err != nil {
			return nil, err
		}
	case DriverMySQL:
		normalized, err := normalizeMySQLDSN(dsn, loc)
		if err != nil {
			return nil, err
		}
		dsn = normalized
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}

	sqlDB, err := sql.Open(opts.Driver, dsn)
	if err != nil {
		return nil, connectionError("failed to open database", err)
	}

	// Test connection
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, connectionError("failed to connect to database", err)
	}

	db := &DB{
		DB:       sqlDB,
		loc:      loc,
		driver:   opts.Driver,
		writable: opts.Bootstrap,
	}

	if db.driver == DriverSQLite {
		if err := db.configure(ctx, opts.Bootstrap); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to configure database: %w", err)
		}
	}

	if opts.Bootstrap {
		if err := db.createSchema(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return db, nil
}

// prepareSQLitePath makes sure the database file can be opened.
// Without bootstrap a missing file is a connection failure rather than
// an empty database silently created on first open.
func prepareSQLitePath(path string, bootstrap bool) error {
	if path == "" {
		return connectionError("sqlite path is empty", nil)
	}
	if bootstrap {
		dir := filepath.Dir(path)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return connectionError("database file not accessible", err)
	}
	return nil
}

// Driver returns the driver name.
func (db *DB) Driver() string {
	return db.driver
}

// Location returns the location used to interpret zone-less timestamps.
func (db *DB) Location() *time.Location {
	return db.loc
}

// configure sets up database pragmas.
func (db *DB) configure(ctx context.Context, writable bool) error {
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA temp_store=MEMORY",
	}
	if writable {
		pragmas = append(pragmas,
			"PRAGMA journal_mode=WAL",
			"PRAGMA synchronous=NORMAL",
		)
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to execute %s: %w", pragma, err)
		}
	}

	return nil
}

// Close closes the database connection gracefully.
func (db *DB) Close() error {
	if db.driver == DriverSQLite && db.writable {
		// Checkpoint WAL before closing
		_, _ = db.ExecContext(context.Background(), "PRAGMA wal_checkpoint(TRUNCATE)")
	}
	return db.DB.Close()
}
