package db

import (
	"context"
	"fmt"
)

// schemaStatements mirrors the production tables closely enough for the
// dashboard queries. Only local SQLite files are bootstrapped.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS ai_response (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		job_id TEXT NOT NULL,
		token INTEGER NOT NULL DEFAULT 0,
		date DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ai_response_date ON ai_response(date)`,

	`CREATE TABLE IF NOT EXISTS model_create (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		model_id TEXT NOT NULL,
		date DATETIME NOT NULL,
		standard_status INTEGER
	)`,
	`CREATE INDEX IF NOT EXISTS idx_model_create_date ON model_create(date)`,

	`CREATE TABLE IF NOT EXISTS photo_upload (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sgno TEXT NOT NULL,
		date DATETIME NOT NULL,
		count INTEGER NOT NULL DEFAULT 0,
		web_open_chk INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_photo_upload_date ON photo_upload(date)`,
}

// createSchema creates the event tables when missing.
func (db *DB) createSchema(ctx context.Context) error {
	if db.driver != DriverSQLite {
		return fmt.Errorf("schema bootstrap is only supported for %s", DriverSQLite)
	}
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}
	return nil
}
