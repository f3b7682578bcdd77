package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/j-veylop/workload-dashboard-tui/internal/logger"
	"github.com/j-veylop/workload-dashboard-tui/internal/models"
)

const storedTimeLayout = "2006-01-02 15:04:05"

// ResolveColumn returns the first alias present in columns.
// Matching is case-insensitive; the returned name is the alias as given.
func ResolveColumn(columns []string, aliases ...string) (string, bool) {
	for _, alias := range aliases {
		for _, col := range columns {
			if strings.EqualFold(col, alias) {
				return alias, true
			}
		}
	}
	return "", false
}

// row gives name-based access to one scanned result row.
type row struct {
	index  map[string]int
	values []any
}

func (r row) get(column string) any {
	i, ok := r.index[column]
	if !ok {
		return nil
	}
	return r.values[i]
}

// scanTable reads every row of table and hands it to fn.
// Required columns missing from the result yield a *SchemaError.
func (db *DB) scanTable(ctx context.Context, table string, required []string, fn func(columns []string, r row) error) error {
	// #nosec G202 -- table names are package constants
	rows, err := db.QueryContext(ctx, "SELECT * FROM "+table)
	if err != nil {
		return queryError(table, err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return queryError(table, err)
	}

	index := make(map[string]int, len(columns))
	for i, col := range columns {
		index[strings.ToLower(col)] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return &SchemaError{Table: table, Column: col}
		}
	}

	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		if err := fn(columns, row{index: index, values: values}); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return queryError(table, err)
	}
	return nil
}

func queryError(table string, err error) error {
	if isConnectionFailure(err) {
		return connectionError("failed to query "+table, err)
	}
	return fmt.Errorf("failed to query %s: %w", table, err)
}

// eventDate extracts the date column, logging and skipping unusable rows.
func (db *DB) eventDate(table string, r row) (time.Time, bool) {
	t, ok := asTime(r.get("date"), db.loc)
	if !ok {
		logger.Warn("Skipping row with unusable date", "table", table, "value", r.get("date"))
		return time.Time{}, false
	}
	// SQLite keeps zone-less text; the driver hands DATETIME columns back as UTC.
	if db.driver == DriverSQLite && t.Location() == time.UTC {
		t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), db.loc)
	}
	return t, true
}

// ContentResponses returns every row of ai_response.
func (db *DB) ContentResponses(ctx context.Context) ([]models.ContentResponse, error) {
	var out []models.ContentResponse
	err := db.scanTable(ctx, TableContentResponses, []string{"job_id", "token", "date"}, func(_ []string, r row) error {
		date, ok := db.eventDate(TableContentResponses, r)
		if !ok {
			return nil
		}
		tokens, err := asInt64(r.get("token"))
		if err != nil {
			return fmt.Errorf("%s.token: %w", TableContentResponses, err)
		}
		if tokens < 0 {
			logger.Warn("Clamping negative token count", "job_id", asString(r.get("job_id")), "token", tokens)
			tokens = 0
		}
		out = append(out, models.ContentResponse{
			Date:   date,
			JobID:  asString(r.get("job_id")),
			Tokens: tokens,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ModelCreations returns every row of model_create.
// The standardization flag is read from the first known alias; rows of a
// table lacking both aliases carry a nil flag.
func (db *DB) ModelCreations(ctx context.Context) ([]models.ModelCreation, error) {
	var out []models.ModelCreation
	err := db.scanTable(ctx, TableModelCreations, []string{"model_id", "date"}, func(columns []string, r row) error {
		date, ok := db.eventDate(TableModelCreations, r)
		if !ok {
			return nil
		}
		var standard *int
		if col, ok := ResolveColumn(columns, StandardColumnAliases...); ok {
			flag, err := asOptionalInt(r.get(col))
			if err != nil {
				return fmt.Errorf("%s.%s: %w", TableModelCreations, col, err)
			}
			standard = flag
		}
		out = append(out, models.ModelCreation{
			Date:     date,
			Standard: standard,
			ModelID:  asString(r.get("model_id")),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PhotoUploads returns every row of photo_upload.
func (db *DB) PhotoUploads(ctx context.Context) ([]models.PhotoUpload, error) {
	var out []models.PhotoUpload
	err := db.scanTable(ctx, TablePhotoUploads, []string{"sgno", "date", "count", "web_open_chk"}, func(_ []string, r row) error {
		date, ok := db.eventDate(TablePhotoUploads, r)
		if !ok {
			return nil
		}
		count, err := asInt64(r.get("count"))
		if err != nil {
			return fmt.Errorf("%s.count: %w", TablePhotoUploads, err)
		}
		webOpen, err := asInt64(r.get("web_open_chk"))
		if err != nil {
			return fmt.Errorf("%s.web_open_chk: %w", TablePhotoUploads, err)
		}
		if webOpen != 0 && webOpen != 1 {
			logger.Warn("Treating out-of-range web_open_chk as open", "sgno", asString(r.get("sgno")), "web_open_chk", webOpen)
			webOpen = 1
		}
		out = append(out, models.PhotoUpload{
			Date:       date,
			SGNo:       asString(r.get("sgno")),
			ImageCount: count,
			WebOpen:    int(webOpen),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InsertContentResponse adds a row to ai_response.
func (db *DB) InsertContentResponse(ctx context.Context, r models.ContentResponse) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO ai_response (job_id, token, date) VALUES (?, ?, ?)`,
		r.JobID, r.Tokens, db.formatTime(r.Date),
	)
	if err != nil {
		return fmt.Errorf("failed to insert content response: %w", err)
	}
	return nil
}

// InsertModelCreation adds a row to model_create.
func (db *DB) InsertModelCreation(ctx context.Context, m models.ModelCreation) error {
	var standard sql.NullInt64
	if m.Standard != nil {
		standard = sql.NullInt64{Int64: int64(*m.Standard), Valid: true}
	}
	_, err := db.ExecContext(ctx,
		`INSERT INTO model_create (model_id, date, standard_status) VALUES (?, ?, ?)`,
		m.ModelID, db.formatTime(m.Date), standard,
	)
	if err != nil {
		return fmt.Errorf("failed to insert model creation: %w", err)
	}
	return nil
}

// InsertPhotoUpload adds a row to photo_upload.
func (db *DB) InsertPhotoUpload(ctx context.Context, p models.PhotoUpload) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO photo_upload (sgno, date, count, web_open_chk) VALUES (?, ?, ?, ?)`,
		p.SGNo, db.formatTime(p.Date), p.ImageCount, p.WebOpen,
	)
	if err != nil {
		return fmt.Errorf("failed to insert photo upload: %w", err)
	}
	return nil
}

// formatTime stores wall-clock time in the store's location without a zone.
func (db *DB) formatTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.In(db.loc).Format(storedTimeLayout)
}
