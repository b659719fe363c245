package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"launchdeck/internal/logger"
	"launchdeck/internal/models"
)

const sqlTimeFormat = "2006-01-02 15:04:05"

// InsertLookup records a completed range lookup.
func (db *DB) InsertLookup(lookup *models.Lookup) error {
	query := `
		INSERT INTO lookups (
			created_at, range_start, range_end, launch_count, duration_ms,
			heaviest_id, heaviest_date, heaviest_mass_kg
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	createdAt := lookup.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var heaviestDate any
	if !lookup.HeaviestDate.IsZero() {
		heaviestDate = lookup.HeaviestDate.UTC().Format(sqlTimeFormat)
	}
	var heaviestMass any
	if lookup.HeaviestID != "" {
		heaviestMass = lookup.HeaviestMassKg
	}

	result, err := db.ExecContext(context.Background(), query,
		createdAt.UTC().Format(sqlTimeFormat),
		nullDate(lookup.RangeStart),
		nullDate(lookup.RangeEnd),
		lookup.LaunchCount,
		lookup.DurationMs,
		nullString(lookup.HeaviestID),
		heaviestDate,
		heaviestMass,
	)
	if err != nil {
		return fmt.Errorf("failed to insert lookup: %w", err)
	}

	id, err := result.LastInsertId()
	if err == nil {
		lookup.ID = id
	}

	return nil
}

// GetRecentLookups returns the most recent lookups, newest first.
func (db *DB) GetRecentLookups(limit int) ([]models.Lookup, error) {
	query := `
		SELECT id, created_at, range_start, range_end, launch_count,
			   duration_ms, heaviest_id, heaviest_date, heaviest_mass_kg
		FROM lookups
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := db.QueryContext(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent lookups: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var lookups []models.Lookup
	for rows.Next() {
		var lookup models.Lookup
		var createdAt string
		var rangeStart, rangeEnd, heaviestID, heaviestDate sql.NullString
		var heaviestMass sql.NullFloat64

		err := rows.Scan(
			&lookup.ID,
			&createdAt,
			&rangeStart,
			&rangeEnd,
			&lookup.LaunchCount,
			&lookup.DurationMs,
			&heaviestID,
			&heaviestDate,
			&heaviestMass,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lookup: %w", err)
		}

		lookup.CreatedAt = parseSQLTime(createdAt)
		lookup.RangeStart = parseDateColumn(rangeStart)
		lookup.RangeEnd = parseDateColumn(rangeEnd)
		lookup.HeaviestID = heaviestID.String
		if heaviestDate.Valid {
			lookup.HeaviestDate = parseSQLTime(heaviestDate.String)
		}
		lookup.HeaviestMassKg = heaviestMass.Float64
		lookups = append(lookups, lookup)
	}

	return lookups, rows.Err()
}

// GetLookupStats returns aggregate statistics over the whole history.
func (db *DB) GetLookupStats() (*models.LookupStats, error) {
	query := `
		SELECT COUNT(*),
			   COALESCE(SUM(launch_count), 0),
			   COALESCE(AVG(duration_ms), 0),
			   SUM(CASE WHEN launch_count = 0 THEN 1 ELSE 0 END),
			   MIN(created_at),
			   MAX(created_at)
		FROM lookups
	`

	stats := &models.LookupStats{}
	var emptyLookups sql.NullInt64
	var first, last sql.NullString

	err := db.QueryRowContext(context.Background(), query).Scan(
		&stats.TotalLookups,
		&stats.TotalLaunches,
		&stats.AvgDurationMs,
		&emptyLookups,
		&first,
		&last,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query lookup stats: %w", err)
	}

	stats.EmptyLookups = int(emptyLookups.Int64)
	if first.Valid {
		stats.FirstLookup = parseSQLTime(first.String)
	}
	if last.Valid {
		stats.LastLookup = parseSQLTime(last.String)
	}

	heaviest := `
		SELECT heaviest_id, heaviest_mass_kg
		FROM lookups
		WHERE heaviest_id IS NOT NULL
		ORDER BY heaviest_mass_kg DESC, id ASC
		LIMIT 1
	`
	err = db.QueryRowContext(context.Background(), heaviest).
		Scan(&stats.MaxHeaviestID, &stats.MaxHeaviestKg)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to query heaviest lookup: %w", err)
	}

	return stats, nil
}

// DeleteLookup removes a single lookup record.
func (db *DB) DeleteLookup(id int64) error {
	_, err := db.ExecContext(context.Background(), "DELETE FROM lookups WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete lookup %d: %w", id, err)
	}
	return nil
}

// ClearLookups removes the whole lookup history.
func (db *DB) ClearLookups() error {
	result, err := db.ExecContext(context.Background(), "DELETE FROM lookups")
	if err != nil {
		return fmt.Errorf("failed to clear lookups: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil {
		logger.Info("cleared lookup history", "deleted", n)
	}
	return nil
}

// nullString converts an empty string to a SQL NULL.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullDate converts an optional date to its column value.
func nullDate(d *models.Date) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func parseDateColumn(col sql.NullString) *models.Date {
	if !col.Valid {
		return nil
	}
	d, err := models.ParseDate(col.String)
	if err != nil {
		logger.Warn("malformed date column", "value", col.String, "error", err)
		return nil
	}
	return &d
}

func parseSQLTime(s string) time.Time {
	t, err := time.ParseInLocation(sqlTimeFormat, s, time.UTC)
	if err != nil {
		logger.Warn("malformed time column", "value", s, "error", err)
		return time.Time{}
	}
	return t
}
