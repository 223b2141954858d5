package dex

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"time"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/celala99/cela-geo-quest/internal/errors"
	"github.com/celala99/cela-geo-quest/internal/pkg/clock"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS dex_entries (
	player_id   TEXT    NOT NULL,
	region_id   TEXT    NOT NULL,
	captured_at INTEGER NOT NULL,
	PRIMARY KEY (player_id, region_id)
)`

// SQLiteConfig holds the configuration for the SQLite repository
type SQLiteConfig struct {
	Path  string
	Clock clock.Clock
}

// Validate ensures all required settings are provided
func (c *SQLiteConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("Path", c.Path, vb)
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// SQLiteRepository persists the Dex in a SQLite database
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// Ensure SQLiteRepository implements Repository
var _ Repository = (*SQLiteRepository)(nil)

// OpenSQLite opens the database at cfg.Path and creates the schema if needed
func OpenSQLite(cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	dsn := filepath.Clean(strings.TrimSpace(cfg.Path)) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to ping sqlite db")
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create dex schema")
	}

	return &SQLiteRepository{db: db, clock: cfg.Clock}, nil
}

// Close closes the database handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Add records a captured region; an existing row is left untouched
func (r *SQLiteRepository) Add(ctx context.Context, input AddInput) (*AddOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}
	if input.RegionID == "" {
		return nil, errors.InvalidArgument(errRegionIDEmpty)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO dex_entries (player_id, region_id, captured_at) VALUES (?, ?, ?)`,
		input.PlayerID, input.RegionID, r.clock.Now().Unix(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert dex entry")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read insert result")
	}

	return &AddOutput{Added: n > 0}, nil
}

// List returns every captured region for a player
func (r *SQLiteRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT region_id, captured_at FROM dex_entries WHERE player_id = ? ORDER BY region_id`,
		input.PlayerID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query dex entries")
	}
	defer func() { _ = rows.Close() }()

	entries := make([]Entry, 0)
	for rows.Next() {
		var (
			regionID   string
			capturedAt int64
		)
		if err := rows.Scan(&regionID, &capturedAt); err != nil {
			return nil, errors.Wrap(err, "failed to scan dex entry")
		}
		entries = append(entries, Entry{RegionID: regionID, CapturedAt: time.Unix(capturedAt, 0).UTC()})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate dex entries")
	}

	return &ListOutput{Entries: entries}, nil
}

// Reset removes every entry for a player
func (r *SQLiteRepository) Reset(ctx context.Context, input ResetInput) (*ResetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM dex_entries WHERE player_id = ?`, input.PlayerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete dex entries")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read delete result")
	}

	return &ResetOutput{Removed: int(n)}, nil
}
