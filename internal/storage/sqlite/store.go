package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"webmon/internal/models"
	"webmon/internal/storage"
)

// SQLiteStore implements the storage.Storer interface for SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore and establishes a connection to the database
// file, creating the file and its parent directory when absent. It also runs
// migrations to ensure the schema is up to date.
func New(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("unable to create database directory %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", fmt.Sprintf("%s?_journal_mode=WAL", path))
	if err != nil {
		return nil, fmt.Errorf("unable to open sqlite database %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to ping database %s: %w", path, err)
	}
	store := &SQLiteStore{db: db}
	if err := store.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// migrate ensures the database schema is created.
func (s *SQLiteStore) migrate(ctx context.Context) error {
	schema := `
CREATE TABLE IF NOT EXISTS observations (
	id            TEXT PRIMARY KEY,
	site          TEXT NOT NULL,
	observed_at   TEXT NOT NULL,
	status_code   INTEGER NOT NULL,
	cache_hit     INTEGER NOT NULL,
	ttfb_seconds  REAL NOT NULL,
	total_seconds REAL NOT NULL,
	error         TEXT
);
CREATE INDEX IF NOT EXISTS idx_observations_site_observed_at ON observations (site, observed_at DESC);
`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// RecordObservation appends one observation row. A transient insert failure
// is retried once before the error is surfaced to the caller; rows are never
// updated or deleted.
func (s *SQLiteStore) RecordObservation(ctx context.Context, obs *models.Observation) error {
	if obs.ID == "" {
		obs.ID = uuid.NewString()
	}
	query := `
INSERT INTO observations (id, site, observed_at, status_code, cache_hit, ttfb_seconds, total_seconds, error)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	args := []interface{}{
		obs.ID,
		obs.Site,
		obs.ObservedAt.UTC().Format(time.RFC3339Nano),
		obs.StatusCode,
		obs.CacheHit,
		obs.TTFBSeconds,
		obs.TotalSeconds,
		obs.Error,
	}
	_, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if _, retryErr := s.db.ExecContext(ctx, query, args...); retryErr == nil {
			return nil
		}
		return fmt.Errorf("failed to record observation for %s: %w", obs.Site, err)
	}
	return nil
}

// ListObservationsBySite retrieves recent observations for a site, newest first.
func (s *SQLiteStore) ListObservationsBySite(ctx context.Context, params storage.ListObservationsParams) ([]models.Observation, error) {
	args := []interface{}{params.Site}
	qb := strings.Builder{}
	qb.WriteString("SELECT id, site, observed_at, status_code, cache_hit, ttfb_seconds, total_seconds, error FROM observations WHERE site = ?")
	if params.Since != nil {
		args = append(args, params.Since.UTC().Format(time.RFC3339Nano))
		qb.WriteString(" AND observed_at > ?")
	}
	qb.WriteString(" ORDER BY observed_at DESC LIMIT ?")
	args = append(args, params.Limit)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list observations: %w", err)
	}
	defer rows.Close()
	var observations []models.Observation
	for rows.Next() {
		var o models.Observation
		var observedAtStr string
		if err := rows.Scan(&o.ID, &o.Site, &observedAtStr, &o.StatusCode, &o.CacheHit, &o.TTFBSeconds, &o.TotalSeconds, &o.Error); err != nil {
			return nil, fmt.Errorf("failed to scan observation row: %w", err)
		}
		o.ObservedAt, _ = time.Parse(time.RFC3339Nano, observedAtStr)
		observations = append(observations, o)
	}
	return observations, rows.Err()
}

// ListSites retrieves the distinct site names present in the store, ordered.
func (s *SQLiteStore) ListSites(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT site FROM observations ORDER BY site`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()
	var sites []string
	for rows.Next() {
		var site string
		if err := rows.Scan(&site); err != nil {
			return nil, fmt.Errorf("failed to scan site row: %w", err)
		}
		sites = append(sites, site)
	}
	return sites, rows.Err()
}
