// Package progress persists demo run history in a local SQLite database.
// The store lives at <home>/dojo.db and is entirely optional: the CLI
// runs fine without it and degrades to warnings when it cannot open.
package progress

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"soliddojo/internal/catalog"
	"soliddojo/internal/logging"
	"soliddojo/internal/principles"
)

// Store manages the run history database.
type Store struct {
	db     *sql.DB
	dbPath string
	mu     sync.RWMutex
}

// RunRecord is one persisted demo run.
type RunRecord struct {
	ID        string
	Showcase  string
	StartedAt time.Time
	Duration  time.Duration
	Steps     int
	Failures  int
	OK        bool
}

// PrincipleSummary aggregates run history for one principle.
type PrincipleSummary struct {
	Principle principles.Principle
	Runs      int
	LastRun   time.Time // zero when the principle was never run
}

// Studied reports whether the principle's demo ever ran.
func (p PrincipleSummary) Studied() bool {
	return p.Runs > 0
}

// NewStore creates or opens the run history database at the given path.
func NewStore(path string) (*Store, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db, dbPath: path}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logging.Store("history store opened at %s", path)
	return store, nil
}

// initSchema creates the database schema.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		showcase TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		duration_ms INTEGER NOT NULL,
		steps INTEGER NOT NULL,
		failures INTEGER NOT NULL,
		ok INTEGER NOT NULL DEFAULT 1
	);
	CREATE INDEX IF NOT EXISTS idx_runs_showcase ON runs(showcase);
	CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.dbPath
}

// RecordRun persists one finished demo run.
func (s *Store) RecordRun(tr *catalog.Transcript) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok := 0
	if tr.OK() {
		ok = 1
	}

	_, err := s.db.Exec(
		"INSERT INTO runs (id, showcase, started_at, duration_ms, steps, failures, ok) VALUES (?, ?, ?, ?, ?, ?, ?)",
		tr.RunID, tr.Showcase, tr.StartedAt, tr.Duration.Milliseconds(),
		len(tr.Steps), tr.Failures(), ok,
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}

	logging.StoreDebug("recorded run %s for %s", tr.RunID, tr.Showcase)
	return nil
}

// RecentRuns returns the newest runs, most recent first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		"SELECT id, showcase, started_at, duration_ms, steps, failures, ok FROM runs ORDER BY started_at DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		var durationMs int64
		if err := rows.Scan(&rec.ID, &rec.Showcase, &rec.StartedAt,
			&durationMs, &rec.Steps, &rec.Failures, &rec.OK); err != nil {
			continue
		}
		rec.Duration = time.Duration(durationMs) * time.Millisecond
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Summary returns the study summary for every principle in order,
// including principles that were never run.
func (s *Store) Summary() ([]PrincipleSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT showcase, started_at FROM runs")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type agg struct {
		runs int
		last time.Time
	}
	byShowcase := make(map[string]agg)
	for rows.Next() {
		var showcase string
		var startedAt time.Time
		if err := rows.Scan(&showcase, &startedAt); err != nil {
			continue
		}
		a := byShowcase[showcase]
		a.runs++
		if startedAt.After(a.last) {
			a.last = startedAt
		}
		byShowcase[showcase] = a
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	summaries := make([]PrincipleSummary, 0, len(principles.All()))
	for _, p := range principles.All() {
		a := byShowcase[p.String()]
		summaries = append(summaries, PrincipleSummary{
			Principle: p,
			Runs:      a.runs,
			LastRun:   a.last,
		})
	}
	return summaries, nil
}

// Count returns the number of recorded runs.
func (s *Store) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Clear deletes the whole run history and returns how many runs it removed.
func (s *Store) Clear() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	n, _ := res.RowsAffected()
	logging.Store("cleared %d runs from history", n)
	return n, nil
}
