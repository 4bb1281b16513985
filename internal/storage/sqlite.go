// Package storage provides SQLite-based persistence for the run history:
// which rules were run, on what grid, and how far the ant got before the
// session ended. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
//
// Only finished-run records are stored; a record cannot be resumed.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord describes one completed or abandoned simulation run.
type RunRecord struct {
	ID         int64
	Rule       string
	GridSize   int
	Iterations uint64
	Stalled    bool // True if the ant hit a boundary (or saturated) before the user quit
	Duration   time.Duration
	CreatedAt  time.Time
}

// RuleStats aggregates the history of a single rule.
type RuleStats struct {
	Rule          string
	Runs          int
	MaxIterations uint64
	AvgIterations float64
	LastPlayed    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			rule TEXT NOT NULL,
			grid_size INTEGER NOT NULL,
			iterations INTEGER NOT NULL,
			stalled INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_rule ON runs(rule);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(rule, iterations DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	stalled := 0
	if r.Stalled {
		stalled = 1
	}

	// Iterations is stored as a signed 64-bit column; a saturated counter
	// is clamped so the column stays orderable.
	iters := int64(r.Iterations)
	if iters < 0 {
		iters = int64(^uint64(0) >> 1)
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (rule, grid_size, iterations, stalled, duration_secs) VALUES (?, ?, ?, ?, ?)",
		r.Rule, r.GridSize, iters, stalled, int(r.Duration.Seconds()),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs, newest first.
// An empty rule matches all rules.
func (s *Store) RecentRuns(rule string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, rule, grid_size, iterations, stalled, duration_secs, created_at
	          FROM runs`
	args := []any{}
	if rule != "" {
		query += " WHERE rule = ?"
		args = append(args, rule)
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	return s.queryRuns(query, args...)
}

// LongestRuns retrieves the runs with the most iterations, best first.
// An empty rule matches all rules.
func (s *Store) LongestRuns(rule string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, rule, grid_size, iterations, stalled, duration_secs, created_at
	          FROM runs`
	args := []any{}
	if rule != "" {
		query += " WHERE rule = ?"
		args = append(args, rule)
	}
	query += " ORDER BY iterations DESC LIMIT ?"
	args = append(args, limit)

	return s.queryRuns(query, args...)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var iters int64
		var stalled int
		var durationSecs int
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Rule, &r.GridSize, &iters, &stalled, &durationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		r.Iterations = uint64(iters)
		r.Stalled = stalled != 0
		r.Duration = time.Duration(durationSecs) * time.Second
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// StatsForRule aggregates the history of a single rule.
// Returns zero-valued stats if the rule has never been run.
func (s *Store) StatsForRule(rule string) (RuleStats, error) {
	stats := RuleStats{Rule: rule}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(iterations), 0), COALESCE(AVG(iterations), 0)
		 FROM runs WHERE rule = ?`,
		rule,
	).Scan(&stats.Runs, &stats.MaxIterations, &stats.AvgIterations)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get rule stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE rule = ? ORDER BY created_at DESC LIMIT 1`,
		rule,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return stats, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearRuns deletes all recorded runs for the given rule.
// An empty rule clears everything.
func (s *Store) ClearRuns(rule string) error {
	var err error
	if rule == "" {
		_, err = s.db.Exec("DELETE FROM runs")
	} else {
		_, err = s.db.Exec("DELETE FROM runs WHERE rule = ?", rule)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
