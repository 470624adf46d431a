package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Register the modernc sqlite driver under the name "sqlite"
	_ "modernc.org/sqlite"

	"gvcheck/internal/config"
	"gvcheck/internal/domain"
)

// History keeps one row per validation run in a local SQLite database, so
// outcomes can be compared across runs without a database server.
type History struct {
	cfg *config.Config
}

// NewHistory creates a History backed by the config's history path.
func NewHistory(cfg *config.Config) *History {
	return &History{cfg: cfg}
}

const historySchema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp TEXT NOT NULL,
	total_checks INTEGER NOT NULL,
	passed_checks INTEGER NOT NULL,
	failed_checks INTEGER NOT NULL,
	skipped_checks INTEGER NOT NULL,
	duration_seconds REAL NOT NULL,
	jobs INTEGER NOT NULL
)`

func (h *History) open() (*sql.DB, error) {
	path := h.cfg.GetHistoryPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	// busy_timeout guards against a concurrent gvcheck run holding the lock.
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return db, nil
}

// Record appends one run's metadata to the history.
func (h *History) Record(meta domain.RunMeta) error {
	db, err := h.open()
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(
		`INSERT INTO runs (timestamp, total_checks, passed_checks, failed_checks, skipped_checks, duration_seconds, jobs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		meta.Timestamp, meta.TotalChecks, meta.PassedChecks, meta.FailedChecks,
		meta.SkippedChecks, meta.DurationSeconds, meta.Jobs,
	)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (h *History) Recent(limit int) ([]domain.RunMeta, error) {
	db, err := h.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if limit <= 0 {
		limit = 10
	}
	rows, err := db.Query(
		`SELECT timestamp, total_checks, passed_checks, failed_checks, skipped_checks, duration_seconds, jobs
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var runs []domain.RunMeta
	for rows.Next() {
		var m domain.RunMeta
		if err := rows.Scan(&m.Timestamp, &m.TotalChecks, &m.PassedChecks, &m.FailedChecks,
			&m.SkippedChecks, &m.DurationSeconds, &m.Jobs); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		runs = append(runs, m)
	}
	return runs, rows.Err()
}
