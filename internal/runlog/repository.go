package runlog

import (
	"database/sql"
	"fmt"
	"time"

	"perfgate/internal/database"
)

// Repository defines the persistence interface for run entries.
type Repository interface {
	Save(entry *Entry) error
	List(limit int) ([]Entry, error)
	ListByOutcome(outcome string, limit int) ([]Entry, error)
	Prune(olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteRepository implements Repository backed by a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// Open creates or opens the run history at the default path.
func Open() (*SQLiteRepository, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("runlog: %w", err)
	}
	return OpenAt(path)
}

// OpenAt creates or opens a SQLite database at the given path.
func OpenAt(path string) (*SQLiteRepository, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("runlog: %w", err)
	}

	r := &SQLiteRepository{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLiteRepository) migrate() error {
	const ddl = `
        CREATE TABLE IF NOT EXISTS run_log (
            id            INTEGER PRIMARY KEY AUTOINCREMENT,
            timestamp     TEXT    NOT NULL,
            file          TEXT    NOT NULL,
            total_samples INTEGER NOT NULL DEFAULT 0,
            error_rate    REAL    NOT NULL DEFAULT 0,
            avg_response  REAL    NOT NULL DEFAULT 0,
            p95_response  INTEGER NOT NULL DEFAULT 0,
            p99_response  INTEGER NOT NULL DEFAULT 0,
            throughput    REAL    NOT NULL DEFAULT 0,
            outcome       TEXT    NOT NULL DEFAULT '',
            failed_gates  TEXT    NOT NULL DEFAULT '',
            duration_ms   INTEGER NOT NULL DEFAULT 0
        );
        CREATE INDEX IF NOT EXISTS idx_run_log_timestamp ON run_log(timestamp);
        CREATE INDEX IF NOT EXISTS idx_run_log_outcome ON run_log(outcome);
    `
	if _, err := r.db.Exec(ddl); err != nil {
		return fmt.Errorf("runlog: migration failed: %w", err)
	}
	return nil
}

// Save inserts a new run entry.
func (r *SQLiteRepository) Save(entry *Entry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	result, err := r.db.Exec(`
        INSERT INTO run_log (timestamp, file, total_samples, error_rate, avg_response, p95_response, p99_response, throughput, outcome, failed_gates, duration_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.Timestamp.Format(time.RFC3339Nano), entry.File, entry.TotalSamples,
		entry.ErrorRate, entry.AvgResponse, entry.P95Response, entry.P99Response,
		entry.Throughput, entry.Outcome, entry.FailedGates, entry.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("runlog: insert failed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("runlog: failed to get last insert ID: %w", err)
	}
	entry.ID = id
	return nil
}

// List returns the most recent n run entries.
func (r *SQLiteRepository) List(limit int) ([]Entry, error) {
	rows, err := r.db.Query(`
        SELECT id, timestamp, file, total_samples, error_rate, avg_response,
               p95_response, p99_response, throughput, outcome, failed_gates, duration_ms
        FROM run_log ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("runlog: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// ListByOutcome returns the most recent n run entries with the given outcome.
func (r *SQLiteRepository) ListByOutcome(outcome string, limit int) ([]Entry, error) {
	rows, err := r.db.Query(`
        SELECT id, timestamp, file, total_samples, error_rate, avg_response,
               p95_response, p99_response, throughput, outcome, failed_gates, duration_ms
        FROM run_log WHERE outcome = ? ORDER BY timestamp DESC LIMIT ?`, outcome, limit)
	if err != nil {
		return nil, fmt.Errorf("runlog: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// Prune deletes entries older than the given duration.
func (r *SQLiteRepository) Prune(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan).Format(time.RFC3339Nano)
	result, err := r.db.Exec(`DELETE FROM run_log WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("runlog: delete failed: %w", err)
	}
	return result.RowsAffected()
}

// Close releases database resources.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func scanRows(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var entry Entry
		var timestampStr string
		err := rows.Scan(
			&entry.ID, &timestampStr, &entry.File, &entry.TotalSamples,
			&entry.ErrorRate, &entry.AvgResponse, &entry.P95Response,
			&entry.P99Response, &entry.Throughput, &entry.Outcome,
			&entry.FailedGates, &entry.DurationMs,
		)
		if err != nil {
			return nil, fmt.Errorf("runlog: scan failed: %w", err)
		}
		entry.Timestamp, _ = time.Parse(time.RFC3339Nano, timestampStr)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
