package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jfmyers9/sharkfin/pkg/grooveshark"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// Outcome classifies how a call ended
type Outcome string

const (
	OutcomeOK        Outcome = "ok"
	OutcomeTransport Outcome = "transport"
	OutcomeServer    Outcome = "server"
	OutcomeDecode    Outcome = "decode"
	OutcomeOther     Outcome = "other"
)

// Journal records every client call in SQLite. It stores method names,
// status and timing only, never parameters or responses.
type Journal struct {
	db *sql.DB
}

// Entry is one recorded call
type Entry struct {
	ID         string
	RunID      string
	Method     string
	StatusCode int
	Outcome    Outcome
	Error      string
	Duration   time.Duration
	Timestamp  time.Time
}

// Open opens (or creates) a journal backed by SQLite
func Open(dbPath string) (*Journal, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps in-memory databases consistent
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 10000", // Wait up to 10 seconds on lock
		"PRAGMA synchronous = NORMAL", // Balance between safety and performance
		"PRAGMA journal_mode = WAL",   // Concurrent readers while the CLI writes
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS calls (
			id TEXT PRIMARY KEY,
			run_id TEXT NOT NULL,
			method TEXT NOT NULL,
			status_code INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			error TEXT,
			duration_ms INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_calls_created ON calls(created_at);
		CREATE INDEX IF NOT EXISTS idx_calls_outcome ON calls(outcome, created_at);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the database connection
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// Record stores an entry and returns its ID. Missing IDs and
// timestamps are filled in.
func (j *Journal) Record(ctx context.Context, e Entry) (string, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	if e.Outcome == "" {
		e.Outcome = OutcomeOK
	}

	query := `
		INSERT INTO calls (id, run_id, method, status_code, outcome, error, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	var errMsg sql.NullString
	if e.Error != "" {
		errMsg = sql.NullString{String: e.Error, Valid: true}
	}

	_, err := j.db.ExecContext(ctx, query,
		e.ID,
		e.RunID,
		e.Method,
		e.StatusCode,
		string(e.Outcome),
		errMsg,
		e.Duration.Milliseconds(),
		e.Timestamp.UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert call: %w", err)
	}

	return e.ID, nil
}

// Recent returns the newest entries first. A limit of 0 returns all.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	query := `
		SELECT id, run_id, method, status_code, outcome, COALESCE(error, ''), duration_ms, created_at
		FROM calls
		ORDER BY created_at DESC, rowid DESC
	`

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := j.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query calls: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var outcome string
		var durationMs int64
		var createdMs int64

		err := rows.Scan(
			&e.ID,
			&e.RunID,
			&e.Method,
			&e.StatusCode,
			&outcome,
			&e.Error,
			&durationMs,
			&createdMs,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan call: %w", err)
		}

		e.Outcome = Outcome(outcome)
		e.Duration = time.Duration(durationMs) * time.Millisecond
		e.Timestamp = time.UnixMilli(createdMs)

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating calls: %w", err)
	}

	return entries, nil
}

// Count returns the number of recorded calls.
// If failedOnly is true, only calls that did not succeed are counted.
func (j *Journal) Count(ctx context.Context, failedOnly bool) (int, error) {
	query := "SELECT COUNT(*) FROM calls"
	if failedOnly {
		query += " WHERE outcome != 'ok'"
	}

	var count int
	if err := j.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count calls: %w", err)
	}

	return count, nil
}

// Cleanup removes entries older than maxAge to prevent unbounded growth
func (j *Journal) Cleanup(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge).UnixMilli()

	result, err := j.db.ExecContext(ctx, "DELETE FROM calls WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup old calls: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return deleted, nil
}

// Classify maps a call error to its outcome
func Classify(err error) Outcome {
	var (
		transportErr *grooveshark.TransportError
		serverErr    *grooveshark.ServerError
		decodeErr    *grooveshark.DecodeError
	)
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &transportErr):
		return OutcomeTransport
	case errors.As(err, &serverErr):
		return OutcomeServer
	case errors.As(err, &decodeErr):
		return OutcomeDecode
	default:
		return OutcomeOther
	}
}

// Hook returns a grooveshark.Config.OnCall function that records each
// call under runID. Write failures are logged and otherwise ignored.
func (j *Journal) Hook(runID string, logger zerolog.Logger) func(grooveshark.CallInfo) {
	return func(info grooveshark.CallInfo) {
		entry := Entry{
			RunID:      runID,
			Method:     info.Method,
			StatusCode: info.StatusCode,
			Outcome:    Classify(info.Err),
			Duration:   info.Duration,
		}
		if info.Err != nil {
			entry.Error = info.Err.Error()
		}

		if _, err := j.Record(context.Background(), entry); err != nil {
			logger.Warn().Err(err).Str("method", info.Method).Msg("Failed to journal call")
		}
	}
}
