// Package history keeps a small SQLite journal of completed runs so
// `pixveil history` can show what was transformed, when, and with which
// mode. Journal failures are never allowed to fail a transform; callers
// log and move on.
package history

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

const timeFormat = time.RFC3339Nano

// Entry is one recorded run.
type Entry struct {
	ID        int64
	At        time.Time
	Operation string
	Mode      string
	Input     string
	Output    string
	Width     int
	Height    int
	Digest    uint8
}

// Store wraps the journal database. Safe for concurrent use, although
// the CLI only ever writes one row per invocation.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	insert *sql.Stmt
}

// Open opens (creating if needed) the journal at dbPath.
func Open(dbPath string) (*Store, error) {
	dsn := fmt.Sprintf("%s?_pragma=journal_mode=wal&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db %s: %w", dbPath, err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite db %s: %w", dbPath, err)
	}

	createTableSQL := `
    CREATE TABLE IF NOT EXISTS runs (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        run_at TEXT NOT NULL,
        operation TEXT NOT NULL,
        mode TEXT NOT NULL,
        input TEXT NOT NULL,
        output TEXT NOT NULL,
        width INTEGER NOT NULL,
        height INTEGER NOT NULL,
        digest INTEGER NOT NULL
    );`
	if _, err = db.Exec(createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create runs table: %w", err)
	}

	insertSQL := `INSERT INTO runs (run_at, operation, mode, input, output, width, height, digest)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := db.Prepare(insertSQL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare insert statement: %w", err)
	}

	return &Store{db: db, insert: stmt}, nil
}

// Record appends one run to the journal.
func (s *Store) Record(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	at := e.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := s.insert.Exec(at.Format(timeFormat), e.Operation, e.Mode,
		e.Input, e.Output, e.Width, e.Height, int64(e.Digest))
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// LastN returns the most recent n runs in chronological order
// (oldest of the n first).
func (s *Store) LastN(n int) ([]Entry, error) {
	if n <= 0 {
		return []Entry{}, nil
	}
	query := `SELECT id, run_at, operation, mode, input, output, width, height, digest
        FROM runs ORDER BY id DESC LIMIT ?`
	rows, err := s.db.Query(query, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query last %d runs: %w", n, err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var atStr string
		var digest int64
		if err := rows.Scan(&e.ID, &atStr, &e.Operation, &e.Mode,
			&e.Input, &e.Output, &e.Width, &e.Height, &digest); err != nil {
			return nil, fmt.Errorf("failed to scan run entry: %w", err)
		}
		if t, perr := time.Parse(timeFormat, atStr); perr == nil {
			e.At = t
		}
		e.Digest = uint8(digest)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating run rows: %w", err)
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// Close releases the prepared statement and the database handle.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var firstErr error
	if s.insert != nil {
		if err := s.insert.Close(); err != nil {
			firstErr = fmt.Errorf("error closing statement: %w", err)
		}
		s.insert = nil
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("error closing db: %w", err)
		}
		s.db = nil
	}
	return firstErr
}
