// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a local SQLite log of conversion runs, so a
// curator maintaining a timeline over many edits can see what was
// converted when, and with what outcome.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/timeline-engine/pkg/types"
)

const (
	dbFile            = "history.db"
	defaultMaxResults = 20
)

// Status records how a run ended.
type Status string

const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// Run is one recorded conversion run.
type Run struct {
	ID        int64     `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Source    string    `json:"source"`
	Output    string    `json:"output,omitempty"`
	Scale     string    `json:"scale"`
	Strict    bool      `json:"strict"`
	Titles    int       `json:"titles"`
	Events    int       `json:"events"`
	Eras      int       `json:"eras"`
	Warnings  int       `json:"warnings"`
	Errors    int       `json:"errors"`
	Status    Status    `json:"status"`
}

// Store manages the run-history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the history database at cfg.Dir/history.db,
// creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at TEXT NOT NULL,
		source TEXT NOT NULL,
		output TEXT,
		scale TEXT NOT NULL,
		strict INTEGER NOT NULL,
		titles INTEGER NOT NULL,
		events INTEGER NOT NULL,
		eras INTEGER NOT NULL,
		warnings INTEGER NOT NULL,
		errors INTEGER NOT NULL,
		status TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts a run and returns its assigned ID. A zero StartedAt
// is stamped with the current UTC time.
func (s *Store) Record(ctx context.Context, run Run) (int64, error) {
	started := run.StartedAt
	if started.IsZero() {
		started = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (started_at, source, output, scale, strict, titles, events, eras, warnings, errors, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		started.UTC().Format(time.RFC3339), run.Source, run.Output, run.Scale,
		boolInt(run.Strict), run.Titles, run.Events, run.Eras,
		run.Warnings, run.Errors, string(run.Status),
	)
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}
	return res.LastInsertId()
}

// List returns the most recent runs, newest first. A limit of 0 uses
// the store default.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, source, output, scale, strict, titles, events, eras, warnings, errors, status
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started, status string
		var strict int
		if err := rows.Scan(&r.ID, &started, &r.Source, &r.Output, &r.Scale,
			&strict, &r.Titles, &r.Events, &r.Eras, &r.Warnings, &r.Errors, &status); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.StartedAt, _ = time.Parse(time.RFC3339, started)
		r.Strict = strict != 0
		r.Status = Status(status)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// FormatRuns writes runs as a human-readable table to w.
func FormatRuns(runs []Run, w io.Writer) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No conversion runs recorded.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-20s  %-30s  %-6s  %-7s  %-7s  %-5s  %s\n",
		"ID", "Started", "Source", "Events", "Eras", "Warns", "Errs", "Status")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, r := range runs {
		source := r.Source
		if len(source) > 30 {
			source = "..." + source[len(source)-27:]
		}
		fmt.Fprintf(w, "%-4d  %-20s  %-30s  %-6d  %-7d  %-7d  %-5d  %s\n",
			r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), source,
			r.Events, r.Eras, r.Warnings, r.Errors, r.Status)
	}

	fmt.Fprintf(w, "\n%d runs\n", len(runs))
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
