package score

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ErrEmptyPath is returned by Open when no database path is configured
var ErrEmptyPath = errors.New("empty score database path")

// timeLayout is fixed width so text ordering matches time ordering
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Entry is one finished run
type Entry struct {
	RunID      uuid.UUID
	Score      int
	Level      int
	StartedAt  time.Time
	RecordedAt time.Time
}

// Store is a SQLite-backed high score table
type Store struct {
	db *sql.DB
}

// Open creates or opens the score database at path
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create score dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open score db: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("pragma %q: %w", p, err)
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scores (
			run_id TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			started_at TEXT NOT NULL,
			recorded_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_scores_score ON scores(score DESC, recorded_at ASC);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("init score schema: %w", err)
		}
	}
	return nil
}

// Close releases the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts an entry, a repeated run id replaces the earlier row
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.RunID == uuid.Nil {
		e.RunID = uuid.New()
	}
	if e.RecordedAt.IsZero() {
		e.RecordedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO scores (run_id, score, level, started_at, recorded_at) VALUES (?, ?, ?, ?, ?)`,
		e.RunID.String(), e.Score, e.Level,
		e.StartedAt.UTC().Format(timeLayout), e.RecordedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("record score: %w", err)
	}
	return nil
}

// Best returns the highest recorded score, 0 when the table is empty
func (s *Store) Best(ctx context.Context) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRowContext(ctx, `SELECT MAX(score) FROM scores`).Scan(&best); err != nil {
		return 0, fmt.Errorf("best score: %w", err)
	}
	return int(best.Int64), nil
}

// Top returns up to n entries ordered by score, earlier runs first on ties
func (s *Store) Top(ctx context.Context, n int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, score, level, started_at, recorded_at FROM scores ORDER BY score DESC, recorded_at ASC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("top scores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e                   Entry
			id, started, record string
		)
		if err := rows.Scan(&id, &e.Score, &e.Level, &started, &record); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		if e.RunID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse run id %q: %w", id, err)
		}
		e.StartedAt, _ = time.Parse(timeLayout, started)
		e.RecordedAt, _ = time.Parse(timeLayout, record)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
