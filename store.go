package vuevreact

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/jezweb/vuevreact/quiz"
)

// ErrNotFound is returned when a stored quiz result does not exist.
var ErrNotFound = errors.New("vuevreact: not found")

// StoredResult is a persisted quiz result.
type StoredResult struct {
	ID        string
	CreatedAt time.Time
	quiz.Result
}

// Store wraps a SQLite database holding decision helper results.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets page renders read tallies while a submission writes.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS quiz_results (
    id TEXT PRIMARY KEY,
    react INTEGER NOT NULL,
    vue INTEGER NOT NULL,
    recommendation TEXT NOT NULL,
    reasons TEXT NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS quiz_results_recommendation ON quiz_results (recommendation);
`)
	return err
}

// SaveResult stores r under a new ID.
func (s *Store) SaveResult(ctx context.Context, r quiz.Result) (StoredResult, error) {
	reasons, err := json.Marshal(r.Reasons)
	if err != nil {
		return StoredResult{}, fmt.Errorf("encode reasons: %w", err)
	}
	stored := StoredResult{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Result:    r,
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO quiz_results (id, react, vue, recommendation, reasons, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		stored.ID, r.React, r.Vue, string(r.Recommendation), string(reasons), stored.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return StoredResult{}, err
	}
	return stored, nil
}

// GetResult returns the result stored under id, or ErrNotFound.
func (s *Store) GetResult(ctx context.Context, id string) (StoredResult, error) {
	var react, vue int
	var recommendation, reasons, created string
	err := s.db.QueryRowContext(ctx, `SELECT react, vue, recommendation, reasons, created_at FROM quiz_results WHERE id = ?`, id).
		Scan(&react, &vue, &recommendation, &reasons, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return StoredResult{}, ErrNotFound
	}
	if err != nil {
		return StoredResult{}, err
	}
	r := StoredResult{
		ID: id,
		Result: quiz.Result{
			React:          react,
			Vue:            vue,
			Recommendation: quiz.Recommendation(recommendation),
		},
	}
	if err := json.Unmarshal([]byte(reasons), &r.Reasons); err != nil {
		return StoredResult{}, fmt.Errorf("decode reasons: %w", err)
	}
	if r.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
		return StoredResult{}, fmt.Errorf("parse created_at: %w", err)
	}
	return r, nil
}

// Tally counts stored results per recommendation.
func (s *Store) Tally(ctx context.Context) (quiz.Tally, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT recommendation, COUNT(*) FROM quiz_results GROUP BY recommendation`)
	if err != nil {
		return quiz.Tally{}, err
	}
	defer rows.Close()

	var t quiz.Tally
	for rows.Next() {
		var rec string
		var n int
		if err := rows.Scan(&rec, &n); err != nil {
			return quiz.Tally{}, err
		}
		t.Add(quiz.Recommendation(rec), n)
	}
	return t, rows.Err()
}
