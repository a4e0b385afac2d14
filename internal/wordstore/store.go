// internal/wordstore/store.go
//
// SQLite-backed word list storage.
// Responsibilities:
//   - Opening the SQLite database with safe defaults (WAL, busy timeout).
//   - Applying the idempotent schema on open.
//   - Importing and loading answer/allowed vocabularies.
//
// The store holds static reference data (the vocabularies), not session
// state: solve sessions live and die in memory.

package wordstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/felix-clark/wordle/internal/solver"
)

// Kind distinguishes the two vocabularies in the words table.
type Kind string

const (
	KindAnswer  Kind = "answer"
	KindAllowed Kind = "allowed"
)

const schema = `
CREATE TABLE IF NOT EXISTS words (
	word TEXT NOT NULL,
	kind TEXT NOT NULL CHECK (kind IN ('answer', 'allowed')),
	PRIMARY KEY (word, kind)
);
CREATE INDEX IF NOT EXISTS idx_words_kind ON words(kind);
`

// Store wraps the SQLite handle for word list access.
type Store struct {
	db *sql.DB
}

// Open opens (and creates if missing) a SQLite database file and applies
// the schema.
//
//   - Ensures the parent directory exists for relative paths (./data/words.db).
//   - Configures busy timeout and WAL journaling mode.
func Open(dsn string) (*Store, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Import inserts words under the given kind, ignoring duplicates, in one
// transaction. Returns the number of newly inserted rows.
func (s *Store) Import(ctx context.Context, kind Kind, list []solver.Word) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO words(word, kind) VALUES(?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	inserted := 0
	for _, w := range list {
		res, err := stmt.ExecContext(ctx, string(w), string(kind))
		if err != nil {
			return 0, fmt.Errorf("insert %q: %w", w, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	log.Info().Str("kind", string(kind)).Int("imported", inserted).Int("total", len(list)).Msg("word import complete")
	return inserted, nil
}

// Load returns all words of a kind in lexical order.
func (s *Store) Load(ctx context.Context, kind Kind) ([]solver.Word, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word FROM words WHERE kind = ? ORDER BY word`, string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []solver.Word
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, solver.Word(w))
	}
	return out, rows.Err()
}

// Counts returns the number of stored answer and allowed words.
func (s *Store) Counts(ctx context.Context) (answers, allowed int, err error) {
	err = s.db.QueryRowContext(ctx,
		`SELECT
			COUNT(CASE WHEN kind = 'answer' THEN 1 END),
			COUNT(CASE WHEN kind = 'allowed' THEN 1 END)
		FROM words`).Scan(&answers, &allowed)
	return answers, allowed, err
}
