// Package history persists run summaries in a local SQLite database so
// density can be tracked over time.
package history

import (
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"academiclint/internal/lerr"
	"academiclint/internal/result"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	source TEXT NOT NULL,
	input_length INTEGER NOT NULL,
	processing_time_ms INTEGER NOT NULL,
	density REAL NOT NULL,
	density_grade TEXT NOT NULL,
	flag_count INTEGER NOT NULL,
	word_count INTEGER NOT NULL,
	paragraph_count INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source);
`

// Run is one persisted analysis summary.
type Run struct {
	ID               string       `json:"id"`
	CreatedAt        string       `json:"createdAt"`
	Source           string       `json:"source"`
	InputLength      int          `json:"inputLength"`
	ProcessingTimeMs int64        `json:"processingTimeMs"`
	Density          float64      `json:"density"`
	DensityGrade     result.DensityGrade `json:"densityGrade"`
	FlagCount        int          `json:"flagCount"`
	WordCount        int          `json:"wordCount"`
	ParagraphCount   int          `json:"paragraphCount"`
}

// Store wraps the history database.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// DefaultPath returns the per-user history database location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".alint", "history.db"), nil
}

// Open opens or creates the history database at path.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, lerr.Wrap(lerr.InternalError, "failed to create history directory", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, lerr.Wrap(lerr.InternalError, "failed to open history database", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, lerr.Wrap(lerr.InternalError, "failed to set pragma", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, lerr.Wrap(lerr.InternalError, "failed to initialize history schema", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Close releases the database connection.
func (s *Store) Close() error { return s.db.Close() }

// Record stores one run summary. Source identifies what was analyzed
// (file path or "stdin").
func (s *Store) Record(res *result.AnalysisResult, source string) error {
	_, err := s.db.Exec(`
		INSERT INTO runs (id, created_at, source, input_length, processing_time_ms,
			density, density_grade, flag_count, word_count, paragraph_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		res.ID, res.CreatedAt, source, res.InputLength, res.ProcessingTimeMs,
		res.Summary.Density, string(res.Summary.DensityGrade),
		res.Summary.FlagCount, res.Summary.WordCount, res.Summary.ParagraphCount)
	if err != nil {
		return lerr.Wrap(lerr.InternalError, "failed to record run", err)
	}

	s.logger.Debug("run recorded", "id", res.ID, "source", source)
	return nil
}

// Recent returns the most recent runs, newest first.
func (s *Store) Recent(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT id, created_at, source, input_length, processing_time_ms,
			density, density_grade, flag_count, word_count, paragraph_count
		FROM runs ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, lerr.Wrap(lerr.InternalError, "failed to query history", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var grade string
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Source, &r.InputLength,
			&r.ProcessingTimeMs, &r.Density, &grade, &r.FlagCount,
			&r.WordCount, &r.ParagraphCount); err != nil {
			return nil, lerr.Wrap(lerr.InternalError, "failed to scan history row", err)
		}
		r.DensityGrade = result.DensityGrade(grade)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// PruneBefore deletes runs older than the cutoff, returning the count
// removed.
func (s *Store) PruneBefore(cutoff time.Time) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM runs WHERE created_at < ?`,
		cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, lerr.Wrap(lerr.InternalError, "failed to prune history", err)
	}
	return res.RowsAffected()
}
