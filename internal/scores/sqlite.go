package scores

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Register driver
)

// SQLite stores runs in a single-file database.
type SQLite struct {
	db *sql.DB
}

// Open creates the directory if needed, opens the database and migrates it.
func Open(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return s, nil
}

func (s *SQLite) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			seed INTEGER NOT NULL,
			distance REAL NOT NULL,
			landings INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			played_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_distance ON runs(distance);`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLite) Best(ctx context.Context) (float64, error) {
	var best float64
	err := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(distance), 0) FROM runs").Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("query best: %w", err)
	}
	return best, nil
}

func (s *SQLite) Record(ctx context.Context, r Run) error {
	if r.PlayedAt.IsZero() {
		r.PlayedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO runs (variant, seed, distance, landings, ticks, played_at) VALUES (?, ?, ?, ?, ?, ?)",
		r.Variant, r.Seed, r.Distance, r.Landings, int64(r.Ticks), r.PlayedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

func (s *SQLite) Recent(ctx context.Context, n int) ([]Run, error) {
	if n < 0 {
		n = -1
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, variant, seed, distance, landings, ticks, played_at FROM runs ORDER BY id DESC LIMIT ?", n)
	if err != nil {
		return nil, fmt.Errorf("query recent: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r      Run
			ticks  int64
			played int64
		)
		if err := rows.Scan(&r.ID, &r.Variant, &r.Seed, &r.Distance, &r.Landings, &ticks, &played); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.PlayedAt = time.UnixMilli(played)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLite) Close() error { return s.db.Close() }
