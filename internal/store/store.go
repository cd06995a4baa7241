// Package store persists enrichment snapshots so past runs can be compared.
// It lives outside the engine: callers hand in already-computed results.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

type DB struct {
	pool *sql.DB
}

// Open opens (and migrates) the snapshot database at the given path.
func Open(path string) (*DB, error) {
	// modernc sqlite DSN: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// sqlite wants a single writer.
	pool.SetMaxOpenConns(1)
	pool.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		return nil, err
	}

	db := &DB{pool: pool}
	if err := db.migrate(); err != nil {
		_ = pool.Close()
		return nil, err
	}
	return db, nil
}

func (d *DB) Close() error {
	if d == nil || d.pool == nil {
		return nil
	}
	return d.pool.Close()
}

func (d *DB) migrate() error {
	_, err := d.pool.Exec(`
CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  ran_at TEXT NOT NULL,
  total_jobs INTEGER NOT NULL,
  matched INTEGER NOT NULL,
  with_contacts INTEGER NOT NULL,
  critical INTEGER NOT NULL,
  high INTEGER NOT NULL,
  medium INTEGER NOT NULL,
  low INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS run_jobs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  run_id INTEGER NOT NULL REFERENCES runs(id),
  job_id TEXT NOT NULL,
  job_title TEXT NOT NULL,
  program TEXT NOT NULL DEFAULT '',
  match_score INTEGER NOT NULL,
  tier TEXT NOT NULL,
  contacts INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_run_jobs_run ON run_jobs(run_id);
`)
	return err
}
