package store

import (
	"context"
	"fmt"
	"time"

	"github.com/spigell/bd-radar/internal/enrich"
)

// RunSummary is one persisted run as listed by History.
type RunSummary struct {
	ID           int64
	RanAt        time.Time
	TotalJobs    int
	Matched      int
	WithContacts int
	Critical     int
}

// SaveSnapshot persists a completed enrichment run and returns its row id.
func (d *DB) SaveSnapshot(ctx context.Context, ranAt time.Time, stats enrich.Stats, enriched enrich.EnrichedJobs) (int64, error) {
	tx, err := d.pool.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
INSERT INTO runs (ran_at, total_jobs, matched, with_contacts, critical, high, medium, low)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);`,
		ranAt.UTC().Format(time.RFC3339),
		stats.TotalJobs,
		stats.Matched,
		stats.WithContacts,
		stats.ByTier[enrich.TierCritical],
		stats.ByTier[enrich.TierHigh],
		stats.ByTier[enrich.TierMedium],
		stats.ByTier[enrich.TierLow],
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}

	for _, e := range enriched {
		programName := ""
		if e.Program != nil {
			programName = e.Program.Name
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO run_jobs (run_id, job_id, job_title, program, match_score, tier, contacts)
VALUES (?, ?, ?, ?, ?, ?, ?);`,
			runID, e.Job.ID, e.Job.Title, programName, e.MatchScore, string(e.Tier), len(e.Contacts),
		); err != nil {
			return 0, fmt.Errorf("insert run job: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit snapshot: %w", err)
	}
	return runID, nil
}

// History returns the most recent runs, newest first.
func (d *DB) History(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := d.pool.QueryContext(ctx, `
SELECT id, ran_at, total_jobs, matched, with_contacts, critical
FROM runs
ORDER BY id DESC
LIMIT ?;`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var run RunSummary
		var ranAt string
		if err := rows.Scan(&run.ID, &ranAt, &run.TotalJobs, &run.Matched, &run.WithContacts, &run.Critical); err != nil {
			return nil, err
		}
		run.RanAt, _ = time.Parse(time.RFC3339, ranAt)
		out = append(out, run)
	}
	return out, rows.Err()
}
