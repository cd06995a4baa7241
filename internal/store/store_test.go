package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/spigell/bd-radar/internal/catalog"
	"github.com/spigell/bd-radar/internal/enrich"
)

func TestSaveSnapshotAndHistory(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "radar.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	defer db.Close()

	enriched := enrich.EnrichedJobs{
		{
			Job:        &catalog.Job{ID: "j1", Title: "GEOINT Analyst"},
			Program:    &catalog.Program{Name: "Apollo Ground"},
			MatchScore: 130,
			Tier:       enrich.TierCritical,
			Contacts:   []enrich.RankedContact{{Contact: &catalog.Contact{ID: "c1"}, Relevance: 100}},
		},
		{
			Job:  &catalog.Job{ID: "j2", Title: "Barista"},
			Tier: enrich.TierLow,
		},
	}
	stats := enrich.ComputeStats(enriched)

	ranAt := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	runID, err := db.SaveSnapshot(ctx, ranAt, stats, enriched)
	if err != nil {
		t.Fatalf("saving snapshot: %v", err)
	}
	if runID == 0 {
		t.Fatalf("expected a run id")
	}

	history, err := db.History(ctx, 5)
	if err != nil {
		t.Fatalf("reading history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 run, got %d", len(history))
	}

	run := history[0]
	if run.ID != runID || run.TotalJobs != 2 || run.Matched != 1 || run.Critical != 1 {
		t.Fatalf("unexpected run summary: %+v", run)
	}
	if !run.RanAt.Equal(ranAt) {
		t.Fatalf("expected ran_at %v, got %v", ranAt, run.RanAt)
	}
}
