package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/spigell/bd-radar/internal/catalog"
	"github.com/spigell/bd-radar/internal/enrich"
)

func TestWriteCallSheet(t *testing.T) {
	enriched := enrich.EnrichedJobs{
		{
			Job:        &catalog.Job{Title: "GEOINT Analyst", Company: "Acme Federal"},
			Program:    &catalog.Program{Name: "Apollo Ground"},
			MatchScore: 130,
			Tier:       enrich.TierCritical,
			Contacts: []enrich.RankedContact{
				{Contact: &catalog.Contact{Name: "Jane Roe", Title: "Director", Email: "jane@example.com"}, Relevance: 215},
				{Contact: &catalog.Contact{Name: "John Doe", Title: "Lead", Phone: "555-0100"}, Relevance: 90},
			},
			Actions: []string{"urgent: review and assign within 24 hours"},
		},
		{
			// No contacts: contributes no rows.
			Job:  &catalog.Job{Title: "Barista", Company: "Coffee Co"},
			Tier: enrich.TierLow,
		},
	}

	path := filepath.Join(t.TempDir(), "callsheet.csv")
	if err := WriteCallSheet(path, enriched); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening call sheet: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("reading call sheet: %v", err)
	}

	// Header plus one row per contact on the matched job.
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	if rows[0][0] != "tier" {
		t.Fatalf("expected header row, got %v", rows[0])
	}

	first := rows[1]
	if first[0] != "critical" || first[3] != "Apollo Ground" || first[5] != "Jane Roe" {
		t.Fatalf("unexpected first row: %v", first)
	}
	if first[8] != "email" || first[9] != "jane@example.com" {
		t.Fatalf("expected email channel, got %v", first)
	}

	second := rows[2]
	if second[5] != "John Doe" || second[8] != "phone" {
		t.Fatalf("unexpected second row: %v", second)
	}
}

func TestWriteCallSheetEmptyBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := WriteCallSheet(path, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening call sheet: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("reading call sheet: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}
