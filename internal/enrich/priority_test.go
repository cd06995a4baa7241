package enrich

import (
	"testing"

	"github.com/spigell/bd-radar/internal/catalog"
)

func TestClassifyPriorityCritical(t *testing.T) {
	job := &catalog.Job{
		Priority:       10,
		DomainRelevant: true,
		Clearance:      "TS/SCI with Polygraph",
	}
	program := &catalog.Program{Name: "Apollo Ground", PriorityBand: "Critical - franchise"}
	contacts := []RankedContact{
		{Contact: &catalog.Contact{ID: "c1", Tier: 1}, Relevance: 215},
		{Contact: &catalog.Contact{ID: "c2", Tier: 4}, Relevance: 60},
	}

	// 10 intrinsic + 70 match + 40 band + 20 domain + 10 contacts + 15
	// senior contact + 15 clearance = 180.
	tier := ClassifyPriority(job, 140, program, contacts)
	if tier != TierCritical {
		t.Fatalf("expected critical, got %s", tier)
	}
}

func TestClassifyPriorityIdempotent(t *testing.T) {
	job := &catalog.Job{Priority: 5, Clearance: "Secret"}
	program := &catalog.Program{Name: "Foxhole", PriorityBand: "High"}

	first := ClassifyPriority(job, 50, program, nil)
	for i := 0; i < 3; i++ {
		if got := ClassifyPriority(job, 50, program, nil); got != first {
			t.Fatalf("expected identical tier on repeat calls, got %s then %s", first, got)
		}
	}
}

func TestClassifyPriorityThresholds(t *testing.T) {
	cases := []struct {
		name     string
		job      *catalog.Job
		score    int
		expected Tier
	}{
		// 0 points total.
		{"low", &catalog.Job{}, 0, TierLow},
		// 60/2 = 30.
		{"medium", &catalog.Job{}, 60, TierMedium},
		// 120/2 = 60.
		{"high", &catalog.Job{}, 120, TierHigh},
		// 200/2 = 100.
		{"critical", &catalog.Job{}, 200, TierCritical},
	}

	for _, tc := range cases {
		if got := ClassifyPriority(tc.job, tc.score, nil, nil); got != tc.expected {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.expected, got)
		}
	}
}

func TestClassifyPriorityNilProgramSkipsBand(t *testing.T) {
	job := &catalog.Job{}

	// Without a program the band rule contributes nothing: 58/2 = 29 -> low.
	if got := ClassifyPriority(job, 58, nil, nil); got != TierLow {
		t.Fatalf("expected low, got %s", got)
	}
}

func TestClassifyPriorityContactBonusCapped(t *testing.T) {
	job := &catalog.Job{}
	contacts := make([]RankedContact, 0, 10)
	for i := 0; i < 10; i++ {
		contacts = append(contacts, RankedContact{Contact: &catalog.Contact{Tier: 4}, Relevance: 40})
	}

	// Contact count bonus caps at 25; no tier<=2 contact, no other signals:
	// 25 -> low (under the 30 threshold).
	if got := ClassifyPriority(job, 0, nil, contacts); got != TierLow {
		t.Fatalf("expected low with capped contact bonus, got %s", got)
	}

	contacts[0].Contact.Tier = 2
	// 25 + 15 = 40 -> medium.
	if got := ClassifyPriority(job, 0, nil, contacts); got != TierMedium {
		t.Fatalf("expected medium with senior contact, got %s", got)
	}
}

func TestClearanceValueLadder(t *testing.T) {
	cases := []struct {
		clearance string
		expected  int
	}{
		{"TS/SCI with Full Scope Polygraph", 15},
		{"Top Secret/SCI", 12},
		{"Top Secret", 10},
		{"TS", 10},
		{"Secret", 5},
		{"", 0},
		{"Public Trust", 0},
	}

	for _, tc := range cases {
		if got := clearanceValue(tc.clearance); got != tc.expected {
			t.Fatalf("%q: expected %d, got %d", tc.clearance, tc.expected, got)
		}
	}
}

func TestTierRank(t *testing.T) {
	if TierCritical.Rank() != 0 || TierLow.Rank() != 3 {
		t.Fatalf("unexpected tier ranks: %d %d", TierCritical.Rank(), TierLow.Rank())
	}
	if Tier("bogus").Rank() != len(Tiers) {
		t.Fatalf("unknown tier should rank last")
	}
}
