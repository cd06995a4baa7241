package enrich

import (
	"testing"
	"time"

	"github.com/spigell/bd-radar/internal/catalog"
)

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func TestRankContactsStrongAffiliatedContact(t *testing.T) {
	program := &catalog.Program{Name: "Apollo Ground", AgencyOwner: "Air Force"}
	contacts := &catalog.Contacts{Items: []*catalog.Contact{
		{
			ID:           "c1",
			Name:         "Jane Roe",
			Program:      "Apollo Ground",
			Tier:         1,
			BDPriority:   "Critical",
			Relationship: "Strong",
		},
	}}

	ranked := RankContacts(program, contacts, 0, testNow)

	if len(ranked) != 1 {
		t.Fatalf("expected 1 ranked contact, got %d", len(ranked))
	}
	// 100 affiliation + 60 tier + 30 priority + 25 relationship.
	if ranked[0].Relevance != 215 {
		t.Fatalf("expected relevance 215, got %d", ranked[0].Relevance)
	}
}

func TestRankContactsFloorExcludesWeakContacts(t *testing.T) {
	program := &catalog.Program{Name: "Apollo Ground"}
	contacts := &catalog.Contacts{Items: []*catalog.Contact{
		// Tier 5 alone scores exactly 20, which does not clear the floor.
		{ID: "weak", Name: "Low Signal", Tier: 5},
		// Tier 4 alone scores 30.
		{ID: "ok", Name: "Some Signal", Tier: 4},
	}}

	ranked := RankContacts(program, contacts, 0, testNow)

	if len(ranked) != 1 {
		t.Fatalf("expected only contacts above the floor, got %d", len(ranked))
	}
	if ranked[0].Contact.ID != "ok" {
		t.Fatalf("unexpected contact: %s", ranked[0].Contact.ID)
	}
	if ranked[0].Relevance <= relevanceFloor {
		t.Fatalf("returned contact must clear the floor, got %d", ranked[0].Relevance)
	}
}

func TestRankContactsCap(t *testing.T) {
	program := &catalog.Program{Name: "Apollo Ground"}
	items := make([]*catalog.Contact, 0, 8)
	for i := 0; i < 8; i++ {
		items = append(items, &catalog.Contact{
			ID:      string(rune('a' + i)),
			Program: "Apollo Ground",
			Tier:    3,
		})
	}
	contacts := &catalog.Contacts{Items: items}

	ranked := RankContacts(program, contacts, 0, testNow)
	if len(ranked) != DefaultMaxContacts {
		t.Fatalf("expected default cap %d, got %d", DefaultMaxContacts, len(ranked))
	}

	ranked = RankContacts(program, contacts, 2, testNow)
	if len(ranked) != 2 {
		t.Fatalf("expected cap 2, got %d", len(ranked))
	}

	// Equal scores keep catalog order.
	if ranked[0].Contact.ID != "a" || ranked[1].Contact.ID != "b" {
		t.Fatalf("expected stable order on ties, got %s %s", ranked[0].Contact.ID, ranked[1].Contact.ID)
	}

	// Direct callers passing a negative cap get the default, same as zero.
	ranked = RankContacts(program, contacts, -3, testNow)
	if len(ranked) != DefaultMaxContacts {
		t.Fatalf("expected default cap %d for negative max, got %d", DefaultMaxContacts, len(ranked))
	}
}

func TestRankContactsPrimeBonus(t *testing.T) {
	program := &catalog.Program{Name: "Quiet Signal", AgencyOwner: "DISA"}
	contacts := &catalog.Contacts{Items: []*catalog.Contact{
		{ID: "prime", Company: "GDIT", Tier: 4},
	}}

	ranked := RankContacts(program, contacts, 0, testNow)

	// 20 prime + 30 tier.
	if len(ranked) != 1 || ranked[0].Relevance != 50 {
		t.Fatalf("expected prime bonus for DISA program, got %+v", ranked)
	}

	civilian := &catalog.Program{Name: "Quiet Signal", AgencyOwner: "FAA"}
	ranked = RankContacts(civilian, contacts, 0, testNow)
	if len(ranked) != 1 || ranked[0].Relevance != 30 {
		t.Fatalf("expected no prime bonus outside the fixed agency set, got %+v", ranked)
	}
}

func TestRankContactsOutreachWindow(t *testing.T) {
	program := &catalog.Program{Name: "Apollo Ground"}

	cases := []struct {
		name     string
		date     string
		expected int
	}{
		{"inside window", "2026-09-05", 145},
		{"today inclusive", "2026-08-31", 145},
		{"last day inclusive", "2026-09-14", 145},
		{"outside window", "2026-10-01", 130},
		{"past date", "2026-08-01", 130},
		{"unparsable fails closed", "soonish", 130},
		{"empty", "", 130},
	}

	for _, tc := range cases {
		contacts := &catalog.Contacts{Items: []*catalog.Contact{
			{ID: "c", Program: "Apollo Ground", Tier: 4, NextOutreach: tc.date},
		}}

		ranked := RankContacts(program, contacts, 0, testNow)
		if len(ranked) != 1 {
			t.Fatalf("%s: expected 1 contact, got %d", tc.name, len(ranked))
		}
		if ranked[0].Relevance != tc.expected {
			t.Fatalf("%s: expected relevance %d, got %d", tc.name, tc.expected, ranked[0].Relevance)
		}
	}
}

func TestRankContactsNilProgram(t *testing.T) {
	contacts := &catalog.Contacts{Items: []*catalog.Contact{{ID: "c", Tier: 1}}}
	if ranked := RankContacts(nil, contacts, 0, testNow); ranked != nil {
		t.Fatalf("expected nil for nil program, got %+v", ranked)
	}
}
