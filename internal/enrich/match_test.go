package enrich

import (
	"testing"

	"github.com/spigell/bd-radar/internal/catalog"
	"github.com/spigell/bd-radar/internal/signals"
)

func TestMatchProgramPicksBest(t *testing.T) {
	job := &catalog.Job{DeclaredProgram: "Apollo Ground", Agency: "Air Force"}
	programs := &catalog.Programs{Items: []*catalog.Program{
		{ID: "p1", Name: "Quiet Signal", AgencyOwner: "Navy"},
		{ID: "p2", Name: "Apollo Ground", AgencyOwner: "Air Force"},
		{ID: "p3", Name: "Apollo Ground Support", AgencyOwner: "Army"},
	}}

	match := MatchProgram(job, programs, signals.Default())

	if match == nil {
		t.Fatalf("expected a match")
	}
	if match.Program.ID != "p2" {
		t.Fatalf("expected p2, got %s with score %d", match.Program.ID, match.Score)
	}
	if match.Score != 130 {
		t.Fatalf("expected score 130, got %d", match.Score)
	}
}

func TestMatchProgramNilWhenAllZero(t *testing.T) {
	job := &catalog.Job{Title: "Barista"}
	programs := &catalog.Programs{Items: []*catalog.Program{
		{ID: "p1", Name: "Quiet Signal", AgencyOwner: "Navy"},
		{ID: "p2", Name: "Foxhole", AgencyOwner: "Army"},
	}}

	if match := MatchProgram(job, programs, signals.Default()); match != nil {
		t.Fatalf("expected nil match, got %s (%d)", match.Program.ID, match.Score)
	}
}

func TestMatchProgramTieKeepsCatalogOrder(t *testing.T) {
	job := &catalog.Job{DeclaredProgram: "Apollo Ground"}
	programs := &catalog.Programs{Items: []*catalog.Program{
		{ID: "first", Name: "Apollo Ground"},
		{ID: "second", Name: "Apollo Ground"},
	}}

	match := MatchProgram(job, programs, signals.Default())

	if match == nil || match.Program.ID != "first" {
		t.Fatalf("expected the earliest catalog entry to win the tie, got %+v", match)
	}
}

func TestMatchProgramEmptyCatalog(t *testing.T) {
	job := &catalog.Job{DeclaredProgram: "Apollo Ground"}

	if match := MatchProgram(job, &catalog.Programs{}, signals.Default()); match != nil {
		t.Fatalf("expected nil match for empty catalog, got %+v", match)
	}
}
