package enrich

import (
	"github.com/spigell/bd-radar/internal/catalog"
	"github.com/spigell/bd-radar/internal/signals"
)

// MatchResult is the best-scoring program for a job. Score is always >= 1:
// zero-score programs are discarded before selection, and a job with no
// scoring program has no MatchResult at all.
type MatchResult struct {
	Program *catalog.Program
	Score   int
	Reasons []string
}

// MatchProgram scores the job against every program in catalog order and
// returns the best match, or nil when every program scores 0.
//
// Ties keep the program that appears earliest in the catalog: a later program
// replaces the current best only on a strictly higher score. Work is O(P) per
// job, so batch enrichment is O(J*P).
func MatchProgram(job *catalog.Job, programs *catalog.Programs, sig *signals.Catalog) *MatchResult {
	var best *MatchResult

	for _, program := range programs.Items {
		scored := ScoreMatch(job, program, sig)
		if scored.Score == 0 {
			continue
		}
		if best == nil || scored.Score > best.Score {
			best = &MatchResult{
				Program: program,
				Score:   scored.Score,
				Reasons: scored.Reasons,
			}
		}
	}

	return best
}
