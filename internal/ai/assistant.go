package ai

import (
	"context"

	"github.com/spigell/bd-radar/internal/enrich"
)

// OutreachBrief is a drafted first-touch message for an enriched
// opportunity. Raw keeps the unparsed provider response for debugging.
type OutreachBrief struct {
	Subject   string
	Message   string
	Rationale string
	Raw       string
}

// Briefer drafts outreach briefs for enriched jobs. Matching itself stays
// deterministic; briefers only write text around the engine's output.
type Briefer interface {
	Brief(ctx context.Context, job *enrich.EnrichedJob) (*OutreachBrief, error)
}
