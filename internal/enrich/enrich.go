// Package enrich implements the opportunity-matching engine: it matches jobs
// to programs, ranks relevant contacts, classifies priority, and recommends
// next actions. Every function is a pure computation over its arguments; the
// only time reference is the injected Deps.Now.
package enrich

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/bd-radar/internal/catalog"
	"github.com/spigell/bd-radar/internal/signals"
)

// ValidationError reports misuse at the API boundary, such as a negative
// contact cap or missing inputs. Malformed catalog records never produce one;
// bad optional fields simply contribute nothing.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// Deps aggregates everything the enrichment pipeline needs. Signals defaults
// to the built-in catalog and MaxContacts to DefaultMaxContacts; Now must be
// set explicitly so runs are reproducible.
type Deps struct {
	Signals     *signals.Catalog
	Logger      *zap.Logger
	Now         time.Time
	MaxContacts int
}

func (d *Deps) validate() error {
	if d.MaxContacts < 0 {
		return validationErrorf("max contacts must not be negative, got %d", d.MaxContacts)
	}
	if d.Now.IsZero() {
		return validationErrorf("now must be set for reproducible date-window checks")
	}
	return nil
}

func (d *Deps) withDefaults() Deps {
	out := *d
	if out.Signals == nil {
		out.Signals = signals.Default()
	}
	if out.MaxContacts == 0 {
		out.MaxContacts = DefaultMaxContacts
	}
	return out
}

// EnrichedJob is the full engine output for one job.
type EnrichedJob struct {
	Job          *catalog.Job
	Program      *catalog.Program
	MatchScore   int
	MatchReasons []string
	Contacts     []RankedContact
	Tier         Tier
	Actions      []string
}

// EnrichedJobs is the ordered batch result.
type EnrichedJobs []*EnrichedJob

// EnrichJob runs the full pipeline for a single job: program match, contact
// ranking (only when matched), priority classification, action
// recommendation.
func EnrichJob(job *catalog.Job, programs *catalog.Programs, contacts *catalog.Contacts, deps Deps) (*EnrichedJob, error) {
	if job == nil {
		return nil, validationErrorf("job must not be nil")
	}
	if programs == nil || contacts == nil {
		return nil, validationErrorf("program and contact catalogs must not be nil")
	}
	if err := deps.validate(); err != nil {
		return nil, err
	}
	return enrichJob(job, programs, contacts, deps.withDefaults()), nil
}

func enrichJob(job *catalog.Job, programs *catalog.Programs, contacts *catalog.Contacts, deps Deps) *EnrichedJob {
	enriched := &EnrichedJob{Job: job}

	match := MatchProgram(job, programs, deps.Signals)
	if match != nil {
		enriched.Program = match.Program
		enriched.MatchScore = match.Score
		enriched.MatchReasons = match.Reasons
		enriched.Contacts = RankContacts(match.Program, contacts, deps.MaxContacts, deps.Now)
	}

	enriched.Tier = ClassifyPriority(job, enriched.MatchScore, enriched.Program, enriched.Contacts)
	enriched.Actions = RecommendActions(match, enriched.Contacts, enriched.Tier, job.URL, deps.Now)

	return enriched
}

// EnrichAll enriches every job and returns the batch ordered by tier severity
// (critical first) and descending match score, ties preserving input order.
// An empty job or program catalog yields an empty batch.
//
// Per-job work is sharded across an errgroup; this is safe because the engine
// never mutates its inputs, and the final stable sort makes the ordering
// independent of scheduling.
func EnrichAll(ctx context.Context, jobs *catalog.Jobs, programs *catalog.Programs, contacts *catalog.Contacts, deps Deps) (EnrichedJobs, error) {
	if jobs == nil || programs == nil || contacts == nil {
		return nil, validationErrorf("job, program and contact catalogs must not be nil")
	}
	if err := deps.validate(); err != nil {
		return nil, err
	}
	deps = deps.withDefaults()

	// An empty program catalog means nothing can match; the batch is empty
	// rather than a list of unmatched low-tier entries.
	if jobs.Len() == 0 || programs.Len() == 0 {
		return EnrichedJobs{}, nil
	}

	out := make(EnrichedJobs, jobs.Len())

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, job := range jobs.Items {
		g.Go(func() error {
			out[i] = enrichJob(job, programs, contacts, deps)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Tier.Rank() != out[j].Tier.Rank() {
			return out[i].Tier.Rank() < out[j].Tier.Rank()
		}
		return out[i].MatchScore > out[j].MatchScore
	})

	if deps.Logger != nil {
		matched := 0
		for _, e := range out {
			if e.Program != nil {
				matched++
			}
		}
		deps.Logger.Info("enrichment completed",
			zap.Int("jobs", len(out)),
			zap.Int("matched", matched),
			zap.Int("programs", programs.Len()),
			zap.Int("contacts", contacts.Len()),
		)
	}

	return out, nil
}
