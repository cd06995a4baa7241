package enrich

import (
	"fmt"
	"strings"

	"github.com/spigell/bd-radar/internal/catalog"
	"github.com/spigell/bd-radar/internal/signals"
)

// Rule weights for job-to-program matching. Points only accumulate; a pair
// that triggers nothing scores 0.
const (
	scoreDirectName    = 100
	scorePartialName   = 75
	scoreAgencyExact   = 30
	scoreAgencyFamily  = 20
	scoreKeywordGroup  = 25
	scoreLocationHint  = 15
	scoreClearance     = 10
	scoreFunctionalFit = 10
	scoreDomainBoost   = 40
)

// MatchScore is the additive heuristic score for one (job, program) pair,
// with human-readable reasons in rule order.
type MatchScore struct {
	Score   int
	Reasons []string
}

// ScoreMatch evaluates every matching rule independently and sums the points.
// All comparisons are case-insensitive substring tests; empty fields never
// award points.
func ScoreMatch(job *catalog.Job, program *catalog.Program, sig *signals.Catalog) MatchScore {
	var result MatchScore

	add := func(points int, reason string) {
		result.Score += points
		result.Reasons = append(result.Reasons, reason)
	}

	programText := joinLower(program.Name, program.Acronym, program.AgencyOwner, program.KeyLocations)
	jobText := joinLower(job.Title, job.Company, job.Location, job.City, job.Agency, job.FunctionalArea)

	// Declared program name, strongest signal first.
	declared := strings.ToLower(strings.TrimSpace(job.DeclaredProgram))
	if declared != "" {
		name := strings.ToLower(strings.TrimSpace(program.Name))
		acronym := strings.ToLower(strings.TrimSpace(program.Acronym))
		switch {
		case declared == name || (acronym != "" && declared == acronym):
			add(scoreDirectName, "direct program name match")
		case containsEither(declared, name) || containsEither(declared, acronym):
			add(scorePartialName, "partial program name match")
		}
	}

	// Agency: exact ownership beats family membership.
	jobAgency := strings.ToLower(strings.TrimSpace(job.Agency))
	ownerAgency := strings.ToLower(strings.TrimSpace(program.AgencyOwner))
	if jobAgency != "" && jobAgency == ownerAgency {
		add(scoreAgencyExact, "agency match")
	} else if jobAgency != "" && ownerAgency != "" {
		// First family containing both wins, remaining families are not scanned.
		for _, family := range sig.AgencyAliases {
			if termMatches(family.Terms, jobAgency) && termMatches(family.Terms, ownerAgency) {
				add(scoreAgencyFamily, fmt.Sprintf("agency family match: %s", family.Name))
				break
			}
		}
	}

	// Keyword groups are independent; every group present on both sides scores.
	for _, group := range sig.KeywordGroups {
		candidates := append([]string{group.Name}, group.Terms...)
		if anyTermIn(candidates, programText) && anyTermIn(candidates, jobText) {
			add(scoreKeywordGroup, fmt.Sprintf("keyword match: %s", group.Name))
		}
	}

	// Location hints: a hint applies when its site appears in the job's
	// location text and one of its expected program labels appears in the
	// program text.
	jobLocation := joinLower(job.Location, job.City)
	for _, hint := range sig.LocationHints {
		if !containsLower(jobLocation, hint.Location) {
			continue
		}
		if anyTermIn(hint.Programs, programText) {
			add(scoreLocationHint, fmt.Sprintf("location hint: %s", hint.Location))
		}
	}

	// Clearance alignment: the job clearance and any required clearance must
	// be mutual substrings.
	jobClearance := strings.ToLower(strings.TrimSpace(job.Clearance))
	if jobClearance != "" {
		for _, required := range program.RequiredClearances {
			req := strings.ToLower(strings.TrimSpace(required))
			if req == "" {
				continue
			}
			if strings.Contains(jobClearance, req) || strings.Contains(req, jobClearance) {
				add(scoreClearance, "clearance alignment")
				break
			}
		}
	}

	// Functional area vs program type, same mutual-substring test.
	area := strings.ToLower(strings.TrimSpace(job.FunctionalArea))
	programType := strings.ToLower(strings.TrimSpace(program.ProgramType))
	if area != "" && programType != "" {
		if strings.Contains(area, programType) || strings.Contains(programType, area) {
			add(scoreFunctionalFit, "functional area alignment")
		}
	}

	if job.DomainRelevant && containsLower(programText, sig.DomainKeyword) {
		add(scoreDomainBoost, "domain relevance flag matched")
	}

	return result
}

// joinLower concatenates the non-empty parts into one lowered search text.
func joinLower(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.ToLower(strings.Join(kept, " "))
}

// containsLower reports whether text contains needle, case-insensitively.
// Empty needles and empty text never match.
func containsLower(text, needle string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if text == "" || needle == "" {
		return false
	}
	return strings.Contains(text, needle)
}

// containsEither reports whether either non-empty string contains the other.
func containsEither(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// anyTermIn reports whether any of the terms appears in the lowered text.
func anyTermIn(terms []string, text string) bool {
	for _, term := range terms {
		if containsLower(text, term) {
			return true
		}
	}
	return false
}

// termMatches reports whether the value matches any term of a family, either
// direction: the term appears in the value or the value appears in the term.
func termMatches(terms []string, value string) bool {
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if strings.Contains(value, term) || strings.Contains(term, value) {
			return true
		}
	}
	return false
}
