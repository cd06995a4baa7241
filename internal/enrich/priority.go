package enrich

import (
	"strings"

	"github.com/spigell/bd-radar/internal/catalog"
)

// Tier is the final urgency classification of an enriched job.
type Tier string

const (
	TierCritical Tier = "critical"
	TierHigh     Tier = "high"
	TierMedium   Tier = "medium"
	TierLow      Tier = "low"
)

// Tiers lists every tier from most to least severe.
var Tiers = []Tier{TierCritical, TierHigh, TierMedium, TierLow}

// Rank returns the tier's severity rank, 0 being most severe. Unknown tiers
// rank after every real one.
func (t Tier) Rank() int {
	for i, known := range Tiers {
		if t == known {
			return i
		}
	}
	return len(Tiers)
}

// ClassifyPriority folds job-intrinsic signals, match quality, program
// priority, contact availability, and clearance value into one of the four
// tiers. Program may be nil for unmatched jobs. The same inputs always
// produce the same tier.
func ClassifyPriority(job *catalog.Job, matchScore int, program *catalog.Program, contacts []RankedContact) Tier {
	score := job.Priority
	score += matchScore / 2

	if program != nil {
		band := strings.ToLower(program.PriorityBand)
		switch {
		case strings.Contains(band, "critical"):
			score += 40
		case strings.Contains(band, "high"):
			score += 25
		case strings.Contains(band, "medium"):
			score += 10
		}
	}

	if job.DomainRelevant {
		score += 20
	}

	if len(contacts) > 0 {
		bonus := len(contacts) * 5
		if bonus > 25 {
			bonus = 25
		}
		score += bonus

		for _, rc := range contacts {
			if rc.Contact.Tier >= 1 && rc.Contact.Tier <= 2 {
				score += 15
				break
			}
		}
	}

	score += clearanceValue(job.Clearance)

	switch {
	case score >= 100:
		return TierCritical
	case score >= 60:
		return TierHigh
	case score >= 30:
		return TierMedium
	default:
		return TierLow
	}
}

// clearanceValue scores the job's clearance text, highest-value access first.
// Only the first matching rung counts.
func clearanceValue(clearance string) int {
	c := strings.ToLower(clearance)
	switch {
	case strings.Contains(c, "poly"):
		return 15
	case strings.Contains(c, "sci"):
		return 12
	case strings.Contains(c, "top secret"), strings.Contains(c, "ts"):
		return 10
	case strings.Contains(c, "secret"):
		return 5
	default:
		return 0
	}
}
