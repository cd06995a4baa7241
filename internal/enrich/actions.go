package enrich

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// recompete timing uses 30-day months; the note carries the rounded count.
const daysPerMonth = 30

// RecommendActions builds the ordered next-action list for an enriched job.
// Rules are evaluated independently and appended in a fixed order, so the
// output is deterministic for a given match, contact list, tier, and now.
func RecommendActions(match *MatchResult, contacts []RankedContact, tier Tier, url string, now time.Time) []string {
	var actions []string

	if tier == TierCritical {
		actions = append(actions, "urgent: review and assign within 24 hours")
	}

	if len(contacts) > 0 {
		top := contacts[0].Contact
		switch {
		case top.Email != "":
			actions = append(actions, fmt.Sprintf("email %s (%s)", top.Name, top.Title))
		case top.Phone != "":
			actions = append(actions, fmt.Sprintf("call %s (%s)", top.Name, top.Title))
		case top.LinkedIn != "":
			actions = append(actions, fmt.Sprintf("connect with %s on LinkedIn", top.Name))
		}
		if len(contacts) > 1 {
			actions = append(actions, fmt.Sprintf("%d more relevant contacts identified", len(contacts)-1))
		}
	} else {
		actions = append(actions, "research and identify program contacts")
	}

	if match != nil {
		if strings.EqualFold(strings.TrimSpace(match.Program.HiringVelocity), "High") {
			actions = append(actions, "high hiring velocity: prioritize in pipeline")
		}
		if months, ok := monthsUntil(match.Program.RecompeteDate, now); ok {
			actions = append(actions, fmt.Sprintf("recompete in ~%d months: position early", months))
		}
	} else {
		actions = append(actions, "research program details and prime contractors")
	}

	if url != "" {
		actions = append(actions, "review full job posting for requirements")
	}

	return actions
}

// monthsUntil returns the rounded month count to the recompete date when it
// falls within the next twelve months. Past dates, dates beyond a year, and
// unparsable dates all report false.
func monthsUntil(recompete string, now time.Time) (int, bool) {
	date, ok := parseDate(recompete)
	if !ok {
		return 0, false
	}

	months := date.Sub(now).Hours() / 24 / daysPerMonth
	if months <= 0 || months > 12 {
		return 0, false
	}
	return int(math.Round(months)), true
}
