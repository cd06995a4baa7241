package enrich

import (
	"sort"
	"strings"
	"time"

	"github.com/spigell/bd-radar/internal/catalog"
)

const (
	// DefaultMaxContacts caps how many ranked contacts a job carries.
	DefaultMaxContacts = 5

	// relevanceFloor is the minimum score (exclusive) a contact needs to be
	// returned at all, regardless of how few candidates remain.
	relevanceFloor = 20

	// outreachWindow is how far ahead a scheduled next-outreach date still
	// earns the timing bonus.
	outreachWindow = 14 * 24 * time.Hour
)

// primeAgencies are the owning agencies for which employment at the prime
// contractor is itself a relevance signal.
var primeAgencies = []string{"dod", "army", "navy", "disa"}

// primeMarker identifies the prime contractor in contact company text.
const primeMarker = "gdit"

// RankedContact pairs a contact with its relevance score for one program.
type RankedContact struct {
	Contact   *catalog.Contact
	Relevance int
}

// RankContacts scores every contact against the matched program and returns
// the top maxContacts whose relevance clears the floor, best first. Ties keep
// catalog order. The caller-supplied now pins the outreach-window check.
// A maxContacts of zero or below falls back to DefaultMaxContacts; negative
// caps are rejected with a ValidationError only at the EnrichJob/EnrichAll
// boundary.
func RankContacts(program *catalog.Program, contacts *catalog.Contacts, maxContacts int, now time.Time) []RankedContact {
	if program == nil || contacts == nil {
		return nil
	}
	if maxContacts <= 0 {
		maxContacts = DefaultMaxContacts
	}

	ranked := make([]RankedContact, 0, contacts.Len())
	for _, contact := range contacts.Items {
		score := scoreContact(contact, program, now)
		if score <= relevanceFloor {
			continue
		}
		ranked = append(ranked, RankedContact{Contact: contact, Relevance: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Relevance > ranked[j].Relevance
	})

	if len(ranked) > maxContacts {
		ranked = ranked[:maxContacts]
	}
	return ranked
}

func scoreContact(contact *catalog.Contact, program *catalog.Program, now time.Time) int {
	score := 0

	affiliation := strings.ToLower(strings.TrimSpace(contact.Program))
	if affiliation != "" {
		if containsLower(affiliation, program.Name) || containsLower(affiliation, program.Acronym) {
			score += 100
		}
	}

	if containsLower(strings.ToLower(contact.Company), primeMarker) && isPrimeAgency(program.AgencyOwner) {
		score += 20
	}

	// Seniority: tier 1 (most senior) earns 60, tier 6 earns 10.
	if contact.Tier >= 1 && contact.Tier <= 6 {
		score += (7 - contact.Tier) * 10
	}

	priority := strings.ToLower(contact.BDPriority)
	switch {
	case strings.Contains(priority, "critical"):
		score += 30
	case strings.Contains(priority, "high"):
		score += 20
	case strings.Contains(priority, "medium"):
		score += 10
	}

	switch {
	case strings.EqualFold(strings.TrimSpace(contact.Relationship), "Strong"):
		score += 25
	case strings.EqualFold(strings.TrimSpace(contact.Relationship), "Developing"):
		score += 15
	}

	if next, ok := parseDate(contact.NextOutreach); ok {
		if sameOrAfterDay(next, now) && !truncateToDay(next).After(truncateToDay(now.Add(outreachWindow))) {
			score += 15
		}
	}

	return score
}

func isPrimeAgency(agency string) bool {
	agency = strings.ToLower(strings.TrimSpace(agency))
	for _, candidate := range primeAgencies {
		if agency == candidate {
			return true
		}
	}
	return false
}
