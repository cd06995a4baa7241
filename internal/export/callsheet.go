// Package export writes enrichment results into files for downstream BD
// workflows. The engine itself never touches the filesystem; exporters
// consume its already-ordered output.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spigell/bd-radar/internal/enrich"
)

var callSheetHeader = []string{
	"tier",
	"job_title",
	"company",
	"program",
	"match_score",
	"contact",
	"contact_title",
	"relevance",
	"channel",
	"channel_value",
	"next_action",
}

// WriteCallSheet writes one CSV row per (job, contact) pair for every
// enriched job that has relevant contacts. The batch arrives ordered by tier
// and match score; contacts are already ranked, so row order is the outreach
// order.
func WriteCallSheet(path string, enriched enrich.EnrichedJobs) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create call sheet: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(callSheetHeader); err != nil {
		return fmt.Errorf("write call sheet header: %w", err)
	}

	for _, e := range enriched {
		if len(e.Contacts) == 0 {
			continue
		}

		programName := ""
		if e.Program != nil {
			programName = e.Program.Name
		}

		nextAction := ""
		if len(e.Actions) > 0 {
			nextAction = e.Actions[0]
		}

		for _, rc := range e.Contacts {
			channel, value := preferredChannel(rc)
			row := []string{
				string(e.Tier),
				e.Job.Title,
				e.Job.Company,
				programName,
				strconv.Itoa(e.MatchScore),
				rc.Contact.Name,
				rc.Contact.Title,
				strconv.Itoa(rc.Relevance),
				channel,
				value,
				nextAction,
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("write call sheet row: %w", err)
			}
		}
	}

	w.Flush()
	return w.Error()
}

// preferredChannel mirrors the action recommender's outreach preference:
// email, then phone, then professional network.
func preferredChannel(rc enrich.RankedContact) (channel, value string) {
	switch {
	case rc.Contact.Email != "":
		return "email", rc.Contact.Email
	case rc.Contact.Phone != "":
		return "phone", rc.Contact.Phone
	case rc.Contact.LinkedIn != "":
		return "linkedin", rc.Contact.LinkedIn
	default:
		return "none", ""
	}
}
