package enrich

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// DumpToTmpFile writes the enriched batch as indented JSON to a temp file
// and returns its path.
func (e EnrichedJobs) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "enriched_jobs_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ReportByProgram groups the batch by matched program for quick review.
// Unmatched jobs land under the "unmatched" key.
func (e EnrichedJobs) ReportByProgram() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, enriched := range e {
		key := "unmatched"
		if enriched.Program != nil {
			key = fmt.Sprintf("%s (%s)", enriched.Program.Name, enriched.Program.AgencyOwner)
		}

		contacts := make([]string, 0, len(enriched.Contacts))
		for _, rc := range enriched.Contacts {
			contacts = append(contacts, rc.Contact.Name)
		}

		report[key] = append(report[key], map[string]string{
			"job":         enriched.Job.Title,
			"company":     enriched.Job.Company,
			"tier":        string(enriched.Tier),
			"match score": fmt.Sprintf("%d", enriched.MatchScore),
			"reasons":     strings.Join(enriched.MatchReasons, "; "),
			"contacts":    strings.Join(contacts, ", "),
			"actions":     strings.Join(enriched.Actions, "; "),
		})
	}
	return report
}

// MarshalJSON flattens the enriched job for dumps so contacts carry their
// relevance scores alongside the record.
func (e *EnrichedJob) MarshalJSON() ([]byte, error) {
	type contactEntry struct {
		ID        string `json:"id,omitempty"`
		Name      string `json:"name,omitempty"`
		Title     string `json:"title,omitempty"`
		Relevance int    `json:"relevance"`
	}

	contacts := make([]contactEntry, 0, len(e.Contacts))
	for _, rc := range e.Contacts {
		contacts = append(contacts, contactEntry{
			ID:        rc.Contact.ID,
			Name:      rc.Contact.Name,
			Title:     rc.Contact.Title,
			Relevance: rc.Relevance,
		})
	}

	out := map[string]any{
		"job":           e.Job,
		"tier":          e.Tier,
		"match_score":   e.MatchScore,
		"match_reasons": e.MatchReasons,
		"contacts":      contacts,
		"actions":       e.Actions,
	}
	if e.Program != nil {
		out["program"] = e.Program
	}
	return json.Marshal(out)
}
