// Package signals holds the static lookup tables the enrichment engine
// matches against: keyword groups, agency alias families, and location
// hints. A Catalog is built once and passed explicitly into the engine so
// scoring stays pure and testable.
package signals

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Group names a family of equivalent signal terms. For keyword groups the
// name itself also counts as a term.
type Group struct {
	Name  string   `yaml:"name"`
	Terms []string `yaml:"terms"`
}

// Hint maps a location substring to program labels expected at that site.
type Hint struct {
	Location string   `yaml:"location"`
	Programs []string `yaml:"programs"`
}

// Catalog is the full signal table set. Groups and hints are ordered slices,
// not maps, so scan order (and therefore reason ordering and first-group-wins
// tie-breaks) is deterministic.
type Catalog struct {
	KeywordGroups []Group `yaml:"keyword_groups"`
	AgencyAliases []Group `yaml:"agency_aliases"`
	LocationHints []Hint  `yaml:"location_hints"`
	DomainKeyword string  `yaml:"domain_keyword"`
}

// Default returns the built-in signal catalog.
func Default() *Catalog {
	return &Catalog{
		KeywordGroups: []Group{
			{Name: "geoint", Terms: []string{"geospatial", "imagery", "full motion video", "fmv"}},
			{Name: "sigint", Terms: []string{"signals intelligence", "collection", "elint"}},
			{Name: "intel analysis", Terms: []string{"intelligence analyst", "all-source", "targeting"}},
			{Name: "cyber", Terms: []string{"cybersecurity", "cyber operations", "rmf", "information assurance"}},
			{Name: "cloud", Terms: []string{"aws", "azure", "c2s", "devsecops"}},
			{Name: "mission systems", Terms: []string{"ground systems", "mission software", "c4isr"}},
			{Name: "logistics", Terms: []string{"sustainment", "supply chain", "field service"}},
		},
		AgencyAliases: []Group{
			{Name: "army", Terms: []string{"army", "us army", "u.s. army", "inscom", "peo iews"}},
			{Name: "air force", Terms: []string{"air force", "usaf", "u.s. air force", "acc", "aflcmc"}},
			{Name: "navy", Terms: []string{"navy", "us navy", "u.s. navy", "navwar", "onr"}},
			{Name: "disa", Terms: []string{"disa", "defense information systems agency"}},
			{Name: "dod", Terms: []string{"dod", "department of defense", "osd"}},
			{Name: "intel community", Terms: []string{"nga", "nsa", "dia", "nro", "odni"}},
		},
		LocationHints: []Hint{
			{Location: "fort belvoir", Programs: []string{"dcgs-a", "army", "ground station"}},
			{Location: "langley", Programs: []string{"dcgs", "air force", "distributed ground"}},
			{Location: "fort meade", Programs: []string{"cyber", "disa", "nsa"}},
			{Location: "san antonio", Programs: []string{"air force", "cyber", "medical"}},
			{Location: "tampa", Programs: []string{"socom", "centcom"}},
			{Location: "huntsville", Programs: []string{"army", "missile", "aviation"}},
			{Location: "springfield", Programs: []string{"nga", "geoint"}},
		},
		DomainKeyword: "dcgs",
	}
}

// Load reads a YAML signal file and overlays its non-empty sections over the
// built-in defaults.
func Load(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read signals file: %w", err)
	}

	var overlay Catalog
	if err := yaml.Unmarshal(b, &overlay); err != nil {
		return nil, fmt.Errorf("parse signals file %s: %w", path, err)
	}

	cat := Default()
	if len(overlay.KeywordGroups) > 0 {
		cat.KeywordGroups = overlay.KeywordGroups
	}
	if len(overlay.AgencyAliases) > 0 {
		cat.AgencyAliases = overlay.AgencyAliases
	}
	if len(overlay.LocationHints) > 0 {
		cat.LocationHints = overlay.LocationHints
	}
	if overlay.DomainKeyword != "" {
		cat.DomainKeyword = overlay.DomainKeyword
	}
	return cat, nil
}
