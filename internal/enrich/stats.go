package enrich

import "sort"

// topProgramsLimit caps the per-batch program leaderboard.
const topProgramsLimit = 10

// ProgramCount is one leaderboard entry.
type ProgramCount struct {
	Name  string
	Count int
}

// Stats is the batch rollup consumed by the dashboard and exporters.
type Stats struct {
	TotalJobs    int
	Matched      int
	MatchRate    float64
	WithContacts int
	ByTier       map[Tier]int
	TopPrograms  []ProgramCount
}

// ComputeStats rolls up an enriched batch in a single pass. An empty batch
// yields all-zero counts and an empty leaderboard.
func ComputeStats(enriched EnrichedJobs) Stats {
	stats := Stats{
		TotalJobs: len(enriched),
		ByTier:    make(map[Tier]int, len(Tiers)),
	}
	for _, tier := range Tiers {
		stats.ByTier[tier] = 0
	}

	counts := make(map[string]int)
	var order []string

	for _, e := range enriched {
		stats.ByTier[e.Tier]++
		if e.Program != nil {
			stats.Matched++
			if counts[e.Program.Name] == 0 {
				order = append(order, e.Program.Name)
			}
			counts[e.Program.Name]++
		}
		if len(e.Contacts) > 0 {
			stats.WithContacts++
		}
	}

	if stats.TotalJobs > 0 {
		stats.MatchRate = float64(stats.Matched) / float64(stats.TotalJobs)
	}

	// Leaderboard in first-seen order, then stable by count so equal counts
	// keep batch order.
	top := make([]ProgramCount, 0, len(order))
	for _, name := range order {
		top = append(top, ProgramCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Count > top[j].Count
	})
	if len(top) > topProgramsLimit {
		top = top[:topProgramsLimit]
	}
	stats.TopPrograms = top

	return stats
}
