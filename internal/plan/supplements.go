package plan

import (
	"slices"
	"strings"
)

// recommendSupplements merges goal-specific and general supplement
// recommendations, skipping duplicates and anything the user already takes.
// The result is ordered by priority; within a priority the concatenation
// order is kept, so goal-specific entries come before general ones.
func (g *generator) recommendSupplements() []SupplementRecommendation {
	candidates := slices.Concat(
		g.catalog.GoalSupplements[g.profile.Goal],
		g.catalog.GeneralSupplements,
	)

	already := make(map[string]bool, len(g.profile.Supplements))
	for _, name := range g.profile.Supplements {
		already[normalizeSupplementName(name)] = true
	}

	seen := make(map[string]bool, len(candidates))
	var recommendations []SupplementRecommendation
	for _, s := range candidates {
		key := normalizeSupplementName(s.Name)
		if seen[key] || already[key] {
			continue
		}
		seen[key] = true
		recommendations = append(recommendations, s)
	}

	slices.SortStableFunc(recommendations, func(a, b SupplementRecommendation) int {
		return priorityRank(a.Priority) - priorityRank(b.Priority)
	})
	return recommendations
}

func normalizeSupplementName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
