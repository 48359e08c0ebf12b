package catalog

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SearchNames fuzzy-matches distinct plan names against a query, best
// matches first. It exists as an operator aid when naming new plans:
// near-duplicates like "PADRAO_2_89" vs "PADRA0_2_89" surface before a
// second copy gets saved.
func SearchNames(entries []Entry, query string, limit int) []string {
	if query == "" {
		return nil
	}

	seen := make(map[string]struct{}, len(entries))
	var names []string
	for _, e := range entries {
		if _, ok := seen[e.PlanName]; ok {
			continue
		}
		seen[e.PlanName] = struct{}{}
		names = append(names, e.PlanName)
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)

	out := make([]string, 0, len(ranks))
	for _, r := range ranks {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, r.Target)
	}
	return out
}
