package match

import (
	"sort"

	dommatch "github.com/meetgrid/affinity/internal/domain/match"
)

// Rank orders scored results, applies the optional connection-status
// allow-set, and slices the requested page. The post-filter runs after
// sorting and before pagination, so Count reflects the filtered total.
func Rank(results []dommatch.Result, allowStatuses []string, offset, limit int) dommatch.Page {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Percent != results[j].Percent {
			return results[i].Percent > results[j].Percent
		}
		return results[i].Profile.CreatedAt.After(results[j].Profile.CreatedAt)
	})

	if len(allowStatuses) > 0 {
		allow := make(map[dommatch.Status]struct{}, len(allowStatuses))
		for _, s := range allowStatuses {
			allow[dommatch.Status(s)] = struct{}{}
		}
		filtered := results[:0]
		for _, r := range results {
			if _, ok := allow[r.ConnectionStatus]; ok {
				filtered = append(filtered, r)
			}
		}
		results = filtered
	}

	count := len(results)
	if offset >= count {
		return dommatch.Page{Count: count, Items: []dommatch.Item{}, SortedBy: dommatch.SortedBy}
	}

	end := offset + limit
	if end > count {
		end = count
	}

	items := make([]dommatch.Item, 0, end-offset)
	for _, r := range results[offset:end] {
		items = append(items, dommatch.NewItem(r))
	}

	return dommatch.Page{Count: count, Items: items, SortedBy: dommatch.SortedBy}
}
