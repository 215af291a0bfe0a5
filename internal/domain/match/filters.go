package match

import "sort"

// Filters are the coarse candidate-selection inputs. Every field here
// participates in cache-key construction: anything that changes the pool
// or the scores must change the key.
type Filters struct {
	Text        string
	Country     string
	City        string
	AccountType string

	CategoryIDs    []string
	SubcategoryIDs []string
	GoalIDs        []string
	IdentityIDs    []string

	AudienceCategoryIDs       []string
	AudienceSubcategoryIDs    []string
	AudienceSubsubcategoryIDs []string

	IndustryIDs      []string
	ExperienceLevels []string

	ConnectionStatuses []string
	ConnectionsOnly    bool
}

// Normalize returns a copy with every id list sorted and deduplicated so
// that equivalent filter sets compare and hash identically.
func (f Filters) Normalize() Filters {
	f.CategoryIDs = normalizeList(f.CategoryIDs)
	f.SubcategoryIDs = normalizeList(f.SubcategoryIDs)
	f.GoalIDs = normalizeList(f.GoalIDs)
	f.IdentityIDs = normalizeList(f.IdentityIDs)
	f.AudienceCategoryIDs = normalizeList(f.AudienceCategoryIDs)
	f.AudienceSubcategoryIDs = normalizeList(f.AudienceSubcategoryIDs)
	f.AudienceSubsubcategoryIDs = normalizeList(f.AudienceSubsubcategoryIDs)
	f.IndustryIDs = normalizeList(f.IndustryIDs)
	f.ExperienceLevels = normalizeList(f.ExperienceLevels)
	f.ConnectionStatuses = normalizeList(f.ConnectionStatuses)
	return f
}

// IsZero reports whether no explicit selection filter is present. The
// retriever falls back to a profile-completeness gate in that case.
func (f Filters) IsZero() bool {
	return f.Text == "" && f.Country == "" && f.City == "" && f.AccountType == "" &&
		len(f.CategoryIDs) == 0 && len(f.SubcategoryIDs) == 0 &&
		len(f.GoalIDs) == 0 && len(f.IdentityIDs) == 0 &&
		len(f.AudienceCategoryIDs) == 0 && len(f.AudienceSubcategoryIDs) == 0 &&
		len(f.AudienceSubsubcategoryIDs) == 0 &&
		len(f.IndustryIDs) == 0 && len(f.ExperienceLevels) == 0
}

func normalizeList(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return out
}
