package taxonomy

import "sort"

// Set is an unordered collection of taxonomy node ids.
type Set map[string]struct{}

// NewSet creates a set from the given ids.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		if id != "" {
			s[id] = struct{}{}
		}
	}
	return s
}

// Has reports whether id is in the set.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids in the set.
func (s Set) Len() int { return len(s) }

// IDs returns the ids in lexicographic order.
func (s Set) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IntersectCount returns the number of ids present in both sets,
// iterating the smaller side.
func (s Set) IntersectCount(other Set) int {
	a, b := s, other
	if len(a) > len(b) {
		a, b = b, a
	}
	n := 0
	for id := range a {
		if _, ok := b[id]; ok {
			n++
		}
	}
	return n
}

// TagSet groups node ids by taxonomy level. A profile carries two
// independent TagSets: what it offers and what it wants.
type TagSet struct {
	Identities       Set
	Categories       Set
	Subcategories    Set
	Subsubcategories Set
}

// NewTagSet creates an empty TagSet with all level sets allocated.
func NewTagSet() TagSet {
	return TagSet{
		Identities:       NewSet(),
		Categories:       NewSet(),
		Subcategories:    NewSet(),
		Subsubcategories: NewSet(),
	}
}

// AtLevel returns the set for the given level (nil for an unknown level).
func (t TagSet) AtLevel(l Level) Set {
	switch l {
	case LevelIdentity:
		return t.Identities
	case LevelCategory:
		return t.Categories
	case LevelSubcategory:
		return t.Subcategories
	case LevelSubsubcategory:
		return t.Subsubcategories
	default:
		return nil
	}
}

// SetLevel replaces the set for the given level.
func (t *TagSet) SetLevel(l Level, s Set) {
	switch l {
	case LevelIdentity:
		t.Identities = s
	case LevelCategory:
		t.Categories = s
	case LevelSubcategory:
		t.Subcategories = s
	case LevelSubsubcategory:
		t.Subsubcategories = s
	}
}

// IsEmpty reports whether no level carries any id.
func (t TagSet) IsEmpty() bool {
	return len(t.Identities) == 0 && len(t.Categories) == 0 &&
		len(t.Subcategories) == 0 && len(t.Subsubcategories) == 0
}
