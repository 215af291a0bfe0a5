// Package taxonomy models the four-level interest taxonomy
// (Identity -> Category -> Subcategory -> Subsubcategory) and the
// membership queries the scorer runs against it.
package taxonomy

// Level identifies a depth in the taxonomy tree.
type Level string

// Taxonomy levels from root to leaf.
const (
	LevelIdentity       Level = "identity"
	LevelCategory       Level = "category"
	LevelSubcategory    Level = "subcategory"
	LevelSubsubcategory Level = "subsubcategory"
)

// Levels returns all levels ordered from root to leaf.
func Levels() []Level {
	return []Level{LevelIdentity, LevelCategory, LevelSubcategory, LevelSubsubcategory}
}

// IsValid reports whether the level is one of the known four.
func (l Level) IsValid() bool {
	switch l {
	case LevelIdentity, LevelCategory, LevelSubcategory, LevelSubsubcategory:
		return true
	default:
		return false
	}
}
