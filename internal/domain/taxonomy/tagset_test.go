package taxonomy

import (
	"reflect"
	"testing"
)

func TestSet_IntersectCount(t *testing.T) {
	tests := []struct {
		name string
		a, b Set
		want int
	}{
		{"disjoint", NewSet("a", "b"), NewSet("c"), 0},
		{"partial", NewSet("a", "b", "c"), NewSet("b", "c", "d"), 2},
		{"identical", NewSet("a", "b"), NewSet("a", "b"), 2},
		{"empty left", NewSet(), NewSet("a"), 0},
		{"both empty", NewSet(), NewSet(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.IntersectCount(tt.b); got != tt.want {
				t.Errorf("IntersectCount = %d, want %d", got, tt.want)
			}
			// Symmetric.
			if got := tt.b.IntersectCount(tt.a); got != tt.want {
				t.Errorf("reversed IntersectCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSet_IDsSorted(t *testing.T) {
	s := NewSet("z", "a", "m")
	want := []string{"a", "m", "z"}
	if got := s.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("IDs = %v, want %v", got, want)
	}
}

func TestNewSet_DropsEmptyIDs(t *testing.T) {
	s := NewSet("a", "", "b")
	if s.Len() != 2 {
		t.Errorf("expected empty ids dropped, len=%d", s.Len())
	}
}

func TestTagSet_AtLevel(t *testing.T) {
	ts := NewTagSet()
	ts.Categories = NewSet("c1")

	if got := ts.AtLevel(LevelCategory); !got.Has("c1") {
		t.Error("AtLevel(category) should return the category set")
	}
	if got := ts.AtLevel(Level("bogus")); got != nil {
		t.Error("AtLevel with unknown level should return nil")
	}
}

func TestTagSet_SetLevelAndIsEmpty(t *testing.T) {
	ts := NewTagSet()
	if !ts.IsEmpty() {
		t.Error("fresh TagSet should be empty")
	}

	ts.SetLevel(LevelSubsubcategory, NewSet("x"))
	if ts.IsEmpty() {
		t.Error("TagSet with a subsubcategory should not be empty")
	}
	if !ts.Subsubcategories.Has("x") {
		t.Error("SetLevel should replace the subsubcategory set")
	}
}
