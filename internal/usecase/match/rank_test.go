package match

import (
	"testing"
	"time"

	dommatch "github.com/meetgrid/affinity/internal/domain/match"
	"github.com/meetgrid/affinity/internal/domain/taxonomy"
)

func result(id string, percent int, createdAt time.Time, status dommatch.Status) dommatch.Result {
	return dommatch.Result{
		Profile:          testProfile(id, createdAt, taxonomy.NewTagSet(), taxonomy.NewTagSet()),
		Percent:          percent,
		ConnectionStatus: status,
	}
}

func ids(page dommatch.Page) []string {
	out := make([]string, len(page.Items))
	for i, item := range page.Items {
		out[i] = item.ID
	}
	return out
}

func TestRank_ScoreDescThenRecencyDesc(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	results := []dommatch.Result{
		result("old-high", 90, t0, dommatch.StatusNone),
		result("low", 10, t0.Add(48*time.Hour), dommatch.StatusNone),
		result("new-high", 90, t0.Add(24*time.Hour), dommatch.StatusNone),
	}

	page := Rank(results, nil, 0, 20)

	want := []string{"new-high", "old-high", "low"}
	got := ids(page)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
	if page.SortedBy != "matchPercentage" {
		t.Errorf("unexpected sortedBy: %s", page.SortedBy)
	}
}

func TestRank_FullTiesPreserveRetrievalOrder(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	results := []dommatch.Result{
		result("first", 50, t0, dommatch.StatusNone),
		result("second", 50, t0, dommatch.StatusNone),
		result("third", 50, t0, dommatch.StatusNone),
	}

	got := ids(Rank(results, nil, 0, 20))
	want := []string{"first", "second", "third"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestRank_StatusFilterBeforePagination(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	results := []dommatch.Result{
		result("a", 90, t0, dommatch.StatusConnected),
		result("b", 80, t0, dommatch.StatusNone),
		result("c", 70, t0, dommatch.StatusConnected),
		result("d", 60, t0, dommatch.StatusPendingOutgoing),
	}

	page := Rank(results, []string{"connected", "pending_outgoing"}, 0, 2)

	// Count reflects the post-filter total, not the page size.
	if page.Count != 3 {
		t.Fatalf("expected count 3, got %d", page.Count)
	}
	got := ids(page)
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Fatalf("unexpected page: %v", got)
	}
}

func TestRank_OffsetWindow(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var results []dommatch.Result
	for i, id := range []string{"a", "b", "c", "d", "e"} {
		results = append(results, result(id, 100-i, t0, dommatch.StatusNone))
	}

	page := Rank(results, nil, 2, 2)
	if page.Count != 5 {
		t.Fatalf("expected count 5, got %d", page.Count)
	}
	got := ids(page)
	if len(got) != 2 || got[0] != "c" || got[1] != "d" {
		t.Fatalf("unexpected window: %v", got)
	}
}

func TestRank_OffsetBeyondEnd(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	results := []dommatch.Result{result("a", 50, t0, dommatch.StatusNone)}

	page := Rank(results, nil, 10, 20)
	if page.Count != 1 {
		t.Fatalf("expected true count 1, got %d", page.Count)
	}
	if len(page.Items) != 0 {
		t.Fatalf("expected empty items, got %v", page.Items)
	}
}

func TestRank_EmptyInput(t *testing.T) {
	page := Rank(nil, nil, 0, 20)
	if page.Count != 0 || len(page.Items) != 0 || page.SortedBy != "matchPercentage" {
		t.Fatalf("unexpected empty page: %+v", page)
	}
}
