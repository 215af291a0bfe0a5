package candidate

import (
	"strings"
	"testing"

	"github.com/meetgrid/affinity/internal/domain/match"
	"github.com/meetgrid/affinity/internal/domain/profile"
)

func TestBuildQuery_NoFiltersAppliesContentGate(t *testing.T) {
	q := buildQuery("alice", profile.KindUser, match.Filters{})

	for _, want := range []string{"@kind:{user}", "-@id:{alice}", "@has_content:{1}"} {
		if !strings.Contains(q, want) {
			t.Errorf("query %q missing %q", q, want)
		}
	}
}

func TestBuildQuery_AnonymousOmitsActorExclusion(t *testing.T) {
	q := buildQuery("", profile.KindUser, match.Filters{Country: "DE"})

	if strings.Contains(q, "@id:") {
		t.Errorf("query %q must not carry an id clause without an actor", q)
	}
	if strings.Contains(q, "{}") {
		t.Errorf("query %q contains an empty tag clause", q)
	}
	if !strings.Contains(q, "@kind:{user}") || !strings.Contains(q, "@country:{DE}") {
		t.Errorf("query %q missing expected clauses", q)
	}
}

func TestBuildQuery_ExplicitFiltersSkipContentGate(t *testing.T) {
	q := buildQuery("alice", profile.KindUser, match.Filters{Country: "DE"})

	if strings.Contains(q, "has_content") {
		t.Errorf("query %q should not gate on content", q)
	}
	if !strings.Contains(q, "@country:{DE}") {
		t.Errorf("query %q missing country clause", q)
	}
}

func TestBuildQuery_IDListsBecomeAnyOfTags(t *testing.T) {
	q := buildQuery("alice", profile.KindJob, match.Filters{
		CategoryIDs:         []string{"cat-a", "cat-b"},
		AudienceCategoryIDs: []string{"cat-c"},
	})

	if !strings.Contains(q, "@kind:{job}") {
		t.Errorf("query %q missing kind clause", q)
	}
	if !strings.Contains(q, "@offer_category_ids:{cat\\-a | cat\\-b}") {
		t.Errorf("query %q missing offer category clause", q)
	}
	if !strings.Contains(q, "@want_category_ids:{cat\\-c}") {
		t.Errorf("query %q missing audience category clause", q)
	}
}

func TestBuildQuery_EscapesTagValues(t *testing.T) {
	q := buildQuery("alice", profile.KindUser, match.Filters{City: "New York"})

	if !strings.Contains(q, `@city:{New\ York}`) {
		t.Errorf("query %q missing escaped city clause", q)
	}
}

func TestBuildQuery_TextSearchesHeadlineAndAbout(t *testing.T) {
	q := buildQuery("alice", profile.KindUser, match.Filters{Text: "fintech"})

	if !strings.Contains(q, "(@headline:(fintech) | @about:(fintech))") {
		t.Errorf("query %q missing text clause", q)
	}
}
