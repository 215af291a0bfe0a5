package chi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dommatch "github.com/meetgrid/affinity/internal/domain/match"
)

func boolPtr(b bool) *bool { return &b }

func TestToDomain_FullBody(t *testing.T) {
	body := matchRequest{
		ActorID: "alice",
		Filters: &filtersBody{
			Text:                      "golang",
			Country:                   "DE",
			City:                      "Berlin",
			AccountType:               "member",
			CategoryIDs:               []string{"cat-b", "cat-a"},
			SubcategoryIDs:            []string{"sub-1"},
			GoalIDs:                   []string{"g1"},
			IdentityIDs:               []string{"ent"},
			AudienceCategoryIDs:       []string{"cat-x"},
			AudienceSubcategoryIDs:    []string{"sub-x"},
			AudienceSubsubcategoryIDs: []string{"ssc-x"},
			IndustryIDs:               []string{"fintech"},
			ExperienceLevel:           []string{"senior"},
			ConnectionStatus:          []string{"connected", "none"},
			ConnectionsOnly:           true,
		},
		Paging:      &pagingBody{Limit: 50, Offset: 10},
		MatchConfig: &matchConfigBody{Bidirectional: boolPtr(false), Formula: "simple"},
	}

	req, err := body.toDomain()
	require.NoError(t, err)

	assert.Equal(t, "alice", req.ActorID())
	assert.Equal(t, 50, req.Limit())
	assert.Equal(t, 10, req.Offset())

	f := req.Filters()
	assert.Equal(t, "golang", f.Text)
	assert.Equal(t, "DE", f.Country)
	assert.Equal(t, "Berlin", f.City)
	assert.Equal(t, "member", f.AccountType)
	assert.Equal(t, []string{"cat-a", "cat-b"}, f.CategoryIDs, "id lists are normalized")
	assert.Equal(t, []string{"sub-1"}, f.SubcategoryIDs)
	assert.Equal(t, []string{"ent"}, f.IdentityIDs)
	assert.Equal(t, []string{"cat-x"}, f.AudienceCategoryIDs)
	assert.Equal(t, []string{"ssc-x"}, f.AudienceSubsubcategoryIDs)
	assert.Equal(t, []string{"senior"}, f.ExperienceLevels)
	assert.Equal(t, []string{"connected", "none"}, f.ConnectionStatuses)
	assert.True(t, f.ConnectionsOnly)

	override := req.ConfigOverride()
	require.NotNil(t, override)
	require.NotNil(t, override.Bidirectional)
	assert.False(t, *override.Bidirectional)
	assert.Equal(t, dommatch.FormulaSimple, override.Formula)
}

func TestToDomain_EmptyBodyUsesDefaults(t *testing.T) {
	req, err := (&matchRequest{}).toDomain()
	require.NoError(t, err)

	assert.True(t, req.IsAnonymous())
	assert.Equal(t, dommatch.DefaultLimit, req.Limit())
	assert.Equal(t, 0, req.Offset())
	assert.Nil(t, req.ConfigOverride())
	assert.True(t, req.Filters().IsZero())
}

func TestToDomain_PartialConfigOverride(t *testing.T) {
	tests := []struct {
		name string
		body matchConfigBody
		want dommatch.Override
	}{
		{
			name: "formula only leaves bidirectional to the actor's prefs",
			body: matchConfigBody{Formula: "simple"},
			want: dommatch.Override{Formula: dommatch.FormulaSimple},
		},
		{
			name: "bidirectional only leaves the formula to the actor's prefs",
			body: matchConfigBody{Bidirectional: boolPtr(false)},
			want: dommatch.Override{Bidirectional: boolPtr(false)},
		},
		{
			name: "both set",
			body: matchConfigBody{Bidirectional: boolPtr(false), Formula: "simple"},
			want: dommatch.Override{Bidirectional: boolPtr(false), Formula: dommatch.FormulaSimple},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := (&matchRequest{ActorID: "alice", MatchConfig: &tt.body}).toDomain()
			require.NoError(t, err)
			require.NotNil(t, req.ConfigOverride())
			assert.Equal(t, tt.want, *req.ConfigOverride())
		})
	}
}

func TestToDomain_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body matchRequest
	}{
		{
			name: "unknown formula",
			body: matchRequest{ActorID: "alice", MatchConfig: &matchConfigBody{Formula: "harmonic"}},
		},
		{
			name: "unknown connection status",
			body: matchRequest{ActorID: "alice", Filters: &filtersBody{ConnectionStatus: []string{"besties"}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.body.toDomain()
			assert.Error(t, err)
		})
	}
}
