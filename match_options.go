package affinity

import (
	dommatch "github.com/meetgrid/affinity/internal/domain/match"
)

// MatchOption narrows or reconfigures a match query.
type MatchOption func(*matchQuery)

type matchQuery struct {
	filters  dommatch.Filters
	limit    int
	offset   int
	override *dommatch.Override
}

// WithText filters candidates by a free-text search over headline and about.
func WithText(text string) MatchOption {
	return func(q *matchQuery) { q.filters.Text = text }
}

// InCountry filters candidates by country.
func InCountry(country string) MatchOption {
	return func(q *matchQuery) { q.filters.Country = country }
}

// InCity filters candidates by city.
func InCity(city string) MatchOption {
	return func(q *matchQuery) { q.filters.City = city }
}

// ForAccountType filters candidates by account type.
func ForAccountType(accountType string) MatchOption {
	return func(q *matchQuery) { q.filters.AccountType = accountType }
}

// WithCategories keeps candidates offering any of the given categories.
func WithCategories(ids ...string) MatchOption {
	return func(q *matchQuery) { q.filters.CategoryIDs = append(q.filters.CategoryIDs, ids...) }
}

// WithSubcategories keeps candidates offering any of the given subcategories.
func WithSubcategories(ids ...string) MatchOption {
	return func(q *matchQuery) { q.filters.SubcategoryIDs = append(q.filters.SubcategoryIDs, ids...) }
}

// WithGoals keeps candidates declaring any of the given goals.
func WithGoals(ids ...string) MatchOption {
	return func(q *matchQuery) { q.filters.GoalIDs = append(q.filters.GoalIDs, ids...) }
}

// WithIdentities keeps candidates declaring any of the given identities.
func WithIdentities(ids ...string) MatchOption {
	return func(q *matchQuery) { q.filters.IdentityIDs = append(q.filters.IdentityIDs, ids...) }
}

// WithAudienceCategories keeps candidates wanting any of the given categories.
func WithAudienceCategories(ids ...string) MatchOption {
	return func(q *matchQuery) {
		q.filters.AudienceCategoryIDs = append(q.filters.AudienceCategoryIDs, ids...)
	}
}

// WithAudienceSubcategories keeps candidates wanting any of the given subcategories.
func WithAudienceSubcategories(ids ...string) MatchOption {
	return func(q *matchQuery) {
		q.filters.AudienceSubcategoryIDs = append(q.filters.AudienceSubcategoryIDs, ids...)
	}
}

// WithAudienceSubsubcategories keeps candidates wanting any of the given
// subsubcategories.
func WithAudienceSubsubcategories(ids ...string) MatchOption {
	return func(q *matchQuery) {
		q.filters.AudienceSubsubcategoryIDs = append(q.filters.AudienceSubsubcategoryIDs, ids...)
	}
}

// WithIndustries filters candidates by industry.
func WithIndustries(ids ...string) MatchOption {
	return func(q *matchQuery) { q.filters.IndustryIDs = append(q.filters.IndustryIDs, ids...) }
}

// WithExperienceLevels filters candidates by experience level.
func WithExperienceLevels(levels ...string) MatchOption {
	return func(q *matchQuery) {
		q.filters.ExperienceLevels = append(q.filters.ExperienceLevels, levels...)
	}
}

// WithStatuses keeps only candidates in one of the given connection states
// ("connected", "pending_outgoing", "pending_incoming", "none").
func WithStatuses(statuses ...string) MatchOption {
	return func(q *matchQuery) {
		q.filters.ConnectionStatuses = append(q.filters.ConnectionStatuses, statuses...)
	}
}

// ConnectionsOnly restricts the candidate pool to the actor's connections.
func ConnectionsOnly() MatchOption {
	return func(q *matchQuery) { q.filters.ConnectionsOnly = true }
}

// WithPaging sets the result window. Zero limit selects the default page size.
func WithPaging(limit, offset int) MatchOption {
	return func(q *matchQuery) {
		q.limit = limit
		q.offset = offset
	}
}

// Bidirectional overrides whether both score directions are blended. The
// blend formula stays with the actor's stored preference.
func Bidirectional(on bool) MatchOption {
	return func(q *matchQuery) {
		q.ensureOverride()
		q.override.Bidirectional = &on
	}
}

// Simple overrides the blend formula to the arithmetic mean.
func Simple() MatchOption {
	return func(q *matchQuery) {
		q.ensureOverride()
		q.override.Formula = dommatch.FormulaSimple
	}
}

// Reciprocal overrides the blend formula to the 0.7/0.3 weighting.
func Reciprocal() MatchOption {
	return func(q *matchQuery) {
		q.ensureOverride()
		q.override.Formula = dommatch.FormulaReciprocal
	}
}

func (q *matchQuery) ensureOverride() {
	if q.override == nil {
		q.override = &dommatch.Override{}
	}
}

func buildRequest(actorID string, opts []MatchOption) (dommatch.Request, error) {
	var q matchQuery
	for _, o := range opts {
		o(&q)
	}
	return dommatch.New(actorID, q.filters, q.limit, q.offset, q.override)
}
