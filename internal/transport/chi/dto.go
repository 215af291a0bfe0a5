package chi

import (
	dommatch "github.com/meetgrid/affinity/internal/domain/match"
)

// Error envelope codes.
const (
	codeBadRequest         = "bad_request"
	codeValidationFailed   = "validation_failed"
	codeProfileNotFound    = "profile_not_found"
	codeCatalogUnavailable = "catalog_unavailable"
	codeInternalError      = "internal_error"
)

// errorResponse is the error envelope for every non-2xx response.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// matchRequest mirrors the match API request body.
type matchRequest struct {
	ActorID     string           `json:"actorId,omitempty"`
	Filters     *filtersBody     `json:"filters,omitempty"`
	Paging      *pagingBody      `json:"paging,omitempty"`
	MatchConfig *matchConfigBody `json:"matchConfig,omitempty"`
}

type filtersBody struct {
	Text        string `json:"text,omitempty"`
	Country     string `json:"country,omitempty"`
	City        string `json:"city,omitempty"`
	AccountType string `json:"accountType,omitempty"`

	CategoryIDs    []string `json:"categoryIds,omitempty"`
	SubcategoryIDs []string `json:"subcategoryIds,omitempty"`
	GoalIDs        []string `json:"goalIds,omitempty"`
	IdentityIDs    []string `json:"identityIds,omitempty"`

	AudienceCategoryIDs       []string `json:"audienceCategoryIds,omitempty"`
	AudienceSubcategoryIDs    []string `json:"audienceSubcategoryIds,omitempty"`
	AudienceSubsubcategoryIDs []string `json:"audienceSubsubcategoryIds,omitempty"`

	IndustryIDs      []string `json:"industryIds,omitempty"`
	ExperienceLevel  []string `json:"experienceLevel,omitempty"`
	ConnectionStatus []string `json:"connectionStatus,omitempty"`
	ConnectionsOnly  bool     `json:"connectionsOnly,omitempty"`
}

type pagingBody struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

type matchConfigBody struct {
	Bidirectional *bool  `json:"bidirectional,omitempty"`
	Formula       string `json:"formula,omitempty"`
}

// toDomain builds a validated domain request from the wire shape.
func (b *matchRequest) toDomain() (dommatch.Request, error) {
	var filters dommatch.Filters
	if b.Filters != nil {
		filters = dommatch.Filters{
			Text:                      b.Filters.Text,
			Country:                   b.Filters.Country,
			City:                      b.Filters.City,
			AccountType:               b.Filters.AccountType,
			CategoryIDs:               b.Filters.CategoryIDs,
			SubcategoryIDs:            b.Filters.SubcategoryIDs,
			GoalIDs:                   b.Filters.GoalIDs,
			IdentityIDs:               b.Filters.IdentityIDs,
			AudienceCategoryIDs:       b.Filters.AudienceCategoryIDs,
			AudienceSubcategoryIDs:    b.Filters.AudienceSubcategoryIDs,
			AudienceSubsubcategoryIDs: b.Filters.AudienceSubsubcategoryIDs,
			IndustryIDs:               b.Filters.IndustryIDs,
			ExperienceLevels:          b.Filters.ExperienceLevel,
			ConnectionStatuses:        b.Filters.ConnectionStatus,
			ConnectionsOnly:           b.Filters.ConnectionsOnly,
		}
	}

	var limit, offset int
	if b.Paging != nil {
		limit = b.Paging.Limit
		offset = b.Paging.Offset
	}

	var override *dommatch.Override
	if b.MatchConfig != nil {
		override = &dommatch.Override{
			Bidirectional: b.MatchConfig.Bidirectional,
			Formula:       dommatch.Formula(b.MatchConfig.Formula),
		}
	}

	return dommatch.New(b.ActorID, filters, limit, offset, override)
}
