package sdk

import "time"

// Query is a match request.
type Query struct {
	// ActorID selects the requesting profile. Empty selects anonymous
	// mode: no scoring inputs, recency ordering only.
	ActorID     string       `json:"actorId,omitempty"`
	Filters     *Filters     `json:"filters,omitempty"`
	Paging      *Paging      `json:"paging,omitempty"`
	MatchConfig *MatchConfig `json:"matchConfig,omitempty"`
}

// Filters narrow the candidate pool before scoring.
type Filters struct {
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

// Paging sets the result window.
type Paging struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

// MatchConfig overrides the actor's stored blend preferences.
type MatchConfig struct {
	Bidirectional *bool  `json:"bidirectional,omitempty"`
	Formula       string `json:"formula,omitempty"` // "simple" or "reciprocal"
}

// Item is a single ranked candidate.
type Item struct {
	ID               string    `json:"id"`
	Kind             string    `json:"kind"`
	Name             string    `json:"name"`
	Headline         string    `json:"headline,omitempty"`
	Country          string    `json:"country,omitempty"`
	City             string    `json:"city,omitempty"`
	MatchPercentage  int       `json:"matchPercentage"`
	ConnectionStatus string    `json:"connectionStatus"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Page is a ranked, paginated result window.
type Page struct {
	Count    int    `json:"count"`
	Items    []Item `json:"items"`
	SortedBy string `json:"sortedBy"`
}
