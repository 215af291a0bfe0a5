package match

import (
	"time"

	"github.com/meetgrid/affinity/internal/domain/profile"
	"github.com/meetgrid/affinity/internal/domain/taxonomy"
)

// SortedBy is the only ordering the engine produces.
const SortedBy = "matchPercentage"

// Status is the relationship state between actor and candidate.
type Status string

// Relationship states.
const (
	StatusConnected       Status = "connected"
	StatusPendingOutgoing Status = "pending_outgoing"
	StatusPendingIncoming Status = "pending_incoming"
	StatusNone            Status = "none"
)

// IsValid reports whether the status is a known relationship state.
func (s Status) IsValid() bool {
	switch s {
	case StatusConnected, StatusPendingOutgoing, StatusPendingIncoming, StatusNone:
		return true
	default:
		return false
	}
}

// Result is a scored candidate, ephemeral per request. Breakdown holds
// each applicable level's contribution to the final percent and never
// crosses the service boundary.
type Result struct {
	Profile          profile.Profile
	Percent          int
	Breakdown        map[taxonomy.Level]float64
	ConnectionStatus Status
}

// Item is a single response row.
type Item struct {
	ID               string    `json:"id"`
	Kind             string    `json:"kind"`
	Name             string    `json:"name"`
	Headline         string    `json:"headline,omitempty"`
	Country          string    `json:"country,omitempty"`
	City             string    `json:"city,omitempty"`
	MatchPercentage  int       `json:"matchPercentage"`
	ConnectionStatus Status    `json:"connectionStatus"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Page is the ranked, paginated response window. This is the envelope
// stored in the response cache.
type Page struct {
	Count    int    `json:"count"`
	Items    []Item `json:"items"`
	SortedBy string `json:"sortedBy"`
}

// EmptyPage returns a well-formed zero-result page.
func EmptyPage() Page {
	return Page{Count: 0, Items: []Item{}, SortedBy: SortedBy}
}

// NewItem projects a result onto the response row shape.
func NewItem(r Result) Item {
	return Item{
		ID:               r.Profile.ID,
		Kind:             string(r.Profile.Kind),
		Name:             r.Profile.Name,
		Headline:         r.Profile.Headline,
		Country:          r.Profile.Country,
		City:             r.Profile.City,
		MatchPercentage:  r.Percent,
		ConnectionStatus: r.ConnectionStatus,
		CreatedAt:        r.Profile.CreatedAt,
	}
}
