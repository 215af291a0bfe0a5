// Package profile defines the scoring unit: a snapshot of what an entity
// offers and wants across the taxonomy, regardless of whether the entity
// is a user or a job posting.
package profile

import (
	"time"

	"github.com/meetgrid/affinity/internal/domain/taxonomy"
)

// Kind distinguishes the entity behind a profile.
type Kind string

// Profile kinds.
const (
	KindUser Kind = "user"
	KindJob  Kind = "job"
)

// Prefs carries per-actor matching preferences. Zero values mean
// "use the engine defaults"; a request-level override wins over both.
type Prefs struct {
	// Bidirectional is nil when the actor has no stored preference.
	Bidirectional *bool
	// Formula is empty when the actor has no stored preference.
	Formula string
}

// Profile is an actor or candidate as seen by the matching engine.
// Populated fresh per request from the data store and never mutated.
type Profile struct {
	ID              string
	Kind            Kind
	Name            string
	Headline        string
	About           string
	Country         string
	City            string
	AccountType     string
	ExperienceLevel string
	IndustryIDs     []string
	CreatedAt       time.Time

	// Offers is what this entity is or provides; Wants is what it is
	// looking for. The two sets are independent.
	Offers taxonomy.TagSet
	Wants  taxonomy.TagSet

	Prefs Prefs
}

// HasContent reports whether the profile carries at least one descriptive
// field. Used as a data-quality floor when a pool query has no explicit
// filters; not a scoring input.
func (p *Profile) HasContent() bool {
	return p.Headline != "" || p.About != "" || !p.Offers.IsEmpty()
}
