package candidate

import (
	"github.com/meetgrid/affinity/internal/db"
	"github.com/meetgrid/affinity/internal/domain"
)

// IndexName is the FT index over profile hashes.
const IndexName = domain.KeyPrefix + "profile:idx"

// ProfileIndex defines the search index used for candidate selection.
// The tag id lists are denormalized projections of the association
// sets, written alongside the hash by the ingest pipeline.
func ProfileIndex() (*db.IndexDefinition, error) {
	return db.NewIndex(IndexName).
		Prefix(ProfileKey("")).
		Tag("id").
		Tag("kind").
		Tag("country").
		Tag("city").
		Tag("account_type").
		Tag("experience_level").
		TagWithSeparator("industry_ids", ",").
		TagWithSeparator("identity_ids", ",").
		TagWithSeparator("offer_category_ids", ",").
		TagWithSeparator("offer_subcategory_ids", ",").
		TagWithSeparator("want_category_ids", ",").
		TagWithSeparator("want_subcategory_ids", ",").
		TagWithSeparator("want_subsubcategory_ids", ",").
		TagWithSeparator("goal_ids", ",").
		Tag("has_content").
		Text("headline").
		Text("about").
		Numeric("created_at").
		Build()
}
