package match

import (
	"context"

	dommatch "github.com/meetgrid/affinity/internal/domain/match"
	"github.com/meetgrid/affinity/internal/domain/profile"
	"github.com/meetgrid/affinity/internal/domain/taxonomy"
)

// Retriever selects the candidate pool and loads actor profiles.
type Retriever interface {
	Actor(ctx context.Context, id string) (profile.Profile, error)
	Retrieve(
		ctx context.Context, actorID string, kind profile.Kind,
		filters dommatch.Filters, exclude map[string]struct{},
		limit, offset int,
	) ([]profile.Profile, error)
}

// CatalogProvider serves the memoized taxonomy catalog.
type CatalogProvider interface {
	Catalog(ctx context.Context) (*taxonomy.Catalog, error)
}

// Blocklist reads block relationships for pool exclusion.
type Blocklist interface {
	BlockedIDs(ctx context.Context, profileID string) (map[string]struct{}, error)
}

// Connections reads connection state for status annotation and the
// connections-only pool restriction.
type Connections interface {
	StatusesFor(ctx context.Context, profileID string) (map[string]dommatch.Status, error)
}

// ResponseCache stores ranked pages keyed by the full request
// identity. Key canonicalization is the cache's concern; failures are
// misses or dropped writes, never errors.
type ResponseCache interface {
	Get(ctx context.Context, target string, req dommatch.Request, cfg dommatch.Config) (dommatch.Page, bool)
	Set(ctx context.Context, target string, req dommatch.Request, cfg dommatch.Config, page dommatch.Page)
}
