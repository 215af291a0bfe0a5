package health

import (
	"context"

	"github.com/meetgrid/affinity/internal/domain/taxonomy"
)

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CatalogChecker checks that the taxonomy catalog can be served.
type CatalogChecker interface {
	Catalog(ctx context.Context) (*taxonomy.Catalog, error)
}
