package taxonomy

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/meetgrid/affinity/internal/domain"
	domtax "github.com/meetgrid/affinity/internal/domain/taxonomy"
	"github.com/meetgrid/affinity/internal/logger"
)

// loader is the consumer interface for catalog sources.
type loader interface {
	LoadSnapshot(ctx context.Context) (*domtax.Catalog, error)
}

// Provider memoizes the catalog and supports copy-and-swap reloads.
// Readers always see a fully built catalog; a reload never blocks them.
type Provider struct {
	loader  loader
	current atomic.Pointer[domtax.Catalog]
	mu      sync.Mutex // serializes loads
}

// NewProvider creates a catalog provider around a snapshot loader.
func NewProvider(l loader) *Provider {
	return &Provider{loader: l}
}

// Catalog returns the memoized catalog, loading it on first use.
func (p *Provider) Catalog(ctx context.Context) (*domtax.Catalog, error) {
	if c := p.current.Load(); c != nil {
		return c, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Another caller may have won the race while we waited.
	if c := p.current.Load(); c != nil {
		return c, nil
	}

	c, err := p.loader.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	p.current.Store(c)

	logger.FromContext(ctx).Info("taxonomy catalog loaded", zap.Int("nodes", c.Size()))
	return c, nil
}

// Reload builds a fresh catalog and swaps it in. On failure the
// previous catalog stays in place.
func (p *Provider) Reload(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	c, err := p.loader.LoadSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	p.current.Store(c)

	logger.FromContext(ctx).Info("taxonomy catalog reloaded", zap.Int("nodes", c.Size()))
	return nil
}
