// Package affinity embeds the matching engine for in-process library use.
// It wires the same repositories and services the HTTP server runs, backed
// by an in-memory response cache.
package affinity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/meetgrid/affinity/internal/db"
	dbRedis "github.com/meetgrid/affinity/internal/db/redis"
	dommatch "github.com/meetgrid/affinity/internal/domain/match"
	"github.com/meetgrid/affinity/internal/logger"
	"github.com/meetgrid/affinity/internal/metrics"
	blocklistrepo "github.com/meetgrid/affinity/internal/repository/blocklist"
	candidaterepo "github.com/meetgrid/affinity/internal/repository/candidate"
	connectionrepo "github.com/meetgrid/affinity/internal/repository/connection"
	"github.com/meetgrid/affinity/internal/repository/matchcache"
	taxonomyrepo "github.com/meetgrid/affinity/internal/repository/taxonomy"
	matchuc "github.com/meetgrid/affinity/internal/usecase/match"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultCacheTTL         = 5 * time.Minute
	defaultCacheCapacity    = 10000
)

// Options configures an embedded Client.
type Options struct {
	// Addrs are the Redis addresses. Required.
	Addrs    []string
	Password string

	// CacheTTL bounds how long a computed page is served without
	// rescoring. Zero selects 5 minutes.
	CacheTTL time.Duration
	// CacheCapacity bounds the in-memory response cache. Zero selects 10000.
	CacheCapacity int

	// OverfetchFactor widens candidate retrieval to compensate for
	// post-search exclusions. Zero selects the repository default.
	OverfetchFactor int
	// ScoreConcurrency bounds parallel candidate scoring. Zero selects
	// the service default.
	ScoreConcurrency int

	// Logger is optional; nil disables logging.
	Logger *zap.Logger
}

// Match is a single ranked candidate.
type Match struct {
	ID               string
	Kind             string
	Name             string
	Headline         string
	Country          string
	City             string
	Percent          int
	ConnectionStatus string
	CreatedAt        time.Time
}

// Page is a ranked result window.
type Page struct {
	Count    int
	Items    []Match
	SortedBy string
}

// Client is the embedded matching engine.
type Client struct {
	store    db.Store
	catalogs *taxonomyrepo.Provider
	matches  *matchuc.Service
	logger   *zap.Logger
}

// Open connects to the database and wires the matching engine.
func Open(opts Options) (*Client, error) {
	if len(opts.Addrs) == 0 {
		return nil, errors.New("affinity: database address required")
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    opts.Addrs,
		Password: opts.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("affinity: create store: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("affinity: database not ready: %w", err)
	}

	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	capacity := opts.CacheCapacity
	if capacity <= 0 {
		capacity = defaultCacheCapacity
	}
	cache := matchcache.NewMemory(capacity, ttl, metrics.MatchCacheTotal)

	catalogs := taxonomyrepo.NewProvider(taxonomyrepo.New(store))
	matches := matchuc.New(
		candidaterepo.New(store, opts.OverfetchFactor),
		catalogs,
		blocklistrepo.New(store),
		connectionrepo.New(store),
		cache,
		matchuc.NewScorer(matchuc.DefaultWeights()),
		opts.ScoreConcurrency,
	)

	return &Client{
		store:    store,
		catalogs: catalogs,
		matches:  matches,
		logger:   log,
	}, nil
}

// MatchPeople ranks user profiles against the actor. An empty actorID
// selects anonymous mode.
func (c *Client) MatchPeople(ctx context.Context, actorID string, opts ...MatchOption) (Page, error) {
	req, err := buildRequest(actorID, opts)
	if err != nil {
		return Page{}, err
	}
	page, err := c.matches.MatchPeople(c.withLogger(ctx), req)
	if err != nil {
		return Page{}, fmt.Errorf("match people: %w", err)
	}
	return toPage(page), nil
}

// MatchJobs ranks job postings against the actor.
func (c *Client) MatchJobs(ctx context.Context, actorID string, opts ...MatchOption) (Page, error) {
	req, err := buildRequest(actorID, opts)
	if err != nil {
		return Page{}, err
	}
	page, err := c.matches.MatchJobs(c.withLogger(ctx), req)
	if err != nil {
		return Page{}, fmt.Errorf("match jobs: %w", err)
	}
	return toPage(page), nil
}

// ReloadCatalog re-reads the taxonomy snapshot and swaps it in atomically.
// On failure the previously loaded catalog stays in service.
func (c *Client) ReloadCatalog(ctx context.Context) error {
	if err := c.catalogs.Reload(c.withLogger(ctx)); err != nil {
		return fmt.Errorf("reload catalog: %w", err)
	}
	return nil
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

func (c *Client) withLogger(ctx context.Context) context.Context {
	return logger.ContextWithLogger(ctx, c.logger)
}

func toPage(p dommatch.Page) Page {
	items := make([]Match, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, Match{
			ID:               it.ID,
			Kind:             it.Kind,
			Name:             it.Name,
			Headline:         it.Headline,
			Country:          it.Country,
			City:             it.City,
			Percent:          it.MatchPercentage,
			ConnectionStatus: string(it.ConnectionStatus),
			CreatedAt:        it.CreatedAt,
		})
	}
	return Page{Count: p.Count, Items: items, SortedBy: p.SortedBy}
}
