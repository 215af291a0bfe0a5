package match

import (
	"context"
	"testing"
	"time"

	dommatch "github.com/meetgrid/affinity/internal/domain/match"
	"github.com/meetgrid/affinity/internal/domain/profile"
	"github.com/meetgrid/affinity/internal/domain/taxonomy"
)

// testCatalog builds a small tree:
//
//	ent (identity) -> cat-tech -> sub-backend -> ssc-go
//	inv (identity) -> cat-deals
//	cat-shared (identity-agnostic)
func testCatalog(t *testing.T) *taxonomy.Catalog {
	t.Helper()
	return taxonomy.NewCatalog([]taxonomy.Node{
		{ID: "ent", Name: "Entrepreneur", Level: taxonomy.LevelIdentity, Type: taxonomy.IdentityIndividual},
		{ID: "inv", Name: "Investor", Level: taxonomy.LevelIdentity, Type: taxonomy.IdentityIndividual},
		{ID: "cat-tech", Name: "Technology", Level: taxonomy.LevelCategory, IdentityID: "ent"},
		{ID: "cat-deals", Name: "Deal Flow", Level: taxonomy.LevelCategory, IdentityID: "inv"},
		{ID: "cat-shared", Name: "Networking", Level: taxonomy.LevelCategory},
		{ID: "sub-backend", Name: "Backend", Level: taxonomy.LevelSubcategory, ParentID: "cat-tech"},
		{ID: "ssc-go", Name: "Go", Level: taxonomy.LevelSubsubcategory, ParentID: "sub-backend"},
	})
}

func tags(identities, categories, subcategories, subsubcategories []string) taxonomy.TagSet {
	return taxonomy.TagSet{
		Identities:       taxonomy.NewSet(identities...),
		Categories:       taxonomy.NewSet(categories...),
		Subcategories:    taxonomy.NewSet(subcategories...),
		Subsubcategories: taxonomy.NewSet(subsubcategories...),
	}
}

func testProfile(id string, createdAt time.Time, offers, wants taxonomy.TagSet) profile.Profile {
	return profile.Profile{
		ID:        id,
		Kind:      profile.KindUser,
		Name:      id,
		CreatedAt: createdAt,
		Offers:    offers,
		Wants:     wants,
	}
}

// --- contract mocks ---

type mockRetriever struct {
	actorFn    func(ctx context.Context, id string) (profile.Profile, error)
	retrieveFn func(
		ctx context.Context, actorID string, kind profile.Kind,
		filters dommatch.Filters, exclude map[string]struct{}, limit, offset int,
	) ([]profile.Profile, error)
	retrieveCalls int
}

func (m *mockRetriever) Actor(ctx context.Context, id string) (profile.Profile, error) {
	if m.actorFn != nil {
		return m.actorFn(ctx, id)
	}
	return profile.Profile{ID: id, Kind: profile.KindUser}, nil
}

func (m *mockRetriever) Retrieve(
	ctx context.Context, actorID string, kind profile.Kind,
	filters dommatch.Filters, exclude map[string]struct{}, limit, offset int,
) ([]profile.Profile, error) {
	m.retrieveCalls++
	if m.retrieveFn != nil {
		return m.retrieveFn(ctx, actorID, kind, filters, exclude, limit, offset)
	}
	return nil, nil
}

type mockCatalogs struct {
	catalogFn func(ctx context.Context) (*taxonomy.Catalog, error)
}

func (m *mockCatalogs) Catalog(ctx context.Context) (*taxonomy.Catalog, error) {
	if m.catalogFn != nil {
		return m.catalogFn(ctx)
	}
	return taxonomy.NewCatalog(nil), nil
}

type mockBlocklist struct {
	blockedFn func(ctx context.Context, profileID string) (map[string]struct{}, error)
}

func (m *mockBlocklist) BlockedIDs(ctx context.Context, profileID string) (map[string]struct{}, error) {
	if m.blockedFn != nil {
		return m.blockedFn(ctx, profileID)
	}
	return map[string]struct{}{}, nil
}

type mockConnections struct {
	statusesFn func(ctx context.Context, profileID string) (map[string]dommatch.Status, error)
}

func (m *mockConnections) StatusesFor(ctx context.Context, profileID string) (map[string]dommatch.Status, error) {
	if m.statusesFn != nil {
		return m.statusesFn(ctx, profileID)
	}
	return map[string]dommatch.Status{}, nil
}

// mockCache remembers pages per canonical request identity.
type mockCache struct {
	pages    map[string]dommatch.Page
	getCalls int
	setCalls int
}

func newMockCache() *mockCache {
	return &mockCache{pages: map[string]dommatch.Page{}}
}

func (m *mockCache) cacheKey(target string, req dommatch.Request, cfg dommatch.Config) string {
	return target + "|" + req.CacheActorID() + "|" + string(cfg.Formula)
}

func (m *mockCache) Get(
	_ context.Context, target string, req dommatch.Request, cfg dommatch.Config,
) (dommatch.Page, bool) {
	m.getCalls++
	page, ok := m.pages[m.cacheKey(target, req, cfg)]
	return page, ok
}

func (m *mockCache) Set(
	_ context.Context, target string, req dommatch.Request, cfg dommatch.Config, page dommatch.Page,
) {
	m.setCalls++
	m.pages[m.cacheKey(target, req, cfg)] = page
}

type serviceMocks struct {
	retriever *mockRetriever
	catalogs  *mockCatalogs
	blocks    *mockBlocklist
	conns     *mockConnections
	cache     *mockCache
}

func newTestService(t *testing.T) (*Service, *serviceMocks) {
	t.Helper()
	m := &serviceMocks{
		retriever: &mockRetriever{},
		catalogs:  &mockCatalogs{},
		blocks:    &mockBlocklist{},
		conns:     &mockConnections{},
		cache:     newMockCache(),
	}
	m.catalogs.catalogFn = func(_ context.Context) (*taxonomy.Catalog, error) {
		return testCatalog(t), nil
	}
	svc := New(m.retriever, m.catalogs, m.blocks, m.conns, m.cache, NewScorer(DefaultWeights()), 4)
	return svc, m
}

func mustRequest(t *testing.T, actorID string, f dommatch.Filters, override *dommatch.Override) dommatch.Request {
	t.Helper()
	req, err := dommatch.New(actorID, f, 20, 0, override)
	if err != nil {
		t.Fatalf("dommatch.New: %v", err)
	}
	return req
}

func boolPtr(b bool) *bool { return &b }
