package taxonomy

import (
	"context"
	"testing"

	domtax "github.com/meetgrid/affinity/internal/domain/taxonomy"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	getFn func(ctx context.Context, key string) ([]byte, error)
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms), ms
}

// mockLoader implements the provider's loader interface.
type mockLoader struct {
	loadFn func(ctx context.Context) (*domtax.Catalog, error)
	calls  int
}

func (m *mockLoader) LoadSnapshot(ctx context.Context) (*domtax.Catalog, error) {
	m.calls++
	if m.loadFn != nil {
		return m.loadFn(ctx)
	}
	return domtax.NewCatalog(nil), nil
}

const testSnapshot = `{
	"identities": [
		{"id": "ent", "name": "Entrepreneur", "type": "individual"},
		{"id": "inv", "name": "Investor", "type": "individual"}
	],
	"categories": [
		{"id": "cat-tech", "name": "Technology", "identity_id": "ent"},
		{"id": "cat-shared", "name": "Networking", "identity_id": ""}
	],
	"subcategories": [
		{"id": "sub-backend", "name": "Backend", "category_id": "cat-tech"}
	],
	"subsubcategories": [
		{"id": "ssc-go", "name": "Go", "subcategory_id": "sub-backend"}
	]
}`
