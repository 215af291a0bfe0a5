package candidate

import (
	"context"
	"testing"

	"github.com/meetgrid/affinity/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	hgetallFn       func(ctx context.Context, key string) (map[string]string, error)
	smembersMultiFn func(ctx context.Context, keys []string) ([][]string, error)
	searchListFn    func(ctx context.Context, index, query string, offset, limit int, fields []string) (*db.SearchResult, error)
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetallFn != nil {
		return m.hgetallFn(ctx, key)
	}
	return map[string]string{}, nil
}

func (m *mockStore) SMembersMulti(ctx context.Context, keys []string) ([][]string, error) {
	if m.smembersMultiFn != nil {
		return m.smembersMultiFn(ctx, keys)
	}
	return make([][]string, len(keys)), nil
}

func (m *mockStore) SearchList(
	ctx context.Context, index, query string, offset, limit int, fields []string,
) (*db.SearchResult, error) {
	if m.searchListFn != nil {
		return m.searchListFn(ctx, index, query, offset, limit, fields)
	}
	return &db.SearchResult{}, nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms, 0), ms
}

func profileEntry(id string, fields map[string]string) db.SearchEntry {
	if fields == nil {
		fields = map[string]string{}
	}
	if _, ok := fields[fieldKind]; !ok {
		fields[fieldKind] = "user"
	}
	return db.SearchEntry{Key: ProfileKey(id), Fields: fields}
}
