package connection

import (
	"context"
	"errors"
	"testing"

	"github.com/meetgrid/affinity/internal/domain/match"
)

type mockStore struct {
	hgetallFn func(ctx context.Context, key string) (map[string]string, error)
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetallFn != nil {
		return m.hgetallFn(ctx, key)
	}
	return map[string]string{}, nil
}

func TestStatusesFor_HappyPath(t *testing.T) {
	ms := &mockStore{
		hgetallFn: func(_ context.Context, key string) (map[string]string, error) {
			if key != "affinity:conn:alice" {
				t.Errorf("unexpected key: %s", key)
			}
			return map[string]string{
				"bob":   "connected",
				"carol": "pending_outgoing",
				"dave":  "garbage",
				"erin":  "none",
			}, nil
		},
	}
	repo := New(ms)

	statuses, err := repo.StatusesFor(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	if statuses["bob"] != match.StatusConnected {
		t.Errorf("expected bob connected, got %s", statuses["bob"])
	}
	if statuses["carol"] != match.StatusPendingOutgoing {
		t.Errorf("expected carol pending_outgoing, got %s", statuses["carol"])
	}
}

func TestStatusesFor_StoreError(t *testing.T) {
	wantErr := errors.New("boom")
	repo := New(&mockStore{
		hgetallFn: func(_ context.Context, _ string) (map[string]string, error) {
			return nil, wantErr
		},
	})

	if _, err := repo.StatusesFor(context.Background(), "alice"); !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}
