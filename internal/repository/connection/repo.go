// Package connection reads connection state between profiles.
package connection

import (
	"context"
	"fmt"

	"github.com/meetgrid/affinity/internal/domain"
	"github.com/meetgrid/affinity/internal/domain/match"
)

// KeyFor returns the connection hash key for a profile. Fields are
// peer profile ids, values are connection statuses from the peer's
// point of view of the owning profile.
func KeyFor(profileID string) string {
	return domain.KeyPrefix + "conn:" + profileID
}

type store interface {
	HGetAll(ctx context.Context, key string) (map[string]string, error)
}

// Repo reads connection state.
type Repo struct {
	store store
}

// New creates a connection repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// StatusesFor returns the connection status per peer id for a profile.
// Unknown status values are dropped rather than surfaced.
func (r *Repo) StatusesFor(ctx context.Context, profileID string) (map[string]match.Status, error) {
	fields, err := r.store.HGetAll(ctx, KeyFor(profileID))
	if err != nil {
		return nil, fmt.Errorf("get connections: %w", err)
	}

	statuses := make(map[string]match.Status, len(fields))
	for peer, raw := range fields {
		s := match.Status(raw)
		if !s.IsValid() || s == match.StatusNone {
			continue
		}
		statuses[peer] = s
	}
	return statuses, nil
}
