// Package blocklist reads block relationships between profiles.
package blocklist

import (
	"context"
	"fmt"

	"github.com/meetgrid/affinity/internal/domain"
)

// KeyFor returns the block set key for a profile. The platform keeps
// the set symmetric: it holds ids the profile blocked and ids that
// blocked the profile.
func KeyFor(profileID string) string {
	return domain.KeyPrefix + "block:" + profileID
}

type store interface {
	SMembers(ctx context.Context, key string) ([]string, error)
}

// Repo reads blocklists.
type Repo struct {
	store store
}

// New creates a blocklist repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// BlockedIDs returns the set of profile ids excluded from matching
// for the given profile, in either block direction.
func (r *Repo) BlockedIDs(ctx context.Context, profileID string) (map[string]struct{}, error) {
	members, err := r.store.SMembers(ctx, KeyFor(profileID))
	if err != nil {
		return nil, fmt.Errorf("get blocklist: %w", err)
	}

	ids := make(map[string]struct{}, len(members))
	for _, id := range members {
		if id == "" {
			continue
		}
		ids[id] = struct{}{}
	}
	return ids, nil
}
