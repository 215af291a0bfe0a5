// Package candidate retrieves match candidates and their taxonomy
// associations from the store.
package candidate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/meetgrid/affinity/internal/db"
	"github.com/meetgrid/affinity/internal/domain"
	"github.com/meetgrid/affinity/internal/domain/match"
	"github.com/meetgrid/affinity/internal/domain/profile"
	"github.com/meetgrid/affinity/internal/domain/taxonomy"
)

// DefaultOverfetch is how many candidates are pulled per requested
// result. Scoring reorders the pool, so the selection query alone
// cannot know which candidates end up on the page.
const DefaultOverfetch = 3

// ProfileKey returns the profile hash key for an id.
func ProfileKey(id string) string {
	return domain.KeyPrefix + "profile:" + id
}

// assocKey returns the association set key for one side of a profile
// at one taxonomy level, e.g. affinity:assoc:u1:offer:category.
func assocKey(id, side string, level taxonomy.Level) string {
	return domain.KeyPrefix + "assoc:" + id + ":" + side + ":" + string(level)
}

// store is the consumer interface for candidate retrieval (ISP).
type store interface {
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	SMembersMulti(ctx context.Context, keys []string) ([][]string, error)
	SearchList(ctx context.Context, index, query string, offset, limit int, fields []string) (*db.SearchResult, error)
}

// Repo implements usecase/match.Retriever.
type Repo struct {
	store     store
	overfetch int
}

// New creates a candidate repository. overfetch <= 0 selects the default.
func New(s store, overfetch int) *Repo {
	if overfetch <= 0 {
		overfetch = DefaultOverfetch
	}
	return &Repo{store: s, overfetch: overfetch}
}

// Actor fetches a single profile with its association sets.
func (r *Repo) Actor(ctx context.Context, id string) (profile.Profile, error) {
	fields, err := r.store.HGetAll(ctx, ProfileKey(id))
	if err != nil {
		return profile.Profile{}, fmt.Errorf("get profile %s: %w", id, err)
	}
	if len(fields) == 0 {
		return profile.Profile{}, fmt.Errorf("profile %s: %w", id, domain.ErrProfileNotFound)
	}

	p := parseProfile(id, fields)
	profiles := []profile.Profile{p}
	if err := r.hydrateAssociations(ctx, profiles); err != nil {
		return profile.Profile{}, err
	}
	return profiles[0], nil
}

// Retrieve selects the candidate pool for an actor. The pool is
// over-fetched relative to the requested page so that scoring has
// room to reorder, and excludes the actor and every id in exclude.
func (r *Repo) Retrieve(
	ctx context.Context,
	actorID string,
	kind profile.Kind,
	filters match.Filters,
	exclude map[string]struct{},
	limit, offset int,
) ([]profile.Profile, error) {
	fetch := limit*r.overfetch + offset
	query := buildQuery(actorID, kind, filters)

	result, err := r.store.SearchList(ctx, IndexName, query, 0, fetch, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRetrieval, err)
	}

	profiles := make([]profile.Profile, 0, len(result.Entries))
	for _, entry := range result.Entries {
		id := strings.TrimPrefix(entry.Key, ProfileKey(""))
		if id == "" || id == actorID {
			continue
		}
		if _, blocked := exclude[id]; blocked {
			continue
		}
		profiles = append(profiles, parseProfile(id, entry.Fields))
	}

	if err := r.hydrateAssociations(ctx, profiles); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRetrieval, err)
	}
	return profiles, nil
}

// hydrateAssociations fills Offers and Wants for every profile. One
// batched set read per side and level, the eight reads in parallel.
// Goroutines write disjoint TagSet fields, so no locking is needed.
func (r *Repo) hydrateAssociations(ctx context.Context, profiles []profile.Profile) error {
	if len(profiles) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, side := range []string{"offer", "want"} {
		for _, level := range taxonomy.Levels() {
			g.Go(func() error {
				keys := make([]string, len(profiles))
				for i := range profiles {
					keys[i] = assocKey(profiles[i].ID, side, level)
				}

				members, err := r.store.SMembersMulti(ctx, keys)
				if err != nil {
					return fmt.Errorf("get %s/%s associations: %w", side, level, err)
				}
				if len(members) != len(profiles) {
					return errors.New("association batch size mismatch")
				}

				for i := range profiles {
					set := taxonomy.NewSet(members[i]...)
					if side == "offer" {
						profiles[i].Offers.SetLevel(level, set)
					} else {
						profiles[i].Wants.SetLevel(level, set)
					}
				}
				return nil
			})
		}
	}
	return g.Wait()
}
