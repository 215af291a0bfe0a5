package match

import "fmt"

// Paging limits.
const (
	DefaultLimit = 20
	MaxLimit     = 100

	// AnonymousActor is the cache-key stand-in when no actor is resolved.
	AnonymousActor = "anonymous"
)

// Request is a validated match query.
type Request struct {
	actorID string
	filters Filters
	limit   int
	offset  int

	// configOverride is nil when the request leaves blending to the
	// actor's stored preferences.
	configOverride *Override
}

// New validates and normalizes match parameters. An empty actorID selects
// anonymous mode: no scoring inputs, recency ordering only.
// Defaults: limit=20 (clamped to 100), offset=0.
func New(actorID string, filters Filters, limit, offset int, override *Override) (Request, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	if override != nil && override.Formula != "" && !override.Formula.IsValid() {
		return Request{}, fmt.Errorf("invalid formula: %q", override.Formula)
	}
	for _, status := range filters.ConnectionStatuses {
		if !Status(status).IsValid() {
			return Request{}, fmt.Errorf("invalid connection status filter: %q", status)
		}
	}

	return Request{
		actorID:        actorID,
		filters:        filters.Normalize(),
		limit:          limit,
		offset:         offset,
		configOverride: override,
	}, nil
}

// ActorID returns the requesting actor id ("" in anonymous mode).
func (r *Request) ActorID() string { return r.actorID }

// IsAnonymous reports whether no actor was resolved for this request.
func (r *Request) IsAnonymous() bool { return r.actorID == "" }

// CacheActorID returns the actor id used in cache keys.
func (r *Request) CacheActorID() string {
	if r.actorID == "" {
		return AnonymousActor
	}
	return r.actorID
}

// Filters returns the normalized selection filters.
func (r *Request) Filters() Filters { return r.filters }

// Limit returns the page size.
func (r *Request) Limit() int { return r.limit }

// Offset returns the page offset.
func (r *Request) Offset() int { return r.offset }

// ConfigOverride returns the request-level blend override (nil when the
// actor's stored preferences apply).
func (r *Request) ConfigOverride() *Override { return r.configOverride }
