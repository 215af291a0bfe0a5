// Package matchcache caches ranked match pages keyed by the full
// request identity.
package matchcache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/meetgrid/affinity/internal/domain"
	"github.com/meetgrid/affinity/internal/domain/match"
)

// keyPrefix namespaces cache entries in the shared store.
const keyPrefix = domain.KeyPrefix + "match_cache:"

// keyEnvelope is every input that can change a cached page. Field
// order is fixed and id lists arrive normalized, so equal requests
// marshal to identical bytes.
type keyEnvelope struct {
	Actor         string        `json:"actor"`
	Target        string        `json:"target"`
	Filters       match.Filters `json:"filters"`
	Bidirectional bool          `json:"bidirectional"`
	Formula       match.Formula `json:"formula"`
	Limit         int           `json:"limit"`
	Offset        int           `json:"offset"`
}

// Key derives the canonical cache key for a request. target names the
// match operation (people or jobs); cfg is the fully resolved match
// configuration, after per-actor preferences and request overrides.
func Key(target string, req match.Request, cfg match.Config) string {
	env := keyEnvelope{
		Actor:         req.CacheActorID(),
		Target:        target,
		Filters:       req.Filters().Normalize(),
		Bidirectional: cfg.Bidirectional,
		Formula:       cfg.Formula,
		Limit:         req.Limit(),
		Offset:        req.Offset(),
	}

	// Struct marshaling is deterministic: fixed field order, no maps.
	data, err := json.Marshal(env)
	if err != nil {
		// Unreachable for a plain struct of strings, slices and ints.
		panic("matchcache: marshal key envelope: " + err.Error())
	}

	sum := sha256.Sum256(data)
	return keyPrefix + hex.EncodeToString(sum[:])
}
