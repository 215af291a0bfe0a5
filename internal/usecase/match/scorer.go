package match

import (
	"math"

	"github.com/meetgrid/affinity/internal/domain/taxonomy"
)

// WeightTable assigns a base weight per taxonomy level. Levels absent
// from the table (or weighted zero) never participate in scoring.
type WeightTable map[taxonomy.Level]float64

// DefaultWeights gives the four levels equal weight. People and job
// matching both run on this table today; keeping it a parameter means
// a divergence stays a config change, not a second scorer.
func DefaultWeights() WeightTable {
	return WeightTable{
		taxonomy.LevelIdentity:       25,
		taxonomy.LevelCategory:       25,
		taxonomy.LevelSubcategory:    25,
		taxonomy.LevelSubsubcategory: 25,
	}
}

// Scorer computes unidirectional match percentages.
type Scorer struct {
	weights WeightTable
}

// NewScorer creates a scorer over a weight table.
func NewScorer(weights WeightTable) *Scorer {
	return &Scorer{weights: weights}
}

// Score computes how well offers satisfy wants, as an integer percent
// plus each applicable level's contribution to it.
//
// Per level the fraction is |wants ∩ offers| / |wants|, except the
// identity level which is binary: any shared identity is full credit.
// A level with no wants, or whose wants are all unreachable from the
// offering side's identities, is inapplicable and drops out of both
// numerator and denominator. The percent is renormalized over the
// applicable levels, rounded once at the end, and clamped to [0,100].
// No applicable levels means 0.
func (s *Scorer) Score(
	wants, offers taxonomy.TagSet, catalog *taxonomy.Catalog,
) (int, map[taxonomy.Level]float64) {
	type applied struct {
		level    taxonomy.Level
		weight   float64
		fraction float64
	}

	var levels []applied
	var totalWeight float64

	for _, level := range taxonomy.Levels() {
		weight := s.weights[level]
		if weight <= 0 {
			continue
		}
		fraction, applicable := levelFraction(level, wants, offers, catalog)
		if !applicable {
			continue
		}
		levels = append(levels, applied{level: level, weight: weight, fraction: fraction})
		totalWeight += weight
	}

	breakdown := make(map[taxonomy.Level]float64, len(levels))
	if totalWeight == 0 {
		return 0, breakdown
	}

	var achieved float64
	for _, l := range levels {
		contribution := 100 * l.weight * l.fraction / totalWeight
		breakdown[l.level] = contribution
		achieved += contribution
	}

	return clampPercent(int(math.Round(achieved))), breakdown
}

// levelFraction computes one level's satisfaction fraction and whether
// the level applies at all.
func levelFraction(
	level taxonomy.Level, wants, offers taxonomy.TagSet, catalog *taxonomy.Catalog,
) (float64, bool) {
	want := wants.AtLevel(level)
	if want.Len() == 0 {
		return 0, false
	}
	offer := offers.AtLevel(level)

	if level == taxonomy.LevelIdentity {
		if want.IntersectCount(offer) > 0 {
			return 1, true
		}
		return 0, true
	}

	// Keep only wants reachable from the offering side's identities.
	// Missing catalog nodes read as unreachable, so bad taxonomy data
	// degrades a level instead of failing the request.
	reachable := taxonomy.NewSet()
	for id := range want {
		if catalog.BelongsTo(id, level, offers.Identities) {
			reachable[id] = struct{}{}
		}
	}
	if reachable.Len() == 0 {
		return 0, false
	}

	return float64(reachable.IntersectCount(offer)) / float64(reachable.Len()), true
}

func clampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
