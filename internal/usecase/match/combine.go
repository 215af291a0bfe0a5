package match

import (
	"math"

	dommatch "github.com/meetgrid/affinity/internal/domain/match"
)

// reciprocal blend weights: the actor's own perceived match dominates.
const (
	reciprocalOwnWeight     = 0.7
	reciprocalReverseWeight = 0.3
)

// Combine blends the two unidirectional percentages. Both inputs are
// already-rounded integers; the blend is rounded once and clamped. A
// side that scored 0 (including "no applicable levels") contributes
// that explicit 0.
func Combine(aToB, bToA int, f dommatch.Formula) int {
	var blended float64
	switch f {
	case dommatch.FormulaSimple:
		blended = (float64(aToB) + float64(bToA)) / 2
	default:
		blended = reciprocalOwnWeight*float64(aToB) + reciprocalReverseWeight*float64(bToA)
	}
	return clampPercent(int(math.Round(blended)))
}
