// Package match defines the matching engine's request, configuration,
// and result value types.
package match

// Formula selects how the two unidirectional scores are blended.
type Formula string

// Blend formulas.
const (
	// FormulaSimple is the arithmetic mean of both directions.
	FormulaSimple Formula = "simple"
	// FormulaReciprocal weights the actor's own perceived match at 0.7
	// and the reverse direction at 0.3.
	FormulaReciprocal Formula = "reciprocal"
)

// IsValid reports whether the formula is supported.
func (f Formula) IsValid() bool {
	switch f {
	case FormulaSimple, FormulaReciprocal:
		return true
	default:
		return false
	}
}
