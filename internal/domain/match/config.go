package match

import "github.com/meetgrid/affinity/internal/domain/profile"

// Config controls whether and how the two score directions are blended.
type Config struct {
	Bidirectional bool
	Formula       Formula
}

// DefaultConfig returns the engine defaults: bidirectional blending with
// the reciprocal formula.
func DefaultConfig() Config {
	return Config{Bidirectional: true, Formula: FormulaReciprocal}
}

// Override selectively replaces resolved blend settings. Nil/empty
// fields keep whatever the actor's preferences (or the defaults) say.
type Override struct {
	Bidirectional *bool
	Formula       Formula
}

// ResolveConfig layers configuration sources: engine defaults, then the
// actor's stored preferences, then the request override field by field.
func ResolveConfig(prefs profile.Prefs, override *Override) Config {
	cfg := DefaultConfig()
	if prefs.Bidirectional != nil {
		cfg.Bidirectional = *prefs.Bidirectional
	}
	if f := Formula(prefs.Formula); f.IsValid() {
		cfg.Formula = f
	}
	if override != nil {
		if override.Bidirectional != nil {
			cfg.Bidirectional = *override.Bidirectional
		}
		if override.Formula != "" {
			cfg.Formula = override.Formula
		}
	}
	return cfg
}
