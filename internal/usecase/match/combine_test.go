package match

import (
	"math"
	"testing"

	dommatch "github.com/meetgrid/affinity/internal/domain/match"
)

func TestCombine_SimpleIsArithmeticMean(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{100, 0, 50},
		{0, 0, 0},
		{100, 100, 100},
		{50, 51, 51}, // 50.5 rounds up
		{33, 66, 50}, // 49.5 rounds up
		{25, 50, 38}, // 37.5 rounds up
	}
	for _, c := range cases {
		if got := Combine(c.a, c.b, dommatch.FormulaSimple); got != c.want {
			t.Errorf("Combine(%d, %d, simple) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestCombine_ReciprocalWeights(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{100, 0, 70},
		{0, 100, 30},
		{100, 100, 100},
		{80, 40, 68},
		{50, 50, 50},
		{73, 21, 57}, // 51.1 + 6.3 = 57.4
	}
	for _, c := range cases {
		if got := Combine(c.a, c.b, dommatch.FormulaReciprocal); got != c.want {
			t.Errorf("Combine(%d, %d, reciprocal) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestCombine_MatchesClosedForm(t *testing.T) {
	for a := 0; a <= 100; a += 7 {
		for b := 0; b <= 100; b += 9 {
			wantSimple := int(math.Round((float64(a) + float64(b)) / 2))
			if got := Combine(a, b, dommatch.FormulaSimple); got != wantSimple {
				t.Fatalf("simple(%d, %d) = %d, want %d", a, b, got, wantSimple)
			}
			wantRec := int(math.Round(0.7*float64(a) + 0.3*float64(b)))
			if got := Combine(a, b, dommatch.FormulaReciprocal); got != wantRec {
				t.Fatalf("reciprocal(%d, %d) = %d, want %d", a, b, got, wantRec)
			}
		}
	}
}

func TestCombine_ZeroSideContributesExplicitly(t *testing.T) {
	// A side with no applicable levels scores 0 and still dilutes the
	// blend rather than being skipped.
	if got := Combine(100, 0, dommatch.FormulaReciprocal); got != 70 {
		t.Fatalf("expected 70, got %d", got)
	}
	if got := Combine(100, 0, dommatch.FormulaSimple); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}
