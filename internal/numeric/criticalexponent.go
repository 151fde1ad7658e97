// Package numeric implements the numerical kernels of spec.md §4.4–§4.5:
// the critical-exponent solver, a polynomial root finder for
// characteristic equations, an adaptive Simpson integrator, and
// special-function series approximations used as symbolic fallbacks.
//
// All comparisons here use explicit epsilons (spec.md §9: "avoid relying
// on exact equality; document tolerances at each kernel's boundary") —
// tolerances are named constants in internal/config, not ad hoc literals.
package numeric

import (
	"math"

	"github.com/complexity-analyzer/engine/internal/config"
)

// AkraBazziTerm is one aᵢ, bᵢ pair of the critical-exponent equation
// Σ aᵢ·bᵢ^p − 1 = 0 (spec.md §4.4).
type AkraBazziTerm struct {
	A float64
	B float64
}

// valid reports whether the term satisfies the solver's preconditions:
// aᵢ > 0, bᵢ ∈ (0,1).
func (t AkraBazziTerm) valid() bool {
	return t.A > 0 && t.B > 0 && t.B < 1
}

func g(terms []AkraBazziTerm, p float64) float64 {
	sum := 0.0
	for _, t := range terms {
		sum += t.A * math.Pow(t.B, p)
	}
	return sum - 1
}

func gPrime(terms []AkraBazziTerm, p float64) float64 {
	sum := 0.0
	for _, t := range terms {
		sum += t.A * math.Pow(t.B, p) * math.Log(t.B)
	}
	return sum
}

// CriticalExponent solves Σ aᵢ·bᵢ^p − 1 = 0 for p given aᵢ>0, bᵢ∈(0,1).
// g is strictly decreasing with g(−∞)=+∞ and g(+∞)=−1, so a unique real
// root exists whenever the input is well formed.
//
// Algorithm: bracket the root by doubling on both sides from an initial
// guess p0 = log(Σaᵢ)/log(1/min bᵢ), then run damped Newton using the
// analytic derivative g'(p) = Σ aᵢ·bᵢ^p·ln(bᵢ), falling back to bisection
// whenever a Newton step would leave the bracket or fails to make
// progress. Returns (0, false) for ill-formed input (aᵢ≤0, bᵢ∉(0,1), an
// empty term list) or on non-convergence within
// config.CriticalExponentMaxIterations.
func CriticalExponent(terms []AkraBazziTerm) (float64, bool) {
	if len(terms) == 0 {
		return 0, false
	}
	sumA, minB := 0.0, math.Inf(1)
	for _, t := range terms {
		if !t.valid() {
			return 0, false
		}
		sumA += t.A
		if t.B < minB {
			minB = t.B
		}
	}

	p0 := math.Log(sumA) / math.Log(1/minB)

	lo, hi := p0, p0
	glo, ghi := g(terms, lo), g(terms, hi)
	// g is strictly decreasing: widen the bracket until the sign changes.
	step := 1.0
	for i := 0; i < 200 && glo*ghi > 0; i++ {
		lo -= step
		hi += step
		step *= 2
		glo, ghi = g(terms, lo), g(terms, hi)
	}
	if glo*ghi > 0 {
		return 0, false // could not bracket; give up rather than guess
	}
	if glo < ghi {
		lo, hi = hi, lo
		glo, ghi = ghi, glo
	}
	// invariant from here: g(lo) > 0 > g(hi) (g strictly decreasing)

	p := p0
	if p < minFloat(lo, hi) || p > maxFloat(lo, hi) {
		p = (lo + hi) / 2
	}

	for iter := 0; iter < config.CriticalExponentMaxIterations; iter++ {
		gp := g(terms, p)
		if math.Abs(gp) < config.CriticalExponentTolerance {
			return p, true
		}

		next := p
		deriv := gPrime(terms, p)
		if deriv != 0 {
			next = p - gp/deriv
		}
		if next <= minFloat(lo, hi) || next >= maxFloat(lo, hi) || deriv == 0 {
			next = (lo + hi) / 2 // Newton left the bracket or stalled: bisect
		}

		gnext := g(terms, next)
		if gnext > 0 {
			lo = next
		} else {
			hi = next
		}

		if math.Abs(next-p) < config.CriticalExponentStepTolerance {
			return next, true
		}
		p = next
	}
	return 0, false
}

// Verify reports whether p satisfies the Akra-Bazzi equation within
// config.CriticalExponentVerifyTolerance, the check spec.md §4.4 assigns
// to the caller.
func Verify(terms []AkraBazziTerm, p float64) bool {
	return math.Abs(g(terms, p)+1-1) < config.CriticalExponentVerifyTolerance || math.Abs(g(terms, p)) < config.CriticalExponentVerifyTolerance
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
