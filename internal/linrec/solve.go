package linrec

import (
	"math"

	"github.com/complexity-analyzer/engine/internal/cexpr"
	"github.com/complexity-analyzer/engine/internal/diagnostics"
	"github.com/complexity-analyzer/engine/internal/numeric"
	"github.com/complexity-analyzer/engine/internal/transform"
	"github.com/complexity-analyzer/engine/internal/variable"
)

// Solution is the decomposed closed form of a linear-subtractive
// recurrence: its dominant homogeneous term, its (possibly
// resonance-bumped) particular term, and their combined asymptotic
// bound.
type Solution struct {
	Homogeneous cexpr.Expr
	Particular  cexpr.Expr
	Combined    cexpr.Expr
}

// dominantRoot is the largest-magnitude characteristic root together
// with its multiplicity, whether it is real, and its real value. A real
// root that the particular solution's own growth rate collides with is
// the "degenerate summation" case of spec.md §4.5 (e.g. T(n) = T(n−1) + n
// resonates with the root r=1).
type dominantRoot struct {
	magnitude    float64
	multiplicity int
	real         bool
	value        float64 // meaningful only when real
}

// Solve finds the closed-form asymptotic bound of a linear-subtractive
// recurrence T(n) = Σ aᵢ·T(n−shiftᵢ) + NonRecursiveWork(n).
func Solve(rec *cexpr.Recurrence) (*Solution, error) {
	roots, err := Roots(rec.Terms)
	if err != nil {
		return nil, err
	}

	dom := dominantHomogeneousRoot(roots)
	homogeneous := homogeneousExpr(dom, rec.Variable)

	particular := rec.NonRecursiveWork
	if particular == nil {
		particular = cexpr.NewConst(0)
	}
	particular = bumpForResonance(particular, dom, rec.Variable)

	combined := transform.NormalizeForm(&cexpr.Binary{Left: homogeneous, Op: cexpr.Plus, Right: particular})
	return &Solution{Homogeneous: homogeneous, Particular: particular, Combined: combined}, nil
}

// dominantHomogeneousRoot picks the characteristic root of largest
// magnitude; ties preferring the larger multiplicity, since a repeated
// root of the same magnitude grows strictly faster (n^(m-1)·r^n).
func dominantHomogeneousRoot(roots []numeric.Root) dominantRoot {
	var best dominantRoot
	for _, r := range roots {
		mag := math.Hypot(real(r.Value), imag(r.Value))
		if mag > best.magnitude || (mag == best.magnitude && r.Multiplicity > best.multiplicity) {
			best = dominantRoot{magnitude: mag, multiplicity: r.Multiplicity, real: r.IsReal(), value: real(r.Value)}
		}
	}
	return best
}

// homogeneousExpr renders the dominant homogeneous solution as a
// concrete expression: a constant if every root decays (magnitude <
// 1), a polynomial of degree multiplicity-1 if the dominant root sits
// on the unit circle (pure repetition, e.g. T(n)=T(n-1)), or an
// exponential r^n scaled by n^(multiplicity-1) otherwise.
func homogeneousExpr(dom dominantRoot, v variable.Variable) cexpr.Expr {
	switch {
	case dom.magnitude < 1+1e-9 && dom.magnitude > 1-1e-9:
		if dom.multiplicity <= 1 {
			return cexpr.NewConst(1)
		}
		return cexpr.NewPoly(map[int]float64{dom.multiplicity - 1: 1}, v)
	case dom.magnitude <= 1:
		return cexpr.NewConst(1)
	default:
		base := dom.magnitude
		exp := &cexpr.Exp{Base: base, V: v, A: 1}
		if dom.multiplicity <= 1 {
			return exp
		}
		return &cexpr.Binary{Left: cexpr.NewPoly(map[int]float64{dom.multiplicity - 1: 1}, v), Op: cexpr.Multiply, Right: exp}
	}
}

// bumpForResonance raises the particular solution's polynomial degree
// (or, for an exponential forcing term, its leading n^k factor) by the
// dominant root's multiplicity when the forcing term's own growth rate
// collides with that root — the classical undetermined-coefficients
// resonance adjustment, and spec.md §4.5's degenerate summation case
// (T(n) = T(n-1) + f(n), a root r=1 of multiplicity 1 bumping f's
// polynomial degree by one, reproducing the sum's one-degree-higher
// growth).
func bumpForResonance(work cexpr.Expr, dom dominantRoot, v variable.Variable) cexpr.Expr {
	c := transform.Classify(work, v)
	switch c.Form {
	case transform.Constant, transform.Polynomial, transform.Logarithmic, transform.PolyLog:
		if dom.real && math.Abs(dom.value-1) < 1e-6 && dom.multiplicity > 0 {
			bumpedDegree := c.PolyDegree + float64(dom.multiplicity)
			return cexpr.NewPoly(map[int]float64{int(bumpedDegree): 1}, v)
		}
		return work
	case transform.Exponential:
		if dom.real && math.Abs(dom.value-c.Base) < 1e-6 && dom.multiplicity > 0 {
			bumped := &cexpr.Exp{Base: c.Base, V: v, A: 1}
			return &cexpr.Binary{Left: cexpr.NewPoly(map[int]float64{dom.multiplicity: 1}, v), Op: cexpr.Multiply, Right: bumped}
		}
		return work
	default:
		return work
	}
}

// SolveFromTerms is a convenience entry point for callers (e.g. the
// mutual-recursion reducer) that have decomposed terms and work
// separately rather than holding a *cexpr.Recurrence.
func SolveFromTerms(terms []cexpr.RecurrenceTerm, v variable.Variable, work cexpr.Expr) (*Solution, error) {
	if work == nil {
		return nil, diagnostics.NewDomainError("non-recursive work term is required", "work != nil")
	}
	return Solve(&cexpr.Recurrence{Terms: terms, Variable: v, NonRecursiveWork: work})
}
