package theorem

import (
	"math"

	"github.com/complexity-analyzer/engine/internal/cexpr"
	"github.com/complexity-analyzer/engine/internal/config"
	"github.com/complexity-analyzer/engine/internal/diagnostics"
	"github.com/complexity-analyzer/engine/internal/numeric"
	"github.com/complexity-analyzer/engine/internal/transform"
)

// solveAkraBazzi applies the Akra-Bazzi method (spec.md §4.3) to a
// multi-term (or single-term, when Master Theorem declines) divide-
// and-conquer recurrence T(n) = Σ aᵢ·T(bᵢ·n) + f(n). It solves the
// critical-exponent equation Σ aᵢ·bᵢ^p = 1 numerically
// (internal/numeric.CriticalExponent) and classifies the resulting
// bound T(n) = Θ(n^p·(1 + ∫[1,n] f(u)/u^(p+1) du)) by comparing f(n)'s
// polynomial degree against p, which is exact whenever f is
// polynomial/logarithmic — the growth forms this analyzer already
// names.
func solveAkraBazzi(rec *cexpr.Recurrence) (*Result, error) {
	terms := make([]numeric.AkraBazziTerm, len(rec.Terms))
	for i, t := range rec.Terms {
		if !t.IsDivideAndConquer() {
			return nil, diagnostics.NewNotApplicable("akra-bazzi requires every term to be divide-and-conquer")
		}
		if t.Coefficient <= 0 {
			return nil, diagnostics.NewDomainError("akra-bazzi requires every coefficient to be positive", "a_i > 0")
		}
		terms[i] = numeric.AkraBazziTerm{A: t.Coefficient, B: t.ScaleFactor}
	}

	p, ok := numeric.CriticalExponent(terms)
	if !ok {
		return nil, diagnostics.NewNonConvergence("critical exponent solver failed to converge")
	}

	work := rec.NonRecursiveWork
	if work == nil {
		work = cexpr.NewConst(1)
	}
	fClass := transform.Classify(work, rec.Variable)
	eps := config.MasterGapEpsilon

	var expr cexpr.Expr
	switch {
	case fClass.PolyDegree < p-eps:
		// integral converges to a constant: T(n) = Theta(n^p)
		expr = cexpr.NewPolyLog(p, 0, rec.Variable, 1, 2)
	case math.Abs(fClass.PolyDegree-p) <= eps:
		// f(u)/u^(p+1) ~ 1/u: integral grows like ln(n)
		expr = cexpr.NewPolyLog(p, 1, rec.Variable, 1, 2)
	default:
		// f(n) dominates: T(n) = Theta(f(n))
		expr = work
	}

	return &Result{Outcome: OutcomeAkraBazzi, Expr: expr, CriticalExponent: p}, nil
}
