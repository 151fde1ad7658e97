package theorem

import (
	"math"

	"github.com/complexity-analyzer/engine/internal/cexpr"
	"github.com/complexity-analyzer/engine/internal/config"
	"github.com/complexity-analyzer/engine/internal/diagnostics"
	"github.com/complexity-analyzer/engine/internal/transform"
)

// solveMaster applies the Master Theorem to a single-term
// divide-and-conquer recurrence T(n) = a·T(n/b) + f(n) (spec.md §4.3).
// Returns a NotApplicable error for the classic "gap" case — f(n) sits
// within config.MasterGapEpsilon of n^c_crit but isn't recognizably
// Θ(n^c_crit·log^k n), or f(n) dominates but the regularity condition
// fails — deferring to Akra-Bazzi, which handles those directly.
func solveMaster(rec *cexpr.Recurrence) (*Result, error) {
	term := rec.Terms[0]
	a := term.Coefficient
	b := 1 / term.ScaleFactor
	if a <= 0 || b <= 1 {
		return nil, diagnostics.NewDomainError("master theorem requires a > 0 and b > 1", "a > 0", "b > 1")
	}
	cCrit := math.Log(a) / math.Log(b)

	work := rec.NonRecursiveWork
	if work == nil {
		work = cexpr.NewConst(1)
	}
	fClass := transform.Classify(work, rec.Variable)

	if fClass.Form != transform.Constant && fClass.Form != transform.Logarithmic &&
		fClass.Form != transform.Polynomial && fClass.Form != transform.PolyLog {
		return nil, diagnostics.NewNotApplicable("f(n) is not a polynomial/logarithmic form master theorem recognizes")
	}

	fDeg := fClass.PolyDegree
	eps := config.MasterGapEpsilon

	switch {
	case fDeg < cCrit-eps:
		// Case 1: f(n) = O(n^(c_crit - eps)).
		return &Result{Outcome: OutcomeMasterCase1, Expr: polyLogExpr(cCrit, 0, rec), CriticalExponent: cCrit}, nil

	case fDeg > cCrit+eps:
		// Case 3: f(n) = Omega(n^(c_crit + eps)); requires the regularity
		// condition a*f(n/b) <= c*f(n) for some c<1, approximated here by
		// comparing a against b^fDeg (exact for pure polynomial f).
		if a >= math.Pow(b, fDeg) {
			return nil, diagnostics.NewNotApplicable("case 3 candidate fails the regularity condition")
		}
		return &Result{Outcome: OutcomeMasterCase3, Expr: work, CriticalExponent: cCrit}, nil

	case math.Abs(fDeg-cCrit) <= eps && fClass.Form != transform.Unknown:
		// Case 2: f(n) = Theta(n^c_crit * log^k n).
		k := fClass.LogExponent
		return &Result{Outcome: OutcomeMasterCase2, Expr: polyLogExpr(cCrit, k+1, rec), CriticalExponent: cCrit}, nil

	default:
		return nil, diagnostics.NewNotApplicable("f(n) falls in the gap between master theorem cases")
	}
}

// polyLogExpr builds n^deg * log^logExp(n) as a cexpr.PolyLog node
// rooted at the recurrence's variable.
func polyLogExpr(deg, logExp float64, rec *cexpr.Recurrence) cexpr.Expr {
	return cexpr.NewPolyLog(deg, logExp, rec.Variable, 1, 2)
}
