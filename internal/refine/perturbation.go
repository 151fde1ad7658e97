package refine

import (
	"math"

	"github.com/complexity-analyzer/engine/internal/cexpr"
	"github.com/complexity-analyzer/engine/internal/transform"
	"github.com/complexity-analyzer/engine/internal/variable"
)

// PerturbationExpansion handles the Master Theorem's Case-2 near-gap
// scenario (spec.md §4.7): f(n)'s polynomial degree sits within the gap
// epsilon of c_crit but isn't an exact match, so f(n) is treated as
// Theta(n^c_crit · log^k(n) · (1 + o(1))) and only the dominant
// correction is kept — the (1+o(1)) factor has no effect on the
// resulting asymptotic class and the expression algebra has no
// little-o primitive to carry it symbolically, so the returned
// expression is exactly n^c_crit · log^k(n) with k bumped by one
// whenever f's own degree meets or exceeds c_crit (the same "one extra
// log factor" correction Case 2 itself applies at the exact gap point).
func PerturbationExpansion(work cexpr.Expr, cCrit float64, v variable.Variable) cexpr.Expr {
	c := transform.Classify(work, v)
	k := c.LogExponent
	if c.PolyDegree >= cCrit {
		k++
	}
	return cexpr.NewPolyLog(cCrit, k, v, 1, 2)
}

// GapDistance reports how close f(n)'s polynomial degree sits to
// c_crit relative to the configured gap epsilon, in units of epsilon:
// 0 means exactly at the boundary (maximal ambiguity), >=1 means
// clearly outside the gap band. Used by the confidence scorer's
// theorem-fit term.
func GapDistance(work cexpr.Expr, v variable.Variable, cCrit, epsilon float64) float64 {
	if epsilon == 0 {
		return math.Inf(1)
	}
	c := transform.Classify(work, v)
	return math.Abs(c.PolyDegree-cCrit) / epsilon
}
