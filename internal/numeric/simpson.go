package numeric

import (
	"math"

	"github.com/complexity-analyzer/engine/internal/config"
)

// AdaptiveSimpson integrates f over [a,b] via recursive adaptive
// Simpson's rule (spec.md §4.4's integral-bound kernel, used to turn a
// SymbolicIntegral's summed work per recursion level into a closed-form
// asymptotic bound). Recursion is capped at config.SimpsonMaxDepth; past
// that depth the current panel's estimate is accepted as-is rather than
// subdividing further, trading accuracy for termination.
func AdaptiveSimpson(f func(float64) float64, a, b float64) float64 {
	fa, fb := f(a), f(b)
	mid := (a + b) / 2
	fmid := f(mid)
	whole := simpsonEstimate(a, b, fa, fmid, fb)
	return adaptiveSimpsonRecurse(f, a, b, fa, fmid, fb, whole, config.SimpsonTolerance, config.SimpsonMaxDepth)
}

func simpsonEstimate(a, b, fa, fmid, fb float64) float64 {
	return (b - a) / 6 * (fa + 4*fmid + fb)
}

func adaptiveSimpsonRecurse(f func(float64) float64, a, b, fa, fmid, fb, whole, tol float64, depth int) float64 {
	mid := (a + b) / 2
	left := (a + mid) / 2
	right := (mid + b) / 2
	fleft := f(left)
	fright := f(right)
	leftHalf := simpsonEstimate(a, mid, fa, fleft, fmid)
	rightHalf := simpsonEstimate(mid, b, fmid, fright, fb)

	if depth <= 0 || math.Abs(leftHalf+rightHalf-whole) < 15*tol {
		return leftHalf + rightHalf + (leftHalf+rightHalf-whole)/15
	}
	return adaptiveSimpsonRecurse(f, a, mid, fa, fleft, fmid, leftHalf, tol/2, depth-1) +
		adaptiveSimpsonRecurse(f, mid, b, fmid, fright, fb, rightHalf, tol/2, depth-1)
}
