package refine

import (
	"math"

	"github.com/complexity-analyzer/engine/internal/cexpr"
	"github.com/complexity-analyzer/engine/internal/config"
	"github.com/complexity-analyzer/engine/internal/variable"
)

// FitResult is the outcome of fitting a candidate form's leading
// coefficient against observed samples.
type FitResult struct {
	Coefficient float64
	RSquared    float64
}

// FitLeadingCoefficient performs the slack-variable fit of spec.md
// §4.7: given a candidate asymptotic shape (e.g. n^2, n*log(n)) and a
// set of observed (n, actual) samples — typically produced by directly
// simulating the recurrence for small n — finds the scalar c
// minimizing Σ(actual - c·shape(n))² via ordinary least squares
// through the origin, then reports the R² goodness of fit.
//
// shape is evaluated as given, including any leading coefficient it
// carries; with a DropConstantFactors'd expression (coefficient 1) the
// fit determines the tightened constant from scratch rather than
// refining an existing guess.
func FitLeadingCoefficient(shape cexpr.Expr, v variable.Variable, samples map[float64]float64) FitResult {
	var sumShapeActual, sumShapeSq, sumActual, sumActualSq float64
	count := 0
	for n, actual := range samples {
		s, ok := evaluateAt(shape, v, n)
		if !ok {
			continue
		}
		sumShapeActual += s * actual
		sumShapeSq += s * s
		sumActual += actual
		sumActualSq += actual * actual
		count++
	}
	if count == 0 || sumShapeSq == 0 {
		return FitResult{Coefficient: 1, RSquared: 0}
	}
	c := sumShapeActual / sumShapeSq

	meanActual := sumActual / float64(count)
	var ssRes, ssTot float64
	for n, actual := range samples {
		s, ok := evaluateAt(shape, v, n)
		if !ok {
			continue
		}
		pred := c * s
		ssRes += (actual - pred) * (actual - pred)
		ssTot += (actual - meanActual) * (actual - meanActual)
	}
	r2 := 1.0
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}
	return FitResult{Coefficient: c, RSquared: math.Max(0, r2)}
}

// SimulateRecurrence directly computes T(n) for n in
// config.GrowthSampleSizes (and any smaller integers needed along the
// way) by recursive evaluation, giving FitLeadingCoefficient concrete
// samples to fit against. Intended for small, purely numeric base
// cases; memoizes to avoid exponential blowup on overlapping calls.
func SimulateRecurrence(rec *cexpr.Recurrence, v variable.Variable, maxN int) map[float64]float64 {
	memo := make(map[int]float64)
	var sim func(n int) float64
	sim = func(n int) float64 {
		if v, ok := memo[n]; ok {
			return v
		}
		if rec.HasBaseCase && n <= 1 {
			memo[n] = rec.BaseCase
			return rec.BaseCase
		}
		total := 0.0
		for _, t := range rec.Terms {
			var arg int
			switch {
			case t.IsDivideAndConquer():
				arg = int(math.Max(1, math.Round(float64(n)*t.ScaleFactor)))
			case t.IsSubtractive():
				arg = n - t.Shift
			default:
				continue
			}
			if arg < 1 || arg >= n {
				continue
			}
			total += t.Coefficient * sim(arg)
		}
		if rec.NonRecursiveWork != nil {
			if w, ok := evaluateAt(rec.NonRecursiveWork, v, float64(n)); ok {
				total += w
			}
		}
		memo[n] = total
		return total
	}

	out := make(map[float64]float64, len(config.GrowthSampleSizes))
	for _, size := range config.GrowthSampleSizes {
		n := int(size)
		if n > maxN {
			n = maxN
		}
		out[float64(n)] = sim(n)
	}
	return out
}
