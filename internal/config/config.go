// Package config holds process-wide tunables for the complexity engine
// that are not part of its public query surface: numerical tolerances,
// iteration caps, and the Master Theorem gap epsilon.
//
// Grounded on internal/config/constants.go's plain package-level
// var/const style (the teacher's config package holds build-time
// constants and mode flags the same way, with no struct wrapper).
package config

// MasterGapEpsilon is the tolerance band around logBA used by the Master
// Theorem dispatcher to decide whether f(n)'s polynomial degree falls in
// Case 1, Case 2, or Case 3, versus the ambiguous gap band that defers to
// Akra-Bazzi (spec.md §4.3, §9: "suggested: 1e-2 on polynomial degree").
var MasterGapEpsilon = 1e-2

// CriticalExponentTolerance is the |g(p)| convergence bound for the
// critical-exponent Newton/bisection solver (spec.md §4.4).
var CriticalExponentTolerance = 1e-9

// CriticalExponentStepTolerance is the |Δp| convergence bound for the
// same solver.
var CriticalExponentStepTolerance = 1e-12

// CriticalExponentVerifyTolerance is the tolerance a caller uses to accept
// a returned p* (spec.md §4.4: "caller checks |Σ aᵢ·bᵢ^p − 1| < 10⁻⁶").
var CriticalExponentVerifyTolerance = 1e-6

// CriticalExponentMaxIterations caps the Newton/bisection loop.
var CriticalExponentMaxIterations = 200

// SimpsonMaxDepth bounds the adaptive Simpson integrator's recursion depth
// (spec.md §5: "Adaptive Simpson bounds recursion depth (≤ 20 levels)").
var SimpsonMaxDepth = 20

// SimpsonTolerance is the default absolute error tolerance for one
// adaptive Simpson integration call.
var SimpsonTolerance = 1e-7

// MaxSimplifyPasses bounds the simplifier's fixed-point iteration so a
// pathological expression can never loop forever (spec.md §4.2: "reached
// in at most a bounded number of passes per expression size").
var MaxSimplifyPasses = 64

// GrowthSampleSizes are the n values the numerical-growth testable
// property (spec.md §8) samples a solved recurrence at.
var GrowthSampleSizes = []float64{100, 200, 400, 800}

// NewtonSamplePoints is the number of logarithmically spaced sample points
// the induction verifier's asymptotic check uses (spec.md §4.7).
var NewtonSamplePoints = 12
