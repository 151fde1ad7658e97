package numeric

import (
	"math"
	"math/cmplx"

	"github.com/complexity-analyzer/engine/internal/config"
)

// Root is one root of a characteristic polynomial, grouped with its
// algebraic multiplicity. Multiplicity is determined by clustering
// roots found within 1e-4 of one another (clusterTol in groupRoots),
// since the Durand-Kerner iteration below perturbs repeated
// roots apart by a tiny amount rather than reporting them coincident.
type Root struct {
	Value        complex128
	Multiplicity int
}

// PolynomialRoots finds every root of the monic-normalized polynomial
// coeffs[0] + coeffs[1]*x + ... + coeffs[n]*x^n = 0 (internal/linrec's
// characteristic equation for a linear recurrence, spec.md §4.5) using
// the Durand-Kerner (Weierstrass) simultaneous-iteration method. It
// handles complex and repeated roots without constructing an explicit
// companion matrix.
//
// Zero high-order coefficients are dropped first; returns nil if what
// remains has degree < 1.
func PolynomialRoots(coeffs []float64) []Root {
	deg := len(coeffs) - 1
	for deg > 0 && coeffs[deg] == 0 {
		deg--
	}
	if deg < 1 {
		return nil
	}
	lead := coeffs[deg]
	norm := make([]float64, deg+1)
	for i := range norm {
		norm[i] = coeffs[i] / lead
	}

	roots := make([]complex128, deg)
	// Initial guesses spread on a circle whose radius bounds the roots
	// (Cauchy's bound), offset so no two guesses coincide.
	bound := cauchyBound(norm)
	for i := range roots {
		angle := 2 * math.Pi * float64(i) / float64(deg)
		roots[i] = complex(bound*math.Cos(angle), bound*math.Sin(angle)) + complex(0, 0.0001*float64(i))
	}

	evalPoly := func(z complex128) complex128 {
		var sum complex128
		power := complex(1, 0)
		for _, c := range norm {
			sum += complex(c, 0) * power
			power *= z
		}
		return sum
	}

	maxIter := config.CriticalExponentMaxIterations * 4
	for iter := 0; iter < maxIter; iter++ {
		maxDelta := 0.0
		next := make([]complex128, deg)
		for i := range roots {
			denom := complex(1, 0)
			for j := range roots {
				if i != j {
					denom *= roots[i] - roots[j]
				}
			}
			if cmplx.Abs(denom) < 1e-14 {
				next[i] = roots[i]
				continue
			}
			delta := evalPoly(roots[i]) / denom
			next[i] = roots[i] - delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}
		roots = next
		if maxDelta < config.CriticalExponentTolerance {
			break
		}
	}

	return groupRoots(roots)
}

func cauchyBound(norm []float64) float64 {
	deg := len(norm) - 1
	maxAbs := 0.0
	for i := 0; i < deg; i++ {
		if a := math.Abs(norm[i]); a > maxAbs {
			maxAbs = a
		}
	}
	return 1 + maxAbs
}

// groupRoots clusters numerically-close roots together and reports each
// cluster's centroid with its size as the multiplicity.
func groupRoots(roots []complex128) []Root {
	const clusterTol = 1e-4
	used := make([]bool, len(roots))
	var out []Root
	for i := range roots {
		if used[i] {
			continue
		}
		sum := roots[i]
		count := 1
		used[i] = true
		for j := i + 1; j < len(roots); j++ {
			if used[j] {
				continue
			}
			if cmplx.Abs(roots[i]-roots[j]) < clusterTol {
				sum += roots[j]
				count++
				used[j] = true
			}
		}
		out = append(out, Root{Value: sum / complex(float64(count), 0), Multiplicity: count})
	}
	return out
}

// IsReal reports whether r is real within the solver's tolerance.
func (r Root) IsReal() bool {
	return math.Abs(imag(r.Value)) < config.CriticalExponentVerifyTolerance
}
