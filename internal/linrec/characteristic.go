// Package linrec solves linear subtractive recurrences T(n) = Σ
// aᵢ·T(n−shiftᵢ) + f(n) (spec.md §4.5) by building the characteristic
// polynomial, finding its roots via internal/numeric, and combining the
// homogeneous and particular solutions — including the degenerate
// resonance case where f(n)'s growth collides with a characteristic
// root.
package linrec

import (
	"github.com/complexity-analyzer/engine/internal/cexpr"
	"github.com/complexity-analyzer/engine/internal/diagnostics"
	"github.com/complexity-analyzer/engine/internal/numeric"
)

// CharacteristicPolynomial builds the coefficients (ascending degree,
// suitable for numeric.PolynomialRoots) of
//
//	x^d − Σᵢ aᵢ·x^(d−shiftᵢ) = 0
//
// where d is the largest shift among terms. Returns an error if any
// term is not subtractive (e.g. a divide-and-conquer term leaked in —
// that belongs to the Master Theorem / Akra-Bazzi engine instead).
func CharacteristicPolynomial(terms []cexpr.RecurrenceTerm) ([]float64, int, error) {
	if len(terms) == 0 {
		return nil, 0, diagnostics.NewNotApplicable("no recursive terms")
	}
	maxShift := 0
	for _, t := range terms {
		if !t.IsSubtractive() {
			return nil, 0, diagnostics.NewNotApplicable("term is not linear-subtractive; use the divide-and-conquer solver")
		}
		if t.Shift > maxShift {
			maxShift = t.Shift
		}
	}
	coeffs := make([]float64, maxShift+1)
	coeffs[maxShift] = 1
	for _, t := range terms {
		coeffs[maxShift-t.Shift] -= t.Coefficient
	}
	return coeffs, maxShift, nil
}

// Roots finds the characteristic roots of a linear-subtractive
// recurrence, grouped by multiplicity.
func Roots(terms []cexpr.RecurrenceTerm) ([]numeric.Root, error) {
	coeffs, _, err := CharacteristicPolynomial(terms)
	if err != nil {
		return nil, err
	}
	roots := numeric.PolynomialRoots(coeffs)
	if roots == nil {
		return nil, diagnostics.NewNonConvergence("characteristic polynomial has no roots (degenerate degree)")
	}
	return roots, nil
}
