package linrec

import (
	"testing"

	"github.com/complexity-analyzer/engine/internal/cexpr"
	"github.com/complexity-analyzer/engine/internal/transform"
	"github.com/complexity-analyzer/engine/internal/variable"
)

func TestCharacteristicPolynomialFibonacci(t *testing.T) {
	// T(n) = T(n-1) + T(n-2) -> x^2 - x - 1 = 0
	terms := []cexpr.RecurrenceTerm{{Coefficient: 1, Shift: 1}, {Coefficient: 1, Shift: 2}}
	coeffs, deg, err := CharacteristicPolynomial(terms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deg != 2 {
		t.Fatalf("degree = %d, want 2", deg)
	}
	want := []float64{-1, -1, 1}
	for i, c := range coeffs {
		if c != want[i] {
			t.Errorf("coeffs[%d] = %v, want %v", i, c, want[i])
		}
	}
}

func TestCharacteristicPolynomialRejectsDivideAndConquer(t *testing.T) {
	terms := []cexpr.RecurrenceTerm{{Coefficient: 2, ScaleFactor: 0.5}}
	if _, _, err := CharacteristicPolynomial(terms); err == nil {
		t.Error("expected NotApplicable for a divide-and-conquer term")
	}
}

func TestSolveFibonacciIsExponential(t *testing.T) {
	n := variable.N
	rec := &cexpr.Recurrence{
		Terms:            []cexpr.RecurrenceTerm{{Coefficient: 1, Shift: 1}, {Coefficient: 1, Shift: 2}},
		Variable:         n,
		NonRecursiveWork: cexpr.NewConst(1),
	}
	sol, err := Solve(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := transform.Classify(sol.Combined, n)
	if c.Form != transform.Exponential {
		t.Errorf("classify(fib) = %v, want Exponential", c.Form)
	}
	// phi ~ 1.618
	if c.Base < 1.5 || c.Base > 1.7 {
		t.Errorf("base = %v, want ~1.618", c.Base)
	}
}

func TestSolveDegenerateSummation(t *testing.T) {
	// T(n) = T(n-1) + n: resonant summation, solution is O(n^2)
	n := variable.N
	rec := &cexpr.Recurrence{
		Terms:            []cexpr.RecurrenceTerm{{Coefficient: 1, Shift: 1}},
		Variable:         n,
		NonRecursiveWork: cexpr.NewVar(n),
	}
	sol, err := Solve(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := transform.Classify(sol.Combined, n)
	if c.Form != transform.Polynomial || c.PolyDegree != 2 {
		t.Errorf("classify(T(n)=T(n-1)+n) = %+v, want Polynomial degree 2", c)
	}
}

func TestSolvePureRepetitionIsLinear(t *testing.T) {
	// T(n) = T(n-1) + O(1): linear scan, O(n)
	n := variable.N
	rec := &cexpr.Recurrence{
		Terms:            []cexpr.RecurrenceTerm{{Coefficient: 1, Shift: 1}},
		Variable:         n,
		NonRecursiveWork: cexpr.NewConst(1),
	}
	sol, err := Solve(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sol.Combined.RenderBigO() != "O(n)" {
		t.Errorf("T(n)=T(n-1)+O(1) = %s, want O(n)", sol.Combined.RenderBigO())
	}
}
