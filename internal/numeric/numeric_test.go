package numeric

import (
	"math"
	"testing"
)

func TestCriticalExponentMergeSort(t *testing.T) {
	// T(n) = 2T(n/2): a=2, b=1/2 -> p=1 since 2*(1/2)^1 = 1.
	p, ok := CriticalExponent([]AkraBazziTerm{{A: 2, B: 0.5}})
	if !ok {
		t.Fatal("expected convergence")
	}
	if math.Abs(p-1) > 1e-6 {
		t.Errorf("p = %v, want 1", p)
	}
}

func TestCriticalExponentKaratsuba(t *testing.T) {
	// T(n) = 3T(n/2): p = log2(3) ~ 1.58496
	p, ok := CriticalExponent([]AkraBazziTerm{{A: 3, B: 0.5}})
	if !ok {
		t.Fatal("expected convergence")
	}
	want := math.Log(3) / math.Log(2)
	if math.Abs(p-want) > 1e-6 {
		t.Errorf("p = %v, want %v", p, want)
	}
}

func TestCriticalExponentRejectsInvalidTerms(t *testing.T) {
	if _, ok := CriticalExponent(nil); ok {
		t.Error("expected failure on empty term list")
	}
	if _, ok := CriticalExponent([]AkraBazziTerm{{A: -1, B: 0.5}}); ok {
		t.Error("expected failure on negative coefficient")
	}
	if _, ok := CriticalExponent([]AkraBazziTerm{{A: 1, B: 1.5}}); ok {
		t.Error("expected failure on b outside (0,1)")
	}
}

func TestPolynomialRootsQuadratic(t *testing.T) {
	// x^2 - 5x + 6 = (x-2)(x-3): coeffs in ascending power order.
	roots := PolynomialRoots([]float64{6, -5, 1})
	if len(roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(roots))
	}
	found2, found3 := false, false
	for _, r := range roots {
		if !r.IsReal() {
			t.Errorf("root %v should be real", r.Value)
		}
		if math.Abs(real(r.Value)-2) < 1e-4 {
			found2 = true
		}
		if math.Abs(real(r.Value)-3) < 1e-4 {
			found3 = true
		}
	}
	if !found2 || !found3 {
		t.Errorf("roots = %v, want {2,3}", roots)
	}
}

func TestPolynomialRootsRepeated(t *testing.T) {
	// (x-1)^2 = x^2 - 2x + 1
	roots := PolynomialRoots([]float64{1, -2, 1})
	if len(roots) != 1 {
		t.Fatalf("got %d root clusters, want 1 (repeated root)", len(roots))
	}
	if roots[0].Multiplicity != 2 {
		t.Errorf("multiplicity = %d, want 2", roots[0].Multiplicity)
	}
	if math.Abs(real(roots[0].Value)-1) > 1e-3 {
		t.Errorf("root = %v, want 1", roots[0].Value)
	}
}

func TestAdaptiveSimpsonPolynomial(t *testing.T) {
	// integral of x^2 from 0 to 1 = 1/3
	got := AdaptiveSimpson(func(x float64) float64 { return x * x }, 0, 1)
	if math.Abs(got-1.0/3.0) > 1e-6 {
		t.Errorf("integral = %v, want 1/3", got)
	}
}

func TestAdaptiveSimpsonSine(t *testing.T) {
	// integral of sin(x) from 0 to pi = 2
	got := AdaptiveSimpson(math.Sin, 0, math.Pi)
	if math.Abs(got-2) > 1e-6 {
		t.Errorf("integral = %v, want 2", got)
	}
}

func TestPolylogarithmDilogAtHalf(t *testing.T) {
	got, ok := Polylogarithm(2, 0.5)
	if !ok {
		t.Fatal("expected success")
	}
	// Li_2(1/2) = pi^2/12 - ln^2(2)/2
	want := math.Pi*math.Pi/12 - math.Log(2)*math.Log(2)/2
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("Li_2(0.5) = %v, want %v", got, want)
	}
}

func TestIncompleteGammaLowerBounds(t *testing.T) {
	got, ok := IncompleteGammaLower(1, 0)
	if !ok || got != 0 {
		t.Errorf("P(1,0) = %v, want 0", got)
	}
	// P(1, x) = 1 - e^-x
	got, ok = IncompleteGammaLower(1, 1)
	if !ok {
		t.Fatal("expected success")
	}
	want := 1 - math.Exp(-1)
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("P(1,1) = %v, want %v", got, want)
	}
}

func TestIncompleteBetaSymmetric(t *testing.T) {
	// I_0.5(a,a) = 0.5 for any a
	got, ok := IncompleteBeta(0.5, 2, 2)
	if !ok {
		t.Fatal("expected success")
	}
	if math.Abs(got-0.5) > 1e-6 {
		t.Errorf("I_0.5(2,2) = %v, want 0.5", got)
	}
}

func TestGaussHypergeometricIdentity(t *testing.T) {
	// 2F1(a,b;b;z) = (1-z)^-a
	got, ok := GaussHypergeometric2F1(2, 3, 3, 0.3)
	if !ok {
		t.Fatal("expected success")
	}
	want := math.Pow(1-0.3, -2)
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("2F1(2,3;3;0.3) = %v, want %v", got, want)
	}
}
