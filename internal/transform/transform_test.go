package transform

import (
	"testing"

	"github.com/complexity-analyzer/engine/internal/cexpr"
	"github.com/complexity-analyzer/engine/internal/variable"
)

func TestSimplifyIdentities(t *testing.T) {
	n := variable.N
	cases := []struct {
		name string
		in   cexpr.Expr
		want string
	}{
		{"0+x", &cexpr.Binary{Left: cexpr.NewConst(0), Op: cexpr.Plus, Right: cexpr.NewVar(n)}, "O(n)"},
		{"x+0", &cexpr.Binary{Left: cexpr.NewVar(n), Op: cexpr.Plus, Right: cexpr.NewConst(0)}, "O(n)"},
		{"c1+c2", &cexpr.Binary{Left: cexpr.NewConst(2), Op: cexpr.Plus, Right: cexpr.NewConst(3)}, "O(1)"},
		{"1*x", &cexpr.Binary{Left: cexpr.NewConst(1), Op: cexpr.Multiply, Right: cexpr.NewVar(n)}, "O(n)"},
		{"0*x", &cexpr.Binary{Left: cexpr.NewConst(0), Op: cexpr.Multiply, Right: cexpr.NewVar(n)}, "O(1)"},
		{"max(x,x)", &cexpr.Binary{Left: cexpr.NewVar(n), Op: cexpr.Max, Right: cexpr.NewVar(n)}, "O(n)"},
		{"max(0,x)", &cexpr.Binary{Left: cexpr.NewConst(0), Op: cexpr.Max, Right: cexpr.NewVar(n)}, "O(n)"},
		{"x^0", &cexpr.Power{Base: cexpr.NewVar(n), Exponent: 0}, "O(1)"},
		{"x^1", &cexpr.Power{Base: cexpr.NewVar(n), Exponent: 1}, "O(n)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Simplify(c.in).RenderBigO()
			if got != c.want {
				t.Errorf("Simplify(%s) = %s, want %s", c.name, got, c.want)
			}
		})
	}
}

func TestSimplifyCombinesLikeTerms(t *testing.T) {
	n := variable.N
	// 2n + 3n -> 5n
	e := &cexpr.Binary{Left: cexpr.NewLinear(2, n), Op: cexpr.Plus, Right: cexpr.NewLinear(3, n)}
	got := Simplify(e)
	lin, ok := got.(*cexpr.Linear)
	if !ok || lin.A != 5 {
		t.Errorf("Simplify(2n+3n) = %v, want Linear{5,n}", got)
	}
}

func TestSimplifyVVtoSquare(t *testing.T) {
	n := variable.N
	e := &cexpr.Binary{Left: cexpr.NewVar(n), Op: cexpr.Multiply, Right: cexpr.NewVar(n)}
	got := Simplify(e)
	p, ok := got.(*cexpr.Power)
	if !ok || p.Exponent != 2 {
		t.Errorf("Simplify(v*v) = %v, want Power{v,2}", got)
	}
}

func TestSimplifyIdempotence(t *testing.T) {
	n := variable.N
	e := &cexpr.Binary{
		Left: &cexpr.Binary{Left: cexpr.NewConst(0), Op: cexpr.Plus, Right: cexpr.NewLinear(2, n)},
		Op:   cexpr.Plus,
		Right: &cexpr.Binary{Left: cexpr.NewConst(1), Op: cexpr.Multiply, Right: cexpr.NewLinear(3, n)},
	}
	once := Simplify(e)
	twice := Simplify(once)
	if once.RenderBigO() != twice.RenderBigO() {
		t.Errorf("simplify not idempotent: %s != %s", once.RenderBigO(), twice.RenderBigO())
	}
}

func TestClassifyPolynomialDegree(t *testing.T) {
	n := variable.N
	c := Classify(cexpr.NewPoly(map[int]float64{2: 3, 1: 1}, n), n)
	if c.Form != Polynomial || c.PolyDegree != 2 {
		t.Errorf("classify(3n^2+n) = %+v, want Polynomial degree 2", c)
	}
}

func TestClassifyProductOfPolyAndLog(t *testing.T) {
	n := variable.N
	e := &cexpr.Binary{Left: cexpr.NewVar(n), Op: cexpr.Multiply, Right: cexpr.NewLog(1, n, 2)}
	c := classify(e)
	if c.Form != PolyLog || c.PolyDegree != 1 || c.LogExponent != 1 {
		t.Errorf("classify(n*log n) = %+v, want PolyLog{1,1}", c)
	}
}

func TestClassifierMonotonicityOrdering(t *testing.T) {
	n := variable.N
	constant := cexpr.NewConst(1)
	log := cexpr.NewLog(1, n, 2)
	linear := cexpr.NewVar(n)
	nlogn := cexpr.NewPolyLog(1, 1, n, 1, 2)
	quad := cexpr.NewPoly(map[int]float64{2: 1}, n)
	exp := cexpr.NewExp(2, n, 1)
	fact := cexpr.NewFactorial(n, 1)

	chain := []cexpr.Expr{constant, log, linear, nlogn, quad, exp, fact}
	for i := 0; i < len(chain)-1; i++ {
		if Compare(chain[i], chain[i+1]) != Less {
			t.Errorf("expected %s < %s in asymptotic ordering", chain[i].RenderBigO(), chain[i+1].RenderBigO())
		}
	}
}

func TestDropLowerOrderTermsKeepsDominant(t *testing.T) {
	n := variable.N
	e := &cexpr.Binary{Left: cexpr.NewVar(n), Op: cexpr.Plus, Right: cexpr.NewPoly(map[int]float64{2: 1}, n)}
	got := NormalizeForm(e)
	if got.RenderBigO() != "O(n^2)" {
		t.Errorf("NormalizeForm(n + n^2) = %s, want O(n^2)", got.RenderBigO())
	}
}

func TestNormalizeFormDropsConstantFactor(t *testing.T) {
	n := variable.N
	e := cexpr.NewLinear(5, n)
	got := NormalizeForm(e)
	if got.RenderBigO() != "O(n)" {
		t.Errorf("NormalizeForm(5n) = %s, want O(n)", got.RenderBigO())
	}
}

func TestAreEquivalent(t *testing.T) {
	n := variable.N
	a := cexpr.NewLinear(2, n)
	b := cexpr.NewLinear(7, n)
	if !AreEquivalent(a, b) {
		t.Errorf("2n and 7n should be asymptotically equivalent")
	}
}
