package cexpr

import (
	"testing"

	"github.com/complexity-analyzer/engine/internal/variable"
)

func TestConstRenderAndEvaluate(t *testing.T) {
	c := NewConst(5)
	if got := c.RenderBigO(); got != "O(1)" {
		t.Errorf("Const.RenderBigO() = %s, want O(1)", got)
	}
	val, ok := c.Evaluate(nil)
	if !ok || val != 5 {
		t.Errorf("Const.Evaluate() = (%v, %v), want (5, true)", val, ok)
	}
}

func TestVarFreeVariables(t *testing.T) {
	n := variable.N
	v := NewVar(n)
	fv := v.FreeVariables()
	if !fv.Contains(n) {
		t.Errorf("expected n in FreeVariables()")
	}
	if len(fv) != 1 {
		t.Errorf("expected exactly one free variable, got %d", len(fv))
	}
}

func TestSubstitutionIdentity(t *testing.T) {
	// Universal law: e.Substitute(v, Var(v)) == e for a representative
	// sample of variants (spec.md §8).
	n := variable.N
	m := variable.M
	exprs := []Expr{
		NewConst(3),
		NewVar(n),
		NewLinear(2, n),
		NewPoly(map[int]float64{2: 1, 1: 3}, n),
		NewLog(1, n, 2),
		NewExp(2, n, 1),
		NewFactorial(n, 1),
		NewPolyLog(2, 1, n, 1, 2),
		&Binary{Left: NewVar(n), Op: Plus, Right: NewVar(m)},
		&Power{Base: NewVar(n), Exponent: 2},
	}
	for i, e := range exprs {
		got := e.Substitute(n, NewVar(n))
		if got.RenderBigO() != e.RenderBigO() {
			t.Errorf("case %d: substitution identity violated: %s != %s", i, got.RenderBigO(), e.RenderBigO())
		}
	}
}

func TestSubstituteUnaffectedVariableReturnsIdentical(t *testing.T) {
	n := variable.N
	m := variable.M
	e := NewVar(n)
	got := e.Substitute(m, NewConst(7))
	if got != Expr(e) {
		t.Errorf("Substitute of a non-free variable should return the identical value")
	}
}

func TestFreeVariablesOfCompound(t *testing.T) {
	n, m := variable.N, variable.M
	e := &Binary{Left: NewVar(n), Op: Plus, Right: NewVar(m)}
	fv := e.FreeVariables()
	if !fv.Contains(n) || !fv.Contains(m) {
		t.Errorf("expected both n and m free, got %v", fv)
	}
}

func TestEvaluateUnboundVariableYieldsNone(t *testing.T) {
	n := variable.N
	e := NewVar(n)
	_, ok := e.Evaluate(map[variable.Variable]float64{})
	if ok {
		t.Errorf("expected Evaluate to fail on unbound variable")
	}
}

func TestLogEvaluateDomainPrecondition(t *testing.T) {
	n := variable.N
	e := NewLog(1, n, 2)
	_, ok := e.Evaluate(map[variable.Variable]float64{n: 0})
	if ok {
		t.Errorf("expected Evaluate to fail for log of non-positive value")
	}
	val, ok := e.Evaluate(map[variable.Variable]float64{n: 8})
	if !ok || !floatEqual(val, 3) {
		t.Errorf("log2(8) = %v, want 3", val)
	}
}

func TestPolyDegreeAndLeadingCoef(t *testing.T) {
	n := variable.N
	p := NewPoly(map[int]float64{0: 1, 2: 5, 1: 0}, n)
	if p.Degree() != 2 {
		t.Errorf("Degree() = %d, want 2", p.Degree())
	}
	if p.LeadingCoef() != 5 {
		t.Errorf("LeadingCoef() = %v, want 5", p.LeadingCoef())
	}
}

func TestConditionalEvaluatesAsMax(t *testing.T) {
	n := variable.N
	c := &Conditional{
		TrueBranch:  NewConst(10),
		FalseBranch: NewLinear(1, n),
	}
	val, ok := c.Evaluate(map[variable.Variable]float64{n: 100})
	if !ok || val != 100 {
		t.Errorf("Conditional.Evaluate() = (%v,%v), want (100,true)", val, ok)
	}
}

func TestParallelDerivedQuantities(t *testing.T) {
	n := variable.N
	p := variable.P
	par := &Parallel{
		Work:       NewLinear(1, n),
		Span:       NewLog(1, n, 2),
		Processors: NewVar(p),
	}
	binding := map[variable.Variable]float64{n: 1024, p: 8}
	work, _ := par.Work.Evaluate(binding)
	span, _ := par.Span.Evaluate(binding)
	procs, _ := par.Processors.Evaluate(binding)
	want := work / procs
	if want < span {
		want = span
	}
	got, ok := par.ParallelTime().Evaluate(binding)
	if !ok || !floatEqual(got, want) {
		t.Errorf("ParallelTime = %v, want %v", got, want)
	}
}

func TestComposeSequentialNestedBranching(t *testing.T) {
	n := variable.N
	seq := Sequential(NewConst(1), NewConst(2))
	if bin, ok := seq.(*Binary); !ok || bin.Op != Plus {
		t.Errorf("Sequential should build a Plus Binary")
	}
	nested := Nested(NewVar(n), NewConst(1))
	if bin, ok := nested.(*Binary); !ok || bin.Op != Multiply {
		t.Errorf("Nested should build a Multiply Binary")
	}
	branch := Branching(NewConst(1), NewConst(2))
	if bin, ok := branch.(*Binary); !ok || bin.Op != Max {
		t.Errorf("Branching should build a Max Binary")
	}
}

func TestComposeDivideAndConquerNeverPreSolves(t *testing.T) {
	n := variable.N
	rec := DivideAndConquer(n, 2, 0.5, NewVar(n))
	r, ok := rec.(*Recurrence)
	if !ok {
		t.Fatalf("expected *Recurrence")
	}
	if _, solved := r.Solution(); solved {
		t.Errorf("composition must never pre-solve a recurrence")
	}
	if len(r.Terms) != 1 || r.Terms[0].Coefficient != 2 || r.Terms[0].ScaleFactor != 0.5 {
		t.Errorf("unexpected recurrence shape: %+v", r.Terms)
	}
}
