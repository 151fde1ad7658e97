package cexpr

import (
	"fmt"
	"strings"

	"github.com/complexity-analyzer/engine/internal/variable"
)

// RecurrenceTerm is one aᵢ·T(...) summand of a recurrence (spec.md §3.3).
// Exactly one of ScaleFactor or Shift is meaningful for a given term:
//
//   - ScaleFactor in (0,1): a divide-and-conquer term aᵢ·T(bᵢ·n); Argument,
//     if set, is the symbolic bᵢ·n expression (e.g. for rendering).
//   - Shift > 0: a linear subtractive term aᵢ·T(n−Shift).
//
// Both are zero for a term outside the recursive structure they describe.
type RecurrenceTerm struct {
	Coefficient float64
	Argument    Expr // optional: symbolic recursive-call argument, for display
	ScaleFactor float64
	Shift       int
}

// IsDivideAndConquer reports whether this term has a scale factor in (0,1).
func (t RecurrenceTerm) IsDivideAndConquer() bool {
	return t.ScaleFactor > 0 && t.ScaleFactor < 1
}

// IsSubtractive reports whether this term has a positive integer shift.
func (t RecurrenceTerm) IsSubtractive() bool {
	return t.Shift > 0
}

// Recurrence represents T(n) = Σᵢ Terms[i] + NonRecursiveWork, with an
// optional BaseCase value for induction/numerical verification. It is
// both a first-class Expr variant (spec.md §3.2) and the data model
// layer 3 solvers consume (spec.md §3.3) — kept as a single type rather
// than two parallel shapes, since the spec's "unify the two differing
// shapes" guidance (§9, Open Questions) generalizes cleanly here too.
type Recurrence struct {
	Terms            []RecurrenceTerm
	Variable         variable.Variable
	NonRecursiveWork Expr
	BaseCase         float64
	HasBaseCase      bool

	// solution, when non-nil, is the closed form a theorem solver attached
	// via WithSolution; Evaluate/RenderBigO prefer it when present.
	solution Expr
}

// WithSolution returns a copy of r carrying a resolved closed form. It does
// not mutate r; the refinement layer attaches solutions this way so the
// original, unsolved Recurrence remains available for re-solving.
func (e *Recurrence) WithSolution(solution Expr) *Recurrence {
	cp := *e
	cp.solution = solution
	return &cp
}

// Solution returns the attached closed form and whether one is present.
func (e *Recurrence) Solution() (Expr, bool) {
	return e.solution, e.solution != nil
}

func (e *Recurrence) exprNode() {}

func (e *Recurrence) FreeVariables() variable.Set {
	out := variable.NewSet(e.Variable)
	if e.NonRecursiveWork != nil {
		out = out.Union(e.NonRecursiveWork.FreeVariables())
	}
	for _, t := range e.Terms {
		if t.Argument != nil {
			out = out.Union(t.Argument.FreeVariables())
		}
	}
	return out
}

func (e *Recurrence) Substitute(v variable.Variable, replacement Expr) Expr {
	if e.Variable.Equal(v) {
		// Substituting the recurrence's own induction variable doesn't
		// make sense structurally (it would need re-deriving scale
		// factors/shifts); return unchanged, matching the conservative
		// contract for operations with no well-defined result.
		return e
	}
	newWork := e.NonRecursiveWork
	if newWork != nil {
		newWork = newWork.Substitute(v, replacement)
	}
	newTerms := make([]RecurrenceTerm, len(e.Terms))
	changed := newWork != e.NonRecursiveWork
	for i, t := range e.Terms {
		nt := t
		if t.Argument != nil {
			nt.Argument = t.Argument.Substitute(v, replacement)
			if nt.Argument != t.Argument {
				changed = true
			}
		}
		newTerms[i] = nt
	}
	if !changed {
		return e
	}
	return &Recurrence{
		Terms: newTerms, Variable: e.Variable, NonRecursiveWork: newWork,
		BaseCase: e.BaseCase, HasBaseCase: e.HasBaseCase, solution: e.solution,
	}
}

func (e *Recurrence) Evaluate(binding map[variable.Variable]float64) (float64, bool) {
	if e.solution != nil {
		return e.solution.Evaluate(binding)
	}
	return 0, false
}

func (e *Recurrence) RenderBigO() string {
	if e.solution != nil {
		return e.solution.RenderBigO()
	}
	var parts []string
	for _, t := range e.Terms {
		switch {
		case t.IsDivideAndConquer():
			parts = append(parts, fmt.Sprintf("%s*T(%s*%s)", trimFloat(t.Coefficient), trimFloat(t.ScaleFactor), e.Variable.Name))
		case t.IsSubtractive():
			parts = append(parts, fmt.Sprintf("%s*T(%s-%d)", trimFloat(t.Coefficient), e.Variable.Name, t.Shift))
		default:
			parts = append(parts, fmt.Sprintf("%s*T(...)", trimFloat(t.Coefficient)))
		}
	}
	work := "?"
	if e.NonRecursiveWork != nil {
		work = stripO(e.NonRecursiveWork.RenderBigO())
	}
	return fmt.Sprintf("T(%s) = %s + %s", e.Variable.Name, strings.Join(parts, " + "), work)
}

func (e *Recurrence) Accept(v Visitor) Expr { return v.VisitRecurrence(e) }

// SymbolicIntegral is the symbolic ∫[lower,upper] integrand d(intVar)
// placeholder the Akra-Bazzi engine builds before the adaptive Simpson
// kernel (or a closed form) resolves it.
type SymbolicIntegral struct {
	Integrand       Expr
	IntVar          variable.Variable
	Lower           Expr
	Upper           Expr
	AsymptoticBound Expr // optional: a closed form once resolved
}

func (e *SymbolicIntegral) exprNode() {}

func (e *SymbolicIntegral) FreeVariables() variable.Set {
	fv := freeVarsOfChildren(e.Integrand, e.Lower, e.Upper)
	delete(fv, e.IntVar)
	if e.AsymptoticBound != nil {
		fv = fv.Union(e.AsymptoticBound.FreeVariables())
	}
	return fv
}

func (e *SymbolicIntegral) Substitute(v variable.Variable, replacement Expr) Expr {
	if e.IntVar.Equal(v) {
		return e // bound variable; substitution does not cross the binder
	}
	newIntegrand := e.Integrand.Substitute(v, replacement)
	newLower := e.Lower.Substitute(v, replacement)
	newUpper := e.Upper.Substitute(v, replacement)
	var newBound Expr
	if e.AsymptoticBound != nil {
		newBound = e.AsymptoticBound.Substitute(v, replacement)
	}
	if newIntegrand == e.Integrand && newLower == e.Lower && newUpper == e.Upper && newBound == e.AsymptoticBound {
		return e
	}
	return &SymbolicIntegral{Integrand: newIntegrand, IntVar: e.IntVar, Lower: newLower, Upper: newUpper, AsymptoticBound: newBound}
}

func (e *SymbolicIntegral) Evaluate(binding map[variable.Variable]float64) (float64, bool) {
	if e.AsymptoticBound != nil {
		return e.AsymptoticBound.Evaluate(binding)
	}
	return 0, false
}

func (e *SymbolicIntegral) RenderBigO() string {
	if e.AsymptoticBound != nil {
		return e.AsymptoticBound.RenderBigO()
	}
	return fmt.Sprintf("O(integral[%s..%s] %s d%s)",
		stripO(e.Lower.RenderBigO()), stripO(e.Upper.RenderBigO()),
		stripO(e.Integrand.RenderBigO()), e.IntVar.Name)
}

func (e *SymbolicIntegral) Accept(v Visitor) Expr { return v.VisitSymbolicIntegral(e) }

// SpecialFunctionKind is the closed set of special functions the numeric
// kernels understand how to approximate (spec.md §4.4's "special-function
// evaluators").
type SpecialFunctionKind int

const (
	Polylogarithm SpecialFunctionKind = iota
	IncompleteGamma
	IncompleteBeta
	GaussHypergeometric
)

func (k SpecialFunctionKind) String() string {
	switch k {
	case Polylogarithm:
		return "Li"
	case IncompleteGamma:
		return "Gamma"
	case IncompleteBeta:
		return "Beta"
	case GaussHypergeometric:
		return "2F1"
	default:
		return "?"
	}
}

// SpecialFunction is a first-class placeholder for a special-function
// evaluation, kept as an expression variant (not resolved eagerly) so the
// solver may later refine it numerically without losing provenance
// (spec.md §9's "keep as first-class expression variants").
type SpecialFunction struct {
	Kind   SpecialFunctionKind
	Order  float64 // e.g. polylog order s
	Params []Expr  // arguments, kind-dependent arity
	// Approx is attached once a numeric kernel evaluates the function at
	// a concrete point; nil while purely symbolic.
	Approx *float64
}

func (e *SpecialFunction) exprNode() {}
func (e *SpecialFunction) FreeVariables() variable.Set { return freeVarsOfChildren(e.Params...) }

func (e *SpecialFunction) Substitute(v variable.Variable, replacement Expr) Expr {
	changed := false
	newParams := make([]Expr, len(e.Params))
	for i, p := range e.Params {
		newParams[i] = p.Substitute(v, replacement)
		if newParams[i] != p {
			changed = true
		}
	}
	if !changed {
		return e
	}
	return &SpecialFunction{Kind: e.Kind, Order: e.Order, Params: newParams, Approx: e.Approx}
}

func (e *SpecialFunction) Evaluate(binding map[variable.Variable]float64) (float64, bool) {
	if e.Approx != nil {
		return *e.Approx, true
	}
	return 0, false
}

func (e *SpecialFunction) RenderBigO() string {
	parts := make([]string, len(e.Params))
	for i, p := range e.Params {
		parts[i] = stripO(p.RenderBigO())
	}
	return fmt.Sprintf("O(%s_%s(%s))", e.Kind, trimFloat(e.Order), strings.Join(parts, ", "))
}

func (e *SpecialFunction) Accept(v Visitor) Expr { return v.VisitSpecialFunction(e) }
