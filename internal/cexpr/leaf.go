package cexpr

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/complexity-analyzer/engine/internal/variable"
)

// Const is a numeric constant, O(1) regardless of its value.
type Const struct {
	Value float64
}

func NewConst(c float64) *Const { return &Const{Value: c} }

func (e *Const) exprNode() {}
func (e *Const) FreeVariables() variable.Set { return variable.Set{} }
func (e *Const) Substitute(variable.Variable, Expr) Expr { return e }
func (e *Const) Evaluate(map[variable.Variable]float64) (float64, bool) { return e.Value, true }
func (e *Const) RenderBigO() string { return "O(1)" }
func (e *Const) Accept(v Visitor) Expr { return v.VisitConst(e) }

// Var is a single variable, O(v).
type Var struct {
	V variable.Variable
}

func NewVar(v variable.Variable) *Var { return &Var{V: v} }

func (e *Var) exprNode() {}
func (e *Var) FreeVariables() variable.Set { return variable.NewSet(e.V) }

func (e *Var) Substitute(v variable.Variable, replacement Expr) Expr {
	if !e.V.Equal(v) {
		return e
	}
	return replacement
}

func (e *Var) Evaluate(binding map[variable.Variable]float64) (float64, bool) {
	val, ok := binding[e.V]
	return val, ok
}

func (e *Var) RenderBigO() string { return fmt.Sprintf("O(%s)", e.V.Name) }
func (e *Var) Accept(v Visitor) Expr { return v.VisitVar(e) }

// Linear is a*v, the coefficient-and-variable shorthand for Poly{1: a}.
type Linear struct {
	A float64
	V variable.Variable
}

func NewLinear(a float64, v variable.Variable) *Linear { return &Linear{A: a, V: v} }

func (e *Linear) exprNode() {}
func (e *Linear) FreeVariables() variable.Set { return variable.NewSet(e.V) }

func (e *Linear) Substitute(v variable.Variable, replacement Expr) Expr {
	if r, ok := replacement.(*Var); !e.V.Equal(v) || (ok && r.V.Equal(v)) {
		return e
	}
	return &Binary{Left: NewConst(e.A), Op: Multiply, Right: replacement}
}

func (e *Linear) Evaluate(binding map[variable.Variable]float64) (float64, bool) {
	val, ok := binding[e.V]
	if !ok {
		return 0, false
	}
	return e.A * val, true
}

func (e *Linear) RenderBigO() string {
	if e.A == 1 {
		return fmt.Sprintf("O(%s)", e.V.Name)
	}
	return fmt.Sprintf("O(%s*%s)", trimFloat(e.A), e.V.Name)
}

func (e *Linear) Accept(v Visitor) Expr { return v.VisitLinear(e) }

// Poly is a general polynomial in one variable: coeffs maps degree to
// coefficient. Degree is the max key with a non-zero coefficient (0 if
// there is none); a missing degree means a zero coefficient, never nil.
type Poly struct {
	Coeffs map[int]float64
	V      variable.Variable
}

func NewPoly(coeffs map[int]float64, v variable.Variable) *Poly {
	if coeffs == nil {
		coeffs = map[int]float64{}
	}
	return &Poly{Coeffs: coeffs, V: v}
}

// Degree returns the highest degree with a non-zero coefficient, 0 if none.
func (e *Poly) Degree() int {
	max := 0
	for d, c := range e.Coeffs {
		if c != 0 && d > max {
			max = d
		}
	}
	return max
}

// LeadingCoef returns the coefficient at Degree().
func (e *Poly) LeadingCoef() float64 {
	return e.Coeffs[e.Degree()]
}

func (e *Poly) exprNode() {}
func (e *Poly) FreeVariables() variable.Set { return variable.NewSet(e.V) }

func (e *Poly) Substitute(v variable.Variable, replacement Expr) Expr {
	if r, ok := replacement.(*Var); !e.V.Equal(v) || (ok && r.V.Equal(v)) {
		return e
	}
	// Rebuild as a sum of coef * replacement^degree terms; this loses the
	// compact Poly shape but preserves semantics exactly, which is the
	// contract (a fresh expression, original unchanged).
	var terms []Expr
	degrees := sortedDegrees(e.Coeffs)
	for _, d := range degrees {
		c := e.Coeffs[d]
		if c == 0 {
			continue
		}
		var term Expr
		switch d {
		case 0:
			term = NewConst(c)
		case 1:
			term = &Binary{Left: NewConst(c), Op: Multiply, Right: replacement}
		default:
			term = &Binary{Left: NewConst(c), Op: Multiply, Right: &Power{Base: replacement, Exponent: float64(d)}}
		}
		terms = append(terms, term)
	}
	if len(terms) == 0 {
		return NewConst(0)
	}
	out := terms[0]
	for _, t := range terms[1:] {
		out = &Binary{Left: out, Op: Plus, Right: t}
	}
	return out
}

func (e *Poly) Evaluate(binding map[variable.Variable]float64) (float64, bool) {
	val, ok := binding[e.V]
	if !ok {
		return 0, false
	}
	sum := 0.0
	for d, c := range e.Coeffs {
		sum += c * math.Pow(val, float64(d))
	}
	return sum, true
}

func (e *Poly) RenderBigO() string {
	d := e.Degree()
	if d == 0 {
		return "O(1)"
	}
	if d == 1 {
		return fmt.Sprintf("O(%s)", e.V.Name)
	}
	return fmt.Sprintf("O(%s^%d)", e.V.Name, d)
}

func (e *Poly) Accept(v Visitor) Expr { return v.VisitPoly(e) }

func sortedDegrees(coeffs map[int]float64) []int {
	ds := make([]int, 0, len(coeffs))
	for d := range coeffs {
		ds = append(ds, d)
	}
	sort.Ints(ds)
	return ds
}

func trimFloat(f float64) string {
	s := strings.TrimRight(fmt.Sprintf("%.6f", f), "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		return "0"
	}
	return s
}
