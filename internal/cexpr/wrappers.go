package cexpr

import (
	"fmt"
	"math"

	"github.com/complexity-analyzer/engine/internal/variable"
)

// Power is the symbolic wrapper expr^exponent, used when expr is itself a
// compound expression rather than a bare variable (Poly/PolyLog cover the
// bare-variable case more compactly).
type Power struct {
	Base     Expr
	Exponent float64
}

func (e *Power) exprNode() {}
func (e *Power) FreeVariables() variable.Set { return freeVarsOfChildren(e.Base) }

func (e *Power) Substitute(v variable.Variable, replacement Expr) Expr {
	newBase := e.Base.Substitute(v, replacement)
	if newBase == e.Base {
		return e
	}
	return &Power{Base: newBase, Exponent: e.Exponent}
}

func (e *Power) Evaluate(binding map[variable.Variable]float64) (float64, bool) {
	base, ok := e.Base.Evaluate(binding)
	if !ok {
		return 0, false
	}
	if base < 0 && e.Exponent != math.Trunc(e.Exponent) {
		return 0, false
	}
	return math.Pow(base, e.Exponent), true
}

func (e *Power) RenderBigO() string {
	inner := stripO(e.Base.RenderBigO())
	return fmt.Sprintf("O((%s)^%s)", inner, trimFloat(e.Exponent))
}

func (e *Power) Accept(v Visitor) Expr { return v.VisitPower(e) }

// LogOf is log_base(expr).
type LogOf struct {
	Expr Expr
	Base float64
	A    float64
}

func (e *LogOf) exprNode() {}
func (e *LogOf) FreeVariables() variable.Set { return freeVarsOfChildren(e.Expr) }

func (e *LogOf) Substitute(v variable.Variable, replacement Expr) Expr {
	newInner := e.Expr.Substitute(v, replacement)
	if newInner == e.Expr {
		return e
	}
	return &LogOf{Expr: newInner, Base: e.Base, A: e.A}
}

func (e *LogOf) Evaluate(binding map[variable.Variable]float64) (float64, bool) {
	val, ok := e.Expr.Evaluate(binding)
	if !ok || val <= 0 {
		return 0, false
	}
	a := e.A
	if a == 0 {
		a = 1
	}
	base := e.Base
	if base <= 0 || base == 1 {
		base = 2
	}
	return a * math.Log(val) / math.Log(base), true
}

func (e *LogOf) RenderBigO() string {
	return fmt.Sprintf("O(log(%s))", stripO(e.Expr.RenderBigO()))
}

func (e *LogOf) Accept(v Visitor) Expr { return v.VisitLogOf(e) }

// ExpOf is base^expr.
type ExpOf struct {
	Base float64
	Expr Expr
	A    float64
}

func (e *ExpOf) exprNode() {}
func (e *ExpOf) FreeVariables() variable.Set { return freeVarsOfChildren(e.Expr) }

func (e *ExpOf) Substitute(v variable.Variable, replacement Expr) Expr {
	newInner := e.Expr.Substitute(v, replacement)
	if newInner == e.Expr {
		return e
	}
	return &ExpOf{Base: e.Base, Expr: newInner, A: e.A}
}

func (e *ExpOf) Evaluate(binding map[variable.Variable]float64) (float64, bool) {
	val, ok := e.Expr.Evaluate(binding)
	if !ok {
		return 0, false
	}
	a := e.A
	if a == 0 {
		a = 1
	}
	return a * math.Pow(e.Base, val), true
}

func (e *ExpOf) RenderBigO() string {
	return fmt.Sprintf("O(%s^(%s))", trimFloat(e.Base), stripO(e.Expr.RenderBigO()))
}

func (e *ExpOf) Accept(v Visitor) Expr { return v.VisitExpOf(e) }

// FactOf is expr!.
type FactOf struct {
	Expr Expr
	A    float64
}

func (e *FactOf) exprNode() {}
func (e *FactOf) FreeVariables() variable.Set { return freeVarsOfChildren(e.Expr) }

func (e *FactOf) Substitute(v variable.Variable, replacement Expr) Expr {
	newInner := e.Expr.Substitute(v, replacement)
	if newInner == e.Expr {
		return e
	}
	return &FactOf{Expr: newInner, A: e.A}
}

func (e *FactOf) Evaluate(binding map[variable.Variable]float64) (float64, bool) {
	val, ok := e.Expr.Evaluate(binding)
	if !ok || val < 0 || val != math.Trunc(val) {
		return 0, false
	}
	a := e.A
	if a == 0 {
		a = 1
	}
	return a * factorial(val), true
}

func (e *FactOf) RenderBigO() string {
	return fmt.Sprintf("O((%s)!)", stripO(e.Expr.RenderBigO()))
}

func (e *FactOf) Accept(v Visitor) Expr { return v.VisitFactOf(e) }

// stripO strips a leading "O(" / trailing ")" for composing nested
// RenderBigO strings without doubling the notation.
func stripO(s string) string {
	if len(s) > 2 && s[:2] == "O(" && s[len(s)-1] == ')' {
		return s[2 : len(s)-1]
	}
	return s
}
