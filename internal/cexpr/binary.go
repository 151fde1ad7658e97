package cexpr

import (
	"fmt"

	"github.com/complexity-analyzer/engine/internal/variable"
)

// Binary combines two expressions with Plus, Multiply, Max, or Min. It is
// the workhorse node: Sequential, Nested, Branching (spec.md §4.1) all
// compile down to Binary with different Op values, plus their identity
// simplifications (which live in the transform package, not here —
// composition is purely syntactic per §4.1's contract).
type Binary struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
}

func NewBinary(left Expr, op BinaryOp, right Expr) *Binary {
	return &Binary{Left: left, Op: op, Right: right}
}

func (e *Binary) exprNode() {}
func (e *Binary) FreeVariables() variable.Set { return freeVarsOfChildren(e.Left, e.Right) }

func (e *Binary) Substitute(v variable.Variable, replacement Expr) Expr {
	newLeft := e.Left.Substitute(v, replacement)
	newRight := e.Right.Substitute(v, replacement)
	if newLeft == e.Left && newRight == e.Right {
		return e
	}
	return &Binary{Left: newLeft, Op: e.Op, Right: newRight}
}

func (e *Binary) Evaluate(binding map[variable.Variable]float64) (float64, bool) {
	l, okL := e.Left.Evaluate(binding)
	r, okR := e.Right.Evaluate(binding)
	if !okL || !okR {
		return 0, false
	}
	switch e.Op {
	case Plus:
		return l + r, true
	case Multiply:
		return l * r, true
	case Max:
		if l > r {
			return l, true
		}
		return r, true
	case Min:
		if l < r {
			return l, true
		}
		return r, true
	default:
		return 0, false
	}
}

func (e *Binary) RenderBigO() string {
	l := stripO(e.Left.RenderBigO())
	r := stripO(e.Right.RenderBigO())
	switch e.Op {
	case Plus:
		return fmt.Sprintf("O(%s + %s)", l, r)
	case Multiply:
		return fmt.Sprintf("O(%s*%s)", l, r)
	case Max:
		return fmt.Sprintf("O(max(%s, %s))", l, r)
	case Min:
		return fmt.Sprintf("O(min(%s, %s))", l, r)
	default:
		return "O(?)"
	}
}

func (e *Binary) Accept(v Visitor) Expr { return v.VisitBinary(e) }

// Conditional evaluates conservatively: its Evaluate and asymptotic
// behavior are the max of both branches, since the core cannot know which
// branch a caller's runtime condition takes.
type Conditional struct {
	Description  string
	TrueBranch   Expr
	FalseBranch  Expr
}

func (e *Conditional) exprNode() {}
func (e *Conditional) FreeVariables() variable.Set {
	return freeVarsOfChildren(e.TrueBranch, e.FalseBranch)
}

func (e *Conditional) Substitute(v variable.Variable, replacement Expr) Expr {
	newTrue := e.TrueBranch.Substitute(v, replacement)
	newFalse := e.FalseBranch.Substitute(v, replacement)
	if newTrue == e.TrueBranch && newFalse == e.FalseBranch {
		return e
	}
	return &Conditional{Description: e.Description, TrueBranch: newTrue, FalseBranch: newFalse}
}

func (e *Conditional) Evaluate(binding map[variable.Variable]float64) (float64, bool) {
	t, okT := e.TrueBranch.Evaluate(binding)
	f, okF := e.FalseBranch.Evaluate(binding)
	switch {
	case okT && okF:
		if t > f {
			return t, true
		}
		return f, true
	case okT:
		return t, true
	case okF:
		return f, true
	default:
		return 0, false
	}
}

func (e *Conditional) RenderBigO() string {
	return fmt.Sprintf("O(max(%s, %s))", stripO(e.TrueBranch.RenderBigO()), stripO(e.FalseBranch.RenderBigO()))
}

func (e *Conditional) Accept(v Visitor) Expr { return v.VisitConditional(e) }
