// Package transform implements the fixed-point simplifier, constant-factor
// and lower-order-term droppers, the asymptotic comparator, and the
// classifier (spec.md §4.2).
//
// Grounded on internal/typesystem/unify.go's iterate-to-fixed-point,
// cycle-guarded rewriting discipline, and internal/typesystem/replace.go's
// switch-on-concrete-type rebuild pattern (ReplaceTCon) for recursing into
// every expression variant without mutating the original.
package transform

import (
	"math"
	"reflect"

	"github.com/complexity-analyzer/engine/internal/cexpr"
	"github.com/complexity-analyzer/engine/internal/config"
)

// Simplify applies the rewrite-rule table of spec.md §4.2 iteratively
// until a fixed point, bounded by config.MaxSimplifyPasses so a
// pathological expression can never loop forever.
func Simplify(e cexpr.Expr) cexpr.Expr {
	cur := e
	for i := 0; i < config.MaxSimplifyPasses; i++ {
		next := simplifyOnce(cur)
		if exprEqual(next, cur) {
			return next
		}
		cur = next
	}
	return cur
}

func exprEqual(a, b cexpr.Expr) bool {
	return reflect.DeepEqual(a, b)
}

// simplifyOnce recurses into every child first (post-order), then applies
// the local rewrite rules that apply at this node.
func simplifyOnce(e cexpr.Expr) cexpr.Expr {
	switch n := e.(type) {
	case *cexpr.Const, *cexpr.Var, *cexpr.Linear, *cexpr.Poly, *cexpr.Log, *cexpr.Exp, *cexpr.Factorial, *cexpr.PolyLog:
		return n.(cexpr.Expr) // leaves: nothing to recurse into or rewrite

	case *cexpr.Power:
		base := simplifyOnce(n.Base)
		return simplifyPower(base, n.Exponent)

	case *cexpr.LogOf:
		inner := simplifyOnce(n.Expr)
		if inner == n.Expr {
			return n
		}
		return &cexpr.LogOf{Expr: inner, Base: n.Base, A: n.A}

	case *cexpr.ExpOf:
		inner := simplifyOnce(n.Expr)
		if inner == n.Expr {
			return n
		}
		return &cexpr.ExpOf{Base: n.Base, Expr: inner, A: n.A}

	case *cexpr.FactOf:
		inner := simplifyOnce(n.Expr)
		if inner == n.Expr {
			return n
		}
		return &cexpr.FactOf{Expr: inner, A: n.A}

	case *cexpr.Binary:
		left := simplifyOnce(n.Left)
		right := simplifyOnce(n.Right)
		return simplifyBinary(left, n.Op, right)

	case *cexpr.Conditional:
		t := simplifyOnce(n.TrueBranch)
		f := simplifyOnce(n.FalseBranch)
		if exprEqual(t, f) {
			return t // identity: both branches cost the same
		}
		return &cexpr.Conditional{Description: n.Description, TrueBranch: t, FalseBranch: f}

	case *cexpr.Parallel:
		return &cexpr.Parallel{
			Work: simplifyOnce(n.Work), Span: simplifyOnce(n.Span),
			Processors: simplifyOnce(n.Processors), Pattern: n.Pattern,
			TaskBased: n.TaskBased, SyncOverhead: simplifyChildOrNil(n.SyncOverhead),
			Description: n.Description,
		}

	case *cexpr.Probabilistic:
		return &cexpr.Probabilistic{
			Expected: simplifyOnce(n.Expected), Worst: simplifyOnce(n.Worst),
			Best: simplifyChildOrNil(n.Best), Source: n.Source,
			Distribution: n.Distribution, Variance: simplifyChildOrNil(n.Variance),
			HighProb: simplifyChildOrNil(n.HighProb), Assumptions: n.Assumptions,
			Description: n.Description,
		}

	case *cexpr.Recurrence:
		var work cexpr.Expr
		if n.NonRecursiveWork != nil {
			work = simplifyOnce(n.NonRecursiveWork)
		}
		return &cexpr.Recurrence{
			Terms: n.Terms, Variable: n.Variable, NonRecursiveWork: work,
			BaseCase: n.BaseCase, HasBaseCase: n.HasBaseCase,
		}

	case *cexpr.SymbolicIntegral:
		return &cexpr.SymbolicIntegral{
			Integrand: simplifyOnce(n.Integrand), IntVar: n.IntVar,
			Lower: simplifyOnce(n.Lower), Upper: simplifyOnce(n.Upper),
			AsymptoticBound: simplifyChildOrNil(n.AsymptoticBound),
		}

	case *cexpr.SpecialFunction:
		params := make([]cexpr.Expr, len(n.Params))
		for i, p := range n.Params {
			params[i] = simplifyOnce(p)
		}
		return &cexpr.SpecialFunction{Kind: n.Kind, Order: n.Order, Params: params, Approx: n.Approx}

	default:
		return e
	}
}

func simplifyChildOrNil(e cexpr.Expr) cexpr.Expr {
	if e == nil {
		return nil
	}
	return simplifyOnce(e)
}

func simplifyPower(base cexpr.Expr, exponent float64) cexpr.Expr {
	if exponent == 0 {
		return cexpr.NewConst(1) // x^0 = 1
	}
	if exponent == 1 {
		return base // x^1 = x
	}
	if c, ok := base.(*cexpr.Const); ok {
		return cexpr.NewConst(math.Pow(c.Value, exponent)) // c^k -> numeric
	}
	return &cexpr.Power{Base: base, Exponent: exponent}
}
