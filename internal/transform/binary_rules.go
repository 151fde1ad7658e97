package transform

import (
	"github.com/complexity-analyzer/engine/internal/cexpr"
	"github.com/complexity-analyzer/engine/internal/variable"
)

// simplifyBinary applies the Plus/Multiply/Max/Min rewrite rules of
// spec.md §4.2 to an already-simplified left/right pair.
func simplifyBinary(left cexpr.Expr, op cexpr.BinaryOp, right cexpr.Expr) cexpr.Expr {
	switch op {
	case cexpr.Plus:
		return simplifyPlus(left, right)
	case cexpr.Multiply:
		return simplifyMultiply(left, right)
	case cexpr.Max:
		return simplifyMax(left, right)
	case cexpr.Min:
		return simplifyMin(left, right)
	default:
		return &cexpr.Binary{Left: left, Op: op, Right: right}
	}
}

func simplifyPlus(left, right cexpr.Expr) cexpr.Expr {
	if isZero(left) {
		return right
	}
	if isZero(right) {
		return left
	}
	if lc, ok := asConst(left); ok {
		if rc, ok := asConst(right); ok {
			return cexpr.NewConst(lc + rc) // c1+c2 -> constant
		}
	}
	if coefL, vL, ok := asLinearTerm(left); ok {
		if coefR, vR, ok := asLinearTerm(right); ok && vL.Equal(vR) {
			return asLinearExpr(coefL+coefR, vL) // k*v + m*v -> (k+m)*v
		}
	}
	return &cexpr.Binary{Left: left, Op: cexpr.Plus, Right: right}
}

func simplifyMultiply(left, right cexpr.Expr) cexpr.Expr {
	if isZero(left) || isZero(right) {
		return cexpr.NewConst(0) // 0*x, x*0 -> 0
	}
	if isOne(left) {
		return right // 1*x -> x
	}
	if isOne(right) {
		return left // x*1 -> x
	}
	if lc, ok := asConst(left); ok {
		if coefR, vR, ok := asLinearTerm(right); ok {
			return asLinearExpr(lc*coefR, vR) // c*(k*v) -> (c*k)*v
		}
		if rc, ok := asConst(right); ok {
			return cexpr.NewConst(lc * rc)
		}
	}
	if rc, ok := asConst(right); ok {
		if coefL, vL, ok := asLinearTerm(left); ok {
			return asLinearExpr(rc*coefL, vL)
		}
	}
	if lv, ok := asVar(left); ok {
		if rv, ok := asVar(right); ok && lv.Equal(rv) {
			return &cexpr.Power{Base: cexpr.NewVar(lv), Exponent: 2} // v*v -> v^2
		}
		if rb, rexp, ok := asPower(right); ok {
			if rv, ok := asVar(rb); ok && rv.Equal(lv) {
				return &cexpr.Power{Base: cexpr.NewVar(lv), Exponent: rexp + 1} // v*v^k -> v^(k+1)
			}
		}
	}
	if rv, ok := asVar(right); ok {
		if lb, lexp, ok := asPower(left); ok {
			if lv, ok := asVar(lb); ok && lv.Equal(rv) {
				return &cexpr.Power{Base: cexpr.NewVar(rv), Exponent: lexp + 1}
			}
		}
	}
	return &cexpr.Binary{Left: left, Op: cexpr.Multiply, Right: right}
}

func simplifyMax(left, right cexpr.Expr) cexpr.Expr {
	if exprEqual(left, right) {
		return left // max(x,x) -> x
	}
	if isZero(left) {
		return right // max(0,x) -> x
	}
	if isZero(right) {
		return left
	}
	return &cexpr.Binary{Left: left, Op: cexpr.Max, Right: right}
}

func simplifyMin(left, right cexpr.Expr) cexpr.Expr {
	if exprEqual(left, right) {
		return left // min(x,x) -> x
	}
	return &cexpr.Binary{Left: left, Op: cexpr.Min, Right: right}
}

// --- small structural matchers used only by the rewrite rules above ---

func asConst(e cexpr.Expr) (float64, bool) {
	c, ok := e.(*cexpr.Const)
	if !ok {
		return 0, false
	}
	return c.Value, true
}

func isZero(e cexpr.Expr) bool {
	c, ok := asConst(e)
	return ok && c == 0
}

func isOne(e cexpr.Expr) bool {
	c, ok := asConst(e)
	return ok && c == 1
}

func asVar(e cexpr.Expr) (variable.Variable, bool) {
	v, ok := e.(*cexpr.Var)
	if !ok {
		return variable.Variable{}, false
	}
	return v.V, true
}

func asPower(e cexpr.Expr) (cexpr.Expr, float64, bool) {
	p, ok := e.(*cexpr.Power)
	if !ok {
		return nil, 0, false
	}
	return p.Base, p.Exponent, true
}

// asLinearTerm recognizes the shapes a coefficient*variable term can take
// after one simplification pass: a bare Var (coefficient 1), a Linear, or
// a Binary Multiply of a Const and a Var in either order.
func asLinearTerm(e cexpr.Expr) (float64, variable.Variable, bool) {
	switch n := e.(type) {
	case *cexpr.Var:
		return 1, n.V, true
	case *cexpr.Linear:
		return n.A, n.V, true
	case *cexpr.Binary:
		if n.Op != cexpr.Multiply {
			return 0, variable.Variable{}, false
		}
		if c, ok := asConst(n.Left); ok {
			if v, ok := asVar(n.Right); ok {
				return c, v, true
			}
		}
		if c, ok := asConst(n.Right); ok {
			if v, ok := asVar(n.Left); ok {
				return c, v, true
			}
		}
	}
	return 0, variable.Variable{}, false
}

// asLinearExpr builds the canonical node for coefficient*v, collapsing to
// Const(0) or Var(v) at the identity coefficients.
func asLinearExpr(coef float64, v variable.Variable) cexpr.Expr {
	if coef == 0 {
		return cexpr.NewConst(0)
	}
	if coef == 1 {
		return cexpr.NewVar(v)
	}
	return cexpr.NewLinear(coef, v)
}
