package transform

import "github.com/complexity-analyzer/engine/internal/cexpr"

// DropConstantFactors recursively normalizes every multiplicative leading
// coefficient in e to 1 (spec.md §4.2). It operates structurally: a
// Linear(a,v) becomes Var(v), a Poly's coefficients are scaled so its
// leading coefficient is 1, an Exp/Factorial/PolyLog/Log's coefficient
// field becomes 1, and a Binary Multiply(Const(c), x) collapses to x.
func DropConstantFactors(e cexpr.Expr) cexpr.Expr {
	switch n := e.(type) {
	case *cexpr.Const:
		if n.Value == 0 {
			return n
		}
		return cexpr.NewConst(1)

	case *cexpr.Var:
		return n

	case *cexpr.Linear:
		return cexpr.NewVar(n.V)

	case *cexpr.Poly:
		lead := n.LeadingCoef()
		if lead == 0 {
			return n
		}
		scaled := make(map[int]float64, len(n.Coeffs))
		for d, c := range n.Coeffs {
			scaled[d] = c / lead
		}
		return cexpr.NewPoly(scaled, n.V)

	case *cexpr.Log:
		return cexpr.NewLog(1, n.V, n.Base)

	case *cexpr.Exp:
		return cexpr.NewExp(n.Base, n.V, 1)

	case *cexpr.Factorial:
		return cexpr.NewFactorial(n.V, 1)

	case *cexpr.PolyLog:
		return cexpr.NewPolyLog(n.PolyDeg, n.LogExp, n.V, 1, n.Base)

	case *cexpr.Power:
		return &cexpr.Power{Base: DropConstantFactors(n.Base), Exponent: n.Exponent}

	case *cexpr.LogOf:
		return &cexpr.LogOf{Expr: DropConstantFactors(n.Expr), Base: n.Base, A: 1}

	case *cexpr.ExpOf:
		return &cexpr.ExpOf{Base: n.Base, Expr: DropConstantFactors(n.Expr), A: 1}

	case *cexpr.FactOf:
		return &cexpr.FactOf{Expr: DropConstantFactors(n.Expr), A: 1}

	case *cexpr.Binary:
		left, right := n.Left, n.Right
		if n.Op == cexpr.Multiply {
			if isConstVal(left) {
				return DropConstantFactors(right)
			}
			if isConstVal(right) {
				return DropConstantFactors(left)
			}
		}
		return &cexpr.Binary{Left: DropConstantFactors(left), Op: n.Op, Right: DropConstantFactors(right)}

	case *cexpr.Conditional:
		return &cexpr.Conditional{Description: n.Description, TrueBranch: DropConstantFactors(n.TrueBranch), FalseBranch: DropConstantFactors(n.FalseBranch)}

	default:
		return e
	}
}

func isConstVal(e cexpr.Expr) bool {
	_, ok := e.(*cexpr.Const)
	return ok
}

// DropLowerOrderTerms recursively keeps only the asymptotically dominant
// operand of every Plus node (spec.md §4.2), using the classifier's
// ordering to decide.
func DropLowerOrderTerms(e cexpr.Expr) cexpr.Expr {
	switch n := e.(type) {
	case *cexpr.Binary:
		left := DropLowerOrderTerms(n.Left)
		right := DropLowerOrderTerms(n.Right)
		if n.Op == cexpr.Plus {
			switch Compare(left, right) {
			case Greater:
				return left
			case Less:
				return right
			default:
				return left
			}
		}
		return &cexpr.Binary{Left: left, Op: n.Op, Right: right}

	case *cexpr.Conditional:
		return &cexpr.Conditional{
			Description: n.Description,
			TrueBranch:  DropLowerOrderTerms(n.TrueBranch),
			FalseBranch: DropLowerOrderTerms(n.FalseBranch),
		}

	case *cexpr.Power:
		return &cexpr.Power{Base: DropLowerOrderTerms(n.Base), Exponent: n.Exponent}

	case *cexpr.LogOf:
		return &cexpr.LogOf{Expr: DropLowerOrderTerms(n.Expr), Base: n.Base, A: n.A}

	default:
		return e
	}
}

// NormalizeForm = Simplify, then DropConstantFactors, then
// DropLowerOrderTerms: the canonical Big-O form used for equality
// comparisons (spec.md §4.2).
func NormalizeForm(e cexpr.Expr) cexpr.Expr {
	s := Simplify(e)
	c := DropConstantFactors(s)
	return Simplify(DropLowerOrderTerms(c))
}
