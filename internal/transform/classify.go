package transform

import (
	"math"

	"github.com/complexity-analyzer/engine/internal/cexpr"
	"github.com/complexity-analyzer/engine/internal/variable"
)

// Form is the classifier's closed output vocabulary (spec.md §4.2).
type Form int

const (
	Constant Form = iota
	Logarithmic
	Polynomial
	PolyLog
	Exponential
	Factorial
	Unknown
)

func (f Form) String() string {
	switch f {
	case Constant:
		return "Constant"
	case Logarithmic:
		return "Logarithmic"
	case Polynomial:
		return "Polynomial"
	case PolyLog:
		return "PolyLog"
	case Exponential:
		return "Exponential"
	case Factorial:
		return "Factorial"
	default:
		return "Unknown"
	}
}

// Classification is the dominant asymptotic shape extracted from an
// expression: {form, primaryParameter, logExponent, leadingCoef,
// confidence} per spec.md §4.2, plus PolyDegree and Base — the numeric
// parameters a Form alone cannot carry (a Polynomial's degree, an
// Exponential's base) but that every solver downstream needs.
type Classification struct {
	Form             Form
	PrimaryParameter variable.Variable
	HasParameter     bool
	PolyDegree       float64
	LogExponent      float64
	LeadingCoef      float64
	Base             float64 // meaningful only when Form == Exponential
	Confidence       float64
}

// order returns a tuple usable for total asymptotic ordering: Constant <
// Log < Linear < PolyLog < Polynomial(degree) < Exponential(base) <
// Factorial < Unknown (spec.md §4.2; Unknown is "conservatively placed
// high"). Within the polynomial/log family the (PolyDegree, LogExponent)
// pair is compared lexicographically, which reproduces the spec's chain
// exactly: Linear is (1,0), PolyLog n*log(n) is (1,1), Polynomial n^2 is
// (2,0) — and (1,0) < (1,1) < (2,0).
func (c Classification) order() (bucket int, a, b float64) {
	switch c.Form {
	case Constant:
		return 0, 0, 0
	case Logarithmic, Polynomial, PolyLog:
		return 1, c.PolyDegree, c.LogExponent
	case Exponential:
		return 2, c.Base, 0
	case Factorial:
		return 3, 0, 0
	default: // Unknown
		return 4, 0, 0
	}
}

// Classify extracts the dominant classification of e. The variable
// argument is not consulted: PrimaryParameter is the variable carried by
// the dominant term, and the numeric comparison itself is
// variable-agnostic.
func Classify(e cexpr.Expr, v variable.Variable) Classification {
	return classify(e)
}

func classify(e cexpr.Expr) Classification {
	switch n := e.(type) {
	case *cexpr.Const:
		return Classification{Form: Constant, LeadingCoef: n.Value, Confidence: 1}

	case *cexpr.Var:
		return Classification{Form: Polynomial, PrimaryParameter: n.V, HasParameter: true, PolyDegree: 1, LeadingCoef: 1, Confidence: 1}

	case *cexpr.Linear:
		return Classification{Form: Polynomial, PrimaryParameter: n.V, HasParameter: true, PolyDegree: 1, LeadingCoef: n.A, Confidence: 1}

	case *cexpr.Poly:
		d := n.Degree()
		if d == 0 {
			return Classification{Form: Constant, LeadingCoef: n.Coeffs[0], Confidence: 1}
		}
		return Classification{Form: Polynomial, PrimaryParameter: n.V, HasParameter: true, PolyDegree: float64(d), LeadingCoef: n.LeadingCoef(), Confidence: 1}

	case *cexpr.Log:
		return Classification{Form: Logarithmic, PrimaryParameter: n.V, HasParameter: true, LogExponent: 1, LeadingCoef: n.A, Confidence: 1}

	case *cexpr.Exp:
		return Classification{Form: Exponential, PrimaryParameter: n.V, HasParameter: true, Base: n.Base, LeadingCoef: n.A, Confidence: 1}

	case *cexpr.Factorial:
		return Classification{Form: Factorial, PrimaryParameter: n.V, HasParameter: true, LeadingCoef: n.A, Confidence: 1}

	case *cexpr.PolyLog:
		form := Polynomial
		if n.LogExp != 0 {
			form = PolyLog
			if n.PolyDeg == 0 {
				form = Logarithmic
			}
		}
		return Classification{Form: form, PrimaryParameter: n.V, HasParameter: true, PolyDegree: n.PolyDeg, LogExponent: n.LogExp, LeadingCoef: n.Coef, Confidence: 1}

	case *cexpr.Power:
		return classifyPower(classify(n.Base), n.Exponent)

	case *cexpr.LogOf:
		return classifyLogOf(classify(n.Expr))

	case *cexpr.ExpOf:
		inner := classify(n.Expr)
		return Classification{Form: Exponential, PrimaryParameter: inner.PrimaryParameter, HasParameter: inner.HasParameter, Base: n.Base, LeadingCoef: 1, Confidence: 0.7}

	case *cexpr.FactOf:
		inner := classify(n.Expr)
		return Classification{Form: Factorial, PrimaryParameter: inner.PrimaryParameter, HasParameter: inner.HasParameter, LeadingCoef: 1, Confidence: 0.7}

	case *cexpr.Binary:
		return classifyBinary(n)

	case *cexpr.Conditional:
		return dominant(classify(n.TrueBranch), classify(n.FalseBranch))

	case *cexpr.Parallel:
		c := classify(n.Work)
		c.Confidence *= 0.85 // approximation: ignores Processors division
		return c

	case *cexpr.Probabilistic:
		c := classify(n.Worst)
		c.Confidence *= 0.9
		return c

	case *cexpr.Recurrence:
		if sol, ok := n.Solution(); ok {
			return classify(sol)
		}
		return Classification{Form: Unknown, Confidence: 0.2}

	case *cexpr.SymbolicIntegral:
		if n.AsymptoticBound != nil {
			return classify(n.AsymptoticBound)
		}
		return Classification{Form: Unknown, Confidence: 0.2}

	case *cexpr.SpecialFunction:
		return Classification{Form: Unknown, Confidence: 0.5}

	default:
		return Classification{Form: Unknown, Confidence: 0.1}
	}
}

func classifyPower(inner Classification, exponent float64) Classification {
	out := inner
	switch inner.Form {
	case Constant:
		out.Form = Constant
		out.LeadingCoef = math.Pow(inner.LeadingCoef, exponent)
	case Logarithmic, Polynomial, PolyLog:
		out.PolyDegree = inner.PolyDegree * exponent
		out.LogExponent = inner.LogExponent * exponent
		out.Form = formFromDegrees(out.PolyDegree, out.LogExponent)
		out.LeadingCoef = math.Pow(inner.LeadingCoef, exponent)
	case Exponential:
		out.Base = math.Pow(inner.Base, exponent)
	case Factorial:
		out.Confidence *= 0.5 // power of a factorial is rare; kept conservative
	}
	return out
}

func formFromDegrees(polyDeg, logExp float64) Form {
	switch {
	case polyDeg == 0 && logExp == 0:
		return Constant
	case polyDeg == 0:
		return Logarithmic
	case logExp == 0:
		return Polynomial
	default:
		return PolyLog
	}
}

// classifyLogOf approximates log(g(v)) from g's classification: a
// polynomial/polylog of degree d collapses to a pure log (its own degree
// vanishes under log); an exponential with base c becomes linear with
// slope ln(c); a factorial becomes Θ(v log v) by Stirling's approximation.
func classifyLogOf(inner Classification) Classification {
	switch inner.Form {
	case Constant:
		return Classification{Form: Constant, LeadingCoef: math.Log(math.Max(inner.LeadingCoef, 1)), Confidence: inner.Confidence}
	case Logarithmic, Polynomial, PolyLog:
		if inner.PolyDegree == 0 {
			// log(log^k v) is a lower-order log correction; treat as a
			// (very slowly growing) constant-confidence logarithmic term.
			return Classification{Form: Logarithmic, PrimaryParameter: inner.PrimaryParameter, HasParameter: inner.HasParameter, LogExponent: 1, LeadingCoef: 1, Confidence: inner.Confidence * 0.6}
		}
		return Classification{Form: Logarithmic, PrimaryParameter: inner.PrimaryParameter, HasParameter: inner.HasParameter, LogExponent: 1, LeadingCoef: inner.PolyDegree, Confidence: inner.Confidence * 0.8}
	case Exponential:
		return Classification{Form: Polynomial, PrimaryParameter: inner.PrimaryParameter, HasParameter: inner.HasParameter, PolyDegree: 1, LeadingCoef: math.Log(math.Max(inner.Base, 1.0001)), Confidence: inner.Confidence * 0.8}
	case Factorial:
		return Classification{Form: PolyLog, PrimaryParameter: inner.PrimaryParameter, HasParameter: inner.HasParameter, PolyDegree: 1, LogExponent: 1, LeadingCoef: 1, Confidence: inner.Confidence * 0.7}
	default:
		return Classification{Form: Unknown, Confidence: 0.2}
	}
}

func classifyBinary(n *cexpr.Binary) Classification {
	l, r := classify(n.Left), classify(n.Right)
	switch n.Op {
	case cexpr.Plus:
		return dominant(l, r)
	case cexpr.Multiply:
		return classifyProduct(l, r)
	case cexpr.Max:
		return dominant(l, r)
	case cexpr.Min:
		d := dominant(l, r)
		if d == l {
			return r
		}
		return l
	default:
		return Classification{Form: Unknown, Confidence: 0.1}
	}
}

// classifyProduct distributes multiplication over classifications:
// polynomial degrees add, log exponents add, and polynomial*log yields
// PolyLog (spec.md §4.2). An exponential or factorial factor dominates
// and absorbs the other side's confidence as a penalty, since the exact
// combined growth rate of (say) an exponential times a factorial isn't a
// clean closed form this classifier tries to name precisely.
func classifyProduct(l, r Classification) Classification {
	if l.Form == Factorial || r.Form == Factorial {
		f := l
		if l.Form != Factorial {
			f = r
		}
		f.Confidence *= 0.8
		return f
	}
	if l.Form == Exponential || r.Form == Exponential {
		exp, other := l, r
		if l.Form != Exponential {
			exp, other = r, l
		}
		out := exp
		out.Confidence *= 0.8
		if other.Form == Exponential {
			out.Base = exp.Base * other.Base
		}
		return out
	}
	param := l.PrimaryParameter
	hasParam := l.HasParameter
	if !hasParam {
		param, hasParam = r.PrimaryParameter, r.HasParameter
	}
	degree := l.PolyDegree + r.PolyDegree
	logExp := l.LogExponent + r.LogExponent
	return Classification{
		Form:             formFromDegrees(degree, logExp),
		PrimaryParameter: param,
		HasParameter:     hasParam,
		PolyDegree:       degree,
		LogExponent:      logExp,
		LeadingCoef:      l.LeadingCoef * r.LeadingCoef,
		Confidence:       math.Min(l.Confidence, r.Confidence),
	}
}

// dominant returns whichever of a, b is asymptotically larger per order();
// ties break by leading coefficient, per spec.md §4.2.
func dominant(a, b Classification) Classification {
	switch compareOrder(a, b) {
	case 1:
		return a
	case -1:
		return b
	default:
		if a.LeadingCoef >= b.LeadingCoef {
			return a
		}
		return b
	}
}

// compareOrder returns 1 if a > b, -1 if a < b, 0 if equal, asymptotically.
func compareOrder(a, b Classification) int {
	ba, a1, a2 := a.order()
	bb, b1, b2 := b.order()
	if ba != bb {
		if ba > bb {
			return 1
		}
		return -1
	}
	if a1 != b1 {
		if a1 > b1 {
			return 1
		}
		return -1
	}
	if a2 != b2 {
		if a2 > b2 {
			return 1
		}
		return -1
	}
	return 0
}
