package cexpr

import "github.com/complexity-analyzer/engine/internal/variable"

// This file implements the composition primitives of spec.md §4.1 — the
// translation contract the surface analyzer (an external collaborator, out
// of scope per §1) calls into when it walks control flow. Composition is
// purely syntactic: it builds the raw Binary/Recurrence shape described by
// each operation's doc comment; the identities mentioned there (0+x=x,
// 1*x=x, ...) are realized only when transform.Simplify is later invoked,
// never at construction time.

// Sequential builds a+b, the cost of running a then b.
func Sequential(a, b Expr) Expr { return &Binary{Left: a, Op: Plus, Right: b} }

// Nested builds a*b, the cost of running b once per unit of a (e.g. a loop
// body b run a times).
func Nested(a, b Expr) Expr { return &Binary{Left: a, Op: Multiply, Right: b} }

// Branching builds max(a,b), the cost of an if/else whose branches cost a
// and b respectively.
func Branching(a, b Expr) Expr { return &Binary{Left: a, Op: Max, Right: b} }

// Switch left-folds Branching over cases, the cost of a multi-way switch.
// An empty cases list returns Const(0).
func Switch(cases []Expr) Expr {
	if len(cases) == 0 {
		return NewConst(0)
	}
	out := cases[0]
	for _, c := range cases[1:] {
		out = Branching(out, c)
	}
	return out
}

// Loop builds Nested(iterCount, body): a loop that runs body iterCount
// times, where iterCount is itself a complexity expression (e.g. O(n)).
func Loop(iterCount, body Expr) Expr { return Nested(iterCount, body) }

// ForLoop builds Nested(Var(v), body): the common case of a loop whose
// iteration count is exactly the named variable v.
func ForLoop(v variable.Variable, body Expr) Expr {
	return Nested(NewVar(v), body)
}

// LogarithmicLoop builds Nested(Log(1,v,base), body): a loop whose
// iteration count is logarithmic in v (e.g. a halving loop).
func LogarithmicLoop(v variable.Variable, body Expr, base float64) Expr {
	return Nested(NewLog(1, v, base), body)
}

// EarlyExit models a loop/search that may stop before its maximum bound.
// When worstCase is true, the cost is max (the loop always runs to
// completion in the analysis being modeled); otherwise it is min(early,
// max), reflecting that the early-exit branch may dominate.
func EarlyExit(max, early, body Expr, worstCase bool) Expr {
	if worstCase {
		return Nested(max, body)
	}
	return Nested(&Binary{Left: early, Op: Min, Right: max}, body)
}

// LinearRecursion builds a single-term subtractive recurrence
// T(n) = coefficient*T(n-shift) + nonRecursiveWork. It never pre-solves —
// solving is the theorem engine's responsibility (layer 3).
func LinearRecursion(v variable.Variable, coefficient float64, shift int, nonRecursiveWork Expr) Expr {
	return &Recurrence{
		Terms:            []RecurrenceTerm{{Coefficient: coefficient, Shift: shift}},
		Variable:         v,
		NonRecursiveWork: nonRecursiveWork,
	}
}

// DivideAndConquer builds a single-term recurrence
// T(n) = coefficient*T(scaleFactor*n) + nonRecursiveWork. It never
// pre-solves.
func DivideAndConquer(v variable.Variable, coefficient, scaleFactor float64, nonRecursiveWork Expr) Expr {
	return &Recurrence{
		Terms: []RecurrenceTerm{{
			Coefficient: coefficient,
			Argument:    Nested(NewConst(scaleFactor), NewVar(v)),
			ScaleFactor: scaleFactor,
		}},
		Variable:         v,
		NonRecursiveWork: nonRecursiveWork,
	}
}

// BinaryRecursion builds the common two-term divide-and-conquer shape
// T(n) = T(scaleFactor*n) + T(scaleFactor*n) + nonRecursiveWork, i.e.
// DivideAndConquer with coefficient 2 expressed as two identical terms.
// theorem.Solve hands a two-term list to Akra-Bazzi; the Master Theorem
// path takes single-term recurrences only.
func BinaryRecursion(v variable.Variable, scaleFactor float64, nonRecursiveWork Expr) Expr {
	term := RecurrenceTerm{Coefficient: 1, Argument: Nested(NewConst(scaleFactor), NewVar(v)), ScaleFactor: scaleFactor}
	return &Recurrence{
		Terms:            []RecurrenceTerm{term, term},
		Variable:         v,
		NonRecursiveWork: nonRecursiveWork,
	}
}

// FunctionCall builds the cost of invoking a callee whose own complexity
// is calleeCost, optionally specialized to the call site's argument sizes
// by the caller substituting callee's free variables beforehand.
func FunctionCall(calleeCost Expr) Expr { return calleeCost }

// Amortized derives totalCost/v as totalCost * v^-1, guarded on v>0
// (spec.md §9, Open Questions: "the expression should be derived explicitly
// as totalCost/v with a guard on v>0"). The guard is a documented
// precondition on v's domain (sizes are non-negative, and zero-sized
// input has no operations to amortize over) rather than a runtime check,
// since expressions are symbolic and v is not yet bound to a concrete
// value at composition time.
func Amortized(totalCost Expr, v variable.Variable) Expr {
	return Nested(totalCost, &Power{Base: NewVar(v), Exponent: -1})
}

// ComposeConditional builds a Conditional node for a branch whose runtime
// condition the core cannot resolve statically; its cost is evaluated
// conservatively as max(trueBranch, falseBranch).
func ComposeConditional(description string, trueBranch, falseBranch Expr) Expr {
	return &Conditional{Description: description, TrueBranch: trueBranch, FalseBranch: falseBranch}
}
