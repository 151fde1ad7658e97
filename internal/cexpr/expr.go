// Package cexpr implements the immutable Big-O expression algebra
// (spec.md §3.2): a closed sum type over constants, variables, the named
// asymptotic primitives, binary combinators, and the parallel/probabilistic/
// recurrence wrappers, plus the universal operations every variant
// supplies (FreeVariables, Substitute, Evaluate, RenderBigO, Accept).
//
// Grounded on internal/ast's Node/Visitor split (one struct per concrete
// node, an unexported marker method, Accept(v Visitor) for double
// dispatch) and on internal/typesystem/types.go's ApplyWithCycleCheck
// (switch on concrete type, rebuild rather than mutate) for Substitute.
package cexpr

import "github.com/complexity-analyzer/engine/internal/variable"

// Expr is the interface every expression variant implements. Expressions
// are value objects: structural equality, no identity, no cycles (the tree
// is a DAG only when subtrees are literally reused by the builder).
type Expr interface {
	exprNode()

	// FreeVariables returns the set of variables this expression depends
	// on. For a compound expression this is the union of its children's.
	FreeVariables() variable.Set

	// Substitute returns a fresh expression with every free occurrence of
	// v replaced by replacement. If v does not occur free, Substitute
	// returns the identical value (not merely an equal one) so callers can
	// short-circuit on pointer identity where useful.
	Substitute(v variable.Variable, replacement Expr) Expr

	// Evaluate computes a numeric value given concrete bindings for every
	// free variable. It returns (0, false) when a free variable is
	// unbound or a domain precondition fails (e.g. log of a non-positive
	// value) — never an error, per spec.md §4.9 and §7 (UnboundVariable
	// silently yields none).
	Evaluate(binding map[variable.Variable]float64) (float64, bool)

	// RenderBigO renders the expression as deterministic, canonical
	// Big-O text.
	RenderBigO() string

	// Accept performs double dispatch into v, returning the (possibly
	// rebuilt) expression. Transformation visitors rebuild nodes;
	// inspection visitors typically return the receiver unchanged.
	Accept(v Visitor) Expr
}

// BinaryOp is the closed set of binary combinators over expressions.
type BinaryOp int

const (
	Plus BinaryOp = iota
	Multiply
	Max
	Min
)

func (op BinaryOp) String() string {
	switch op {
	case Plus:
		return "+"
	case Multiply:
		return "*"
	case Max:
		return "max"
	case Min:
		return "min"
	default:
		return "?"
	}
}

// epsilon is the tolerance floatEqual uses for numeric comparisons within
// this package. Kernels outside this package use their own, documented
// tolerances (spec.md §9).
const epsilon = 1e-9

func floatEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < epsilon
}

// freeVarsOfChildren unions the free variables of every child expression;
// a small helper so each compound variant's FreeVariables stays one-line.
func freeVarsOfChildren(children ...Expr) variable.Set {
	out := variable.Set{}
	for _, c := range children {
		if c == nil {
			continue
		}
		out = out.Union(c.FreeVariables())
	}
	return out
}
