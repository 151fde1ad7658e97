package transform

import "github.com/complexity-analyzer/engine/internal/cexpr"

// Ordering is the result of comparing two expressions' dominant
// asymptotic classification.
type Ordering int

const (
	Less Ordering = -1
	Equal Ordering = 0
	Greater Ordering = 1
)

// Compare classifies e1 and e2 and returns their asymptotic ordering
// (spec.md §4.2, §6 "compare(e1, e2) -> {less,equal,greater}").
func Compare(e1, e2 cexpr.Expr) Ordering {
	return Ordering(compareOrder(classify(e1), classify(e2)))
}

// Dominates reports whether e1 asymptotically dominates (is >=) e2.
func Dominates(e1, e2 cexpr.Expr) bool {
	return Compare(e1, e2) != Less
}

// IsDominatedBy reports whether e1 is asymptotically dominated by (<=) e2.
func IsDominatedBy(e1, e2 cexpr.Expr) bool {
	return Compare(e1, e2) != Greater
}

// AreEquivalent reports whether e1 and e2 have the same canonical Big-O
// form, per NormalizeForm equality (spec.md §8's classifier monotonicity
// and equivalence laws).
func AreEquivalent(e1, e2 cexpr.Expr) bool {
	return exprEqual(NormalizeForm(e1), NormalizeForm(e2))
}
