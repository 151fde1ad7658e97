// Package builtins implements spec.md §6's "built-in operation table": a
// process-wide, read-only mapping from (containerName, operationName) to
// an AttributedComplexity, falling back to a heuristic O(n) marked
// Unknown when the pair isn't recognized. Grounded on internal/symbols'
// package-level symbol table — a map populated once at init and never
// mutated thereafter, queried by name pairs rather than walked.
//
//go:generate go run ../../cmd/gentable -dir ../../cmd/gentable/testdata/containerstubs -out zz_generated.go
package builtins

import (
	"github.com/complexity-analyzer/engine/internal/cexpr"
	"github.com/complexity-analyzer/engine/internal/result"
	"github.com/complexity-analyzer/engine/internal/variable"
)

// Key identifies one (container, operation) pair, e.g. ("slice", "append").
type Key struct {
	Container string
	Operation string
}

var table map[Key]result.AttributedComplexity

func entry(expr cexpr.Expr, source result.SourceType, confidence float64, notes string) result.AttributedComplexity {
	return result.AttributedComplexity{
		Expression: expr,
		Source:     result.ComplexitySource{Type: source, Confidence: confidence, Notes: notes},
	}
}

func flaggedEntry(expr cexpr.Expr, source result.SourceType, confidence float64, notes, reviewReason string) result.AttributedComplexity {
	ac := entry(expr, source, confidence, notes)
	ac.RequiresReview = true
	ac.ReviewReason = reviewReason
	return ac
}

func init() {
	n := variable.N
	one := cexpr.NewConst(1)
	linear := cexpr.NewVar(n)
	logN := cexpr.NewLog(1, n, 2)
	nLogN := cexpr.NewPolyLog(1, 1, n, 1, 2)
	quadratic := cexpr.NewPoly(map[int]float64{2: 1}, n)

	table = map[Key]result.AttributedComplexity{
		{"slice", "index"}:  entry(one, result.Documented, 1, "contiguous storage, O(1) random access"),
		{"slice", "append"}: entry(one, result.Documented, 0.95, "amortized O(1): geometric growth"),
		{"slice", "search"}: entry(linear, result.Documented, 1, "unsorted linear scan"),
		{"slice", "sort"}:   entry(nLogN, result.Documented, 1, "comparison sort lower bound"),
		{"slice", "insert"}: entry(linear, result.Documented, 1, "shifts every following element"),
		{"slice", "delete"}: entry(linear, result.Documented, 1, "shifts every following element"),
		{"slice", "reverse"}: entry(linear, result.Documented, 1, ""),

		{"array", "index"}: entry(one, result.Documented, 1, ""),
		{"array", "search"}: entry(linear, result.Documented, 1, "unsorted linear scan"),

		{"sortedArray", "search"}: entry(logN, result.Documented, 1, "binary search"),
		{"sortedArray", "insert"}: entry(linear, result.Documented, 1, "binary search plus a shift"),

		{"linkedList", "prepend"}: entry(one, result.Documented, 1, ""),
		{"linkedList", "append"}:  entry(one, result.Documented, 0.9, "assumes a tracked tail pointer"),
		{"linkedList", "search"}:  entry(linear, result.Documented, 1, ""),
		{"linkedList", "delete"}:  entry(linear, result.Documented, 1, "search dominates an O(1) unlink"),

		{"hashMap", "get"}:    entry(one, result.Empirical, 0.9, "average case; worst case degrades under adversarial collisions"),
		{"hashMap", "set"}:    entry(one, result.Empirical, 0.9, "average case, amortized over resizes"),
		{"hashMap", "delete"}: entry(one, result.Empirical, 0.9, "average case"),
		{"hashMap", "iterate"}: entry(linear, result.Documented, 1, "visits every bucket"),

		{"hashSet", "contains"}: entry(one, result.Empirical, 0.9, "average case"),
		{"hashSet", "add"}:      entry(one, result.Empirical, 0.9, "average case"),
		{"hashSet", "remove"}:   entry(one, result.Empirical, 0.9, "average case"),

		{"balancedTree", "search"}: entry(logN, result.Documented, 1, "height-balanced BST"),
		{"balancedTree", "insert"}: entry(logN, result.Documented, 1, ""),
		{"balancedTree", "delete"}: entry(logN, result.Documented, 1, ""),
		{"balancedTree", "iterate"}: entry(linear, result.Documented, 1, "in-order traversal"),

		{"heap", "push"}: entry(logN, result.Documented, 1, "sift-up"),
		{"heap", "pop"}:  entry(logN, result.Documented, 1, "sift-down"),
		{"heap", "peek"}: entry(one, result.Documented, 1, ""),
		{"heap", "build"}: entry(linear, result.Documented, 1, "bottom-up heapify, not n*log(n)"),

		{"graph", "bfs"}: entry(vPlusE(), result.Documented, 1, "O(V+E) with an adjacency list"),
		{"graph", "dfs"}: entry(vPlusE(), result.Documented, 1, "O(V+E) with an adjacency list"),

		{"matrix", "multiply"}: flaggedEntry(quadratic, result.Heuristic, 0.4,
			"naive triple-loop multiply is O(n^3); collapsed to this single-variable n^2 model pending multi-variable support",
			"matrix multiply has no accurate single-variable PolyLog form yet"),
	}
}

func vPlusE() cexpr.Expr {
	return &cexpr.Binary{Left: cexpr.NewVar(variable.V), Op: cexpr.Plus, Right: cexpr.NewVar(variable.E)}
}

// Lookup returns the attributed complexity for (container, operation),
// falling back to a heuristic O(n) marked Unknown-authority when the
// pair isn't in the table (spec.md §6: "a fallback returns a heuristic
// O(n) marked Unknown").
func Lookup(container, operation string) result.AttributedComplexity {
	if ac, ok := table[Key{container, operation}]; ok {
		return ac
	}
	return result.AttributedComplexity{
		Expression:     cexpr.NewVar(variable.N),
		Source:         result.ComplexitySource{Type: result.Unknown, Confidence: 0.2, Notes: "no built-in entry for this container/operation pair"},
		RequiresReview: true,
		ReviewReason:   "unrecognized container/operation pair: " + container + "/" + operation,
	}
}
