// Package result implements the source-attribution and result shapes of
// spec.md §3.4: every expression the analyzer reports is wrapped in a
// ComplexityResult carrying where it came from and how much to trust
// it, never a bare cexpr.Expr. Grounded on internal/analyzer.go's
// accumulate-and-report discipline (collect sub-findings, then wrap
// them in one top-level report) for the SubResults/Explain tree shape.
package result

import (
	"fmt"
	"strings"
	"time"

	"github.com/complexity-analyzer/engine/internal/cexpr"
)

// SourceType classifies where a complexity estimate came from, ordered
// by authority: a Documented result (from a published algorithm
// analysis) outranks a Heuristic fallback.
type SourceType int

const (
	Unknown SourceType = iota
	Heuristic
	Inferred
	Empirical
	Attested
	Documented
)

func (s SourceType) String() string {
	switch s {
	case Documented:
		return "Documented"
	case Attested:
		return "Attested"
	case Empirical:
		return "Empirical"
	case Inferred:
		return "Inferred"
	case Heuristic:
		return "Heuristic"
	default:
		return "Unknown"
	}
}

// Authority returns s's rank in the ordering Documented > Attested >
// Empirical > Inferred > Heuristic > Unknown, for sorting or comparing
// two sources' trustworthiness.
func (s SourceType) Authority() int { return int(s) }

// ComplexitySource records provenance: what kind of evidence backs an
// expression, a citation (a proof, a benchmark, an inference chain
// description), and qualifying flags about what bound it represents.
type ComplexitySource struct {
	Type         SourceType
	Citation     string
	Confidence   float64 // 0..1
	IsUpperBound bool
	IsAmortized  bool
	IsWorstCase  bool
	Notes        string
	LastVerified time.Time
}

// AttributedComplexity pairs an expression with its source and an
// optional review flag — the shape internal/builtins' lookup table
// returns for a single operation.
type AttributedComplexity struct {
	Expression     cexpr.Expr
	Source         ComplexitySource
	RequiresReview bool
	ReviewReason   string
}

// ComplexityResult is the external-facing unit of output: an
// expression, its source, an optional surface location, and the
// sub-results it was composed from (so a caller can reconstruct why
// the top-level bound is what it is without re-deriving it).
type ComplexityResult struct {
	Expression cexpr.Expr
	Source     ComplexitySource
	Location   string
	SubResults []ComplexityResult
}

// New wraps an expression and source into a leaf ComplexityResult with
// no sub-results.
func New(e cexpr.Expr, source ComplexitySource) ComplexityResult {
	return ComplexityResult{Expression: e, Source: source}
}

// WithLocation returns a copy of r annotated with a surface location
// (e.g. a function name or file:line the estimate pertains to).
func (r ComplexityResult) WithLocation(loc string) ComplexityResult {
	r.Location = loc
	return r
}

// WithSubResults returns a copy of r carrying the given sub-results.
func (r ComplexityResult) WithSubResults(subs ...ComplexityResult) ComplexityResult {
	r.SubResults = subs
	return r
}

// Explain renders a human-readable derivation tree: the top-level
// bound, its source, and each sub-result indented beneath it
// (SPEC_FULL.md §F.3's supplemented feature — nothing in spec.md names
// this operation directly, but §3.4's "carries sub-results so
// explanations can be reconstructed" asks for exactly this).
func (r ComplexityResult) Explain() string {
	var b strings.Builder
	r.explain(&b, 0)
	return b.String()
}

func (r ComplexityResult) explain(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	loc := ""
	if r.Location != "" {
		loc = fmt.Sprintf(" at %s", r.Location)
	}
	fmt.Fprintf(b, "%s%s%s [%s, confidence=%.2f]\n", indent, r.Expression.RenderBigO(), loc, r.Source.Type, r.Source.Confidence)
	for _, sub := range r.SubResults {
		sub.explain(b, depth+1)
	}
}

// Dominant returns the sub-result with the highest-authority source,
// breaking ties by confidence; panics if r has no sub-results, since
// that indicates a caller building an explanation tree incorrectly
// rather than a recoverable condition.
func (r ComplexityResult) Dominant() ComplexityResult {
	if len(r.SubResults) == 0 {
		panic("result: Dominant called on a ComplexityResult with no sub-results")
	}
	best := r.SubResults[0]
	for _, sub := range r.SubResults[1:] {
		if sub.Source.Type.Authority() > best.Source.Type.Authority() ||
			(sub.Source.Type.Authority() == best.Source.Type.Authority() && sub.Source.Confidence > best.Source.Confidence) {
			best = sub
		}
	}
	return best
}
