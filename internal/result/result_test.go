package result

import (
	"strings"
	"testing"

	"github.com/complexity-analyzer/engine/internal/cexpr"
	"github.com/complexity-analyzer/engine/internal/variable"
)

func TestSourceTypeAuthorityOrdering(t *testing.T) {
	if Documented.Authority() <= Attested.Authority() {
		t.Error("Documented should outrank Attested")
	}
	if Heuristic.Authority() <= Unknown.Authority() {
		t.Error("Heuristic should outrank Unknown")
	}
}

func TestExplainRendersTree(t *testing.T) {
	n := variable.N
	leaf1 := New(cexpr.NewVar(n), ComplexitySource{Type: Documented, Confidence: 0.95})
	leaf2 := New(cexpr.NewConst(1), ComplexitySource{Type: Heuristic, Confidence: 0.3})
	top := New(cexpr.NewLinear(2, n), ComplexitySource{Type: Inferred, Confidence: 0.8}).WithSubResults(leaf1, leaf2)

	out := top.Explain()
	if !strings.Contains(out, "O(n)") || !strings.Contains(out, "O(1)") {
		t.Errorf("Explain() = %q, want it to mention both sub-result forms", out)
	}
	if strings.Count(out, "\n") != 3 {
		t.Errorf("Explain() produced %d lines, want 3 (top + 2 subs)", strings.Count(out, "\n"))
	}
}

func TestDominantPicksHighestAuthority(t *testing.T) {
	n := variable.N
	low := New(cexpr.NewVar(n), ComplexitySource{Type: Heuristic, Confidence: 0.9})
	high := New(cexpr.NewVar(n), ComplexitySource{Type: Documented, Confidence: 0.5})
	top := New(cexpr.NewVar(n), ComplexitySource{Type: Inferred}).WithSubResults(low, high)
	if top.Dominant().Source.Type != Documented {
		t.Errorf("Dominant() picked %v, want Documented", top.Dominant().Source.Type)
	}
}

func TestDominantPanicsWithoutSubResults(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Dominant to panic with no sub-results")
		}
	}()
	New(cexpr.NewConst(1), ComplexitySource{}).Dominant()
}
