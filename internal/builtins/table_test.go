package builtins

import (
	"testing"

	"github.com/complexity-analyzer/engine/internal/result"
)

func TestLookupKnownEntries(t *testing.T) {
	cases := []struct {
		container, operation, want string
	}{
		{"slice", "index", "O(1)"},
		{"slice", "append", "O(1)"},
		{"slice", "search", "O(n)"},
		{"hashMap", "get", "O(1)"},
		{"balancedTree", "search", "O(log n)"},
		{"heap", "push", "O(log n)"},
	}
	for _, c := range cases {
		ac := Lookup(c.container, c.operation)
		if ac.Expression == nil {
			t.Errorf("Lookup(%s,%s) returned nil expression", c.container, c.operation)
			continue
		}
		if got := ac.Expression.RenderBigO(); got != c.want {
			t.Errorf("Lookup(%s,%s) = %s, want %s", c.container, c.operation, got, c.want)
		}
		if ac.RequiresReview {
			t.Errorf("Lookup(%s,%s) unexpectedly flagged for review", c.container, c.operation)
		}
	}
}

func TestLookupFallsBackToHeuristic(t *testing.T) {
	ac := Lookup("nonexistentContainer", "nonexistentOp")
	if ac.Source.Type != result.Unknown {
		t.Errorf("fallback source = %v, want Unknown", ac.Source.Type)
	}
	if !ac.RequiresReview {
		t.Error("fallback entry should be flagged for review")
	}
}

func TestMatrixMultiplyFlaggedForReview(t *testing.T) {
	ac := Lookup("matrix", "multiply")
	if !ac.RequiresReview {
		t.Error("matrix multiply should be flagged for review")
	}
}
