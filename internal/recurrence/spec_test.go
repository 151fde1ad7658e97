package recurrence

import (
	"testing"

	"github.com/complexity-analyzer/engine/internal/theorem"
)

func TestBuildMergeSortFixture(t *testing.T) {
	s := Spec{
		Variable: "n",
		Terms:    []TermSpec{{Coefficient: 2, ScaleFactor: 0.5}},
		Work:     WorkSpec{Kind: "polynomial", Degree: 1},
	}
	rec, err := Build(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res, err := theorem.Solve(rec)
	if err != nil {
		t.Fatalf("unexpected solve error: %v", err)
	}
	if res.Outcome != theorem.OutcomeMasterCase2 {
		t.Errorf("outcome = %v, want MasterCase2", res.Outcome)
	}
}

func TestBuildRejectsUnknownWorkKind(t *testing.T) {
	s := Spec{Variable: "n", Terms: []TermSpec{{Coefficient: 1, Shift: 1}}, Work: WorkSpec{Kind: "bogus"}}
	if _, err := Build(s); err == nil {
		t.Error("expected error for unknown work kind")
	}
}

func TestBuildSystemEvenOdd(t *testing.T) {
	s := SystemSpec{
		Variable: "n",
		Root:     "isEven",
		Components: []ComponentSpec{
			{Name: "isEven", Work: WorkSpec{Kind: "constant"}, Calls: []CallSpec{{Target: "isOdd", Coefficient: 1, Shift: 1}}},
			{Name: "isOdd", Work: WorkSpec{Kind: "constant"}, Calls: []CallSpec{{Target: "isEven", Coefficient: 1, Shift: 1}}},
		},
	}
	sys, err := BuildSystem(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec, err := theorem.Reduce(sys)
	if err != nil {
		t.Fatalf("unexpected reduce error: %v", err)
	}
	if len(rec.Terms) != 1 || rec.Terms[0].Shift != 2 {
		t.Errorf("reduced terms = %+v, want one term with shift 2", rec.Terms)
	}
}

func TestBuildSystemRejectsUnknownRoot(t *testing.T) {
	s := SystemSpec{Variable: "n", Root: "missing", Components: []ComponentSpec{{Name: "a", Work: WorkSpec{Kind: "constant"}}}}
	if _, err := BuildSystem(s); err == nil {
		t.Error("expected error for unknown root component")
	}
}
