package theorem

import (
	"math"
	"testing"

	"github.com/complexity-analyzer/engine/internal/cexpr"
	"github.com/complexity-analyzer/engine/internal/variable"
)

func TestSolveMergeSortIsMasterCase2(t *testing.T) {
	n := variable.N
	rec := &cexpr.Recurrence{
		Terms:            []cexpr.RecurrenceTerm{{Coefficient: 2, ScaleFactor: 0.5}},
		Variable:         n,
		NonRecursiveWork: cexpr.NewVar(n),
	}
	res, err := Solve(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeMasterCase2 {
		t.Fatalf("outcome = %v, want MasterCase2", res.Outcome)
	}
}

func TestSolveBinarySearchIsMasterCase2(t *testing.T) {
	n := variable.N
	// T(n) = T(n/2) + O(1): f(n) = Theta(n^0), matching c_crit = 0 exactly
	// (Case 2 with k=0), giving the classical O(log n) bound.
	rec := &cexpr.Recurrence{
		Terms:            []cexpr.RecurrenceTerm{{Coefficient: 1, ScaleFactor: 0.5}},
		Variable:         n,
		NonRecursiveWork: cexpr.NewConst(1),
	}
	res, err := Solve(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeMasterCase2 {
		t.Fatalf("outcome = %v, want MasterCase2", res.Outcome)
	}
	if math.Abs(res.CriticalExponent) > 1e-6 {
		t.Errorf("critical exponent = %v, want 0", res.CriticalExponent)
	}
}

func TestSolveConstantWorkPerCallIsMasterCase1(t *testing.T) {
	n := variable.N
	// T(n) = 2*T(n/2) + O(1): c_crit = 1, f(n) = O(1) is strictly smaller
	// by more than the gap epsilon, so the recursive calls dominate.
	rec := &cexpr.Recurrence{
		Terms:            []cexpr.RecurrenceTerm{{Coefficient: 2, ScaleFactor: 0.5}},
		Variable:         n,
		NonRecursiveWork: cexpr.NewConst(1),
	}
	res, err := Solve(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeMasterCase1 {
		t.Fatalf("outcome = %v, want MasterCase1", res.Outcome)
	}
	if math.Abs(res.CriticalExponent-1) > 1e-6 {
		t.Errorf("critical exponent = %v, want 1", res.CriticalExponent)
	}
}

func TestSolveCase3Dominates(t *testing.T) {
	n := variable.N
	// T(n) = T(n/2) + n^2: f dominates and regularity holds (a=1 < b^2=4)
	rec := &cexpr.Recurrence{
		Terms:            []cexpr.RecurrenceTerm{{Coefficient: 1, ScaleFactor: 0.5}},
		Variable:         n,
		NonRecursiveWork: cexpr.NewPoly(map[int]float64{2: 1}, n),
	}
	res, err := Solve(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeMasterCase3 {
		t.Fatalf("outcome = %v, want MasterCase3", res.Outcome)
	}
}

func TestSolveAkraBazziMultiTerm(t *testing.T) {
	n := variable.N
	// T(n) = T(n/3) + T(2n/3) + n: classic Akra-Bazzi example, p=1
	rec := &cexpr.Recurrence{
		Terms: []cexpr.RecurrenceTerm{
			{Coefficient: 1, ScaleFactor: 1.0 / 3.0},
			{Coefficient: 1, ScaleFactor: 2.0 / 3.0},
		},
		Variable:         n,
		NonRecursiveWork: cexpr.NewVar(n),
	}
	res, err := Solve(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeAkraBazzi {
		t.Fatalf("outcome = %v, want AkraBazzi", res.Outcome)
	}
	if math.Abs(res.CriticalExponent-1) > 1e-4 {
		t.Errorf("critical exponent = %v, want ~1", res.CriticalExponent)
	}
}

func TestSolveLinearRecursionDispatchesToLinrec(t *testing.T) {
	n := variable.N
	rec := &cexpr.Recurrence{
		Terms:            []cexpr.RecurrenceTerm{{Coefficient: 1, Shift: 1}},
		Variable:         n,
		NonRecursiveWork: cexpr.NewConst(1),
	}
	res, err := Solve(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeLinearSolved {
		t.Fatalf("outcome = %v, want LinearSolved", res.Outcome)
	}
}

func TestSolveMixedTermsNotApplicable(t *testing.T) {
	n := variable.N
	rec := &cexpr.Recurrence{
		Terms: []cexpr.RecurrenceTerm{
			{Coefficient: 1, ScaleFactor: 0.5},
			{Coefficient: 1, Shift: 1},
		},
		Variable:         n,
		NonRecursiveWork: cexpr.NewConst(1),
	}
	res, err := Solve(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Outcome != OutcomeNotApplicable {
		t.Fatalf("outcome = %v, want NotApplicable", res.Outcome)
	}
}

func TestReduceMutualRecursionEvenOdd(t *testing.T) {
	n := variable.N
	// isEven(n) calls isOdd(n-1), isOdd(n) calls isEven(n-1): reduces to
	// a single linear-subtractive recurrence over isEven with shift 2.
	sys := &System{
		Variable: n,
		Root:     "isEven",
		Components: map[string]*Component{
			"isEven": {
				Name:             "isEven",
				NonRecursiveWork: cexpr.NewConst(1),
				Calls:            []Call{{Target: "isOdd", Coefficient: 1, Shift: 1}},
			},
			"isOdd": {
				Name:             "isOdd",
				NonRecursiveWork: cexpr.NewConst(1),
				Calls:            []Call{{Target: "isEven", Coefficient: 1, Shift: 1}},
			},
		},
	}
	rec, err := Reduce(sys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.Terms) != 1 || rec.Terms[0].Shift != 2 {
		t.Fatalf("reduced terms = %+v, want one term with shift 2", rec.Terms)
	}
	res, err := Solve(rec)
	if err != nil {
		t.Fatalf("unexpected error solving reduced system: %v", err)
	}
	if res.Outcome != OutcomeLinearSolved {
		t.Fatalf("outcome = %v, want LinearSolved", res.Outcome)
	}
}
