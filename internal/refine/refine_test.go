package refine

import (
	"math"
	"testing"

	"github.com/complexity-analyzer/engine/internal/cexpr"
	"github.com/complexity-analyzer/engine/internal/variable"
)

func TestVerifyInductionLinearScan(t *testing.T) {
	n := variable.N
	// T(n) = T(n-1) + 1, T(1) = 1: candidate S(n) = n
	rec := &cexpr.Recurrence{
		Terms:            []cexpr.RecurrenceTerm{{Coefficient: 1, Shift: 1}},
		Variable:         n,
		NonRecursiveWork: cexpr.NewConst(1),
		BaseCase:         1,
		HasBaseCase:      true,
	}
	candidate := cexpr.NewVar(n)
	res, err := VerifyInduction(rec, candidate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Verified {
		t.Errorf("expected S(n)=n to verify T(n)=T(n-1)+1, got %+v", res)
	}
}

func TestVerifyInductionRejectsTooSmallCandidate(t *testing.T) {
	n := variable.N
	// T(n) = 2*T(n/2) + n (merge sort, Theta(n log n)); candidate n is
	// too small to satisfy the inductive step for large n.
	rec := &cexpr.Recurrence{
		Terms:            []cexpr.RecurrenceTerm{{Coefficient: 2, ScaleFactor: 0.5}},
		Variable:         n,
		NonRecursiveWork: cexpr.NewVar(n),
	}
	candidate := cexpr.NewLinear(1, n)
	res, err := VerifyInduction(rec, candidate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.InductiveStep {
		t.Errorf("expected S(n)=n to fail the inductive step for T(n)=2T(n/2)+n, got %+v", res)
	}
}

func TestFitLeadingCoefficientRecoversConstant(t *testing.T) {
	n := variable.N
	shape := cexpr.NewVar(n) // fit against shape=n
	samples := map[float64]float64{10: 30, 20: 60, 40: 120}
	fit := FitLeadingCoefficient(shape, n, samples)
	if math.Abs(fit.Coefficient-3) > 1e-6 {
		t.Errorf("coefficient = %v, want 3", fit.Coefficient)
	}
	if fit.RSquared < 0.99 {
		t.Errorf("R^2 = %v, want close to 1 for an exact fit", fit.RSquared)
	}
}

func TestSimulateRecurrenceLinearScan(t *testing.T) {
	n := variable.N
	rec := &cexpr.Recurrence{
		Terms:            []cexpr.RecurrenceTerm{{Coefficient: 1, Shift: 1}},
		Variable:         n,
		NonRecursiveWork: cexpr.NewConst(1),
		BaseCase:         0,
		HasBaseCase:      true,
	}
	samples := SimulateRecurrence(rec, n, 100)
	// T(1)=0 (base case), T(k)=T(k-1)+1, so T(100) = 99.
	if got := samples[100]; math.Abs(got-99) > 1e-9 {
		t.Errorf("T(100) = %v, want 99", got)
	}
}

func TestPerturbationExpansionBumpsLogExponent(t *testing.T) {
	n := variable.N
	work := cexpr.NewVar(n) // degree 1, matches c_crit
	got := PerturbationExpansion(work, 1, n)
	poly, ok := got.(*cexpr.PolyLog)
	if !ok || poly.LogExp != 1 {
		t.Errorf("PerturbationExpansion(n, 1) = %v, want PolyLog with logExp=1", got)
	}
}

func TestConfidenceScorerFullVerification(t *testing.T) {
	scorer := NewConfidenceScorer()
	score := scorer.Score(ScoreInputs{
		SourceAuthority: 1,
		Simplicity:      1,
		Induction:       &InductionResult{Verified: true, InductiveStep: true},
		RSquared:        0.99,
		GapDistance:     5,
	})
	if score.Level != VeryHigh {
		t.Errorf("level = %v, want VeryHigh for a fully-verified result", score.Level)
	}
}

func TestConfidenceScorerUnverified(t *testing.T) {
	scorer := NewConfidenceScorer()
	score := scorer.Score(ScoreInputs{
		SourceAuthority: 0.3,
		Simplicity:      0.2,
		Induction:       &InductionResult{Verified: false, InductiveStep: false},
		RSquared:        0.1,
		GapDistance:     0,
	})
	if score.Level != Low {
		t.Errorf("level = %v, want Low for an unverified, low-fit result", score.Level)
	}
}

func TestConsensusBoostsTightAgreement(t *testing.T) {
	scores := []Score{{Value: 0.7, Level: High}, {Value: 0.71, Level: High}, {Value: 0.69, Level: High}}
	combined := Consensus(scores)
	if combined.Value <= 0.7 {
		t.Errorf("consensus value = %v, want > 0.7 (tight agreement should boost)", combined.Value)
	}
}

func TestConsensusSinglePassesThrough(t *testing.T) {
	s := Score{Value: 0.42, Level: Medium}
	if got := Consensus([]Score{s}); got != s {
		t.Errorf("Consensus([s]) = %v, want %v", got, s)
	}
}
