package main

import (
	"github.com/complexity-analyzer/engine/internal/cexpr"
	"github.com/complexity-analyzer/engine/internal/rpcapi"
	"github.com/complexity-analyzer/engine/internal/theorem"
	"github.com/complexity-analyzer/engine/internal/transform"
	"github.com/complexity-analyzer/engine/internal/variable"
)

// specToRPCFromRecurrence serializes a *cexpr.Recurrence (the shape
// theorem.Reduce returns for a mutually-recursive system, which has no
// WorkSpec of its own) into the wire RecurrenceSpec, reconstructing a
// WorkSpec for the non-recursive work from its transform.Classify
// result — the reverse of internal/recurrence.buildWork. This is
// necessarily lossy for a work expression the classifier can't place
// exactly in {constant, polynomial, logarithmic, polylog, exponential,
// factorial} (an Unknown classification falls back to "constant"), but
// every work shape internal/recurrence.buildWork can construct in the
// first place classifies exactly, so the round trip used by this CLI
// (System -> Reduce -> RPC) never hits that fallback.
func specToRPCFromRecurrence(rec *cexpr.Recurrence) rpcapi.RecurrenceSpec {
	terms := make([]rpcapi.TermSpec, len(rec.Terms))
	for i, t := range rec.Terms {
		terms[i] = rpcapi.TermSpec{Coefficient: t.Coefficient, ScaleFactor: t.ScaleFactor, Shift: int32(t.Shift)}
	}
	spec := rpcapi.RecurrenceSpec{
		Variable:    rec.Variable.Name,
		Terms:       terms,
		Work:        workSpecFromExpr(rec.NonRecursiveWork, rec.Variable),
		HasBaseCase: rec.HasBaseCase,
		BaseCase:    rec.BaseCase,
	}
	return spec
}

func workSpecFromExpr(e cexpr.Expr, v variable.Variable) rpcapi.WorkSpec {
	if e == nil {
		return rpcapi.WorkSpec{Kind: "constant", Coefficient: 1}
	}
	c := transform.Classify(e, v)
	switch c.Form {
	case transform.Constant:
		return rpcapi.WorkSpec{Kind: "constant", Coefficient: nonZero(c.LeadingCoef)}
	case transform.Logarithmic:
		return rpcapi.WorkSpec{Kind: "logarithmic", Coefficient: nonZero(c.LeadingCoef), Base: 2}
	case transform.Polynomial:
		return rpcapi.WorkSpec{Kind: "polynomial", Degree: c.PolyDegree, Coefficient: nonZero(c.LeadingCoef)}
	case transform.PolyLog:
		return rpcapi.WorkSpec{Kind: "polylog", Degree: c.PolyDegree, LogExponent: c.LogExponent, Coefficient: nonZero(c.LeadingCoef), Base: 2}
	case transform.Exponential:
		return rpcapi.WorkSpec{Kind: "exponential", Base: c.Base, Coefficient: nonZero(c.LeadingCoef)}
	case transform.Factorial:
		return rpcapi.WorkSpec{Kind: "factorial", Coefficient: nonZero(c.LeadingCoef)}
	default:
		return rpcapi.WorkSpec{Kind: "constant", Coefficient: 1}
	}
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

func outcomeFromString(s string) theorem.Outcome {
	switch s {
	case "MasterCase1":
		return theorem.OutcomeMasterCase1
	case "MasterCase2":
		return theorem.OutcomeMasterCase2
	case "MasterCase3":
		return theorem.OutcomeMasterCase3
	case "AkraBazzi":
		return theorem.OutcomeAkraBazzi
	case "LinearSolved":
		return theorem.OutcomeLinearSolved
	default:
		return theorem.OutcomeNotApplicable
	}
}
