package rpcapi

import (
	"github.com/complexity-analyzer/engine/internal/recurrence"
)

func toWorkSpec(w WorkSpec) recurrence.WorkSpec {
	return recurrence.WorkSpec{
		Kind:        w.Kind,
		Degree:      w.Degree,
		LogExponent: w.LogExponent,
		Base:        w.Base,
		Coefficient: w.Coefficient,
	}
}

func toRecurrenceSpec(r RecurrenceSpec) recurrence.Spec {
	terms := make([]recurrence.TermSpec, len(r.Terms))
	for i, t := range r.Terms {
		terms[i] = recurrence.TermSpec{Coefficient: t.Coefficient, ScaleFactor: t.ScaleFactor, Shift: int(t.Shift)}
	}
	spec := recurrence.Spec{Variable: r.Variable, Terms: terms, Work: toWorkSpec(r.Work)}
	if r.HasBaseCase {
		bc := r.BaseCase
		spec.BaseCase = &bc
	}
	return spec
}
