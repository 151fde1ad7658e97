package main

import (
	"testing"

	"github.com/complexity-analyzer/engine/internal/cexpr"
	"github.com/complexity-analyzer/engine/internal/variable"
)

func TestWorkSpecFromExprRoundTripsPolynomial(t *testing.T) {
	n := variable.N
	ws := workSpecFromExpr(cexpr.NewLinear(3, n), n)
	if ws.Kind != "polynomial" || ws.Degree != 1 || ws.Coefficient != 3 {
		t.Errorf("workSpecFromExpr(3n) = %+v, want polynomial degree 1 coefficient 3", ws)
	}
}

func TestWorkSpecFromExprHandlesNilAsConstant(t *testing.T) {
	ws := workSpecFromExpr(nil, variable.N)
	if ws.Kind != "constant" {
		t.Errorf("workSpecFromExpr(nil) = %+v, want constant", ws)
	}
}

func TestSpecToRPCFromRecurrencePreservesTerms(t *testing.T) {
	n := variable.N
	rec := &cexpr.Recurrence{
		Terms:            []cexpr.RecurrenceTerm{{Coefficient: 2, ScaleFactor: 0.5}},
		Variable:         n,
		NonRecursiveWork: cexpr.NewLinear(1, n),
	}
	spec := specToRPCFromRecurrence(rec)
	if spec.Variable != "n" || len(spec.Terms) != 1 {
		t.Fatalf("spec = %+v", spec)
	}
	if spec.Terms[0].Coefficient != 2 || spec.Terms[0].ScaleFactor != 0.5 {
		t.Errorf("term = %+v, want coefficient 2 scale_factor 0.5", spec.Terms[0])
	}
}

func TestOutcomeFromStringRoundTrips(t *testing.T) {
	cases := map[string]bool{
		"MasterCase1":   true,
		"MasterCase2":   true,
		"AkraBazzi":     true,
		"LinearSolved":  true,
		"garbage-value": false,
	}
	for s, known := range cases {
		o := outcomeFromString(s)
		if known && o.String() != s {
			t.Errorf("outcomeFromString(%q).String() = %q, want %q", s, o.String(), s)
		}
	}
}
