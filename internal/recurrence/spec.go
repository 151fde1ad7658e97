// Package recurrence is the data-model/parsing layer of spec.md §3.3: it
// turns a plain, YAML-friendly description of a recurrence or mutual
// system (the shape the CLI's scenario fixtures and config files use,
// grounded on internal/ext/config.go's yaml.v3 unmarshal-into-plain-
// struct pattern) into the cexpr/theorem types the solvers consume.
//
// cexpr.Recurrence already serves as both the expression-algebra variant
// (§3.2) and the solver's data model (§3.3), so this package's job is
// purely translation:
// WorkSpec/TermSpec describe a recurrence the way a human (or a YAML
// fixture) would write it down; Build resolves that into the closed
// cexpr.Expr shapes the rest of the analyzer operates on.
package recurrence

import (
	"fmt"

	"github.com/complexity-analyzer/engine/internal/cexpr"
	"github.com/complexity-analyzer/engine/internal/theorem"
	"github.com/complexity-analyzer/engine/internal/variable"
)

// TermSpec is one recursive-call term, exactly one of ScaleFactor (a
// divide-and-conquer call T(scale*n)) or Shift (a subtractive call
// T(n-shift)) expected to be set.
type TermSpec struct {
	Coefficient float64 `yaml:"coefficient"`
	ScaleFactor float64 `yaml:"scale_factor,omitempty"`
	Shift       int     `yaml:"shift,omitempty"`
}

// WorkSpec describes the non-recursive work f(n) added at each call,
// using the same closed vocabulary as transform.Form.
type WorkSpec struct {
	Kind        string  `yaml:"kind"` // constant, polynomial, logarithmic, polylog, exponential, factorial
	Degree      float64 `yaml:"degree,omitempty"`
	LogExponent float64 `yaml:"log_exponent,omitempty"`
	Base        float64 `yaml:"base,omitempty"`
	Coefficient float64 `yaml:"coefficient,omitempty"`
}

// Spec is the top-level recurrence fixture shape.
type Spec struct {
	Variable string     `yaml:"variable"`
	Terms    []TermSpec `yaml:"terms"`
	Work     WorkSpec   `yaml:"work"`
	BaseCase *float64   `yaml:"base_case,omitempty"`
}

// CallSpec is one call edge in a mutual-recursion SystemSpec.
type CallSpec struct {
	Target      string  `yaml:"target"`
	Coefficient float64 `yaml:"coefficient"`
	ScaleFactor float64 `yaml:"scale_factor,omitempty"`
	Shift       int     `yaml:"shift,omitempty"`
}

// ComponentSpec is one named procedure in a SystemSpec.
type ComponentSpec struct {
	Name  string     `yaml:"name"`
	Calls []CallSpec `yaml:"calls"`
	Work  WorkSpec   `yaml:"work"`
}

// SystemSpec is the fixture shape for a mutually-recursive system
// (spec.md §4.6).
type SystemSpec struct {
	Variable   string          `yaml:"variable"`
	Root       string          `yaml:"root"`
	Components []ComponentSpec `yaml:"components"`
}

// ResolveVariable maps a fixture's variable name to one of the canonical
// instances in internal/variable when recognized, falling back to a
// Custom-kind variable of that name otherwise. Exported so callers
// outside this package (internal/rpcapi) can resolve the same variable
// BuildExpression/Build will use, without duplicating the name table.
func ResolveVariable(name string) variable.Variable {
	return resolveVariable(name)
}

func resolveVariable(name string) variable.Variable {
	switch name {
	case "n":
		return variable.N
	case "v":
		return variable.V
	case "e":
		return variable.E
	case "m":
		return variable.M
	case "k":
		return variable.K
	case "h":
		return variable.H
	case "p":
		return variable.P
	default:
		return variable.New(name, variable.Custom)
	}
}

// buildWork resolves a WorkSpec into a concrete cexpr.Expr.
func buildWork(w WorkSpec, v variable.Variable) (cexpr.Expr, error) {
	coef := w.Coefficient
	if coef == 0 {
		coef = 1
	}
	switch w.Kind {
	case "", "constant":
		return cexpr.NewConst(coef), nil
	case "polynomial":
		if w.Degree == 1 {
			return cexpr.NewLinear(coef, v), nil
		}
		return cexpr.NewPoly(map[int]float64{int(w.Degree): coef}, v), nil
	case "logarithmic":
		base := w.Base
		if base == 0 {
			base = 2
		}
		return cexpr.NewLog(coef, v, base), nil
	case "polylog":
		base := w.Base
		if base == 0 {
			base = 2
		}
		return cexpr.NewPolyLog(w.Degree, w.LogExponent, v, coef, base), nil
	case "exponential":
		base := w.Base
		if base == 0 {
			return nil, fmt.Errorf("recurrence: exponential work requires a base")
		}
		return cexpr.NewExp(base, v, coef), nil
	case "factorial":
		return cexpr.NewFactorial(v, coef), nil
	default:
		return nil, fmt.Errorf("recurrence: unknown work kind %q", w.Kind)
	}
}

// BuildExpression resolves a standalone WorkSpec into a cexpr.Expr,
// resolving variableName the same way Build does. Exported for callers
// (internal/rpcapi) that need a single expression rather than a full
// recurrence — e.g. to normalize or classify a procedure's cost in
// isolation, not just the per-call work inside a recurrence.
func BuildExpression(w WorkSpec, variableName string) (cexpr.Expr, error) {
	return buildWork(w, resolveVariable(variableName))
}

// Build resolves a Spec into a *cexpr.Recurrence ready for
// internal/theorem.Solve.
func Build(s Spec) (*cexpr.Recurrence, error) {
	v := resolveVariable(s.Variable)
	work, err := buildWork(s.Work, v)
	if err != nil {
		return nil, err
	}
	terms := make([]cexpr.RecurrenceTerm, len(s.Terms))
	for i, t := range s.Terms {
		terms[i] = cexpr.RecurrenceTerm{Coefficient: t.Coefficient, ScaleFactor: t.ScaleFactor, Shift: t.Shift}
	}
	rec := &cexpr.Recurrence{Terms: terms, Variable: v, NonRecursiveWork: work}
	if s.BaseCase != nil {
		rec.BaseCase = *s.BaseCase
		rec.HasBaseCase = true
	}
	return rec, nil
}

// BuildSystem resolves a SystemSpec into a *theorem.System ready for
// theorem.Reduce.
func BuildSystem(s SystemSpec) (*theorem.System, error) {
	v := resolveVariable(s.Variable)
	components := make(map[string]*theorem.Component, len(s.Components))
	for _, c := range s.Components {
		work, err := buildWork(c.Work, v)
		if err != nil {
			return nil, err
		}
		calls := make([]theorem.Call, len(c.Calls))
		for i, call := range c.Calls {
			calls[i] = theorem.Call{Target: call.Target, Coefficient: call.Coefficient, ScaleFactor: call.ScaleFactor, Shift: call.Shift}
		}
		components[c.Name] = &theorem.Component{Name: c.Name, Calls: calls, NonRecursiveWork: work}
	}
	if _, ok := components[s.Root]; !ok {
		return nil, fmt.Errorf("recurrence: root component %q not defined", s.Root)
	}
	return &theorem.System{Components: components, Root: s.Root, Variable: v}, nil
}
