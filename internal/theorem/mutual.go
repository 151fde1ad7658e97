package theorem

import (
	"github.com/complexity-analyzer/engine/internal/cexpr"
	"github.com/complexity-analyzer/engine/internal/diagnostics"
	"github.com/complexity-analyzer/engine/internal/variable"
)

// Call is one recursive invocation from a mutual-recursion Component to
// another (or itself) — a RecurrenceTerm that additionally names which
// component it calls, since cexpr.RecurrenceTerm alone has no notion of
// multiple named procedures (spec.md §4.6).
type Call struct {
	Target      string
	Coefficient float64
	ScaleFactor float64 // divide-and-conquer call, e.g. Target(scale*n)
	Shift       int     // subtractive call, e.g. Target(n-shift)
}

func (c Call) isDivideAndConquer() bool { return c.ScaleFactor > 0 && c.ScaleFactor < 1 }
func (c Call) isSubtractive() bool      { return c.Shift > 0 }

// Component is one named procedure in a mutually-recursive system.
type Component struct {
	Name             string
	Calls            []Call
	NonRecursiveWork cexpr.Expr
}

// System is a set of mutually-recursive components sharing a common
// induction variable, with a distinguished Root whose complexity is
// being asked for.
type System struct {
	Components map[string]*Component
	Root       string
	Variable   variable.Variable
}

// maxExpansionDepth bounds how many call hops the reducer inlines
// before giving up on a path that never cycles back to Root — avoids
// infinite recursion on a system with a never-terminating call chain.
const maxExpansionDepth = 32

// Reduce collapses a mutually-recursive System into a single
// cexpr.Recurrence over Root by inlining every other component's
// definition by substitution, accumulating coefficient products and
// scale-factor/shift compositions along each call chain until it
// cycles back to Root. The reduced recurrence can then be handed to
// Solve like any direct self-recursion.
func Reduce(sys *System) (*cexpr.Recurrence, error) {
	root, ok := sys.Components[sys.Root]
	if !ok {
		return nil, diagnostics.NewNotApplicable("root component not found in system")
	}

	var terms []cexpr.RecurrenceTerm
	var work []cexpr.Expr
	if root.NonRecursiveWork != nil {
		work = append(work, root.NonRecursiveWork)
	}

	for _, call := range root.Calls {
		t, w, err := expand(sys, call, 0)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t...)
		work = append(work, w...)
	}

	if len(terms) == 0 {
		return nil, diagnostics.NewNotApplicable("system never recurses back to root within the expansion depth")
	}

	combinedWork := work[0]
	for _, w := range work[1:] {
		combinedWork = &cexpr.Binary{Left: combinedWork, Op: cexpr.Plus, Right: w}
	}

	return &cexpr.Recurrence{Terms: terms, Variable: sys.Variable, NonRecursiveWork: combinedWork}, nil
}

// expand follows one call edge, inlining non-root components until the
// chain either cycles back to Root (producing a resolved term) or
// exhausts maxExpansionDepth.
func expand(sys *System, call Call, depth int) ([]cexpr.RecurrenceTerm, []cexpr.Expr, error) {
	if depth >= maxExpansionDepth {
		return nil, nil, diagnostics.NewIncomplete("mutual recursion did not cycle back to root within the expansion bound")
	}

	if call.Target == sys.Root {
		return []cexpr.RecurrenceTerm{{Coefficient: call.Coefficient, ScaleFactor: call.ScaleFactor, Shift: call.Shift}}, nil, nil
	}

	target, ok := sys.Components[call.Target]
	if !ok {
		return nil, nil, diagnostics.NewNotApplicable("call targets unknown component: " + call.Target)
	}

	var terms []cexpr.RecurrenceTerm
	var work []cexpr.Expr
	if target.NonRecursiveWork != nil {
		work = append(work, scaleWork(call.Coefficient, target.NonRecursiveWork))
	}
	for _, next := range target.Calls {
		composed := Call{
			Target:      next.Target,
			Coefficient: call.Coefficient * next.Coefficient,
			ScaleFactor: composeScale(call.ScaleFactor, next.ScaleFactor),
			Shift:       call.Shift + next.Shift,
		}
		t, w, err := expand(sys, composed, depth+1)
		if err != nil {
			return nil, nil, err
		}
		terms = append(terms, t...)
		work = append(work, w...)
	}
	return terms, work, nil
}

// composeScale combines two divide-and-conquer scale factors along a
// call chain (b1 of the outer call times b2 of the inner); a
// subtractive inner call (scale 0) leaves the outer scale untouched.
func composeScale(outer, inner float64) float64 {
	if inner == 0 {
		return outer
	}
	if outer == 0 {
		return inner
	}
	return outer * inner
}

func scaleWork(coefficient float64, work cexpr.Expr) cexpr.Expr {
	if coefficient == 1 {
		return work
	}
	return &cexpr.Binary{Left: cexpr.NewConst(coefficient), Op: cexpr.Multiply, Right: work}
}
