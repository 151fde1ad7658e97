// Package theorem implements the recurrence-solving engine of spec.md
// §4.3/§4.6: Master Theorem, Akra-Bazzi, the linear characteristic-
// polynomial solver, and the mutual-recursion reducer, dispatched from
// a single entry point that tries each in turn and returns a tagged
// outcome — grounded on the teacher's inference_solver.go dispatch
// shape (try strategies in priority order, return the first applicable
// result, carry the rejection reasons forward when none apply).
package theorem

import (
	"fmt"

	"github.com/complexity-analyzer/engine/internal/cexpr"
	"github.com/complexity-analyzer/engine/internal/diagnostics"
	"github.com/complexity-analyzer/engine/internal/linrec"
)

// Outcome tags which strategy produced a TheoremResult.
type Outcome int

const (
	OutcomeMasterCase1 Outcome = iota
	OutcomeMasterCase2
	OutcomeMasterCase3
	OutcomeAkraBazzi
	OutcomeLinearSolved
	OutcomeNotApplicable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMasterCase1:
		return "MasterCase1"
	case OutcomeMasterCase2:
		return "MasterCase2"
	case OutcomeMasterCase3:
		return "MasterCase3"
	case OutcomeAkraBazzi:
		return "AkraBazzi"
	case OutcomeLinearSolved:
		return "LinearSolved"
	default:
		return "NotApplicable"
	}
}

// Result is the tagged outcome of solving a Recurrence: which strategy
// applied, the resolved closed form (nil if NotApplicable), the
// critical exponent computed along the way (meaningful for the Master
// Theorem and Akra-Bazzi outcomes), and the rejection reasons
// accumulated from strategies that were tried and declined.
type Result struct {
	Outcome          Outcome
	Expr             cexpr.Expr
	CriticalExponent float64
	Reasons          []string
}

// Solve dispatches rec to the appropriate strategy: Master Theorem for
// a single divide-and-conquer term, Akra-Bazzi for several, the linear
// characteristic-polynomial solver for subtractive terms, and
// NotApplicable (with accumulated reasons) for anything else —
// including a recurrence mixing divide-and-conquer and subtractive
// terms, which no strategy here models directly.
func Solve(rec *cexpr.Recurrence) (*Result, error) {
	if len(rec.Terms) == 0 {
		return nil, diagnostics.NewNotApplicable("recurrence has no recursive terms")
	}

	allDC, allSub := true, true
	for _, t := range rec.Terms {
		if !t.IsDivideAndConquer() {
			allDC = false
		}
		if !t.IsSubtractive() {
			allSub = false
		}
	}

	switch {
	case allDC && len(rec.Terms) == 1:
		res, masterErr := solveMaster(rec)
		if masterErr == nil {
			return res, nil
		}
		// Master Theorem declined (gap case or failed regularity): fall
		// through to Akra-Bazzi, which subsumes it.
		ab, err := solveAkraBazzi(rec)
		if err != nil {
			return nil, err
		}
		ab.Reasons = append(ab.Reasons, fmt.Sprintf("master theorem declined: %v", masterErr))
		return ab, nil

	case allDC:
		return solveAkraBazzi(rec)

	case allSub:
		sol, err := linrec.Solve(rec)
		if err != nil {
			return nil, err
		}
		return &Result{Outcome: OutcomeLinearSolved, Expr: sol.Combined}, nil

	default:
		return &Result{Outcome: OutcomeNotApplicable, Reasons: []string{"recurrence mixes divide-and-conquer and subtractive terms"}}, nil
	}
}
