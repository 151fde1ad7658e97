package cexpr

import (
	"fmt"

	"github.com/complexity-analyzer/engine/internal/variable"
)

// ParallelPattern describes the shape of a parallel computation's
// decomposition, carried only for provenance/explanation purposes.
type ParallelPattern int

const (
	PatternUnknown ParallelPattern = iota
	PatternForkJoin
	PatternDataParallel
	PatternPipeline
)

// Parallel carries both the total work and the critical-path span of a
// parallel computation. Parallelism and ParallelTime are derived, not
// stored, so they always stay consistent with Work/Span/Processors.
type Parallel struct {
	Work         Expr
	Span         Expr
	Processors   Expr
	Pattern      ParallelPattern
	TaskBased    bool
	SyncOverhead Expr
	Description  string
}

// Parallelism returns Work/Span as a symbolic expression.
func (e *Parallel) Parallelism() Expr {
	return &Binary{Left: e.Work, Op: Multiply, Right: &Power{Base: e.Span, Exponent: -1}}
}

// ParallelTime returns max(Work/Processors, Span) as a symbolic expression.
func (e *Parallel) ParallelTime() Expr {
	workOverP := &Binary{Left: e.Work, Op: Multiply, Right: &Power{Base: e.Processors, Exponent: -1}}
	return &Binary{Left: workOverP, Op: Max, Right: e.Span}
}

func (e *Parallel) exprNode() {}

func (e *Parallel) FreeVariables() variable.Set {
	children := []Expr{e.Work, e.Span, e.Processors}
	if e.SyncOverhead != nil {
		children = append(children, e.SyncOverhead)
	}
	return freeVarsOfChildren(children...)
}

func (e *Parallel) Substitute(v variable.Variable, replacement Expr) Expr {
	newWork := e.Work.Substitute(v, replacement)
	newSpan := e.Span.Substitute(v, replacement)
	newProc := e.Processors.Substitute(v, replacement)
	var newSync Expr
	if e.SyncOverhead != nil {
		newSync = e.SyncOverhead.Substitute(v, replacement)
	}
	if newWork == e.Work && newSpan == e.Span && newProc == e.Processors && newSync == e.SyncOverhead {
		return e
	}
	return &Parallel{
		Work: newWork, Span: newSpan, Processors: newProc,
		Pattern: e.Pattern, TaskBased: e.TaskBased,
		SyncOverhead: newSync, Description: e.Description,
	}
}

// Evaluate of a Parallel expression reports its wall-clock ParallelTime,
// the quantity callers most often want from a parallel cost model.
func (e *Parallel) Evaluate(binding map[variable.Variable]float64) (float64, bool) {
	return e.ParallelTime().Evaluate(binding)
}

func (e *Parallel) RenderBigO() string {
	return fmt.Sprintf("O(work=%s, span=%s)", stripO(e.Work.RenderBigO()), stripO(e.Span.RenderBigO()))
}

func (e *Parallel) Accept(v Visitor) Expr { return v.VisitParallel(e) }

// ProbabilisticSource records where an expected/worst split came from.
type ProbabilisticSource int

const (
	SourceUnknown ProbabilisticSource = iota
	SourceRandomizedAlgorithm
	SourceRandomInput
	SourceAmortizedAnalysis
	SourceHashCollisionModel
)

// Probabilistic carries an expected-case and a worst-case expression,
// optionally a best case, variance, and a high-probability bound.
type Probabilistic struct {
	Expected     Expr
	Worst        Expr
	Best         Expr // optional, may be nil
	Source       ProbabilisticSource
	Distribution string
	Variance     Expr // optional, may be nil
	HighProb     Expr // optional, may be nil
	Assumptions  []string
	Description  string
}

func (e *Probabilistic) exprNode() {}

func (e *Probabilistic) FreeVariables() variable.Set {
	children := []Expr{e.Expected, e.Worst}
	if e.Best != nil {
		children = append(children, e.Best)
	}
	if e.Variance != nil {
		children = append(children, e.Variance)
	}
	if e.HighProb != nil {
		children = append(children, e.HighProb)
	}
	return freeVarsOfChildren(children...)
}

func (e *Probabilistic) Substitute(v variable.Variable, replacement Expr) Expr {
	sub := func(x Expr) Expr {
		if x == nil {
			return nil
		}
		return x.Substitute(v, replacement)
	}
	newExpected, newWorst := sub(e.Expected), sub(e.Worst)
	newBest, newVariance, newHighProb := sub(e.Best), sub(e.Variance), sub(e.HighProb)
	if newExpected == e.Expected && newWorst == e.Worst && newBest == e.Best &&
		newVariance == e.Variance && newHighProb == e.HighProb {
		return e
	}
	return &Probabilistic{
		Expected: newExpected, Worst: newWorst, Best: newBest,
		Source: e.Source, Distribution: e.Distribution, Variance: newVariance,
		HighProb: newHighProb, Assumptions: e.Assumptions, Description: e.Description,
	}
}

// Evaluate of a Probabilistic expression conservatively reports the worst
// case, consistent with §4.9's conservative-result contract.
func (e *Probabilistic) Evaluate(binding map[variable.Variable]float64) (float64, bool) {
	return e.Worst.Evaluate(binding)
}

func (e *Probabilistic) RenderBigO() string {
	return fmt.Sprintf("O(%s) expected, O(%s) worst", stripO(e.Expected.RenderBigO()), stripO(e.Worst.RenderBigO()))
}

func (e *Probabilistic) Accept(v Visitor) Expr { return v.VisitProbabilistic(e) }
