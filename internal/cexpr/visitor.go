package cexpr

// Visitor is the double-dispatch interface for expression traversal. One
// visit method per variant, mirroring internal/ast's per-node-type Visitor.
// Transformation visitors (e.g. the transform package's simplifier) rebuild
// and return a new node; inspection-only visitors return the receiver.
type Visitor interface {
	VisitConst(e *Const) Expr
	VisitVar(e *Var) Expr
	VisitLinear(e *Linear) Expr
	VisitPoly(e *Poly) Expr
	VisitLog(e *Log) Expr
	VisitExp(e *Exp) Expr
	VisitFactorial(e *Factorial) Expr
	VisitPolyLog(e *PolyLog) Expr
	VisitPower(e *Power) Expr
	VisitLogOf(e *LogOf) Expr
	VisitExpOf(e *ExpOf) Expr
	VisitFactOf(e *FactOf) Expr
	VisitBinary(e *Binary) Expr
	VisitConditional(e *Conditional) Expr
	VisitParallel(e *Parallel) Expr
	VisitProbabilistic(e *Probabilistic) Expr
	VisitRecurrence(e *Recurrence) Expr
	VisitSymbolicIntegral(e *SymbolicIntegral) Expr
	VisitSpecialFunction(e *SpecialFunction) Expr
}

// BaseVisitor is an embeddable default implementation of Visitor: every
// method is a pass-through that returns the node unchanged. Concrete
// visitors embed BaseVisitor and override only the variants they care
// about — the "default for unknown variants" spec.md §9 calls for.
type BaseVisitor struct{}

func (BaseVisitor) VisitConst(e *Const) Expr                         { return e }
func (BaseVisitor) VisitVar(e *Var) Expr                             { return e }
func (BaseVisitor) VisitLinear(e *Linear) Expr                       { return e }
func (BaseVisitor) VisitPoly(e *Poly) Expr                           { return e }
func (BaseVisitor) VisitLog(e *Log) Expr                             { return e }
func (BaseVisitor) VisitExp(e *Exp) Expr                             { return e }
func (BaseVisitor) VisitFactorial(e *Factorial) Expr                 { return e }
func (BaseVisitor) VisitPolyLog(e *PolyLog) Expr                     { return e }
func (BaseVisitor) VisitPower(e *Power) Expr                         { return e }
func (BaseVisitor) VisitLogOf(e *LogOf) Expr                         { return e }
func (BaseVisitor) VisitExpOf(e *ExpOf) Expr                         { return e }
func (BaseVisitor) VisitFactOf(e *FactOf) Expr                       { return e }
func (BaseVisitor) VisitBinary(e *Binary) Expr                       { return e }
func (BaseVisitor) VisitConditional(e *Conditional) Expr             { return e }
func (BaseVisitor) VisitParallel(e *Parallel) Expr                   { return e }
func (BaseVisitor) VisitProbabilistic(e *Probabilistic) Expr         { return e }
func (BaseVisitor) VisitRecurrence(e *Recurrence) Expr               { return e }
func (BaseVisitor) VisitSymbolicIntegral(e *SymbolicIntegral) Expr   { return e }
func (BaseVisitor) VisitSpecialFunction(e *SpecialFunction) Expr     { return e }
