package cexpr

import (
	"fmt"
	"math"

	"github.com/complexity-analyzer/engine/internal/variable"
)

// Log is a*log_base(v).
type Log struct {
	A    float64
	V    variable.Variable
	Base float64 // defaults to 2 via NewLog
}

func NewLog(a float64, v variable.Variable, base float64) *Log {
	if base <= 0 || base == 1 {
		base = 2
	}
	return &Log{A: a, V: v, Base: base}
}

func (e *Log) exprNode() {}
func (e *Log) FreeVariables() variable.Set { return variable.NewSet(e.V) }

func (e *Log) Substitute(v variable.Variable, replacement Expr) Expr {
	if r, ok := replacement.(*Var); !e.V.Equal(v) || (ok && r.V.Equal(v)) {
		return e
	}
	return &LogOf{Expr: replacement, Base: e.Base, A: e.A}
}

func (e *Log) Evaluate(binding map[variable.Variable]float64) (float64, bool) {
	val, ok := binding[e.V]
	if !ok || val <= 0 {
		return 0, false
	}
	return e.A * math.Log(val) / math.Log(e.Base), true
}

func (e *Log) RenderBigO() string { return fmt.Sprintf("O(log %s)", e.V.Name) }
func (e *Log) Accept(v Visitor) Expr { return v.VisitLog(e) }

// Exp is a*base^v.
type Exp struct {
	Base float64
	V    variable.Variable
	A    float64 // defaults to 1 via NewExp
}

func NewExp(base float64, v variable.Variable, a float64) *Exp {
	if a == 0 {
		a = 1
	}
	return &Exp{Base: base, V: v, A: a}
}

func (e *Exp) exprNode() {}
func (e *Exp) FreeVariables() variable.Set { return variable.NewSet(e.V) }

func (e *Exp) Substitute(v variable.Variable, replacement Expr) Expr {
	if r, ok := replacement.(*Var); !e.V.Equal(v) || (ok && r.V.Equal(v)) {
		return e
	}
	return &ExpOf{Base: e.Base, Expr: replacement, A: e.A}
}

func (e *Exp) Evaluate(binding map[variable.Variable]float64) (float64, bool) {
	val, ok := binding[e.V]
	if !ok {
		return 0, false
	}
	return e.A * math.Pow(e.Base, val), true
}

func (e *Exp) RenderBigO() string {
	return fmt.Sprintf("O(%s^%s)", trimFloat(e.Base), e.V.Name)
}
func (e *Exp) Accept(v Visitor) Expr { return v.VisitExp(e) }

// Factorial is a*v!.
type Factorial struct {
	V variable.Variable
	A float64 // defaults to 1 via NewFactorial
}

func NewFactorial(v variable.Variable, a float64) *Factorial {
	if a == 0 {
		a = 1
	}
	return &Factorial{V: v, A: a}
}

func (e *Factorial) exprNode() {}
func (e *Factorial) FreeVariables() variable.Set { return variable.NewSet(e.V) }

func (e *Factorial) Substitute(v variable.Variable, replacement Expr) Expr {
	if r, ok := replacement.(*Var); !e.V.Equal(v) || (ok && r.V.Equal(v)) {
		return e
	}
	return &FactOf{Expr: replacement, A: e.A}
}

func (e *Factorial) Evaluate(binding map[variable.Variable]float64) (float64, bool) {
	val, ok := binding[e.V]
	if !ok || val < 0 || val != math.Trunc(val) {
		return 0, false
	}
	return e.A * factorial(val), true
}

func (e *Factorial) RenderBigO() string { return fmt.Sprintf("O(%s!)", e.V.Name) }
func (e *Factorial) Accept(v Visitor) Expr { return v.VisitFactorial(e) }

func factorial(n float64) float64 {
	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
	}
	return result
}

// PolyLog is the unified n^polyDeg * (log_base n)^logExp form that covers
// most interesting algorithmic complexities.
type PolyLog struct {
	PolyDeg float64
	LogExp  float64
	V       variable.Variable
	Coef    float64
	Base    float64
}

func NewPolyLog(polyDeg, logExp float64, v variable.Variable, coef, base float64) *PolyLog {
	if coef == 0 {
		coef = 1
	}
	if base <= 0 || base == 1 {
		base = 2
	}
	return &PolyLog{PolyDeg: polyDeg, LogExp: logExp, V: v, Coef: coef, Base: base}
}

// IsPurePoly reports whether this has no logarithmic factor.
func (e *PolyLog) IsPurePoly() bool { return e.LogExp == 0 }

// IsPureLog reports whether this has no polynomial factor (polyDeg == 0).
func (e *PolyLog) IsPureLog() bool { return e.PolyDeg == 0 && e.LogExp != 0 }

// IsNLogN reports whether this is exactly n*log(n).
func (e *PolyLog) IsNLogN() bool { return e.PolyDeg == 1 && e.LogExp == 1 }

func (e *PolyLog) exprNode() {}
func (e *PolyLog) FreeVariables() variable.Set { return variable.NewSet(e.V) }

func (e *PolyLog) Substitute(v variable.Variable, replacement Expr) Expr {
	if r, ok := replacement.(*Var); !e.V.Equal(v) || (ok && r.V.Equal(v)) {
		return e
	}
	var poly Expr = &Power{Base: replacement, Exponent: e.PolyDeg}
	if e.LogExp == 0 {
		return &Binary{Left: NewConst(e.Coef), Op: Multiply, Right: poly}
	}
	logPart := &Power{Base: &LogOf{Expr: replacement, Base: e.Base, A: 1}, Exponent: e.LogExp}
	return &Binary{Left: NewConst(e.Coef), Op: Multiply, Right: &Binary{Left: poly, Op: Multiply, Right: logPart}}
}

func (e *PolyLog) Evaluate(binding map[variable.Variable]float64) (float64, bool) {
	val, ok := binding[e.V]
	if !ok || val <= 0 {
		return 0, false
	}
	logVal := math.Log(val) / math.Log(e.Base)
	if e.LogExp != 0 && logVal <= 0 {
		return 0, false
	}
	result := e.Coef * math.Pow(val, e.PolyDeg)
	if e.LogExp != 0 {
		result *= math.Pow(logVal, e.LogExp)
	}
	return result, true
}

func (e *PolyLog) RenderBigO() string {
	switch {
	case e.PolyDeg == 0 && e.LogExp == 0:
		return "O(1)"
	case e.IsPureLog():
		if e.LogExp == 1 {
			return fmt.Sprintf("O(log %s)", e.V.Name)
		}
		return fmt.Sprintf("O(log^%s %s)", trimFloat(e.LogExp), e.V.Name)
	case e.IsPurePoly():
		if e.PolyDeg == 1 {
			return fmt.Sprintf("O(%s)", e.V.Name)
		}
		return fmt.Sprintf("O(%s^%s)", e.V.Name, trimFloat(e.PolyDeg))
	default:
		polyPart := e.V.Name
		if e.PolyDeg != 1 {
			polyPart = fmt.Sprintf("%s^%s", e.V.Name, trimFloat(e.PolyDeg))
		}
		logPart := fmt.Sprintf("log %s", e.V.Name)
		if e.LogExp != 1 {
			logPart = fmt.Sprintf("log^%s %s", trimFloat(e.LogExp), e.V.Name)
		}
		return fmt.Sprintf("O(%s*%s)", polyPart, logPart)
	}
}

func (e *PolyLog) Accept(v Visitor) Expr { return v.VisitPolyLog(e) }
