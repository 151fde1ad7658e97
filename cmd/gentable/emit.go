package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const generatedHeader = `// Code generated by cmd/gentable from annotated container stubs. DO NOT EDIT.

package builtins

import (
	"github.com/complexity-analyzer/engine/internal/cexpr"
	"github.com/complexity-analyzer/engine/internal/result"
	"github.com/complexity-analyzer/engine/internal/variable"
)

func init() {
	n := variable.N
	for k, v := range generatedTable(n) {
		if _, exists := table[k]; !exists {
			table[k] = v
		}
	}
}

func generatedTable(n variable.Variable) map[Key]result.AttributedComplexity {
	return map[Key]result.AttributedComplexity{
`

// emit renders the generated Go source for entries, sorted by
// container then operation so repeated runs over the same stubs are
// byte-identical.
func emit(entries []scanned) (string, error) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Container != entries[j].Container {
			return entries[i].Container < entries[j].Container
		}
		return entries[i].Operation < entries[j].Operation
	})

	var b strings.Builder
	b.WriteString(generatedHeader)
	for _, e := range entries {
		line, err := emitEntry(e)
		if err != nil {
			return "", fmt.Errorf("%s: %w", e.pos, err)
		}
		b.WriteString(line)
	}
	b.WriteString("\t}\n}\n")
	return b.String(), nil
}

func emitEntry(e scanned) (string, error) {
	expr, err := emitExpr(e.directive)
	if err != nil {
		return "", err
	}
	source := emitSourceType(e.Source)
	key := fmt.Sprintf("{%q, %q}", e.Container, e.Operation)
	if e.Review != "" {
		return fmt.Sprintf("\t\t%s: flaggedEntry(%s, result.%s, %s, %q, %q),\n",
			key, expr, source, formatFloat(e.Confidence), e.Notes, e.Review), nil
	}
	return fmt.Sprintf("\t\t%s: entry(%s, result.%s, %s, %q),\n",
		key, expr, source, formatFloat(e.Confidence), e.Notes), nil
}

// emitExpr renders the cexpr construction matching internal/builtins'
// own init() idioms (cexpr.NewConst, cexpr.NewVar, cexpr.NewLog, ...),
// one arm per directive.Kind.
func emitExpr(d directive) (string, error) {
	coef := formatFloat(d.Coefficient)
	switch d.Kind {
	case "constant":
		return fmt.Sprintf("cexpr.NewConst(%s)", coef), nil
	case "logarithmic":
		base := formatFloat(orDefault(d.Base, 2))
		return fmt.Sprintf("cexpr.NewLog(%s, n, %s)", coef, base), nil
	case "polynomial":
		return fmt.Sprintf("cexpr.NewPoly(map[int]float64{%d: %s}, n)", int(d.Degree), coef), nil
	case "polylog":
		base := formatFloat(orDefault(d.Base, 2))
		return fmt.Sprintf("cexpr.NewPolyLog(%s, %s, n, %s, %s)",
			formatFloat(d.Degree), formatFloat(d.LogExponent), coef, base), nil
	case "exponential":
		base := formatFloat(orDefault(d.Base, 2))
		return fmt.Sprintf("cexpr.NewExp(%s, n, %s)", base, coef), nil
	case "factorial":
		return fmt.Sprintf("cexpr.NewFactorial(n, %s)", coef), nil
	case "vPlusE":
		return "&cexpr.Binary{Left: cexpr.NewVar(variable.V), Op: cexpr.Plus, Right: cexpr.NewVar(variable.E)}", nil
	default:
		return "", fmt.Errorf("unknown kind %q", d.Kind)
	}
}

func emitSourceType(s string) string {
	switch s {
	case "empirical":
		return "Empirical"
	case "heuristic":
		return "Heuristic"
	default:
		return "Documented"
	}
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
