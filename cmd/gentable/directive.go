// Command gentable scans a directory of annotated Go container/IO
// package stubs and emits the Go source for a supplemental built-in
// operation table (internal/builtins' Key -> AttributedComplexity
// map), the way the teacher's internal/ext/inspector.go inspects a
// dependency's exported surface to generate FFI bindings.
//
// A stub package documents each operation it wants in the table with
// a //complexity: directive line in the doc comment of the exported
// func or method implementing it:
//
//	// Index returns the element at position i.
//	//
//	//complexity:container=slice operation=index kind=constant coefficient=1 source=documented confidence=1 notes="contiguous storage"
//	func (s Slice) Index(i int) int { ... }
//
// gentable does not execute the stub's body; the directive is the
// sole source of truth; the function exists only so the complexity
// claim has a concrete, named, type-checked call site to attach to
// and so `go vet`/gofmt keep the stub package honest as Go source.
package main

import (
	"fmt"
	"strconv"
	"strings"
)

const directivePrefix = "complexity:"

// directive is one parsed //complexity: line.
type directive struct {
	Container   string
	Operation   string
	Kind        string // constant, logarithmic, polynomial, polylog, exponential, factorial, vPlusE
	Degree      float64
	LogExponent float64
	Coefficient float64
	Base        float64
	Source      string // documented, empirical, heuristic
	Confidence  float64
	Notes       string
	Review      string // non-empty marks RequiresReview with this reason
}

// parseDirective parses the fields of a //complexity: line (the part
// after the prefix has already been stripped by the caller).
func parseDirective(fields string) (directive, error) {
	d := directive{Coefficient: 1, Confidence: 1, Source: "documented"}
	for _, tok := range splitDirectiveFields(fields) {
		key, val, ok := strings.Cut(tok, "=")
		if !ok {
			return directive{}, fmt.Errorf("malformed field %q (want key=value)", tok)
		}
		val = strings.Trim(val, `"`)
		var err error
		switch key {
		case "container":
			d.Container = val
		case "operation":
			d.Operation = val
		case "kind":
			d.Kind = val
		case "degree":
			d.Degree, err = strconv.ParseFloat(val, 64)
		case "logexp":
			d.LogExponent, err = strconv.ParseFloat(val, 64)
		case "coefficient":
			d.Coefficient, err = strconv.ParseFloat(val, 64)
		case "base":
			d.Base, err = strconv.ParseFloat(val, 64)
		case "source":
			d.Source = val
		case "confidence":
			d.Confidence, err = strconv.ParseFloat(val, 64)
		case "notes":
			d.Notes = val
		case "review":
			d.Review = val
		default:
			return directive{}, fmt.Errorf("unknown field %q", key)
		}
		if err != nil {
			return directive{}, fmt.Errorf("field %q: %w", key, err)
		}
	}
	if d.Container == "" || d.Operation == "" || d.Kind == "" {
		return directive{}, fmt.Errorf("directive missing required container/operation/kind: %q", fields)
	}
	return d, nil
}

// splitDirectiveFields splits on spaces outside of double quotes, so
// a quoted notes="..." value can itself contain spaces.
func splitDirectiveFields(s string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for _, r := range s {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			cur.WriteRune(r)
		case r == ' ' && !inQuotes:
			if cur.Len() > 0 {
				fields = append(fields, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		fields = append(fields, cur.String())
	}
	return fields
}

// directiveLine extracts the field string from a raw comment line,
// e.g. "//complexity:container=slice ..." -> "container=slice ...".
// It returns ok=false for any comment line that isn't a directive.
func directiveLine(line string) (string, bool) {
	line = strings.TrimSpace(strings.TrimPrefix(line, "//"))
	if !strings.HasPrefix(line, directivePrefix) {
		return "", false
	}
	return strings.TrimPrefix(line, directivePrefix), true
}
