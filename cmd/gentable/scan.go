package main

import (
	"fmt"
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/packages"
)

// scanned is one directive paired with the source position it was
// found at, for error messages that point back at the stub.
type scanned struct {
	directive
	pos string
}

// scanPackages loads every Go package under dir (recursively, via the
// "./..." pattern) and returns the //complexity: directives attached
// to exported func/method doc comments across all of them.
//
// Grounded on internal/ext/inspector.go's loadPackages: the same
// packages.Config mode set, minus NeedDeps and NeedImports, which
// that tool needs to resolve third-party bindings but gentable does
// not — it only reads doc comments off declarations in dir itself.
func scanPackages(dir string) ([]scanned, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", dir, err)
	}

	var out []scanned
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			return nil, fmt.Errorf("%s: %s", pkg.PkgPath, e.Msg)
		}
		for _, file := range pkg.Syntax {
			fset := pkg.Fset
			found, err := scanFile(fset, file)
			if err != nil {
				return nil, fmt.Errorf("package %s: %w", pkg.PkgPath, err)
			}
			out = append(out, found...)
		}
	}
	return out, nil
}

func scanFile(fset *token.FileSet, file *ast.File) ([]scanned, error) {
	var out []scanned
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Doc == nil || !fn.Name.IsExported() {
			continue
		}
		for _, c := range fn.Doc.List {
			fields, ok := directiveLine(c.Text)
			if !ok {
				continue
			}
			d, err := parseDirective(fields)
			if err != nil {
				pos := fset.Position(c.Pos())
				return nil, fmt.Errorf("%s: %w", pos, err)
			}
			out = append(out, scanned{directive: d, pos: fset.Position(c.Pos()).String()})
		}
	}
	return out, nil
}
