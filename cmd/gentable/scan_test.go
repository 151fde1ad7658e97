package main

import "testing"

func TestScanPackagesFindsExportedDirectivesOnly(t *testing.T) {
	found, err := scanPackages("testdata/containerstubs")
	if err != nil {
		t.Fatalf("scanPackages: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("scanPackages found %d directives, want 2 (Push, Search; unexportedHelper must be skipped)", len(found))
	}
	byOp := map[string]scanned{}
	for _, s := range found {
		byOp[s.Operation] = s
	}
	if _, ok := byOp["bogus"]; ok {
		t.Error("scanPackages must not surface directives on unexported funcs")
	}
	push, ok := byOp["push"]
	if !ok || push.Container != "ringBuffer" || push.Kind != "constant" {
		t.Errorf("push entry = %+v", push)
	}
	search, ok := byOp["search"]
	if !ok || search.Kind != "polynomial" || search.Degree != 1 {
		t.Errorf("search entry = %+v", search)
	}
}

func TestParseDirectiveRejectsMissingRequiredFields(t *testing.T) {
	if _, err := parseDirective("container=slice operation=index"); err == nil {
		t.Error("parseDirective should reject a directive with no kind")
	}
}

func TestParseDirectiveHandlesQuotedNotesWithSpaces(t *testing.T) {
	d, err := parseDirective(`container=slice operation=append kind=constant notes="amortized O(1): geometric growth"`)
	if err != nil {
		t.Fatalf("parseDirective: %v", err)
	}
	if d.Notes != "amortized O(1): geometric growth" {
		t.Errorf("Notes = %q", d.Notes)
	}
}
