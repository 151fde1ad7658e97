package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	dir := flag.String("dir", ".", "directory of annotated container/IO stub packages to scan (loaded as ./...)")
	out := flag.String("out", "", "output path for the generated table source (required)")
	flag.Parse()

	if *out == "" {
		fmt.Fprintln(os.Stderr, "gentable: -out is required")
		os.Exit(2)
	}

	if err := run(*dir, *out); err != nil {
		fmt.Fprintln(os.Stderr, "gentable:", err)
		os.Exit(1)
	}
}

func run(dir, out string) error {
	entries, err := scanPackages(dir)
	if err != nil {
		return err
	}
	src, err := emit(entries)
	if err != nil {
		return err
	}
	return os.WriteFile(out, []byte(src), 0o644)
}
