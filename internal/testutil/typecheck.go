// Package testutil provides helpers shared by the package tests: rapid
// generators for constructor values and a type-checker for compile-time
// rejection tests.
package testutil

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"testing"
)

// TypeCheck type-checks src as a single file placed in the calling test's
// working directory and returns the first type error, or nil.
// Imports, including this module's packages, are resolved from source.
func TypeCheck(t testing.TB, src string) error {
	t.Helper()
	if testing.Short() {
		t.Skip("type-checking from source is skipped in short mode")
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filepath.Join(wd, "typecheck_input.go"), src, 0)
	if err != nil {
		t.Fatalf("parse snippet: %v", err)
	}

	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	_, err = conf.Check("snippet", fset, []*ast.File{file}, nil)
	return err
}
