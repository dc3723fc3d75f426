package core_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const modulePath = "github.com/leapstack-labs/smartgen"

// parseImports returns the imports of every non-test Go file in dir.
func parseImports(t *testing.T, dir string) map[string][]string {
	t.Helper()
	fset := token.NewFileSet()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", dir, err)
	}

	imports := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") || strings.HasSuffix(entry.Name(), "_test.go") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", path, err)
			continue
		}
		for _, imp := range f.Imports {
			imports[entry.Name()] = append(imports[entry.Name()], strings.Trim(imp.Path.Value, `"`))
		}
	}
	return imports
}

// TestCoreImportsOnly verifies pkg/core only imports the standard library.
// The Golden Rule: all other packages depend on core, not the reverse.
func TestCoreImportsOnly(t *testing.T) {
	for file, imports := range parseImports(t, ".") {
		for _, imp := range imports {
			// Stdlib paths have no dot in the first element
			if !strings.Contains(strings.Split(imp, "/")[0], ".") {
				continue
			}
			t.Errorf("%s imports forbidden package: %s", file, imp)
		}
	}
}

// TestLibraryDoesNotImportInternal verifies the pkg/ tree stays usable by
// hosts: nothing below it may import internal packages.
func TestLibraryDoesNotImportInternal(t *testing.T) {
	root := ".."
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == "testdata" {
			return filepath.SkipDir
		}
		for file, imports := range parseImports(t, path) {
			for _, imp := range imports {
				if strings.HasPrefix(imp, modulePath+"/internal/") {
					t.Errorf("%s/%s imports internal package: %s", path, file, imp)
				}
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk pkg: %v", err)
	}
}
