//go:build governance

package core_test

import (
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

// =============================================================================
// COHESION TEST - Core types must be shared by multiple packages
// =============================================================================

// TestGovernance_CoreCohesion verifies that types in pkg/core are genuinely
// shared across multiple packages. Single-use types belong to their sole
// consumer.
func TestGovernance_CoreCohesion(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedImports | packages.NeedTypes |
			packages.NeedTypesInfo | packages.NeedDeps,
	}
	pkgs, err := packages.Load(cfg, modulePath+"/...")
	if err != nil {
		t.Fatalf("Failed to load packages: %v", err)
	}

	coreDefs := make(map[types.Object]string)
	var corePkg *packages.Package
	for _, p := range pkgs {
		if p.PkgPath != modulePath+"/pkg/core" {
			continue
		}
		corePkg = p
		scope := p.Types.Scope()
		for _, name := range scope.Names() {
			if obj := scope.Lookup(name); obj.Exported() {
				coreDefs[obj] = name
			}
		}
		break
	}
	if corePkg == nil {
		t.Fatal("Could not find pkg/core")
	}

	usageMap := make(map[string]map[string]bool)
	for _, name := range coreDefs {
		usageMap[name] = make(map[string]bool)
	}

	base := modulePath + "/"
	for _, p := range pkgs {
		if p.PkgPath == corePkg.PkgPath || strings.HasSuffix(p.PkgPath, "_test") || p.TypesInfo == nil {
			continue
		}
		for _, obj := range p.TypesInfo.Uses {
			if name, ok := coreDefs[obj]; ok {
				usageMap[name][strings.TrimPrefix(p.PkgPath, base)] = true
			}
		}
	}

	for typeName, importers := range usageMap {
		if isCohesionAllowlisted(typeName) {
			continue
		}
		switch len(importers) {
		case 0:
			t.Logf("WARNING: Unused Core Type: %s (consider deleting)", typeName)
		case 1:
			var user string
			for k := range importers {
				user = k
			}
			t.Errorf("COHESION VIOLATION: 'core.%s' is used ONLY by '%s'.\n"+
				"   Fix: Move type from pkg/core to %s.",
				typeName, user, user)
		}
	}
}

// isCohesionAllowlisted returns true for names allowed to have single usage.
func isCohesionAllowlisted(name string) bool {
	allowlist := map[string]bool{
		"DefaultMaxFixPasses": true, // Read through FixConfig.GetMaxPasses elsewhere
		"RuleOptions":         true, // Element type of LintConfig.Rules
	}
	return allowlist[name]
}

// =============================================================================
// LAYERING TEST - The analysis core is pure
// =============================================================================

// purePackages transform in-memory declarations only. They must not reach
// the CLI layer, the file system or the process environment.
var purePackages = []string{
	"pkg/core",
	"pkg/model",
	"pkg/extract",
	"pkg/lint",
	"pkg/gen",
	"pkg/fix",
	"pkg/pipeline",
}

// forbiddenImports are stdlib packages a pure package may not import.
var forbiddenImports = map[string]string{
	"os":            "file system or environment access",
	"os/exec":       "process execution",
	"io/fs":         "file system access",
	"path/filepath": "file paths",
	"net":           "network access",
	"net/http":      "network access",
}

func TestGovernance_PureCore(t *testing.T) {
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedImports}
	pkgs, err := packages.Load(cfg, modulePath+"/pkg/...")
	if err != nil {
		t.Fatalf("Failed to load packages: %v", err)
	}

	pure := make(map[string]bool, len(purePackages))
	for _, p := range purePackages {
		pure[modulePath+"/"+p] = true
	}

	for _, p := range pkgs {
		// Rule packages live below pkg/lint/rules.
		if !pure[p.PkgPath] && !strings.HasPrefix(p.PkgPath, modulePath+"/pkg/lint/rules") {
			continue
		}
		for imp := range p.Imports {
			if reason, ok := forbiddenImports[imp]; ok {
				t.Errorf("LAYERING VIOLATION: '%s' imports %s (%s)",
					strings.TrimPrefix(p.PkgPath, modulePath+"/"), imp, reason)
			}
			if strings.HasPrefix(imp, modulePath+"/internal/cli") {
				t.Errorf("LAYERING VIOLATION: '%s' imports the CLI layer (%s)",
					strings.TrimPrefix(p.PkgPath, modulePath+"/"), imp)
			}
		}
	}
}
