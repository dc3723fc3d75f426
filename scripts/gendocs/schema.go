package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/smartgen/pkg/core"
	"github.com/leapstack-labs/smartgen/pkg/lint"
	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

// generateSchemaDocs generates the configuration reference and the
// snapshot schema page.
func generateSchemaDocs(outDir string) error {
	log.Printf("Generating schema docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := generateConfigurationDoc(outDir); err != nil {
		return fmt.Errorf("failed to generate configuration.md: %w", err)
	}
	log.Printf("  Generated configuration.md")

	if err := generateSnapshotDoc(outDir); err != nil {
		return fmt.Errorf("failed to generate snapshots.md: %w", err)
	}
	log.Printf("  Generated snapshots.md")

	return nil
}

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Description string
}

// getConfigSchema returns the smartgen.yaml fields.
// This is based on internal/cli/config Config and pkg/core LintConfig/FixConfig.
func getConfigSchema() []ConfigField {
	return []ConfigField{
		{Name: "snapshots", Type: "[]string", Default: "[snapshots]", Description: "Snapshot files, directories or globs, relative to the project root"},
		{Name: "output", Type: "string", Default: "auto", Description: "Output format: auto, text, markdown, json"},
		{Name: "parallel", Type: "bool", Default: "false", Description: "Run rules in parallel within a declaration"},
		{Name: "concurrency", Type: "int", Default: "0", Description: "Declarations processed at once, 0 uses GOMAXPROCS"},
		{Name: "verbose", Type: "bool", Default: "false", Description: "Debug logging on stderr"},
		{Name: "lint.disabled", Type: "[]string", Default: "[]", Description: "Rule IDs to skip"},
		{Name: "lint.severity", Type: "map[string]string", Default: "{}", Description: "Per-rule severity overrides"},
		{Name: "lint.rules", Type: "map[string]map[string]any", Default: "{}", Description: "Rule-specific options"},
		{Name: "lint.docs_url", Type: "string", Default: lint.DefaultDocsBaseURL, Description: "Base URL of rule documentation links"},
		{Name: "fix.max_passes", Type: "int", Default: fmt.Sprint(core.DefaultMaxFixPasses), Description: "Upper bound on fix passes per declaration"},
	}
}

// generateConfigurationDoc generates the configuration reference page.
func generateConfigurationDoc(outDir string) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Configuration", "smartgen configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph("smartgen is configured via `smartgen.yaml`, searched upward from the working directory. Environment variables with the `SMARTGEN_` prefix and command-line flags override the file.")

	var rows [][]string
	for _, f := range getConfigSchema() {
		rows = append(rows, []string{InlineCode(f.Name), f.Type, InlineCode(f.Default), f.Description})
	}
	w.Table([]string{"Field", "Type", "Default", "Description"}, rows)

	w.Header(2, "Example")
	w.CodeBlock("yaml", `snapshots:
  - snapshots
  - legacy/**/*.json
output: auto
lint:
  disabled: [CM04]
  severity:
    EN01: warning
fix:
  max_passes: 8`)

	return os.WriteFile(filepath.Join(outDir, "configuration.md"), w.Bytes(), 0600)
}

// generateSnapshotDoc documents the snapshot format with its JSON Schema.
func generateSnapshotDoc(outDir string) error {
	schema, err := json.MarshalIndent(syntax.JSONSchema(), "", "  ")
	if err != nil {
		return err
	}

	w := NewMarkdownWriter()

	w.Frontmatter("Snapshots", "Declaration snapshot format")
	w.GeneratedMarker()

	w.Header(1, "Snapshots")
	w.Paragraph("A snapshot describes the declarations of one source file as YAML or JSON. `smartgen schema` prints the same schema for editor validation.")

	w.Header(2, "Example")
	w.CodeBlock("yaml", `file: Color.cs
types:
  - name: Color
    kind: class
    modifiers: [public, sealed, partial]
    annotations: [{name: SmartEnum, type_args: [{name: string}]}]
    members:
      - {kind: field, name: Red, type: {name: Color}, modifiers: [public, static, readonly]}`)

	w.Header(2, "JSON Schema")
	w.CodeBlock("json", string(schema))

	return os.WriteFile(filepath.Join(outDir, "snapshots.md"), w.Bytes(), 0600)
}
