package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/smartgen/internal/testutil"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("project-dir", "", "")
	fs.StringSlice("snapshots", nil, "")
	fs.BoolP("verbose", "v", false, "")
	fs.StringP("output", "o", "", "")
	fs.Int("max-passes", 0, "")
	return fs
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "smartgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Cleanup(ResetConfig)
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"snapshots"}, cfg.Snapshots)
	assert.Equal(t, "auto", cfg.OutputFormat)
	assert.Equal(t, 8, cfg.Fix.GetMaxPasses())
	assert.False(t, cfg.Verbose)
	assert.Equal(t, dir, cfg.ProjectRoot)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_Precedence(t *testing.T) {
	t.Cleanup(ResetConfig)
	dir := t.TempDir()
	path := writeConfig(t, dir, `
snapshots: [decls]
output: markdown
fix:
  max_passes: 4
lint:
  disabled: [CM04]
  severity:
    EN06: error
`)

	t.Run("file over defaults", func(t *testing.T) {
		cfg, err := LoadConfig(path, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"decls"}, cfg.Snapshots)
		assert.Equal(t, "markdown", cfg.OutputFormat)
		assert.Equal(t, 4, cfg.Fix.MaxPasses)
		assert.Equal(t, []string{"CM04"}, cfg.Lint.Disabled)
		assert.Equal(t, "error", cfg.Lint.Severity["EN06"])
		assert.Equal(t, dir, cfg.ProjectRoot)
		assert.Equal(t, path, GetConfigFileUsed())
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("SMARTGEN_OUTPUT", "json")
		t.Setenv("SMARTGEN_FIX__MAX_PASSES", "2")
		cfg, err := LoadConfig(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.OutputFormat)
		assert.Equal(t, 2, cfg.Fix.MaxPasses)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv("SMARTGEN_OUTPUT", "json")
		fs := testFlags()
		require.NoError(t, fs.Parse([]string{"-o", "text", "--max-passes", "6", "--snapshots", "a,b"}))
		cfg, err := LoadConfig(path, fs)
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.OutputFormat)
		assert.Equal(t, 6, cfg.Fix.MaxPasses)
		assert.Equal(t, []string{"a", "b"}, cfg.Snapshots)
	})

	t.Run("unchanged flags ignored", func(t *testing.T) {
		fs := testFlags()
		require.NoError(t, fs.Parse(nil))
		cfg, err := LoadConfig(path, fs)
		require.NoError(t, err)
		assert.Equal(t, "markdown", cfg.OutputFormat)
	})
}

func TestLoadConfig_ProjectRoot(t *testing.T) {
	t.Cleanup(ResetConfig)
	root := t.TempDir()
	writeConfig(t, root, "output: text\n")
	nested := filepath.Join(root, "src", "domain")
	require.NoError(t, os.MkdirAll(nested, 0750))

	t.Run("found upward", func(t *testing.T) {
		t.Chdir(nested)
		cfg, err := LoadConfig("", nil)
		require.NoError(t, err)
		assert.Equal(t, root, cfg.ProjectRoot)
		assert.Equal(t, "text", cfg.OutputFormat)
	})

	t.Run("explicit project dir", func(t *testing.T) {
		other := t.TempDir()
		t.Chdir(other)
		fs := testFlags()
		require.NoError(t, fs.Parse([]string{"--project-dir", root}))
		cfg, err := LoadConfig("", fs)
		require.NoError(t, err)
		assert.Equal(t, root, cfg.ProjectRoot)
		assert.Equal(t, filepath.Join(root, "smartgen.yaml"), GetConfigFileUsed())
	})
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Cleanup(ResetConfig)
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"), nil)
	assert.Error(t, err)

	path := writeConfig(t, dir, "lint:\n  severity:\n    EN06: fatal\n")
	_, err = LoadConfig(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lint.severity.EN06")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		errSubstr string
	}{
		{name: "zero value", cfg: Config{}},
		{name: "known output", cfg: Config{OutputFormat: "json"}},
		{name: "unknown output", cfg: Config{OutputFormat: "html"}, errSubstr: "unknown format"},
		{name: "negative concurrency", cfg: Config{Concurrency: -1}, errSubstr: "concurrency"},
		{name: "negative passes", cfg: Config{Fix: &FixConfig{MaxPasses: -2}}, errSubstr: "fix.max_passes"},
		{name: "bad severity", cfg: Config{Lint: &LintConfig{Severity: map[string]string{"ST01": "loud"}}}, errSubstr: "ST01"},
		{name: "docs url", cfg: Config{Lint: &LintConfig{DocsURL: "http://localhost:8080/rules"}}},
		{name: "relative docs url", cfg: Config{Lint: &LintConfig{DocsURL: "docs/rules"}}, errSubstr: "lint.docs_url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestConfig_Project(t *testing.T) {
	cfg := &Config{Snapshots: []string{"x"}, Parallel: true, Fix: &FixConfig{MaxPasses: 3}}
	p := cfg.Project()
	assert.Equal(t, []string{"x"}, p.Snapshots)
	assert.True(t, p.Parallel)
	assert.Equal(t, 3, p.Fix.GetMaxPasses())
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))

	logger := testutil.NewTestLogger(t)
	ctx := context.WithValue(context.Background(), LoggerKey(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}
