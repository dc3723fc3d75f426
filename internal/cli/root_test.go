package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/smartgen/internal/cli/config"
	"github.com/leapstack-labs/smartgen/internal/cli/output"
	"github.com/leapstack-labs/smartgen/internal/cli/testutil"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	root := NewRootCmd()
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"check", "fix", "generate", "rules", "schema", "init", "version", "completion"} {
		assert.Contains(t, names, want)
	}
	for _, flag := range []string{"config", "project-dir", "snapshots", "parallel", "concurrency", "verbose", "output"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestRootCmd_CheckJSON(t *testing.T) {
	dir := testutil.SetupTestProject(t, nil)

	stdout, _, err := run(t, "--project-dir", dir, "-o", "json", "check")
	require.NoError(t, err, "warnings do not fail the run")

	var got output.CheckOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	_, perr := uuid.Parse(got.RunID)
	assert.NoError(t, perr, "run id %q", got.RunID)
	assert.Equal(t, 1, got.Summary.Files)
	require.Len(t, got.Types, 1)
	assert.Equal(t, "Color", got.Types[0].Name)

	var ids []string
	for _, d := range got.Types[0].Diagnostics {
		ids = append(ids, d.RuleID)
	}
	assert.Contains(t, ids, "CM04")
}

func TestRootCmd_ConfigFromProject(t *testing.T) {
	dir := testutil.SetupTestProject(t, nil)

	_, _, err := run(t, "--project-dir", dir, "rules", "-o", "json")
	require.NoError(t, err)

	cfg := config.GetCurrentConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, dir, cfg.ProjectRoot)
	assert.Equal(t, 4, cfg.Fix.GetMaxPasses())
	assert.Equal(t, []string{"snapshots"}, cfg.Snapshots)
}

func TestRootCmd_VerboseLogsToStderr(t *testing.T) {
	dir := testutil.SetupTestProject(t, nil)

	stdout, stderr, err := run(t, "--project-dir", dir, "-v", "-o", "markdown", "check")
	require.NoError(t, err)
	assert.Contains(t, stderr, "run_id=")
	assert.Contains(t, stderr, "level=DEBUG")
	assert.NotContains(t, stdout, "run_id=")
	testutil.AssertNoANSI(t, stdout)
	testutil.AssertValidMarkdown(t, stdout)
}

func TestRootCmd_InvalidOutput(t *testing.T) {
	dir := testutil.SetupTestProject(t, nil)

	_, _, err := run(t, "--project-dir", dir, "-o", "yaml", "rules")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestCompletionCommand(t *testing.T) {
	stdout, _, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, stdout, "smartgen")

	_, _, err = run(t, "completion", "tcsh")
	require.Error(t, err)
}
