package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/smartgen/pkg/core"
)

func TestLoadFromDir(t *testing.T) {
	t.Run("no config file", func(t *testing.T) {
		cfg, err := LoadFromDir(t.TempDir())
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("defaults applied", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`
lint:
  disabled: [CM04]
`), 0600))

		cfg, err := LoadFromDir(dir)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, []string{"snapshots"}, cfg.Snapshots)
		assert.Equal(t, []string{"CM04"}, cfg.Lint.Disabled)
		assert.Equal(t, core.DefaultMaxFixPasses, cfg.Fix.MaxPasses)
	})

	t.Run("alternate name", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileNameAlt), []byte(`
snapshots: [decls]
fix:
  max_passes: 3
`), 0600))

		cfg, err := LoadFromDir(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"decls"}, cfg.Snapshots)
		assert.Equal(t, 3, cfg.Fix.GetMaxPasses())
	})

	t.Run("malformed file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("lint: [unclosed"), 0600))
		_, err := LoadFromDir(dir)
		assert.Error(t, err)
	})
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(root, ConfigFileName), []byte("{}"), 0600))

	assert.Equal(t, root, FindProjectRoot(nested))
	assert.Equal(t, root, FindProjectRoot(root))
}

func TestApplyDefaults_Nil(t *testing.T) {
	assert.NotPanics(t, func() { ApplyDefaults(nil) })
}
