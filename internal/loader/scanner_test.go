package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/smartgen/internal/testutil"
)

const colorSnapshot = `
types:
  - name: Color
    kind: class
    modifiers: [public, sealed, partial]
    bases: [{name: ColorBase}]
    annotations: [{name: SmartEnum, type_args: [{name: int}]}]
`

const baseSnapshot = `
file: Base.cs
types:
  - name: ColorBase
    kind: class
    modifiers: [public, abstract]
`

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	}
}

func TestIsSnapshotFile(t *testing.T) {
	tests := map[string]bool{
		"color.yaml":       true,
		"color.YML":        true,
		"dir/color.json":   true,
		"color.cs":         false,
		".hidden.yaml":     false,
		"snapshots/.x.yml": false,
	}
	for name, want := range tests {
		assert.Equal(t, want, IsSnapshotFile(name), name)
	}
}

func TestScanner_ScanDir_SkipsHidden(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"a.yaml":            colorSnapshot,
		"nested/b.yml":      baseSnapshot,
		".hidden.yaml":      colorSnapshot,
		".cache/c.yaml":     colorSnapshot,
		"nested/readme.txt": "not a snapshot",
	})

	s := NewScanner(root, testutil.NewTestLogger(t))
	paths, err := s.ScanDir(root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.yaml"),
		filepath.Join(root, "nested", "b.yml"),
	}, paths)
}

func TestScanner_Discover(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"snapshots/a.yaml": colorSnapshot,
		"snapshots/b.yaml": baseSnapshot,
		"extra/c.json":     `{"types": []}`,
	})

	s := NewScanner(root, nil)
	paths, err := s.Discover([]string{"snapshots", "extra/*.json", "snapshots/a.yaml", "missing/*.yaml"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "extra", "c.json"),
		filepath.Join(root, "snapshots", "a.yaml"),
		filepath.Join(root, "snapshots", "b.yaml"),
	}, paths)

	_, err = s.Discover([]string{"[bad"})
	assert.Error(t, err)
}

func TestScanner_Load(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"snapshots/color.yaml": colorSnapshot,
		"snapshots/base.yaml":  baseSnapshot,
		"snapshots/bad.yaml":   "types: [{kind: class}]",
	})

	s := NewScanner(root, testutil.NewTestLogger(t))
	paths, err := s.Discover([]string{"snapshots"})
	require.NoError(t, err)

	res := s.Load(paths)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, filepath.Join(root, "snapshots", "bad.yaml"), res.Errors[0].Path)
	assert.Contains(t, res.Errors[0].Error(), "has no name")
	require.Len(t, res.Files, 2)

	decls := res.Decls()
	require.Len(t, decls, 2)
	// Files are sorted, so base.yaml comes first.
	assert.Equal(t, "ColorBase", decls[0].Name)
	assert.Equal(t, "Base.cs", decls[0].File)

	color := decls[1]
	assert.Equal(t, "snapshots/color.yaml", color.File)
	require.Len(t, color.Bases, 1)
	assert.Same(t, decls[0], color.Bases[0].Ref, "base resolved across files")
	assert.Len(t, res.Files[0].Hash, 16)
}

func TestComputeHash(t *testing.T) {
	assert.Equal(t, ComputeHash([]byte("a")), ComputeHash([]byte("a")))
	assert.NotEqual(t, ComputeHash([]byte("a")), ComputeHash([]byte("b")))
}
