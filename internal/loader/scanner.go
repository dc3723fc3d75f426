// Package loader discovers declaration snapshots on disk and decodes them.
package loader

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leapstack-labs/smartgen/pkg/syntax"
)

// snapshotExts are the file extensions treated as snapshots.
var snapshotExts = map[string]bool{".yaml": true, ".yml": true, ".json": true}

// File is one decoded snapshot file.
type File struct {
	Path     string // Absolute path
	Hash     string // Content hash, used to skip unchanged files
	Snapshot *syntax.Snapshot
}

// LoadError records a file that could not be read or decoded.
type LoadError struct {
	Path    string
	Message string
}

func (e LoadError) Error() string {
	return e.Path + ": " + e.Message
}

// Result is the outcome of loading a set of snapshot files.
type Result struct {
	Files  []*File
	Errors []LoadError
}

// Decls returns every top-level declaration in file order.
func (r *Result) Decls() []*syntax.Decl {
	snaps := make([]*syntax.Snapshot, len(r.Files))
	for i, f := range r.Files {
		snaps[i] = f.Snapshot
	}
	return syntax.Decls(snaps...)
}

// Scanner finds and loads snapshot files below a project root.
type Scanner struct {
	root   string
	logger *slog.Logger
}

// NewScanner creates a scanner. Relative patterns resolve against root.
func NewScanner(root string, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &Scanner{root: root, logger: logger}
}

// IsSnapshotFile reports whether name looks like a snapshot file.
// Hidden files are never snapshots.
func IsSnapshotFile(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return snapshotExts[strings.ToLower(filepath.Ext(base))]
}

// Discover expands patterns into sorted, de-duplicated absolute paths.
// A pattern naming a directory is scanned recursively; anything else is a
// filepath.Match glob. Patterns matching nothing are not an error.
func (s *Scanner) Discover(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	add := func(p string) {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = filepath.Clean(p)
		}
		if !seen[abs] {
			seen[abs] = true
			paths = append(paths, abs)
		}
	}

	for _, pattern := range patterns {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(s.root, pattern)
		}
		if info, err := os.Stat(pattern); err == nil && info.IsDir() {
			found, err := s.ScanDir(pattern)
			if err != nil {
				return nil, err
			}
			for _, p := range found {
				add(p)
			}
			continue
		}
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("snapshot pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if IsSnapshotFile(m) {
				add(m)
			}
		}
	}

	sort.Strings(paths)
	s.logger.Debug("discovered snapshots", "patterns", len(patterns), "files", len(paths))
	return paths, nil
}

// ScanDir returns the snapshot files below dir, skipping hidden entries.
func (s *Scanner) ScanDir(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsSnapshotFile(d.Name()) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	return paths, nil
}

// Load reads and decodes paths, then links base references across all of
// them. A file that fails is recorded and the rest still load.
func (s *Scanner) Load(paths []string) *Result {
	res := &Result{}
	for _, path := range paths {
		f, err := s.loadFile(path)
		if err != nil {
			s.logger.Debug("snapshot load error", "path", path, "error", err.Error())
			res.Errors = append(res.Errors, LoadError{Path: path, Message: err.Error()})
			continue
		}
		s.logger.Debug("loaded snapshot", "path", path, "types", len(f.Snapshot.Types))
		res.Files = append(res.Files, f)
	}

	snaps := make([]*syntax.Snapshot, len(res.Files))
	for i, f := range res.Files {
		snaps[i] = f.Snapshot
	}
	syntax.Link(snaps...)
	return res
}

func (s *Scanner) loadFile(path string) (*File, error) {
	content, err := os.ReadFile(path) //nolint:gosec // G304: path comes from Discover
	if err != nil {
		return nil, err
	}
	snap, err := syntax.ParseSnapshot(content)
	if err != nil {
		return nil, err
	}
	if snap.File == "" {
		snap.File = s.rel(path)
	}
	return &File{Path: path, Hash: ComputeHash(content), Snapshot: snap}, nil
}

// rel makes path relative to the scanner root when possible.
func (s *Scanner) rel(path string) string {
	if r, err := filepath.Rel(s.root, path); err == nil && !strings.HasPrefix(r, "..") {
		return filepath.ToSlash(r)
	}
	return path
}

// ComputeHash returns a short content hash.
func ComputeHash(content []byte) string {
	h := sha256.Sum256(content)
	return hex.EncodeToString(h[:8])
}
