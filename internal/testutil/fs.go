// Package testutil provides filesystem helpers for tests.
package testutil

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

// NewMemFS creates an in-memory filesystem seeded with the given files.
// Map keys are paths, values are file contents.
func NewMemFS(t *testing.T, files map[string]string) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	for path, content := range files {
		if err := util.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			t.Fatalf("seeding %s: %v", path, err)
		}
	}
	return fs
}

// ReadFile reads a file from the filesystem, failing the test on error.
func ReadFile(t *testing.T, fs billy.Filesystem, path string) string {
	t.Helper()
	data, err := util.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// FileExists reports whether a path exists on the filesystem.
func FileExists(fs billy.Filesystem, path string) bool {
	_, err := fs.Stat(path)
	return err == nil
}
