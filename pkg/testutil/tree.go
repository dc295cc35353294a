// pkg/testutil/tree.go
// DEPENDENCIES: MemoryFS, afero
// PURPOSE: Build directory trees from path lists

package testutil

import (
	"path"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewTree builds a case-sensitive MemoryFS from a list of paths. Entries
// ending in "/" are created as directories, everything else as files.
func NewTree(t testing.TB, entries ...string) *MemoryFS {
	t.Helper()
	m := NewMemoryFS()
	BuildTree(t, m, entries...)
	return m
}

// BuildTree adds entries to an existing MemoryFS.
func BuildTree(t testing.TB, m *MemoryFS, entries ...string) {
	t.Helper()
	for _, entry := range entries {
		if isDirEntry(entry) {
			require.NoError(t, m.MkdirAll(entry), "mkdir %s", entry)
			continue
		}
		require.NoError(t, m.WriteFile(entry, int64(len(entry))), "write %s", entry)
	}
}

// BuildAferoTree writes the same kind of path list into an afero filesystem.
func BuildAferoTree(t testing.TB, fs afero.Fs, entries ...string) {
	t.Helper()
	for _, entry := range entries {
		if isDirEntry(entry) {
			require.NoError(t, fs.MkdirAll(entry, 0755), "mkdir %s", entry)
			continue
		}
		require.NoError(t, fs.MkdirAll(path.Dir(filepath.ToSlash(entry)), 0755), "mkdir parent of %s", entry)
		require.NoError(t, afero.WriteFile(fs, entry, []byte(entry), 0644), "write %s", entry)
	}
}

// AssertSamePaths fails the test unless got and want hold the same paths,
// ignoring order. Both lists are printed sorted on failure.
func AssertSamePaths(t testing.TB, want, got []string, msgAndArgs ...interface{}) bool {
	t.Helper()
	w := append([]string(nil), want...)
	g := append([]string(nil), got...)
	sort.Strings(w)
	sort.Strings(g)
	return assert.Equal(t, w, g, msgAndArgs...)
}

func isDirEntry(entry string) bool {
	return strings.HasSuffix(entry, "/") || strings.HasSuffix(entry, `\`)
}
