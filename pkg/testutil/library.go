package testutil

import (
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/arthur-debert/mediatidy/pkg/filesystem"
	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/stretchr/testify/require"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// Library is a media library root backed by a test filesystem
type Library struct {
	Root string
	FS   types.FS
	Type EnvType

	t *testing.T
}

// NewLibrary creates an empty library
func NewLibrary(t *testing.T, envType EnvType) *Library {
	t.Helper()

	lib := &Library{t: t, Type: envType}
	switch envType {
	case EnvIsolated:
		lib.Root = filepath.Join(t.TempDir(), "library")
		lib.FS = filesystem.NewOS()
	default:
		lib.Root = "/library"
		lib.FS = filesystem.NewMemoryFS()
	}
	require.NoError(t, lib.FS.MkdirAll(lib.Root, 0755))
	return lib
}

// Path returns the absolute path of a library-relative path
func (l *Library) Path(rel string) string {
	return filepath.Join(l.Root, filepath.FromSlash(rel))
}

// Rel returns path relative to the root, with forward slashes
func (l *Library) Rel(path string) string {
	rel, err := filepath.Rel(l.Root, path)
	require.NoError(l.t, err)
	return filepath.ToSlash(rel)
}

// WriteFile creates rel with content, creating parents. Returns the absolute path.
func (l *Library) WriteFile(rel, content string) string {
	l.t.Helper()

	path := l.Path(rel)
	require.NoError(l.t, l.FS.MkdirAll(filepath.Dir(path), 0755))
	w, err := l.FS.Create(path)
	require.NoError(l.t, err, "creating %s", rel)
	_, err = io.WriteString(w, content)
	require.NoError(l.t, err)
	require.NoError(l.t, w.Close())
	return path
}

// Mkdir creates the directory rel and its parents
func (l *Library) Mkdir(rel string) string {
	l.t.Helper()

	path := l.Path(rel)
	require.NoError(l.t, l.FS.MkdirAll(path, 0755))
	return path
}

// ReadFile returns the content of rel
func (l *Library) ReadFile(rel string) string {
	l.t.Helper()

	r, err := l.FS.Open(l.Path(rel))
	require.NoError(l.t, err, "opening %s", rel)
	defer func() {
		_ = r.Close()
	}()
	data, err := io.ReadAll(r)
	require.NoError(l.t, err)
	return string(data)
}

// Exists reports whether rel exists
func (l *Library) Exists(rel string) bool {
	_, err := l.FS.Stat(l.Path(rel))
	return err == nil
}

// Files returns every file in the library, relative and sorted
func (l *Library) Files() []string {
	var out []string
	l.visit(l.Root, func(path string, entry fs.DirEntry) {
		if !entry.IsDir() {
			out = append(out, l.Rel(path))
		}
	})
	sort.Strings(out)
	return out
}

// Dirs returns every directory below the root, relative and sorted
func (l *Library) Dirs() []string {
	var out []string
	l.visit(l.Root, func(path string, entry fs.DirEntry) {
		if entry.IsDir() {
			out = append(out, l.Rel(path))
		}
	})
	sort.Strings(out)
	return out
}

func (l *Library) visit(dir string, fn func(path string, entry fs.DirEntry)) {
	l.t.Helper()

	entries, err := l.FS.ReadDir(dir)
	require.NoError(l.t, err)
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		fn(path, entry)
		if entry.IsDir() {
			l.visit(path, fn)
		}
	}
}

// Tree renders the library as one relative path per line, for failure messages
func (l *Library) Tree() string {
	return strings.Join(l.Files(), "\n")
}
