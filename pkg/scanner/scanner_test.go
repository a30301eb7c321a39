package scanner

import (
	"testing"

	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/testutil"
	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func relPaths(lib *testutil.Library, records []*types.FileRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, lib.Rel(r.Path))
	}
	return out
}

func TestWalkDiscoveryOrder(t *testing.T) {
	lib := testutil.NewLibrary(t, testutil.EnvMemoryOnly)
	lib.WriteFile("b/IMG_2.jpg", "2")
	lib.WriteFile("a/deep/IMG_9.jpg", "9")
	lib.WriteFile("a/IMG_3.jpg", "3")
	lib.WriteFile("z.jpg", "z")
	lib.WriteFile("c.mov", "c")

	records, err := New(lib.FS, Options{}).Walk(lib.Root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"c.mov",
		"z.jpg",
		"a/IMG_3.jpg",
		"a/deep/IMG_9.jpg",
		"b/IMG_2.jpg",
	}, relPaths(lib, records), "files of a directory come before its subdirectories")

	assert.Equal(t, "IMG_3", records[2].Stem)
	assert.Equal(t, ".jpg", records[2].Ext)
	assert.Equal(t, int64(1), records[2].Size)
}

func TestWalkExcludesAndIgnores(t *testing.T) {
	lib := testutil.NewLibrary(t, testutil.EnvMemoryOnly)
	lib.WriteFile("Duplicates/IMG_1.jpg", "q")
	lib.WriteFile("2023/Duplicates/IMG_5.jpg", "nested quarantine name")
	lib.WriteFile("2023/IMG_1.jpg", "1")
	lib.WriteFile(".DS_Store", "junk")
	lib.WriteFile("2023/Thumbs.db", "junk")
	lib.WriteFile("mediatidy.toml", "format = 'year'")

	s := New(lib.FS, Options{
		ExcludeDirs: []string{"Duplicates"},
		Ignore:      []string{".ds_store", "thumbs.db", "mediatidy.toml"},
	})
	records, err := s.Walk(lib.Root)
	require.NoError(t, err)

	assert.Equal(t, []string{"2023/IMG_1.jpg"}, relPaths(lib, records))
}

func TestWalkInvalidRoot(t *testing.T) {
	lib := testutil.NewLibrary(t, testutil.EnvMemoryOnly)
	file := lib.WriteFile("a.jpg", "a")
	s := New(lib.FS, Options{})

	_, err := s.Walk(lib.Path("missing"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = s.Walk(file)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestDirsBottomUp(t *testing.T) {
	lib := testutil.NewLibrary(t, testutil.EnvMemoryOnly)
	lib.Mkdir("2023/Jan")
	lib.Mkdir("old/empty/deeper")
	lib.Mkdir("Duplicates/x")
	lib.WriteFile("old/keep.jpg", "k")

	dirs, err := New(lib.FS, Options{ExcludeDirs: []string{"Duplicates"}}).Dirs(lib.Root)
	require.NoError(t, err)

	var rel []string
	for _, d := range dirs {
		rel = append(rel, lib.Rel(d))
	}
	assert.Equal(t, []string{
		"2023/Jan",
		"2023",
		"old/empty/deeper",
		"old/empty",
		"old",
	}, rel)
}

func TestWalkIsolated(t *testing.T) {
	lib := testutil.NewLibrary(t, testutil.EnvIsolated)
	lib.WriteFile("x/IMG_1.HEIC", "h")
	lib.WriteFile("IMG_1.MOV", "m")

	records, err := New(lib.FS, Options{}).Walk(lib.Root)
	require.NoError(t, err)
	assert.Equal(t, []string{"IMG_1.MOV", "x/IMG_1.HEIC"}, relPaths(lib, records))
}
