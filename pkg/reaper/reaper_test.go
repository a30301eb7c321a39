package reaper

import (
	"testing"

	"github.com/arthur-debert/mediatidy/pkg/testutil"
	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/arthur-debert/mediatidy/pkg/ui/confirmations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReapKeepsCategoryFolders(t *testing.T) {
	lib := testutil.NewLibrary(t, testutil.EnvMemoryOnly)
	lib.Mkdir("2023/Jan")
	lib.Mkdir("Uncategorized")
	lib.Mkdir("1999")
	lib.Mkdir("Holidays")

	folders := types.NewCreatedFolderSet()
	folders.Add(lib.Path("2023"))
	folders.Add(lib.Path("2023/Jan"))
	folders.Add(lib.Path("Holidays"))

	confirm := confirmations.NewScripted(types.AnswerYes)
	result, err := New(lib.FS, confirm, Options{Root: lib.Root}).Reap(folders)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Found)
	assert.Equal(t, []string{"1999", "2023", "2023/Jan", "Holidays", "Uncategorized"}, lib.Dirs())
	assert.Empty(t, confirm.Asked)
}

func TestReapRemovesEmptyBottomUp(t *testing.T) {
	lib := testutil.NewLibrary(t, testutil.EnvMemoryOnly)
	lib.Mkdir("old/inbox/nested")
	lib.Mkdir("2023/leftover")
	lib.WriteFile("2023/IMG_1.jpg", "x")

	result, err := New(lib.FS, confirmations.NewScripted(types.AnswerCancel), Options{Root: lib.Root}).Reap(nil)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Acted)
	assert.Equal(t, []string{"2023"}, lib.Dirs())
	testutil.AssertFiles(t, lib, "2023/IMG_1.jpg")
}

func TestReapNonEmptyPrompts(t *testing.T) {
	tests := []struct {
		name     string
		answer   types.Answer
		wantDirs []string
		wantFile bool
	}{
		{"yes force deletes", types.AnswerYes, nil, false},
		{"no keeps", types.AnswerNo, []string{"misc"}, true},
		{"cancel keeps", types.AnswerCancel, []string{"misc"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := testutil.NewLibrary(t, testutil.EnvMemoryOnly)
			lib.WriteFile("misc/notes.txt", "keep me?")

			confirm := confirmations.NewScripted(tt.answer)
			result, err := New(lib.FS, confirm, Options{Root: lib.Root}).Reap(types.NewCreatedFolderSet())
			require.NoError(t, err)

			assert.Equal(t, tt.wantDirs, lib.Dirs())
			assert.Equal(t, tt.wantFile, lib.Exists("misc/notes.txt"))
			require.Len(t, confirm.Asked, 1)
			assert.Equal(t, types.PromptReapForce, confirm.Asked[0].ID)
			assert.Equal(t, []string{"notes.txt"}, confirm.Asked[0].Items)
			assert.Equal(t, 1, result.Found)
		})
	}
}

func TestReapNeverRemovesRoot(t *testing.T) {
	lib := testutil.NewLibrary(t, testutil.EnvMemoryOnly)

	result, err := New(lib.FS, confirmations.AssumeYes{}, Options{Root: lib.Root}).Reap(nil)
	require.NoError(t, err)
	assert.Equal(t, "no folders to clean up", result.Summary)
	assert.True(t, lib.Exists("."))
}

func TestReapSkipsExcludedDirs(t *testing.T) {
	lib := testutil.NewLibrary(t, testutil.EnvMemoryOnly)
	lib.Mkdir("Duplicates/empty")

	_, err := New(lib.FS, confirmations.AssumeYes{}, Options{Root: lib.Root, ExcludeDirs: []string{"Duplicates"}}).Reap(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Duplicates", "Duplicates/empty"}, lib.Dirs())
}

func TestProtected(t *testing.T) {
	r := New(nil, nil, Options{Root: "/lib", Uncategorized: "Undated"})
	folders := types.NewCreatedFolderSet()
	folders.Add("/lib/Trips")

	assert.True(t, r.Protected("Trips", folders))
	assert.True(t, r.Protected("2020", folders))
	assert.True(t, r.Protected("Mar", folders))
	assert.True(t, r.Protected("Undated", folders))
	assert.False(t, r.Protected("Uncategorized", folders))
	assert.False(t, r.Protected("20201", folders))
	assert.False(t, r.Protected("misc", nil))
}
