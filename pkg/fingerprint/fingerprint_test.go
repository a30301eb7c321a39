package fingerprint

import (
	"strings"
	"testing"

	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/filesystem"
	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, files map[string]string) (afero.Fs, *Fingerprinter) {
	t.Helper()
	mem := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(mem, path, []byte(content), 0644))
	}
	return mem, New(filesystem.NewAferoFS(mem))
}

func TestFingerprint(t *testing.T) {
	_, fp := setup(t, map[string]string{
		"/lib/a.jpg": "same bytes",
		"/lib/b.jpg": "same bytes",
		"/lib/c.jpg": "other bytes",
	})

	a := types.NewFileRecord("/lib/a.jpg", 10)
	b := types.NewFileRecord("/lib/b.jpg", 10)
	c := types.NewFileRecord("/lib/c.jpg", 11)

	fa, err := fp.Fingerprint(a)
	require.NoError(t, err)
	fb, err := fp.Fingerprint(b)
	require.NoError(t, err)
	fc, err := fp.Fingerprint(c)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(fa, "blake3:"))
	assert.Equal(t, fa, fb)
	assert.NotEqual(t, fa, fc)
}

func TestFingerprintIsCached(t *testing.T) {
	mem, fp := setup(t, map[string]string{"/lib/a.jpg": "first"})
	r := types.NewFileRecord("/lib/a.jpg", 5)

	first, err := fp.Fingerprint(r)
	require.NoError(t, err)

	// Changing the bytes behind the engine's back must not change the cached value
	require.NoError(t, afero.WriteFile(mem, "/lib/a.jpg", []byte("second"), 0644))
	second, err := fp.Fingerprint(r)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestQuick(t *testing.T) {
	head := strings.Repeat("x", QuickSampleSize)
	_, fp := setup(t, map[string]string{
		"/lib/a.mov": head + "tail-a",
		"/lib/b.mov": head + "tail-b",
		"/lib/c.mov": "short",
	})

	qa, err := fp.Quick(types.NewFileRecord("/lib/a.mov", 0))
	require.NoError(t, err)
	qb, err := fp.Quick(types.NewFileRecord("/lib/b.mov", 0))
	require.NoError(t, err)
	qc, err := fp.Quick(types.NewFileRecord("/lib/c.mov", 0))
	require.NoError(t, err)

	assert.Equal(t, qa, qb, "only the leading sample is hashed")
	assert.NotEqual(t, qa, qc)
}

func TestMissingFile(t *testing.T) {
	_, fp := setup(t, nil)

	_, err := fp.Fingerprint(types.NewFileRecord("/lib/nope.jpg", 0))
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileHash))
}
