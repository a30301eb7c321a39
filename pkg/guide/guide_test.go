package guide

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicsEmbedded(t *testing.T) {
	data, err := fs.ReadFile(Topics(), Overview+".md")
	require.NoError(t, err)
	assert.Contains(t, string(data), "# mediatidy")

	entries, err := fs.ReadDir(Topics(), ".")
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names, "duplicates.md")
	assert.Contains(t, names, "option-yes.md")
}
