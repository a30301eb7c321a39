package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertFiles checks that the library holds exactly the given files
func AssertFiles(t *testing.T, lib *Library, want ...string) bool {
	t.Helper()
	return assert.ElementsMatch(t, want, lib.Files(), "library tree:\n%s", lib.Tree())
}

// AssertFileContent checks a file exists with the given content
func AssertFileContent(t *testing.T, lib *Library, rel, want string) bool {
	t.Helper()
	if !assert.True(t, lib.Exists(rel), "%s should exist, library tree:\n%s", rel, lib.Tree()) {
		return false
	}
	return assert.Equal(t, want, lib.ReadFile(rel), "content of %s", rel)
}

// AssertMissing checks that none of the given paths exist
func AssertMissing(t *testing.T, lib *Library, rels ...string) bool {
	t.Helper()
	ok := true
	for _, rel := range rels {
		ok = assert.False(t, lib.Exists(rel), "%s should not exist", rel) && ok
	}
	return ok
}
