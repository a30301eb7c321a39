package types_test

import (
	"testing"

	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byStem(r *types.FileRecord) (string, bool) {
	return r.Stem, true
}

func TestGroupBy(t *testing.T) {
	records := []*types.FileRecord{
		types.NewFileRecord("/lib/b.jpg", 1),
		types.NewFileRecord("/lib/a.heic", 1),
		types.NewFileRecord("/lib/b.mov", 1),
		types.NewFileRecord("/lib/a.mov", 1),
		types.NewFileRecord("/lib/c.jpg", 1),
	}
	records[4].Gone = true

	groups := types.GroupBy(records, byStem)
	require.Len(t, groups, 2)

	assert.Equal(t, "b", groups[0].Key, "keys come in first-seen order")
	assert.Equal(t, []*types.FileRecord{records[0], records[2]}, groups[0].Records)
	assert.Equal(t, "a", groups[1].Key)
	assert.Equal(t, []*types.FileRecord{records[1], records[3]}, groups[1].Records)
}

func TestGroupBy_SkipsUnkeyed(t *testing.T) {
	records := []*types.FileRecord{
		types.NewFileRecord("/lib/a.jpg", 1),
		types.NewFileRecord("/lib/b.jpg", 2),
	}
	groups := types.GroupBy(records, func(r *types.FileRecord) (string, bool) {
		return "", r.Size > 1
	})
	require.Len(t, groups, 1)
	assert.Equal(t, 1, groups[0].Len())
}

func TestMultiAndLive(t *testing.T) {
	records := []*types.FileRecord{
		types.NewFileRecord("/lib/a.jpg", 1),
		types.NewFileRecord("/lib/a.mov", 1),
		types.NewFileRecord("/lib/b.jpg", 1),
	}
	multi := types.Multi(types.GroupBy(records, byStem))
	require.Len(t, multi, 1)
	assert.Equal(t, "a", multi[0].Key)

	records[1].Gone = true
	assert.Equal(t, []*types.FileRecord{records[0], records[2]}, types.Live(records))
}
