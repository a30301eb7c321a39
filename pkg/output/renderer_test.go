package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResult() *types.RunResult {
	classify := types.NewPassResult(types.PassClassify)
	classify.Record(types.PassItem{
		Path:   "/library/inbox/IMG_1.jpg",
		Target: "/library/2023/Jan/IMG_1.jpg",
		Status: types.StatusMoved,
	})
	classify.Record(types.PassItem{
		Path:    "/library/inbox/IMG_2.jpg",
		Status:  types.StatusSkipped,
		Message: "destination exists",
	})
	classify.Summary = "1 moved, 0 already in place, 1 skipped, 0 failed"

	dedup := types.NewPassResult(types.PassDedup)
	dedup.Found = 2
	dedup.Declined = true
	dedup.Summary = "declined, nothing deleted"

	return &types.RunResult{
		Command:   "organize",
		Root:      "/library",
		Passes:    []types.PassResult{classify, dedup},
		Timestamp: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestTextRenderResult(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewText(&buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleResult()))
	out := buf.String()

	for _, want := range []string{
		"mediatidy organize",
		"Sorting by capture date",
		"moved    inbox/IMG_1.jpg -> 2023/Jan/IMG_1.jpg",
		"skipped  inbox/IMG_2.jpg (destination exists)",
		"1 moved, 0 already in place, 1 skipped, 0 failed",
		"Removing duplicates",
		"declined, nothing deleted",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "[moved]")
	assert.NotContains(t, out, "[/title]")
	assert.NotContains(t, out, "\x1b[", "text output has no ANSI codes")
}

func TestTerminalRenderResult(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewTerminal(&buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleResult()))
	out := buf.String()
	assert.Contains(t, out, "IMG_1.jpg")
	assert.NotContains(t, out, "[moved]")
}

func TestTextRenderError(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewText(&buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderError(errors.New(errors.ErrInvalidInput, "target is not a folder")))
	assert.Equal(t, "Error: [INVALID_INPUT] target is not a folder\n", buf.String())
}

func TestJSONRenderResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSON(&buf).RenderResult(sampleResult()))

	var decoded types.RunResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "organize", decoded.Command)
	require.Len(t, decoded.Passes, 2)
	assert.Equal(t, types.PassClassify, decoded.Passes[0].Pass)
	assert.Equal(t, 1, decoded.Passes[0].Acted)
	assert.True(t, decoded.Passes[1].Declined)
}

func TestJSONRenderError(t *testing.T) {
	var buf bytes.Buffer
	err := errors.New(errors.ErrDurationUnavailable, "exiftool missing").WithDetail("binary", "exiftool")
	require.NoError(t, NewJSON(&buf).RenderError(err))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "DURATION_UNAVAILABLE", decoded["code"])
	assert.Equal(t, map[string]interface{}{"binary": "exiftool"}, decoded["details"])
}

func TestYAMLRenderResult(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAML(&buf).RenderResult(sampleResult()))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "organize", decoded["command"])
	passes, ok := decoded["passes"].([]interface{})
	require.True(t, ok)
	assert.Len(t, passes, 2)
}

func TestRenderMessageStripsMarkupForMachines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSON(&buf).RenderMessage("[success]done[/success]"))
	assert.JSONEq(t, `{"message":"done"}`, buf.String())
}
