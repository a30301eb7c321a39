package confirmations

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		in   string
		want types.Answer
	}{
		{"y", types.AnswerYes},
		{"YES\n", types.AnswerYes},
		{"  Yes  ", types.AnswerYes},
		{"n", types.AnswerNo},
		{"No\n", types.AnswerNo},
		{"", types.AnswerCancel},
		{"c", types.AnswerCancel},
		{"yep", types.AnswerCancel},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAnswer(tt.in))
		})
	}
}

func TestConsoleDialogAsk(t *testing.T) {
	var out bytes.Buffer
	d := NewConsoleDialogWithIO(strings.NewReader("y\nno\nwhat\n"), &out)

	prompt := types.Prompt{
		ID:       types.PromptLivePhotoDelete,
		Question: "Delete live photo companions?",
		Items:    []string{"IMG_1.MOV"},
	}

	answer, err := d.Ask(prompt)
	require.NoError(t, err)
	assert.Equal(t, types.AnswerYes, answer)
	assert.Contains(t, out.String(), "IMG_1.MOV")
	assert.Contains(t, out.String(), "[y/N]")

	answer, err = d.Ask(prompt)
	require.NoError(t, err)
	assert.Equal(t, types.AnswerNo, answer)

	prompt.Cancelable = true
	answer, err = d.Ask(prompt)
	require.NoError(t, err)
	assert.Equal(t, types.AnswerCancel, answer)
	assert.Contains(t, out.String(), "[y/n/C]")

	// Input exhausted
	answer, err = d.Ask(prompt)
	require.NoError(t, err)
	assert.Equal(t, types.AnswerCancel, answer)
}

func TestConsoleDialogLastLineWithoutNewline(t *testing.T) {
	d := NewConsoleDialogWithIO(strings.NewReader("yes"), &bytes.Buffer{})
	answer, err := d.Ask(types.Prompt{ID: "x", Question: "ok?"})
	require.NoError(t, err)
	assert.Equal(t, types.AnswerYes, answer)
}

func TestConsoleDialogTruncatesItems(t *testing.T) {
	var out bytes.Buffer
	d := NewConsoleDialogWithIO(strings.NewReader("n\n"), &out)

	items := make([]string, 15)
	for i := range items {
		items[i] = fmt.Sprintf("file-%02d.jpg", i)
	}
	_, err := d.Ask(types.Prompt{ID: "x", Question: "ok?", Items: items})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "file-09.jpg")
	assert.NotContains(t, out.String(), "file-10.jpg")
	assert.Contains(t, out.String(), "and 5 more")
}

func TestScripted(t *testing.T) {
	s := NewScripted(types.AnswerNo).
		On(types.PromptDedupPreview, types.AnswerYes, types.AnswerCancel)

	a, err := s.Ask(types.Prompt{ID: types.PromptDedupPreview})
	require.NoError(t, err)
	assert.Equal(t, types.AnswerYes, a)

	a, _ = s.Ask(types.Prompt{ID: types.PromptDedupPreview})
	assert.Equal(t, types.AnswerCancel, a)

	a, _ = s.Ask(types.Prompt{ID: types.PromptDedupPreview})
	assert.Equal(t, types.AnswerNo, a, "falls back to the default")

	assert.Equal(t, []string{
		types.PromptDedupPreview,
		types.PromptDedupPreview,
		types.PromptDedupPreview,
	}, s.AskedIDs())

	s.Strict = true
	_, err = s.Ask(types.Prompt{ID: types.PromptReapForce})
	assert.True(t, errors.IsErrorCode(err, errors.ErrPromptRead))
}

func TestAssumeYes(t *testing.T) {
	a, err := AssumeYes{}.Ask(types.Prompt{ID: types.PromptReapForce})
	require.NoError(t, err)
	assert.True(t, a.Approved())
}

func TestAssumeYesDeny(t *testing.T) {
	a := AssumeYes{Deny: []string{types.PromptReapForce}}

	answer, err := a.Ask(types.Prompt{ID: types.PromptReapForce})
	require.NoError(t, err)
	assert.Equal(t, types.AnswerNo, answer)

	answer, err = a.Ask(types.Prompt{ID: types.PromptDedupCommit})
	require.NoError(t, err)
	assert.Equal(t, types.AnswerYes, answer)
}
