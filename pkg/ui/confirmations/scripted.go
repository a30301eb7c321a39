package confirmations

import (
	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/types"
)

// Scripted answers prompts from a fixed script, for tests. Answers keyed by
// prompt ID are consumed in order; once a prompt's queue is empty the
// Default answer is used.
type Scripted struct {
	Answers map[string][]types.Answer
	Default types.Answer

	// Asked records every prompt in the order it was shown
	Asked []types.Prompt

	// Strict makes unscripted prompts an error instead of answering Default
	Strict bool
}

// NewScripted returns a confirmer answering Default to everything unscripted
func NewScripted(def types.Answer) *Scripted {
	return &Scripted{Answers: make(map[string][]types.Answer), Default: def}
}

// On queues answers for a prompt ID
func (s *Scripted) On(id string, answers ...types.Answer) *Scripted {
	s.Answers[id] = append(s.Answers[id], answers...)
	return s
}

// Ask implements types.Confirmer
func (s *Scripted) Ask(prompt types.Prompt) (types.Answer, error) {
	s.Asked = append(s.Asked, prompt)
	queue := s.Answers[prompt.ID]
	if len(queue) == 0 {
		if s.Strict {
			return types.AnswerCancel, errors.Newf(errors.ErrPromptRead, "unscripted prompt %s", prompt.ID)
		}
		return s.Default, nil
	}
	s.Answers[prompt.ID] = queue[1:]
	return queue[0], nil
}

// AskedIDs returns the IDs of the prompts shown so far
func (s *Scripted) AskedIDs() []string {
	ids := make([]string, 0, len(s.Asked))
	for _, p := range s.Asked {
		ids = append(ids, p.ID)
	}
	return ids
}

// AssumeYes approves every prompt except those listed in Deny, which it
// declines. It backs the --yes flag.
type AssumeYes struct {
	Deny []string
}

// Ask implements types.Confirmer
func (a AssumeYes) Ask(prompt types.Prompt) (types.Answer, error) {
	for _, id := range a.Deny {
		if prompt.ID == id {
			return types.AnswerNo, nil
		}
	}
	return types.AnswerYes, nil
}
