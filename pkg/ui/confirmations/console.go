// Package confirmations provides the Confirmer implementations: an
// interactive console dialog, a scripted one for tests and one that approves
// everything for unattended runs.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/logging"
	"github.com/arthur-debert/mediatidy/pkg/types"
	"github.com/pterm/pterm"
)

// maxListedItems caps how many affected paths are printed before "and N more"
const maxListedItems = 10

// ConsoleDialog asks questions on a terminal
type ConsoleDialog struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleDialog creates a dialog on stdin/stdout
func NewConsoleDialog() *ConsoleDialog {
	return NewConsoleDialogWithIO(os.Stdin, os.Stdout)
}

// NewConsoleDialogWithIO creates a dialog on the given streams
func NewConsoleDialogWithIO(in io.Reader, out io.Writer) *ConsoleDialog {
	return &ConsoleDialog{in: bufio.NewReader(in), out: out}
}

// Ask implements types.Confirmer. y/yes is Yes, n/no is No and anything
// else, including an empty line, is Cancel.
func (d *ConsoleDialog) Ask(prompt types.Prompt) (types.Answer, error) {
	logger := logging.GetLogger("ui.confirmations")

	_, _ = fmt.Fprintln(d.out)
	if len(prompt.Items) > 0 {
		shown := prompt.Items
		if len(shown) > maxListedItems {
			shown = shown[:maxListedItems]
		}
		for _, item := range shown {
			_, _ = fmt.Fprintf(d.out, "  └── %s\n", item)
		}
		if rest := len(prompt.Items) - len(shown); rest > 0 {
			_, _ = fmt.Fprintf(d.out, "  └── and %d more\n", rest)
		}
	}

	marker := "[y/N]"
	if prompt.Cancelable {
		marker = "[y/n/C]"
	}
	_, _ = fmt.Fprintf(d.out, "%s %s: ", pterm.Bold.Sprint(prompt.Question), marker)

	line, err := d.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			// Closed input cancels rather than fails
			_, _ = fmt.Fprintln(d.out)
			logger.Debug().Str("prompt", prompt.ID).Msg("Input closed, treating as cancel")
			return types.AnswerCancel, nil
		}
		return types.AnswerCancel, errors.Wrapf(err, errors.ErrPromptRead, "failed to read answer for %s", prompt.ID)
	}

	answer := ParseAnswer(line)
	logger.Info().
		Str("prompt", prompt.ID).
		Str("pass", prompt.Pass).
		Str("answer", answer.String()).
		Msg("Prompt answered")
	return answer, nil
}

// ParseAnswer maps a typed reply onto an Answer
func ParseAnswer(s string) types.Answer {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return types.AnswerYes
	case "n", "no":
		return types.AnswerNo
	default:
		return types.AnswerCancel
	}
}
