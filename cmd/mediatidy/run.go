package mediatidy

import (
	"fmt"
	"os"

	"github.com/arthur-debert/mediatidy/pkg/errors"
	"github.com/arthur-debert/mediatidy/pkg/style"
	"github.com/spf13/cobra"
)

// Run executes cmd and returns the process exit status. Errors are printed
// in red on stderr; usage errors also print the help of the failed command.
func Run(cmd *cobra.Command) int {
	failed, err := cmd.ExecuteC()
	if err == nil {
		return 0
	}

	fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))

	if errors.IsErrorCode(err, errors.ErrInvalidInput) || !isCodedError(err) {
		if failed == nil {
			failed = cmd
		}
		fmt.Fprintln(os.Stderr)
		failed.SetOut(os.Stderr)
		_ = failed.Usage()
	}
	return 1
}

// isCodedError tells our errors apart from cobra's flag and argument errors
func isCodedError(err error) bool {
	return errors.GetErrorCode(err) != errors.ErrUnknown
}
