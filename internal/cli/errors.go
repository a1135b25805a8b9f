package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/danieljhkim/slap/internal/engine"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitUsage   = 1
	ExitFailure = 2
)

const usageSummary = `Usage: slap [OPTIONS] [PATHS]...

Options:
  -p          Print created paths to stdout
  -t          Create in a temporary directory
  -d          Create directories instead of files
  -o [APP]    Open created paths (with $EDITOR or specify app)
`

// usageError marks an error caused by how slap was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func isUsageError(err error) bool {
	var ue *usageError
	return errors.Is(err, engine.ErrNoPaths) || errors.As(err, &ue)
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case isUsageError(err):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// ReportError writes err to w. Usage errors are followed by a usage summary.
func ReportError(w io.Writer, err error) {
	initColors()
	_, _ = errorColor.Fprintf(w, "slap: %v\n", err)

	if isUsageError(err) {
		fmt.Fprint(w, usageSummary)
		_, _ = dimColor.Fprintln(w, "For more information, try 'slap --help'")
	}
}
