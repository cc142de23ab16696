package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// ContextError adds operation and path context to an underlying error.
type ContextError struct {
	Op   string
	Path string
	Err  error
}

// Error returns the formatted error string with context.
func (e *ContextError) Error() string {
	if e.Op != "" && e.Path != "" {
		return e.Op + ": " + e.Path + ": " + e.Err.Error()
	}
	if e.Op != "" {
		return e.Op + ": " + e.Err.Error()
	}
	if e.Path != "" {
		return e.Path + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ContextError) Unwrap() error {
	return e.Err
}

// FormatError formats an error with the "vtkcheck: " prefix and trailing newline.
func FormatError(err error) string {
	return fmt.Sprintf("vtkcheck: %s\n", err.Error())
}

// RunCLI executes the command with the given args, writing output to stdout
// and errors to stderr. It returns the appropriate exit code. Usage errors
// and detected findings are already reported on stdout, so only the exit
// code carries them.
func RunCLI(cmd *cobra.Command, args []string, stdout io.Writer, stderr io.Writer) int {
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	if !reportedOnStdout(err) {
		fmt.Fprint(stderr, FormatError(err))
	}
	return ExitCodeFromError(err)
}

func reportedOnStdout(err error) bool {
	var usageErr *UsageError
	var findingsErr *FindingsDetectedError
	return errors.As(err, &usageErr) || errors.As(err, &findingsErr)
}
