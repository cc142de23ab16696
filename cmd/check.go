package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eykd/vtkcheck/internal/domain"
)

// FindingType represents the kind of check finding.
type FindingType string

const (
	// FindingFileNotFound indicates no file exists at the given path.
	FindingFileNotFound FindingType = domain.FindingFileNotFound
	// FindingUnreadableFile indicates the file exists but could not be read as text.
	FindingUnreadableFile FindingType = domain.FindingUnreadableFile
	// FindingInvalidHeader indicates the first line is not a VTK version header.
	FindingInvalidHeader FindingType = domain.FindingInvalidHeader
	// FindingCommentInCellData indicates a comment line inside the CELL_DATA section.
	FindingCommentInCellData FindingType = domain.FindingCommentInCellData
	// FindingMissingSection indicates a required keyword is absent from the scanned lines.
	FindingMissingSection FindingType = domain.FindingMissingSection
)

// Severity represents the severity level of a check finding.
type Severity string

const (
	// SeverityError represents an error-level finding.
	SeverityError Severity = "error"
	// SeverityWarning represents a warning-level finding.
	SeverityWarning Severity = "warning"
)

// CheckFinding represents a single finding in command output.
type CheckFinding struct {
	Type     FindingType `json:"type"`
	Severity Severity    `json:"severity"`
	Message  string      `json:"message"`
	Line     int         `json:"line,omitempty"`
	Hint     string      `json:"hint,omitempty"`
}

// FileValidator validates a list of files and returns one result per path
// in input order.
type FileValidator interface {
	ValidateAll(ctx context.Context, paths []string) ([]domain.FileResult, error)
}

// ReportWriter persists a rendered report.
type ReportWriter interface {
	WriteReport(ctx context.Context, path string, data []byte) error
}

// ValidatorOptions carries the command-line settings used to build a FileValidator.
type ValidatorOptions struct {
	ConfigPath string
	Jobs       int
	Verbose    bool
	LogOutput  io.Writer
}

// ValidatorFactory builds a FileValidator for one run.
type ValidatorFactory func(opts ValidatorOptions) (FileValidator, error)

// FindingsDetectedError is returned when any file has error findings.
type FindingsDetectedError struct {
	Errors   int
	Warnings int
}

// Error implements the error interface.
func (e *FindingsDetectedError) Error() string {
	return fmt.Sprintf("check found %d errors, %d warnings", e.Errors, e.Warnings)
}

// ExitCode returns the exit code for findings (always 1).
func (e *FindingsDetectedError) ExitCode() int {
	return 1
}

// UsageError is returned when no input files are given.
type UsageError struct{}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return "no input files"
}

// ExitCode returns the exit code for usage errors (always 1).
func (e *UsageError) ExitCode() int {
	return 1
}

// ExitCoder is implemented by errors that carry a specific process exit code.
type ExitCoder interface {
	ExitCode() int
}

// ExitCodeFromError returns the appropriate exit code for an error.
// nil returns 0, ExitCoder errors return their code, all others return 1.
func ExitCodeFromError(err error) int {
	if err == nil {
		return 0
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// convertFinding maps a domain finding to its output form.
func convertFinding(f domain.Finding) CheckFinding {
	return CheckFinding{
		Type:     FindingType(f.Type),
		Severity: Severity(f.Severity),
		Message:  f.Message,
		Line:     f.Line,
		Hint:     f.Hint,
	}
}

func convertFindings(findings []domain.Finding) []CheckFinding {
	out := make([]CheckFinding, len(findings))
	for i, f := range findings {
		out[i] = convertFinding(f)
	}
	return out
}

// checkOptions holds the flag values of one command instance.
type checkOptions struct {
	jsonOutput bool
	verbose    bool
	configPath string
	jobs       int
	reportPath string
}

// runCheckAndReport validates the files, writes the report and returns a
// FindingsDetectedError if any file has errors.
func runCheckAndReport(cmd *cobra.Command, deps Deps, opts checkOptions, paths []string) error {
	ctx := cmd.Context()

	if opts.jobs < 0 {
		return &ContextError{Op: "jobs", Err: fmt.Errorf("must be at least 1, got %d", opts.jobs)}
	}
	validator, err := deps.NewValidator(ValidatorOptions{
		ConfigPath: opts.configPath,
		Jobs:       opts.jobs,
		Verbose:    opts.verbose,
		LogOutput:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return &ContextError{Op: "config", Err: err}
	}

	results, err := validator.ValidateAll(ctx, paths)
	if err != nil {
		return err
	}
	summary := domain.Summarize(results)

	var report []byte
	if opts.jsonOutput || opts.reportPath != "" {
		report, err = encodeJSON(buildJSONResponse(deps.NewRunID(), results, summary))
		if err != nil {
			return err
		}
	}

	if opts.jsonOutput {
		writeOutput(cmd.OutOrStdout(), report)
	} else {
		formatCheckHuman(cmd.OutOrStdout(), results, summary)
	}

	if opts.reportPath != "" {
		if err := deps.Reports.WriteReport(ctx, opts.reportPath, report); err != nil {
			return &ContextError{Op: "write report", Path: opts.reportPath, Err: err}
		}
	}

	if !summary.Passed() {
		return &FindingsDetectedError{Errors: summary.Errors, Warnings: summary.Warnings}
	}
	return nil
}
