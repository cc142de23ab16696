package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/eykd/vtkcheck/internal/domain"
)

const (
	statusValid   = "VALID"
	statusInvalid = "INVALID"
	resultPassed  = "PASSED"
	resultFailed  = "FAILED"
)

// fileJSON is the per-file entry of the JSON report.
type fileJSON struct {
	Path     string         `json:"path"`
	Status   string         `json:"status"`
	Errors   []CheckFinding `json:"errors"`
	Warnings []CheckFinding `json:"warnings"`
}

// checkJSONResponse is the JSON output structure for a run.
type checkJSONResponse struct {
	RunID   string     `json:"run_id"`
	Files   []fileJSON `json:"files"`
	Summary struct {
		Files    int    `json:"files"`
		Errors   int    `json:"errors"`
		Warnings int    `json:"warnings"`
		Result   string `json:"result"`
	} `json:"summary"`
}

func fileStatus(r domain.FileResult) string {
	if r.Valid() {
		return statusValid
	}
	return statusInvalid
}

func overallResult(s domain.Summary) string {
	if s.Passed() {
		return resultPassed
	}
	return resultFailed
}

func buildJSONResponse(runID string, results []domain.FileResult, summary domain.Summary) checkJSONResponse {
	out := checkJSONResponse{RunID: runID, Files: make([]fileJSON, len(results))}
	for i, r := range results {
		out.Files[i] = fileJSON{
			Path:     r.Path,
			Status:   fileStatus(r),
			Errors:   convertFindings(r.Errors),
			Warnings: convertFindings(r.Warnings),
		}
	}
	out.Summary.Files = summary.Files
	out.Summary.Errors = summary.Errors
	out.Summary.Warnings = summary.Warnings
	out.Summary.Result = overallResult(summary)
	return out
}

// encodeJSON renders v as indented JSON with a trailing newline.
func encodeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}
	return buf.Bytes(), nil
}

// writeOutput writes rendered output to w, handling I/O errors at the boundary.
func writeOutput(w io.Writer, data []byte) {
	if _, err := w.Write(data); err != nil {
		fmt.Fprintf(w, "{\"error\":%q}\n", err.Error())
	}
}

// formatFileHuman writes the console report section for one file.
func formatFileHuman(w io.Writer, r domain.FileResult) {
	fmt.Fprintf(w, "\nValidating: %s\n", r.Path)
	fmt.Fprintln(w, strings.Repeat("-", 12+utf8.RuneCountInString(r.Path)))

	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "❌ ERRORS (%d):\n", len(r.Errors))
		for _, f := range r.Errors {
			fmt.Fprintf(w, "   • %s\n", f.Message)
		}
	} else {
		fmt.Fprintln(w, "✅ No errors found")
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "⚠️  WARNINGS (%d):\n", len(r.Warnings))
		for _, f := range r.Warnings {
			fmt.Fprintf(w, "   • %s\n", f.Message)
		}
	}

	fmt.Fprintf(w, "Status: %s\n", fileStatus(r))
}

// formatCheckHuman writes the console report for a run: one section per
// file in input order, then the summary.
func formatCheckHuman(w io.Writer, results []domain.FileResult, summary domain.Summary) {
	for _, r := range results {
		formatFileHuman(w, r)
	}
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 50))
	fmt.Fprintf(w, "Total files validated: %d\n", summary.Files)
	fmt.Fprintf(w, "Total errors: %d\n", summary.Errors)
	fmt.Fprintf(w, "Overall result: %s\n", overallResult(summary))
}
