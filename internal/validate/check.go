package validate

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/eykd/vtkcheck/internal/domain"
)

const (
	headerPrefix      = "# vtk DataFile Version"
	cellDataPrefix    = "CELL_DATA"
	lookupTablePrefix = "LOOKUP_TABLE"
	commentPrefix     = "#"
)

// Suggester proposes a near-miss token for a keyword that was not found.
type Suggester interface {
	Suggest(keyword string, lines []string) (string, bool)
}

// CheckLines applies every line heuristic to an already-read document and
// returns the findings without a path. A nil suggester disables hints.
func CheckLines(lines []string, rules domain.Rules, suggester Suggester) domain.FileResult {
	var result domain.FileResult

	if f, ok := checkHeader(lines); ok {
		result.Errors = append(result.Errors, f)
	}
	result.Errors = append(result.Errors, checkCellDataComments(lines, rules.ExcerptLength)...)
	result.Warnings = append(result.Warnings, checkRequiredSections(lines, rules, suggester)...)

	return result
}

// checkHeader treats an empty document as a missing header.
func checkHeader(lines []string) (domain.Finding, bool) {
	if len(lines) > 0 && strings.HasPrefix(lines[0], headerPrefix) {
		return domain.Finding{}, false
	}
	return domain.Finding{
		Type:     domain.FindingInvalidHeader,
		Severity: domain.SeverityError,
		Message:  "Missing or invalid VTK version header",
		Line:     1,
	}, true
}

// findCellData returns the index of the first line starting with CELL_DATA,
// or -1.
func findCellData(lines []string) int {
	for i, line := range lines {
		if strings.HasPrefix(line, cellDataPrefix) {
			return i
		}
	}
	return -1
}

// previousLine returns the stripped line before index i. There is no line
// before index 0.
func previousLine(lines []string, i int) (string, bool) {
	if i <= 0 || i > len(lines) {
		return "", false
	}
	return strip(lines[i-1]), true
}

func checkCellDataComments(lines []string, excerptLen int) []domain.Finding {
	start := findCellData(lines)
	if start < 0 {
		return nil
	}

	var findings []domain.Finding
	for i := start; i < len(lines); i++ {
		if !strings.HasPrefix(strip(lines[i]), commentPrefix) {
			continue
		}
		if prev, ok := previousLine(lines, i); ok && strings.HasPrefix(prev, lookupTablePrefix) {
			continue
		}
		findings = append(findings, domain.Finding{
			Type:     domain.FindingCommentInCellData,
			Severity: domain.SeverityError,
			Message:  fmt.Sprintf("Invalid comment in CELL_DATA section at line %d: %s", i+1, excerpt(lines[i], excerptLen)),
			Line:     i + 1,
		})
	}
	return findings
}

// strip trims leading and trailing whitespace. The ASCII separators
// U+001C..U+001F count as whitespace too, which strings.TrimSpace does not do.
func strip(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
	})
}

// excerpt returns at most n characters of s.
func excerpt(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

func checkRequiredSections(lines []string, rules domain.Rules, suggester Suggester) []domain.Finding {
	window := lines
	if len(window) > rules.ScanLines {
		window = window[:rules.ScanLines]
	}

	var findings []domain.Finding
	for _, section := range rules.RequiredSections {
		if containsSection(window, section) {
			continue
		}
		f := domain.Finding{
			Type:     domain.FindingMissingSection,
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("Section '%s' not found in first %d lines", section, rules.ScanLines),
		}
		if suggester != nil {
			if token, ok := suggester.Suggest(section, window); ok {
				f.Hint = fmt.Sprintf("did you mean %q?", token)
			}
		}
		findings = append(findings, f)
	}
	return findings
}

// containsSection matches on a raw substring, so "NOT_CELL_TYPES_REALLY"
// satisfies CELL_TYPES.
func containsSection(window []string, section string) bool {
	for _, line := range window {
		if strings.Contains(line, section) {
			return true
		}
	}
	return false
}
