package domain

// FileResult holds the findings produced for one input file, each list in
// the order the findings were discovered.
type FileResult struct {
	Path     string
	Errors   []Finding
	Warnings []Finding
}

// Valid reports whether the file has no error findings. Warnings never
// affect validity.
func (r FileResult) Valid() bool {
	return len(r.Errors) == 0
}

// ErrorMessages returns the messages of all error findings.
func (r FileResult) ErrorMessages() []string {
	return messages(r.Errors)
}

// WarningMessages returns the messages of all warning findings.
func (r FileResult) WarningMessages() []string {
	return messages(r.Warnings)
}

func messages(findings []Finding) []string {
	out := make([]string, len(findings))
	for i, f := range findings {
		out[i] = f.Message
	}
	return out
}

// Summary aggregates counts over a run.
type Summary struct {
	Files    int
	Errors   int
	Warnings int
}

// Passed reports whether no file in the run had an error.
func (s Summary) Passed() bool {
	return s.Errors == 0
}

// Add folds one file result into the summary and returns the new summary.
func (s Summary) Add(r FileResult) Summary {
	return Summary{
		Files:    s.Files + 1,
		Errors:   s.Errors + len(r.Errors),
		Warnings: s.Warnings + len(r.Warnings),
	}
}

// Summarize folds a list of file results into a Summary.
func Summarize(results []FileResult) Summary {
	var s Summary
	for _, r := range results {
		s = s.Add(r)
	}
	return s
}
