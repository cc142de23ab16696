package domain

// FindingSeverity indicates how severe a finding is.
type FindingSeverity string

const (
	// SeverityError indicates a format violation that invalidates the file.
	SeverityError FindingSeverity = "error"
	// SeverityWarning indicates expected content that was not found.
	SeverityWarning FindingSeverity = "warning"
)

// Finding type constants identify the kind of issue found.
const (
	FindingFileNotFound      = "file_not_found"
	FindingUnreadableFile    = "unreadable_file"
	FindingInvalidHeader     = "invalid_header"
	FindingCommentInCellData = "comment_in_cell_data"
	FindingMissingSection    = "missing_section"
)

// Finding represents a validation issue discovered while checking a file.
// Line is 1-based and zero when the finding is not tied to a line.
type Finding struct {
	Type     string
	Severity FindingSeverity
	Message  string
	Line     int
	Hint     string
}
