// Package validate provides the application service that checks legacy VTK
// files and collects their findings.
package validate

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/eykd/vtkcheck/internal/domain"
)

// ErrNotExist is returned by a LineReader when no file exists at the path.
var ErrNotExist = errors.New("file does not exist")

// LineReader abstracts reading a text file as an ordered list of lines
// without their terminators.
type LineReader interface {
	ReadLines(ctx context.Context, path string) ([]string, error)
}

// Logger is the subset of a structured logger used by the service.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugw(string, ...interface{}) {}

// Service validates VTK files read through a LineReader.
type Service struct {
	reader    LineReader
	rules     domain.Rules
	suggester Suggester
	logger    Logger
	jobs      int
}

// Option configures a Service.
type Option func(*Service)

// WithRules replaces the default rules.
func WithRules(r domain.Rules) Option {
	return func(s *Service) { s.rules = r }
}

// WithSuggester attaches near-miss hints to missing-section warnings.
func WithSuggester(sg Suggester) Option {
	return func(s *Service) { s.suggester = sg }
}

// WithLogger sets the debug logger.
func WithLogger(l Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithJobs sets how many files ValidateAll checks concurrently.
// Values below 1 are treated as 1.
func WithJobs(n int) Option {
	return func(s *Service) { s.jobs = n }
}

// NewService creates a Service with the given reader and options.
func NewService(reader LineReader, opts ...Option) *Service {
	s := &Service{
		reader: reader,
		rules:  domain.DefaultRules(),
		logger: nopLogger{},
		jobs:   1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.jobs < 1 {
		s.jobs = 1
	}
	return s
}

// Validate checks one file. A missing or unreadable file is reported as a
// single error finding; the returned error is non-nil only when ctx is done.
func (s *Service) Validate(ctx context.Context, path string) (domain.FileResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.FileResult{}, err
	}

	lines, err := s.reader.ReadLines(ctx, path)
	switch {
	case errors.Is(err, ErrNotExist):
		s.logger.Debugw("file not found", "path", path)
		return domain.FileResult{
			Path: path,
			Errors: []domain.Finding{{
				Type:     domain.FindingFileNotFound,
				Severity: domain.SeverityError,
				Message:  fmt.Sprintf("File not found: %s", path),
			}},
		}, nil
	case err != nil:
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.FileResult{}, ctxErr
		}
		s.logger.Debugw("file unreadable", "path", path, "error", err)
		return domain.FileResult{
			Path: path,
			Errors: []domain.Finding{{
				Type:     domain.FindingUnreadableFile,
				Severity: domain.SeverityError,
				Message:  fmt.Sprintf("Could not read file: %v", err),
			}},
		}, nil
	}

	result := CheckLines(lines, s.rules, s.suggester)
	result.Path = path
	s.logger.Debugw("file checked",
		"path", path,
		"lines", len(lines),
		"errors", len(result.Errors),
		"warnings", len(result.Warnings),
	)
	return result, nil
}

// ValidateAll checks every path and returns the results in input order.
func (s *Service) ValidateAll(ctx context.Context, paths []string) ([]domain.FileResult, error) {
	results := make([]domain.FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.jobs)
	for i, path := range paths {
		g.Go(func() error {
			r, err := s.Validate(gctx, path)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("validating files: %w", err)
	}

	s.logger.Debugw("run complete", "files", len(paths), "jobs", s.jobs)
	return results, nil
}
