package cmd

import (
	"io"

	"github.com/google/uuid"

	"github.com/eykd/vtkcheck/internal/config"
	"github.com/eykd/vtkcheck/internal/fs"
	"github.com/eykd/vtkcheck/internal/hint"
	"github.com/eykd/vtkcheck/internal/logging"
	"github.com/eykd/vtkcheck/internal/validate"
)

// DefaultDeps wires the command to the filesystem, config lookup and a
// random run ID.
func DefaultDeps() Deps {
	return Deps{
		NewValidator: newServiceValidator,
		Reports:      &fs.OSReportWriter{},
		NewRunID:     uuid.NewString,
	}
}

// newServiceValidator resolves the config and builds a validate.Service.
// A positive opts.Jobs overrides the configured value.
func newServiceValidator(opts ValidatorOptions) (FileValidator, error) {
	cfg, err := config.Resolve(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	jobs := cfg.Jobs
	if opts.Jobs > 0 {
		jobs = opts.Jobs
	}

	logOut := opts.LogOutput
	if logOut == nil {
		logOut = io.Discard
	}
	log := logging.New(opts.Verbose, logOut)
	if cfg.Path != "" {
		log.Debugw("loaded config", "path", cfg.Path)
	}

	return validate.NewService(fs.OSLineReader{},
		validate.WithRules(cfg.Rules),
		validate.WithJobs(jobs),
		validate.WithSuggester(hint.New()),
		validate.WithLogger(log),
	), nil
}
