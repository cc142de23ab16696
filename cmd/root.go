// Package cmd contains the CLI command for the vtkcheck application.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// usageLine is printed when no files are given.
const usageLine = "Usage: vtkcheck <vtk_file> [vtk_file2] ..."

// Deps holds the collaborators of the root command.
type Deps struct {
	NewValidator ValidatorFactory
	Reports      ReportWriter
	NewRunID     func() string
}

// NewRootCmd creates the root command wired to the real filesystem.
func NewRootCmd() *cobra.Command {
	return NewCheckCmd(DefaultDeps())
}

// NewCheckCmd creates the vtkcheck command with the given collaborators.
// This is useful for testing to get a fresh command with test doubles.
func NewCheckCmd(deps Deps) *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "vtkcheck <vtk_file> [vtk_file2] ...",
		Short: "Check legacy VTK ASCII files for format errors",
		Long: "vtkcheck scans legacy VTK ASCII data files and reports structural errors " +
			"and missing sections without parsing the geometry.\n\n" +
			"A leading byte-order mark is removed before the header is checked.\n" +
			"Use -- before file names that begin with a dash: vtkcheck -- -mesh.vtk",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), usageLine)
				return &UsageError{}
			}
			return runCheckAndReport(cmd, deps, opts, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging to stderr")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output results as JSON")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a config file (default: nearest .vtkcheck.yaml)")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "Number of files to check concurrently (default from config, 1)")
	cmd.Flags().StringVar(&opts.reportPath, "report", "", "Also write the JSON report to this file")

	return cmd
}
