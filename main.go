// Package main is the entry point for the vtkcheck CLI application.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/eykd/vtkcheck/cmd"
)

func main() {
	// Create a context that is cancelled on SIGINT (Ctrl+C).
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)

	root := cmd.NewRootCmd()
	root.SetContext(ctx)
	code := cmd.RunCLI(root, os.Args[1:], os.Stdout, os.Stderr)

	cancel()
	os.Exit(code)
}
