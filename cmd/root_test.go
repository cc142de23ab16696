package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRootCommandUse(t *testing.T) {
	cmd := NewRootCmd()
	if cmd.Name() != "vtkcheck" {
		t.Errorf("Name() = %q, want %q", cmd.Name(), "vtkcheck")
	}
}

func TestRootCommandShort(t *testing.T) {
	want := "Check legacy VTK ASCII files for format errors"
	if got := NewRootCmd().Short; got != want {
		t.Errorf("Short = %q, want %q", got, want)
	}
}

func TestRootCommandFlags(t *testing.T) {
	cmd := NewRootCmd()

	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{"verbose", "v", "false"},
		{"json", "", "false"},
		{"config", "", ""},
		{"jobs", "j", "0"},
		{"report", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := cmd.Flags().Lookup(tt.name)
			if f == nil {
				t.Fatalf("expected --%s flag to exist", tt.name)
			}
			if f.Shorthand != tt.shorthand {
				t.Errorf("--%s shorthand = %q, want %q", tt.name, f.Shorthand, tt.shorthand)
			}
			if f.DefValue != tt.defValue {
				t.Errorf("--%s default = %q, want %q", tt.name, f.DefValue, tt.defValue)
			}
		})
	}
}

func TestRootCommand_HelpExitsZero(t *testing.T) {
	stdout := new(bytes.Buffer)

	code := RunCLI(NewRootCmd(), []string{"--help"}, stdout, new(bytes.Buffer))

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if !bytes.Contains(stdout.Bytes(), []byte("vtkcheck")) {
		t.Errorf("help output missing command name: %q", stdout.String())
	}
}

func TestRootCommand_LongHelpNotes(t *testing.T) {
	long := NewRootCmd().Long
	for _, want := range []string{"byte-order mark", "vtkcheck -- -mesh.vtk"} {
		if !strings.Contains(long, want) {
			t.Errorf("Long help missing %q: %q", want, long)
		}
	}
}

func TestRootCommand_DoubleDashAllowsDashPaths(t *testing.T) {
	v := &mockValidator{}

	_, err := runCmd(t, testDeps(v, &mockReportWriter{}, nil), "--", "-x.vtk")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.paths) != 1 || v.paths[0] != "-x.vtk" {
		t.Errorf("validated paths = %q, want [-x.vtk]", v.paths)
	}
}

func TestRootCommand_UnknownFlag(t *testing.T) {
	stderr := new(bytes.Buffer)

	code := RunCLI(NewRootCmd(), []string{"--nope", "a.vtk"}, new(bytes.Buffer), stderr)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !bytes.Contains(stderr.Bytes(), []byte("vtkcheck: unknown flag")) {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRootCommand_WithCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := NewRootCmd()
	cmd.SetContext(ctx)

	code := RunCLI(cmd, []string{"missing.vtk"}, new(bytes.Buffer), new(bytes.Buffer))

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}
