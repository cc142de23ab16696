package acceptance_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// runVtkcheck executes the vtkcheck binary and returns stdout, stderr, and exit code.
func runVtkcheck(t *testing.T, dir string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(vtkcheckBinary, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("failed to run vtkcheck: %v", err)
		}
	}
	return stdout.String(), stderr.String(), exitCode
}

// writeFile creates a file under dir and returns its name relative to dir.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return name
}

const validVTK = "# vtk DataFile Version 3.0\n" +
	"cube\n" +
	"ASCII\n" +
	"DATASET POLYDATA\n" +
	"POINTS 4 float\n" +
	"0 0 0 1 0 0 0 1 0 0 0 1\n" +
	"CELLS 1 5\n" +
	"4 0 1 2 3\n" +
	"CELL_TYPES 1\n" +
	"10\n" +
	"CELL_DATA 1\n" +
	"LOOKUP_TABLE default\n" +
	"# this is fine\n"
