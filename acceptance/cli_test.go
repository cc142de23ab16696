package acceptance_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNoArguments(t *testing.T) {
	stdout, _, code := runVtkcheck(t, t.TempDir())

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if stdout != "Usage: vtkcheck <vtk_file> [vtk_file2] ...\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestSingleDatasetLine(t *testing.T) {
	dir := t.TempDir()
	name := writeFile(t, dir, "one.vtk", "DATASET POLYDATA\n")

	stdout, stderr, code := runVtkcheck(t, dir, name)

	want := "\n" +
		"Validating: one.vtk\n" +
		"-------------------\n" +
		"❌ ERRORS (1):\n" +
		"   • Missing or invalid VTK version header\n" +
		"⚠️  WARNINGS (4):\n" +
		"   • Section 'ASCII' not found in first 20 lines\n" +
		"   • Section 'POINTS' not found in first 20 lines\n" +
		"   • Section 'CELLS' not found in first 20 lines\n" +
		"   • Section 'CELL_TYPES' not found in first 20 lines\n" +
		"Status: INVALID\n" +
		"\n" +
		"==================================================\n" +
		"Total files validated: 1\n" +
		"Total errors: 1\n" +
		"Overall result: FAILED\n"
	if stdout != want {
		t.Errorf("stdout mismatch\ngot:\n%q\nwant:\n%q", stdout, want)
	}
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if stderr != "" {
		t.Errorf("stderr should be empty, got %q", stderr)
	}
}

func TestValidFile(t *testing.T) {
	dir := t.TempDir()
	name := writeFile(t, dir, "ok.vtk", validVTK)

	stdout, stderr, code := runVtkcheck(t, dir, name)

	if code != 0 {
		t.Errorf("exit code = %d, want 0\nstderr: %s", code, stderr)
	}
	if !strings.HasSuffix(stdout, "Overall result: PASSED\n") {
		t.Errorf("stdout = %q", stdout)
	}
	if stderr != "" {
		t.Errorf("stderr should be empty, got %q", stderr)
	}
}

func TestMissingFile(t *testing.T) {
	stdout, _, code := runVtkcheck(t, t.TempDir(), "nowhere.vtk")

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	for _, want := range []string{"   • File not found: nowhere.vtk\n", "Status: INVALID\n", "Total errors: 1\n"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestEmptyFile(t *testing.T) {
	dir := t.TempDir()
	name := writeFile(t, dir, "empty.vtk", "")

	stdout, _, code := runVtkcheck(t, dir, name)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stdout, "   • Missing or invalid VTK version header\n") {
		t.Errorf("stdout = %s", stdout)
	}
}

func TestMixedRun(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.vtk", validVTK)
	bad := writeFile(t, dir, "bad.vtk", "DATASET POLYDATA\nCELL_DATA 1\n1.0\n# stray\n")

	stdout, _, code := runVtkcheck(t, dir, good, bad)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if strings.Index(stdout, "Validating: good.vtk") > strings.Index(stdout, "Validating: bad.vtk") {
		t.Error("files must be reported in argument order")
	}
	for _, want := range []string{"Total files validated: 2\n", "Total errors: 2\n", "Overall result: FAILED\n"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestJSONAndReport(t *testing.T) {
	dir := t.TempDir()
	name := writeFile(t, dir, "ok.vtk", validVTK)

	stdout, _, code := runVtkcheck(t, dir, "--json", "--report", "out/report.json", name)

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	report, err := os.ReadFile(filepath.Join(dir, "out", "report.json"))
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if string(report) != stdout {
		t.Errorf("report differs from stdout\nreport: %s\nstdout: %s", report, stdout)
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal(report, &parsed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	summary, ok := parsed["summary"].(map[string]interface{})
	if !ok || summary["result"] != "PASSED" {
		t.Errorf("summary = %v", parsed["summary"])
	}
}

func TestCarriageReturnLineEndings(t *testing.T) {
	dir := t.TempDir()
	name := writeFile(t, dir, "cr.vtk", "# vtk DataFile Version 3.0\rASCII\rCELL_DATA 1\r1.0\r# stray\r")

	stdout, _, code := runVtkcheck(t, dir, name)

	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	for _, want := range []string{"   • Invalid comment in CELL_DATA section at line 5: # stray\n", "Status: INVALID\n"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestDashPrefixedPathAfterDoubleDash(t *testing.T) {
	dir := t.TempDir()
	name := writeFile(t, dir, "-x.vtk", validVTK)

	stdout, stderr, code := runVtkcheck(t, dir, "--", name)

	if code != 0 {
		t.Errorf("exit code = %d, want 0\nstderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, "Validating: -x.vtk\n") {
		t.Errorf("stdout = %q", stdout)
	}
}
