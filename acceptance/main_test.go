package acceptance_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var vtkcheckBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "vtkcheck-acceptance-*")
	if err != nil {
		panic(err)
	}

	vtkcheckBinary = filepath.Join(tmpDir, "vtkcheck")
	build := exec.Command("go", "build", "-o", vtkcheckBinary, "github.com/eykd/vtkcheck")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		os.RemoveAll(tmpDir)
		panic("failed to build vtkcheck binary: " + err.Error())
	}

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}
