// Package fs provides filesystem adapters that implement validate service
// interfaces and write report files.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/eykd/vtkcheck/internal/lock"
	"github.com/eykd/vtkcheck/internal/validate"
)

// OSLineReader implements validate.LineReader using os.Open.
type OSLineReader struct{}

// ReadLinesImpl reads a text file and splits it into lines. A byte-order
// mark selects UTF-8 or UTF-16 decoding; without one the content must be
// valid UTF-8.
func (OSLineReader) ReadLinesImpl(_ context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, validate.ErrNotExist)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := transform.NewReader(f, unicode.BOMOverride(encoding.UTF8Validator))
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return SplitLines(string(data)), nil
}

// ReadLines delegates to ReadLinesImpl.
func (r OSLineReader) ReadLines(ctx context.Context, path string) ([]string, error) {
	return r.ReadLinesImpl(ctx, path)
}

// SplitLines splits text into lines and drops the terminators. "\n", "\r\n"
// and a lone "\r" each end a line. A trailing terminator does not start
// another line; empty text has no lines.
func SplitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// DefaultLockTimeout bounds how long WriteReport waits for another run.
const DefaultLockTimeout = 30 * time.Second

// OSReportWriter writes report files atomically under an advisory lock
// stored next to the report as "<path>.lock".
type OSReportWriter struct {
	LockTimeout time.Duration
}

// WriteReportImpl replaces the file at path with data.
func (w *OSReportWriter) WriteReportImpl(ctx context.Context, path string, data []byte) error {
	timeout := w.LockTimeout
	if timeout <= 0 {
		timeout = DefaultLockTimeout
	}
	lctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	l := lock.NewFromPath(path + ".lock")
	if err := l.Lock(lctx); err != nil {
		return err
	}
	defer l.Unlock()

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting mode on %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming report into place: %w", err)
	}
	return nil
}

// WriteReport delegates to WriteReportImpl.
func (w *OSReportWriter) WriteReport(ctx context.Context, path string, data []byte) error {
	return w.WriteReportImpl(ctx, path, data)
}
