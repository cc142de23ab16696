// Package config loads vtkcheck settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/eykd/vtkcheck/internal/domain"
)

// FileName is the config file looked up from the working directory upward.
const FileName = ".vtkcheck.yaml"

// ErrInvalid is returned when a config file parses but holds unusable values.
var ErrInvalid = errors.New("invalid config")

// Config holds every setting a config file can carry.
type Config struct {
	Rules domain.Rules
	// Jobs is the number of files checked concurrently.
	Jobs int
	// Path is the file the config was loaded from, empty for defaults.
	Path string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Rules: domain.DefaultRules(), Jobs: 1}
}

// fileConfig mirrors the YAML document. Pointer fields distinguish absent
// keys from zero values.
type fileConfig struct {
	RequiredSections []string `yaml:"required_sections"`
	ScanLines        *int     `yaml:"scan_lines"`
	ExcerptLength    *int     `yaml:"excerpt_length"`
	Jobs             *int     `yaml:"jobs"`
}

// Parse decodes a YAML config document on top of the defaults. Unknown keys
// are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	if fc.RequiredSections != nil {
		cfg.Rules.RequiredSections = fc.RequiredSections
	}
	if fc.ScanLines != nil {
		cfg.Rules.ScanLines = *fc.ScanLines
	}
	if fc.ExcerptLength != nil {
		cfg.Rules.ExcerptLength = *fc.ExcerptLength
	}
	if fc.Jobs != nil {
		cfg.Jobs = *fc.Jobs
	}

	if err := cfg.Rules.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if cfg.Jobs < 1 {
		return Config{}, fmt.Errorf("%w: jobs must be at least 1, got %d", ErrInvalid, cfg.Jobs)
	}
	return cfg, nil
}

// LoadFile reads and parses the config file at path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// FindImpl walks up from dir looking for FileName. It returns the empty
// string when no config file exists.
func FindImpl(dir string) (string, error) {
	for {
		candidate := filepath.Join(dir, FileName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("checking %s: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Resolve loads the explicit path when given, otherwise the nearest
// FileName above the working directory, otherwise the defaults.
func Resolve(explicit string) (Config, error) {
	if explicit != "" {
		return LoadFile(explicit)
	}

	wd, err := os.Getwd()
	if err != nil {
		return Config{}, fmt.Errorf("getting working directory: %w", err)
	}
	path, err := FindImpl(wd)
	if err != nil {
		return Config{}, err
	}
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
