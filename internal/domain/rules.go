package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRules is returned when a Rules value cannot drive a check.
var ErrInvalidRules = errors.New("invalid rules")

// Default rule values for legacy VTK files.
const (
	DefaultScanLines     = 20
	DefaultExcerptLength = 50
)

// Rules tune the heuristics applied to each file.
type Rules struct {
	// RequiredSections are keywords expected somewhere in the first
	// ScanLines lines. Warnings are emitted in this order.
	RequiredSections []string
	ScanLines        int
	ExcerptLength    int
}

// DefaultRules returns the rules for a conventional legacy VTK file.
func DefaultRules() Rules {
	return Rules{
		RequiredSections: []string{"ASCII", "DATASET", "POINTS", "CELLS", "CELL_TYPES"},
		ScanLines:        DefaultScanLines,
		ExcerptLength:    DefaultExcerptLength,
	}
}

// Validate reports whether the rules are usable.
func (r Rules) Validate() error {
	if r.ScanLines <= 0 {
		return fmt.Errorf("%w: scan lines must be positive, got %d", ErrInvalidRules, r.ScanLines)
	}
	if r.ExcerptLength <= 0 {
		return fmt.Errorf("%w: excerpt length must be positive, got %d", ErrInvalidRules, r.ExcerptLength)
	}
	for i, s := range r.RequiredSections {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: required section %d is empty", ErrInvalidRules, i)
		}
	}
	return nil
}
