// Package hint suggests near-miss spellings of VTK section keywords.
package hint

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// DefaultMaxDistance is the largest edit distance still reported.
const DefaultMaxDistance = 2

// Suggester finds the token closest to a keyword within MaxDistance edits.
type Suggester struct {
	MaxDistance int
}

// New returns a Suggester using DefaultMaxDistance.
func New() *Suggester {
	return &Suggester{MaxDistance: DefaultMaxDistance}
}

// Suggest returns the first token in lines with the smallest case-insensitive
// edit distance to keyword. A token spelled exactly like keyword is not a
// suggestion, but a different case of it is.
func (s *Suggester) Suggest(keyword string, lines []string) (string, bool) {
	want := strings.ToUpper(keyword)
	best, bestDist := "", s.MaxDistance+1

	for _, line := range lines {
		for _, token := range tokens(line) {
			if token == keyword {
				continue
			}
			upper := strings.ToUpper(token)
			// Tokens far shorter or longer cannot be within range.
			if abs(len(upper)-len(want)) > s.MaxDistance {
				continue
			}
			if d := levenshtein.ComputeDistance(upper, want); d < bestDist {
				best, bestDist = token, d
			}
		}
	}
	return best, best != ""
}

// tokens splits a line into keyword-like runs of letters, digits and '_'.
func tokens(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
	})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
