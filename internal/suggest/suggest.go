// Package suggest finds close matches for mistyped names.
package suggest

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// MaxDistance is the largest edit distance still reported as a suggestion.
const MaxDistance = 3

// Closest returns the candidate nearest to name, comparing case-insensitively,
// or "" if none is within MaxDistance. Ties go to the earlier candidate.
func Closest(name string, candidates []string) string {
	best := ""
	bestDistance := MaxDistance + 1
	lowered := strings.ToLower(name)

	for _, candidate := range candidates {
		distance := levenshtein.ComputeDistance(lowered, strings.ToLower(candidate))
		if distance < bestDistance {
			bestDistance = distance
			best = candidate
		}
	}

	return best
}
