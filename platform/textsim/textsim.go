// Package textsim provides normalized string similarity scoring.
// This is part of the platform layer and contains no business logic.
package textsim

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Similarity returns a score in [0, 1] describing how close two strings are.
// Inputs are trimmed and compared case-insensitively. Identical normalized
// strings score exactly 1. Otherwise the score is 1 minus the Levenshtein
// edit distance divided by the length of the longer string, floored at 0.
func Similarity(a, b string) float64 {
	left := strings.ToLower(strings.TrimSpace(a))
	right := strings.ToLower(strings.TrimSpace(b))
	if left == right {
		return 1
	}

	longer := len([]rune(left))
	if n := len([]rune(right)); n > longer {
		longer = n
	}

	distance := levenshtein.ComputeDistance(left, right)
	score := 1 - float64(distance)/float64(longer)
	if score < 0 {
		return 0
	}
	return score
}
