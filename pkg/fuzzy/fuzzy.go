/*
Copyright © 2025 Chataigne
SPDX-License-Identifier: Apache-2.0
*/

// Package fuzzy suggests corrections for likely typos in entity references
// and converts free-form identifiers to ref format.
package fuzzy

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
)

var fold = cases.Fold()

// Match is a candidate accepted by BestMatch. Confident is set when the
// candidate is at most one edit away from the target.
type Match struct {
	Candidate string
	Distance  int
	Confident bool
}

// Distance returns the Levenshtein edit distance between a and b, computed
// case-insensitively with surrounding whitespace trimmed.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(normalize(a), normalize(b))
}

// BestMatch returns the candidate closest to target, provided it is within
// the suggestion threshold. The threshold scales with string length: a
// candidate qualifies when its distance is at most 30% of the longer of the
// two strings, and never less than one edit. Using the longer side keeps
// suggestions working when the correct name is an extension of the typo
// ("Desert" -> "Desserts") without matching unrelated short names.
//
// Ties are broken deterministically: minimum distance first, then the
// candidate whose length is closest to the target's, then lexicographic
// order. The second return value is false when no candidate qualifies.
func BestMatch(target string, candidates []string) (Match, bool) {
	var (
		best  Match
		found bool
	)
	targetLen := len([]rune(strings.TrimSpace(target)))

	for _, candidate := range candidates {
		d := Distance(target, candidate)
		if d > threshold(targetLen, len([]rune(strings.TrimSpace(candidate)))) {
			continue
		}
		if !found || better(candidate, d, best, targetLen) {
			best = Match{Candidate: candidate, Distance: d, Confident: d <= 1}
			found = true
		}
	}

	return best, found
}

func normalize(s string) string {
	return fold.String(strings.TrimSpace(s))
}

func threshold(targetLen, candidateLen int) int {
	n := max(targetLen, candidateLen)
	return max(1, n*3/10)
}

func better(candidate string, distance int, best Match, targetLen int) bool {
	if distance != best.Distance {
		return distance < best.Distance
	}
	candDiff := lengthDiff(candidate, targetLen)
	bestDiff := lengthDiff(best.Candidate, targetLen)
	if candDiff != bestDiff {
		return candDiff < bestDiff
	}
	return candidate < best.Candidate
}

func lengthDiff(s string, targetLen int) int {
	d := len([]rune(strings.TrimSpace(s))) - targetLen
	if d < 0 {
		return -d
	}
	return d
}
