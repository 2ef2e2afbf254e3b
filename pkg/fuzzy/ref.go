/*
Copyright © 2025 Chataigne
SPDX-License-Identifier: Apache-2.0
*/

package fuzzy

import (
	"regexp"
	"strings"
	"unicode"
)

// refPattern is the required shape of machine identifiers:
// UPPERCASE_SNAKE_CASE starting with a letter.
var refPattern = regexp.MustCompile(`^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$`)

// IsRefFormat reports whether s already conforms to ref format.
func IsRefFormat(s string) bool {
	return refPattern.MatchString(s)
}

// ToRefFormat converts a free-form identifier to UPPERCASE_SNAKE_CASE:
// letters are upper-cased, runs of non-alphanumeric characters collapse to a
// single underscore. The conversion is rejected (ok=false) when the result
// would not start with a letter, since no valid ref can be derived then.
// The transform is idempotent: applying it to its own output is a no-op.
func ToRefFormat(s string) (string, bool) {
	var b strings.Builder
	pendingSep := false

	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(unicode.ToUpper(r))
		default:
			pendingSep = true
		}
	}

	out := b.String()
	if !refPattern.MatchString(out) {
		return "", false
	}
	return out, true
}
