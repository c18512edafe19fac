// Package textmatch implements the case-insensitive comparisons used by the
// catalog and directory filters.
package textmatch

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns s case-folded for comparison. A Caser keeps internal state,
// so each call builds its own.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Contains reports whether needle occurs in haystack ignoring case.
// An empty needle matches everything.
func Contains(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Fold(haystack), Fold(needle))
}

// ContainsAny reports whether needle occurs in any of the haystacks.
func ContainsAny(needle string, haystacks ...string) bool {
	if needle == "" {
		return true
	}
	n := Fold(needle)
	for _, h := range haystacks {
		if strings.Contains(Fold(h), n) {
			return true
		}
	}
	return false
}

// Equal reports whether a and b are equal ignoring case.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}
