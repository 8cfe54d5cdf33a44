// Package utils holds the zero-value and case-folding helpers shared by the other packages.
package utils

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GetZero returns the zero value of T.
func GetZero[T any]() T {
	var result T
	return result
}

// IsZero reports whether v equals the zero value of T.
// Comparison is plain ==, so nil pointers and nil interfaces never have a method invoked on them.
func IsZero[T comparable](v T) bool {
	return v == GetZero[T]()
}

// LowerRune lower-cases a single rune.
func LowerRune(r rune) rune {
	return unicode.ToLower(r)
}

// LowerString lower-cases s using root locale rules.
// A new Caser is built per call since Caser is not safe for concurrent use.
func LowerString(s string) string {
	return cases.Lower(language.Und).String(s)
}

// LowerStrings returns a lower-cased copy of ss, leaving ss untouched.
func LowerStrings(ss []string) []string {
	caser := cases.Lower(language.Und)
	result := make([]string, len(ss))
	for i, s := range ss {
		result[i] = caser.String(s)
	}
	return result
}
