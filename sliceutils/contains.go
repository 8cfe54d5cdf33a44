// Package sliceutils holds membership and counting helpers for slices.
package sliceutils

import (
	"github.com/pkg/errors"

	"github.com/denismitr/extensions/utils"
)

// ContainsRune reports whether needle occurs within haystack.
// A nil haystack is rejected with ErrNilSlice, an empty one never matches.
func ContainsRune(haystack []rune, needle rune, opts ...MatchOption) (bool, error) {
	if haystack == nil {
		return false, errors.Wrap(ErrNilSlice, "rune haystack")
	}

	cfg := newMatchConfig(opts)
	if !cfg.ignoreCase {
		return indexOf(haystack, needle) >= 0, nil
	}

	needle = utils.LowerRune(needle)
	if cfg.legacyFolding {
		return indexOf(haystack, needle) >= 0, nil
	}

	for _, r := range haystack {
		if utils.LowerRune(r) == needle {
			return true, nil
		}
	}

	return false, nil
}

// ContainsString reports whether needle is an element of haystack.
// The empty needle is always found, even in an empty haystack, but a nil
// haystack is rejected with ErrNilSlice.
func ContainsString(haystack []string, needle string, opts ...MatchOption) (bool, error) {
	if haystack == nil {
		return false, errors.Wrap(ErrNilSlice, "string haystack")
	}

	if needle == "" {
		return true, nil
	}

	cfg := newMatchConfig(opts)
	if cfg.ignoreCase {
		haystack = utils.LowerStrings(haystack)
		needle = utils.LowerString(needle)
	}

	return indexOf(haystack, needle) >= 0, nil
}

func indexOf[T comparable](items []T, item T) int {
	for i := range items {
		if items[i] == item {
			return i
		}
	}
	return -1
}
