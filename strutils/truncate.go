package strutils

import (
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Truncate cuts s down to at most maxLength runes.
func Truncate[N constraints.Integer](s string, maxLength N) (string, error) {
	return TruncateAnnotated(s, maxLength, "")
}

// TruncateAnnotated cuts s down to maxLength runes and marks the cut with annotation,
// e.g. "...". The annotation counts towards maxLength.
//
// When s is not longer than the annotation, the annotation itself is cut to maxLength
// and returned in place of s.
func TruncateAnnotated[N constraints.Integer](s string, maxLength N, annotation string) (string, error) {
	if maxLength < 0 {
		return "", errors.Wrapf(ErrNegativeLength, "got %d", maxLength)
	}

	length := utf8.RuneCountInString(s)
	if uint64(length) <= uint64(maxLength) {
		return s, nil
	}

	// maxLength is below the rune count here, so it fits into an int
	limit := int(maxLength)

	if annotation == "" {
		return prefix(s, limit), nil
	}

	annotationLength := utf8.RuneCountInString(annotation)
	if length <= annotationLength {
		return prefix(annotation, limit), nil
	}

	if limit < annotationLength {
		return "", errors.Wrapf(
			ErrAnnotationTooLong,
			"annotation %q is %d runes long, max length is %d",
			annotation, annotationLength, limit,
		)
	}

	return prefix(s, limit-annotationLength) + annotation, nil
}

// MustTruncate is like TruncateAnnotated but panics on error.
func MustTruncate[N constraints.Integer](s string, maxLength N, annotation string) string {
	result, err := TruncateAnnotated(s, maxLength, annotation)
	if err != nil {
		panic(err)
	}
	return result
}

// prefix returns the first n runes of s without splitting a multi-byte rune.
func prefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
